package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"

	"skirmish/game"
	"skirmish/game/application"
	"skirmish/game/domain"
	"skirmish/game/netsync"
	"skirmish/utils"
)

const restartDelay = 2 * time.Second

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	count := flag.Int("count", utils.GetEnvInt("BOT_COUNT", 3), "number of bot clients")
	addr := flag.String("addr", utils.GetEnvDefault("ADDR", application.DefaultAddr), "host address")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("starting bots", "count", *count, "addr", *addr)

	var wg sync.WaitGroup
	for i := range *count {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			runBot(ctx, *addr, id)
		}(i)
	}

	wg.Wait()
	slog.Info("all bots stopped")
}

// runBot はセッションが終わるたびに新しいセッションで参加し直します。
func runBot(ctx context.Context, addr string, id int) {
	logger := slog.With("botID", id)
	self := domain.RosterEntry{UID: uuid.NewString(), Name: fmt.Sprintf("bot-%d", id)}

	for round := uint64(0); ; round++ {
		if ctx.Err() != nil {
			return
		}
		cfg := application.BotClientConfig(self.UID, self.Name)
		syncer := netsync.New(netsync.DefaultConfig(domain.RoleClient, self), game.NewLink(domain.RoleClient, addr, self))
		session := application.NewGameSession(cfg,
			application.WithReplicator(syncer),
			application.WithRand(rand.New(rand.NewPCG(uint64(id), round))),
		)

		result, err := game.Play(ctx, session, syncer)
		if err != nil {
			logger.Warn("bot session failed", "err", err)
		} else {
			logger.Info("bot session ended", "outcome", result.Outcome, "score", result.Score)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(restartDelay):
		}
	}
}
