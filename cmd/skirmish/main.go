package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"skirmish/game"
	"skirmish/game/adapter/terminal"
	"skirmish/game/application"
	"skirmish/game/domain"
	"skirmish/game/netsync"
	"skirmish/utils"
)

func main() {
	mode := flag.String("mode", utils.GetEnvDefault("MODE", "single"), "single | coop | host | client")
	addr := flag.String("addr", defaultAddr(), "host:port to listen on (host) or connect to (client)")
	name := flag.String("name", utils.GetEnvDefault("NAME", ""), "player name")
	spawn := flag.String("spawn", utils.GetEnvDefault("SPAWN", "corners"), "enemy spawn placement: corners | random")
	flag.Parse()

	closeLog, err := setupLogger(utils.GetEnvDefault("LOG_FILE", ""), utils.GetEnvDefault("LOG_LEVEL", "info"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, self, err := buildConfig(*mode, *name)
	if err == nil {
		cfg.Spawn.Mode, err = application.ParseSpawnMode(*spawn)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	screen, err := terminal.Open(cfg.Arena)
	if err != nil {
		fmt.Fprintln(os.Stderr, "terminal:", err)
		os.Exit(1)
	}

	opts := []application.Option{
		application.WithRenderer(screen),
		application.WithInputDevice(screen),
		application.WithFrameSource(terminal.DefaultGlyphs()),
	}
	var syncer *netsync.Sync
	if cfg.Networked() {
		syncer = netsync.New(netsync.DefaultConfig(cfg.Role, self), game.NewLink(cfg.Role, *addr, self))
		opts = append(opts, application.WithReplicator(syncer))
	}
	session := application.NewGameSession(cfg, opts...)

	slog.InfoContext(ctx, "starting", "mode", *mode, "addr", *addr, "uid", self.UID, "name", self.Name, "spawn", cfg.Spawn.Mode)
	result, err := game.Play(ctx, session, syncer)
	screen.Close()
	if err != nil {
		slog.ErrorContext(ctx, "game stopped with error", "err", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	switch result.Outcome {
	case application.OutcomeWin:
		fmt.Printf("You win! Score: %d\n", result.Score)
	case application.OutcomeLoss:
		fmt.Printf("Game over. Score: %d\n", result.Score)
	default:
		fmt.Printf("Bye. Score: %d\n", result.Score)
	}
}

func defaultAddr() string {
	if addr := utils.GetEnvDefault("ADDR", ""); addr != "" {
		return addr
	}
	if port := utils.GetEnvDefault("PORT", ""); port != "" {
		return "localhost:" + port
	}
	return application.DefaultAddr
}

func buildConfig(mode, name string) (application.Config, domain.RosterEntry, error) {
	switch mode {
	case "single":
		if name == "" {
			name = "Player1"
		}
		cfg := application.SingleConfig(name)
		return cfg, domain.RosterEntry{UID: cfg.Self, Name: name}, nil
	case "coop":
		cfg := application.CoopConfig()
		return cfg, domain.RosterEntry{UID: cfg.Self}, nil
	case "host", "client":
		uid := uuid.NewString()
		if name == "" {
			name = uid[:8]
		}
		cfg := application.HostConfig(uid, name)
		if mode == "client" {
			cfg = application.ClientConfig(uid, name)
		}
		return cfg, domain.RosterEntry{UID: uid, Name: name}, nil
	}
	return application.Config{}, domain.RosterEntry{}, fmt.Errorf("unknown mode %q", mode)
}

// setupLogger は slog のデフォルトロガーを設定します。
// 画面は端末が占有するので、LOG_FILE が無い場合はログを捨てます。
func setupLogger(path, level string) (func(), error) {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}
	var w io.Writer = io.Discard
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lv})))
	return closeFn, nil
}
