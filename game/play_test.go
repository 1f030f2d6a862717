package game_test

import (
	"context"
	"testing"
	"time"

	"skirmish/game"
	"skirmish/game/application"
	"skirmish/game/domain"
	"skirmish/game/netsync"
)

func TestPlay_LocalSessionQuitsOnCancel(t *testing.T) {
	cfg := application.SingleConfig("solo")
	cfg.InitialSpawn = false
	session := application.NewGameSession(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	result, err := game.Play(ctx, session, nil)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if result.Outcome != application.OutcomeQuit {
		t.Errorf("outcome = %v, want quit", result.Outcome)
	}
}

func TestPlay_ClientConnectsToHost(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	hostCfg := application.HostConfig("host-1", "hana")
	hostCfg.InitialSpawn = false
	hostSelf := domain.RosterEntry{UID: "host-1", Name: "hana"}
	hostLink := game.NewLink(domain.RoleHost, "127.0.0.1:0", hostSelf)
	hostSync := netsync.New(netsync.DefaultConfig(domain.RoleHost, hostSelf), hostLink)
	host := application.NewGameSession(hostCfg, application.WithReplicator(hostSync))

	hostCtx, stopHost := context.WithCancel(ctx)
	hostDone := make(chan struct{})
	go func() {
		defer close(hostDone)
		_, _ = game.Play(hostCtx, host, hostSync)
	}()
	defer func() {
		stopHost()
		<-hostDone
	}()

	// ポート 0 でバインドしているので実アドレスはホストの Link から取る
	addr := waitHostAddr(t, hostLink)

	clientCfg := application.BotClientConfig("bot-1", "bot")
	clientSelf := domain.RosterEntry{UID: "bot-1", Name: "bot"}
	clientSync := netsync.New(netsync.DefaultConfig(domain.RoleClient, clientSelf), game.NewLink(domain.RoleClient, addr, clientSelf))
	client := application.NewGameSession(clientCfg, application.WithReplicator(clientSync))

	clientCtx, stopClient := context.WithCancel(ctx)
	clientDone := make(chan struct{})
	go func() {
		defer close(clientDone)
		_, _ = game.Play(clientCtx, client, clientSync)
	}()
	defer func() {
		stopClient()
		<-clientDone
	}()

	deadline := time.Now().Add(3 * time.Second)
	for !clientSync.Connected() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if !clientSync.Connected() {
		t.Fatal("client never connected")
	}
}

type addrLink interface {
	Addr() string
}

func waitHostAddr(t *testing.T, l netsync.Link) string {
	t.Helper()
	link, ok := l.(addrLink)
	if !ok {
		t.Fatal("host link does not expose its address")
	}
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if addr := link.Addr(); addr != "" {
			return addr
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("host never started listening")
	return ""
}
