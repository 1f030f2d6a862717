package game

import (
	"context"

	"golang.org/x/sync/errgroup"

	adapterwebsocket "skirmish/game/adapter/websocket"
	"skirmish/game/application"
	"skirmish/game/domain"
	"skirmish/game/netsync"
)

// NewLink はロールに応じた Link を返します。host は addr で待ち受け、client は addr に接続します。
func NewLink(role domain.Role, addr string, self domain.RosterEntry) netsync.Link {
	if role == domain.RoleHost {
		return adapterwebsocket.NewHostLink(func(hub domain.PeerHub) domain.Server {
			return NewServer(addr, Route(hub))
		})
	}
	return adapterwebsocket.NewClientLink(addr, self)
}

// Play はセッションと同期ループを同じ errgroup で動かし、セッションが終わったら同期も止めます。
// sync が nil の場合はセッションだけを動かします。
func Play(ctx context.Context, session *application.GameSession, sync *netsync.Sync) (application.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var result application.Result
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer cancel()
		r, err := session.Run(ctx)
		result = r
		return err
	})
	if sync != nil {
		eg.Go(func() error {
			return sync.Run(ctx)
		})
	}
	if err := eg.Wait(); err != nil {
		return result, err
	}
	return result, nil
}
