package domain

import (
	"context"
	"errors"
)

//go:generate go tool mockgen -destination=./mocks/hub_mock.go -package=mocks . PeerHub

// ErrDuplicatePeer は同じ UID のピアが既に接続している場合に返されるエラーです。
var ErrDuplicatePeer = errors.New("peer already connected")

// PeerHub はホストが受け入れたピアの集合です。受信データは Dispatcher として受け取ります。
type PeerHub interface {
	Dispatcher
	Join(ctx context.Context, endpoint *PeerEndpoint) error
	Leave(ctx context.Context, endpoint *PeerEndpoint)
	// Roster は接続中のピアを接続順に返します。
	Roster() []RosterEntry
}

// Server はホストの待ち受けサーバーです。
type Server interface {
	// Listen はアドレスをバインドします。バインドに失敗した場合はエラーを返します。
	Listen() error
	// Serve は Listen 済みのリスナーで接続を受け付け、閉じられるまでブロックします。
	Serve() error
	Shutdown(ctx context.Context) error
	Close() error
	Addr() string
}
