package netsync

import (
	"context"
	"errors"

	"skirmish/game/domain"
)

//go:generate go tool mockgen -destination=./mocks/link_mock.go -package=mocks . Link

var (
	// ErrNotConnected は未接続の状態で送信しようとした場合に返されるエラーです。
	ErrNotConnected = errors.New("netsync: not connected")
	// ErrLinkClosed は切断済みのリンクを使おうとした場合に返されるエラーです。
	ErrLinkClosed = errors.New("netsync: link closed")
)

// Link は Sync が依存する接続の抽象です。
// クライアントではホストへの1本の接続、ホストでは受け入れた全ピアへのハブを表します。
type Link interface {
	// Connect は接続 (ホストでは待ち受け) を確立します。
	Connect(ctx context.Context) error
	// Send はデータを送信します。ホストでは全ピアにブロードキャストします。
	Send(ctx context.Context, data []byte) error
	// Receive は次の受信データを返すまでブロックします。
	Receive(ctx context.Context) ([]byte, error)
	// Disconnect は接続を閉じます。複数回呼んでも安全です。
	Disconnect() error
	// Roster は接続中のピアを返します。クライアントでは空です。
	Roster() []domain.RosterEntry
}
