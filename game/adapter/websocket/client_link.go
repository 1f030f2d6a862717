package adapterwebsocket

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"

	"skirmish/game/domain"
	"skirmish/game/netsync"
)

const defaultDialTimeout = 5 * time.Second

var _ netsync.Link = (*ClientLink)(nil)

// ClientLink はホストへの1本の WebSocket 接続です。
type ClientLink struct {
	url  string
	self domain.RosterEntry

	mu        sync.RWMutex
	transport domain.Transport
}

// NewClientLink は addr (host:port) のホストに接続する ClientLink を生成します。
func NewClientLink(addr string, self domain.RosterEntry) *ClientLink {
	return &ClientLink{
		url:  fmt.Sprintf("ws://%s/ws", addr),
		self: self,
	}
}

// Connect はロール・UID・名前をヘッダーに付けてダイヤルします。
func (l *ClientLink) Connect(ctx context.Context) error {
	dialCtx, cancel := context.WithTimeout(ctx, defaultDialTimeout)
	defer cancel()

	header := http.Header{}
	header.Set(domain.HeaderRole, domain.RoleClient.String())
	header.Set(domain.HeaderUID, l.self.UID)
	header.Set(domain.HeaderName, l.self.Name)

	conn, _, err := websocket.Dial(dialCtx, l.url, &websocket.DialOptions{HTTPHeader: header})
	if err != nil {
		return fmt.Errorf("dial %s: %w", l.url, err)
	}
	conn.SetReadLimit(1 << 20)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.transport != nil {
		_ = l.transport.Close(int32(websocket.StatusNormalClosure), "reconnect")
	}
	l.transport = NewTransportFrom(conn)
	return nil
}

func (l *ClientLink) current() (domain.Transport, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.transport == nil {
		return nil, netsync.ErrNotConnected
	}
	return l.transport, nil
}

func (l *ClientLink) Send(ctx context.Context, data []byte) error {
	t, err := l.current()
	if err != nil {
		return err
	}
	return t.Write(ctx, data)
}

func (l *ClientLink) Receive(ctx context.Context) ([]byte, error) {
	t, err := l.current()
	if err != nil {
		return nil, err
	}
	return t.Read(ctx)
}

func (l *ClientLink) Disconnect() error {
	l.mu.Lock()
	t := l.transport
	l.transport = nil
	l.mu.Unlock()
	if t == nil {
		return nil
	}
	return t.Close(int32(websocket.StatusNormalClosure), "")
}

// Roster はクライアントでは常に空です。ロスターはホストからの info で届きます。
func (l *ClientLink) Roster() []domain.RosterEntry {
	return nil
}
