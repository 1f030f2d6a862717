package adapterwebsocket

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"skirmish/game/domain"
	"skirmish/game/netsync"
)

const (
	defaultInboxSize    = 1024
	defaultShutdownWait = 2 * time.Second
)

var (
	_ netsync.Link   = (*HostLink)(nil)
	_ domain.PeerHub = (*HostLink)(nil)
)

// HostLink は受け入れた全ピアをまとめるハブです。
// Send は全ピアへのブロードキャスト、Receive は全ピアからの受信をまとめたものです。
type HostLink struct {
	newServer func(hub domain.PeerHub) domain.Server

	mu     sync.RWMutex
	server domain.Server
	done   chan struct{}
	peers  map[string]*domain.PeerEndpoint
	order  []string

	inbox chan []byte
}

// NewHostLink は newServer で待ち受けサーバーを作る HostLink を生成します。
func NewHostLink(newServer func(hub domain.PeerHub) domain.Server) *HostLink {
	return &HostLink{
		newServer: newServer,
		peers:     make(map[string]*domain.PeerEndpoint),
		inbox:     make(chan []byte, defaultInboxSize),
	}
}

// Addr は待ち受け中のアドレスを返します。
func (h *HostLink) Addr() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.server == nil {
		return ""
	}
	return h.server.Addr()
}

// Connect は待ち受けを開始します。既に待ち受け中なら何もしません。
func (h *HostLink) Connect(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.server != nil {
		return nil
	}
	srv := h.newServer(h)
	if err := srv.Listen(); err != nil {
		return err
	}
	h.server = srv
	h.done = make(chan struct{})
	go func() {
		if err := srv.Serve(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "host server error", "err", err)
		}
	}()
	slog.InfoContext(ctx, "host listening", "addr", srv.Addr())
	return nil
}

// Send は接続中の全ピアに data を送ります。書き込みキューが詰まっているピアには送りません。
func (h *HostLink) Send(ctx context.Context, data []byte) error {
	h.mu.RLock()
	if h.server == nil {
		h.mu.RUnlock()
		return netsync.ErrNotConnected
	}
	peers := make([]*domain.PeerEndpoint, 0, len(h.peers))
	for _, pe := range h.peers {
		peers = append(peers, pe)
	}
	h.mu.RUnlock()

	for _, pe := range peers {
		if err := pe.Send(data); err != nil {
			slog.DebugContext(ctx, "broadcast skipped peer", "uid", pe.Session().ID(), "err", err)
		}
	}
	return nil
}

// Receive はいずれかのピアから届いたデータを1件返します。Disconnect されると ErrLinkClosed を返します。
func (h *HostLink) Receive(ctx context.Context) ([]byte, error) {
	h.mu.RLock()
	done := h.done
	h.mu.RUnlock()
	if done == nil {
		return nil, netsync.ErrNotConnected
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-done:
		return nil, netsync.ErrLinkClosed
	case data := <-h.inbox:
		return data, nil
	}
}

// Disconnect は待ち受けを止め、全ピアを切断します。
func (h *HostLink) Disconnect() error {
	h.mu.Lock()
	srv := h.server
	h.server = nil
	if h.done != nil {
		close(h.done)
		h.done = nil
	}
	peers := h.peers
	h.peers = make(map[string]*domain.PeerEndpoint)
	h.order = nil
	h.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), defaultShutdownWait)
	defer cancel()
	for _, pe := range peers {
		pe.Close(ctx)
		pe.ForceClose()
	}
	if srv == nil {
		return nil
	}
	if err := srv.Shutdown(ctx); err != nil {
		return srv.Close()
	}
	return nil
}

// Roster は接続順にピアを返します。
func (h *HostLink) Roster() []domain.RosterEntry {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]domain.RosterEntry, 0, len(h.order))
	for _, uid := range h.order {
		out = append(out, h.peers[uid].Session().Peer)
	}
	return out
}

// Join は受け入れたピアを登録します。同じ UID のピアが既にいる場合は ErrDuplicatePeer を返します。
func (h *HostLink) Join(ctx context.Context, pe *domain.PeerEndpoint) error {
	uid := pe.Session().ID()
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.server == nil {
		return netsync.ErrLinkClosed
	}
	if _, ok := h.peers[uid]; ok {
		return domain.ErrDuplicatePeer
	}
	h.peers[uid] = pe
	h.order = append(h.order, uid)
	slog.InfoContext(ctx, "peer joined", "uid", uid, "name", pe.Session().Peer.Name, "peers", len(h.peers))
	return nil
}

func (h *HostLink) Leave(ctx context.Context, pe *domain.PeerEndpoint) {
	uid := pe.Session().ID()
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.peers[uid] != pe {
		return
	}
	delete(h.peers, uid)
	for i, id := range h.order {
		if id == uid {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
	slog.InfoContext(ctx, "peer left", "uid", uid, "peers", len(h.peers))
}

// Dispatch はピアからの受信データを受信キューに積みます。キューが満杯なら捨てます。
func (h *HostLink) Dispatch(ctx context.Context, from string, data []byte) error {
	select {
	case h.inbox <- data:
		return nil
	default:
		return domain.ErrBackpressure
	}
}
