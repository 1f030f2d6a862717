package handler

import (
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"skirmish/game/adapter/websocket"
	"skirmish/game/domain"
)

type AcceptHandler struct {
	hub domain.PeerHub
}

func NewAcceptHandler(hub domain.PeerHub) *AcceptHandler {
	return &AcceptHandler{hub: hub}
}

func (h *AcceptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	role, err := domain.ParseRole(r.Header.Get(domain.HeaderRole))
	if err != nil || role != domain.RoleClient {
		http.Error(w, "role header must be client", http.StatusBadRequest)
		return
	}
	peer := domain.RosterEntry{
		UID:  r.Header.Get(domain.HeaderUID),
		Name: r.Header.Get(domain.HeaderName),
	}
	if peer.UID == "" {
		peer.UID = uuid.NewString()
	}
	if peer.Name == "" {
		peer.Name = peer.UID
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // 開発用: Origin チェックをスキップ
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to accept", "err", err)
		return
	}
	conn.SetReadLimit(1 << 20)

	session := domain.NewSession(peer, nil)
	transport := adapterwebsocket.NewTransportFrom(conn)
	connection := domain.NewConnection(session.ID(), transport)
	endpoint, err := domain.NewPeerEndpoint(ctx, session, connection, h.hub)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create peer endpoint", "err", err)
		connection.Close()
		return
	}
	if err := h.hub.Join(ctx, endpoint); err != nil {
		slog.WarnContext(ctx, "rejecting peer", "uid", peer.UID, "err", err)
		_ = transport.Close(int32(websocket.StatusPolicyViolation), err.Error())
		endpoint.ForceClose()
		return
	}
	defer h.hub.Leave(ctx, endpoint)

	slog.DebugContext(ctx, "accepted new connection", "uid", session.ID())
	if err := endpoint.Run(); err != nil {
		slog.ErrorContext(ctx, "failed to run peer endpoint", "err", err)
	}
}
