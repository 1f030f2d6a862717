package netsync

import (
	"context"
	"log/slog"
	"time"

	"skirmish/game/domain"
)

const DefaultHeartbeatInterval = time.Second

// heartbeatLoop は heartbeatInterval 間隔でロスター (info) を送信します。
// ホストは同じロスターを自分の受信キューにも積みます。
func (s *Sync) heartbeatLoop(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !s.Connected() {
				continue
			}
			info := &domain.InfoPayload{ClientList: s.roster()}
			if err := s.Publish(domain.EventInfo, info); err != nil {
				slog.WarnContext(ctx, "heartbeat: info dropped", "err", err)
				continue
			}
			if s.cfg.Role == domain.RoleHost {
				if err := s.inbound.Push(domain.Message{Event: domain.EventInfo, Payload: info}); err != nil {
					slog.WarnContext(ctx, "heartbeat: inbound full, roster dropped", "err", err)
				}
			}
			slog.DebugContext(ctx, "heartbeat: info sent", "clients", len(info.ClientList))
		}
	}
}

// roster は自分を先頭にしたロスターを返します。
func (s *Sync) roster() []domain.RosterEntry {
	out := []domain.RosterEntry{s.cfg.Self}
	if s.cfg.Role != domain.RoleHost {
		return out
	}
	for _, peer := range s.link.Roster() {
		if peer.UID == s.cfg.Self.UID {
			continue
		}
		out = append(out, peer)
	}
	return out
}
