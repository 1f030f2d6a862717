package netsync

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"skirmish/game/domain"
	"skirmish/internal/queue"
)

const DefaultSendInterval = 15 * time.Millisecond

// Config は Sync の設定です。
type Config struct {
	Role              domain.Role
	Self              domain.RosterEntry
	HeartbeatInterval time.Duration
	SendInterval      time.Duration
	QueueSize         int
	Reconnect         ReconnectPolicy
	Clock             domain.Clock
}

func DefaultConfig(role domain.Role, self domain.RosterEntry) Config {
	return Config{
		Role:              role,
		Self:              self,
		HeartbeatInterval: DefaultHeartbeatInterval,
		SendInterval:      DefaultSendInterval,
		QueueSize:         1024,
		Reconnect:         DefaultReconnectPolicy(),
		Clock:             domain.SystemClock{},
	}
}

type outboundEvent struct {
	event   domain.EventName
	payload any
}

// Sync はゲームセッションとネットワークの間をキューでつなぎます。
// ゲームセッションは Publish と Drain だけを使い、ネットワークでブロックしません。
type Sync struct {
	cfg  Config
	link Link

	state atomic.Uint32
	seq   atomic.Uint32

	outbound *queue.Queue[outboundEvent]
	inbound  *queue.Queue[domain.Message]
}

func New(cfg Config, link Link) *Sync {
	def := DefaultConfig(cfg.Role, cfg.Self)
	if cfg.HeartbeatInterval <= 0 {
		cfg.HeartbeatInterval = def.HeartbeatInterval
	}
	if cfg.SendInterval <= 0 {
		cfg.SendInterval = def.SendInterval
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = def.QueueSize
	}
	if cfg.Reconnect.MaxTries == 0 {
		cfg.Reconnect = def.Reconnect
	}
	if cfg.Clock == nil {
		cfg.Clock = def.Clock
	}
	return &Sync{
		cfg:  cfg,
		link: link,
		outbound: queue.New[outboundEvent](queue.Config{
			Name:         "outbound",
			Size:         cfg.QueueSize,
			PollInterval: cfg.SendInterval,
		}),
		inbound: queue.New[domain.Message](queue.Config{
			Name: "inbound",
			Size: cfg.QueueSize,
		}),
	}
}

func (s *Sync) State() ConnState {
	return ConnState(s.state.Load())
}

func (s *Sync) Connected() bool {
	return s.State() == StateConnected
}

func (s *Sync) setState(ctx context.Context, next ConnState) {
	prev := ConnState(s.state.Swap(uint32(next)))
	if prev != next {
		slog.InfoContext(ctx, "netsync: state changed", "from", prev.String(), "to", next.String())
	}
}

// Publish はイベントを送信キューに積みます。未接続の場合は ErrNotConnected を返します。
func (s *Sync) Publish(event domain.EventName, payload any) error {
	if !s.Connected() {
		return ErrNotConnected
	}
	if err := s.outbound.Push(outboundEvent{event: event, payload: payload}); err != nil {
		return fmt.Errorf("publish %s: %w", event, err)
	}
	return nil
}

// Drain は受信済みのイベントをすべて返します。
func (s *Sync) Drain() []domain.Message {
	return s.inbound.Drain()
}

// Run は接続・受信ループ、heartbeat ループ、送信ループを起動し、ctx がキャンセルされるまでブロックします。
func (s *Sync) Run(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return s.connectionLoop(ctx)
	})
	eg.Go(func() error {
		s.heartbeatLoop(ctx)
		return nil
	})
	eg.Go(func() error {
		s.outbound.Consume(ctx, s.send)
		return nil
	})
	err := eg.Wait()

	s.outbound.Stop()
	s.inbound.Stop()
	s.setState(context.WithoutCancel(ctx), StateDisconnected)
	_ = s.link.Disconnect()
	return err
}

// connectionLoop は接続を確立して受信し続けます。接続が切れたら再接続の試行回数をリセットしてやり直します。
// 試行回数を使い切った場合は ctx がキャンセルされるまで disconnected のまま待ちます。
func (s *Sync) connectionLoop(ctx context.Context) error {
	for {
		s.setState(ctx, StateConnecting)
		if err := s.connect(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			s.setState(ctx, StateDisconnected)
			slog.ErrorContext(ctx, "netsync: giving up reconnecting",
				"maxTries", s.cfg.Reconnect.MaxTries,
				"minInterval", s.cfg.Reconnect.MinInterval(),
				"err", err,
			)
			<-ctx.Done()
			return nil
		}
		s.setState(ctx, StateConnected)

		err := s.receiveLoop(ctx)
		s.setState(ctx, StateDisconnected)
		_ = s.link.Disconnect()
		if ctx.Err() != nil {
			return nil
		}
		slog.WarnContext(ctx, "netsync: connection lost", "err", err)
	}
}

func (s *Sync) receiveLoop(ctx context.Context) error {
	for {
		data, err := s.link.Receive(ctx)
		if err != nil {
			return err
		}
		msg, err := domain.DecodeMessage(data)
		if err != nil {
			slog.WarnContext(ctx, "netsync: dropping undecodable message", "len", len(data), "err", err)
			continue
		}
		if err := s.inbound.Push(msg); err != nil {
			slog.WarnContext(ctx, "netsync: inbound full, message dropped",
				"event", msg.Event,
				"pending", s.inbound.Len(),
				"err", err,
			)
		}
	}
}

// send は送信キューから取り出したイベントをエンコードして Link に渡します。
func (s *Sync) send(ctx context.Context, ev outboundEvent) error {
	if !s.Connected() {
		slog.DebugContext(ctx, "netsync: not connected, event dropped", "event", ev.event)
		return nil
	}
	seq := uint16(s.seq.Add(1))
	data, err := domain.EncodeMessage(ev.event, seq, s.cfg.Clock.Now(), ev.payload)
	if err != nil {
		return err
	}
	if err := s.link.Send(ctx, data); err != nil {
		return fmt.Errorf("send %s: %w", ev.event, err)
	}
	return nil
}
