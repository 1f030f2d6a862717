package domain

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrBackpressure は書き込みチャネルが満杯の場合に返されるエラーです。
	ErrBackpressure = errors.New("write channel is full, apply backpressure")
	// ErrInitializationFailed はピアエンドポイントの初期化に失敗した場合に返されるエラーです。
	ErrInitializationFailed = errors.New("failed to initialize peer endpoint")
	// ErrEndpointClosed はクローズ済みのエンドポイントへ送信した場合に返されるエラーです。
	ErrEndpointClosed = errors.New("peer endpoint closed")
)

const DefaultIdleTimeout = 30 * time.Second

type peerEventKind uint8

const (
	evUnknown    peerEventKind = iota
	evReadError                // 読み込み失敗
	evWriteError               // 書き込み失敗
	evIdle                     // 受信が途絶えた
	evClose                    // 明示的な切断要求
)

// peerEvent は ownerLoop に届く制御イベントです。
type peerEvent struct {
	kind   peerEventKind
	err    error
	reason IdleReason
}

// PeerEndpoint はホストが受け入れた1接続の読み書きと死活監視を行います。
type PeerEndpoint struct {
	ctx    context.Context
	cancel context.CancelFunc

	session    *Session
	connection *Connection
	dispatcher Dispatcher

	ctrlCh  chan peerEvent // 制御用チャネル
	writeCh chan []byte    // 書き込み用チャネル

	idleTimeout   time.Duration
	checkInterval time.Duration

	// lifecycle
	closed atomic.Bool
}

func NewPeerEndpoint(ctx context.Context, session *Session, connection *Connection, dispatcher Dispatcher) (*PeerEndpoint, error) {
	if session == nil || connection == nil || dispatcher == nil {
		return nil, ErrInitializationFailed
	}
	ctx, cancel := context.WithCancel(ctx)
	return &PeerEndpoint{
		ctx:           ctx,
		cancel:        cancel,
		session:       session,
		connection:    connection,
		dispatcher:    dispatcher,
		ctrlCh:        make(chan peerEvent, 16),
		writeCh:       make(chan []byte, 1024),
		idleTimeout:   DefaultIdleTimeout,
		checkInterval: time.Second,
	}, nil
}

// WithIdleTimeout は無通信で切断するまでの時間を差し替えます。
func (pe *PeerEndpoint) WithIdleTimeout(timeout, checkInterval time.Duration) *PeerEndpoint {
	pe.idleTimeout = timeout
	if checkInterval > 0 {
		pe.checkInterval = checkInterval
	}
	return pe
}

func (pe *PeerEndpoint) Session() *Session {
	return pe.session
}

// Run は読み込み・書き込み・監視ループを起動し、接続が閉じるまでブロックします。
func (pe *PeerEndpoint) Run() error {
	eg, ctx := errgroup.WithContext(pe.ctx)
	eg.Go(func() error {
		pe.ownerLoop(ctx)
		return nil
	})
	eg.Go(func() error {
		pe.readLoop(ctx)
		return nil
	})
	eg.Go(func() error {
		pe.writeLoop(ctx)
		return nil
	})
	err := eg.Wait()
	pe.close()
	return err
}

func (pe *PeerEndpoint) Send(data []byte) error {
	if pe.closed.Load() {
		return ErrEndpointClosed
	}
	select {
	case pe.writeCh <- data:
		return nil
	default:
		return ErrBackpressure
	}
}

// Close は ownerLoop 経由で切断を要求します。ループが止まっている場合は ctx の期限まで待ちます。
func (pe *PeerEndpoint) Close(ctx context.Context) {
	if pe.closed.Load() {
		return
	}
	pe.sendCtrlEvent(ctx, peerEvent{kind: evClose})
}

func (pe *PeerEndpoint) ForceClose() {
	pe.close()
}

// ownerLoop は論理セッションの状態を監視し、必要に応じて接続の管理を行います。
func (pe *PeerEndpoint) ownerLoop(ctx context.Context) {
	ticker := time.NewTicker(pe.checkInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-pe.ctrlCh:
			pe.handleControlEvent(ctx, ev)
		case <-ticker.C:
			if ok, reason := pe.session.IsIdle(pe.idleTimeout); ok && reason.Has(IdleRead) {
				pe.handleControlEvent(ctx, peerEvent{kind: evIdle, reason: reason})
			}
		}
	}
}

func (pe *PeerEndpoint) readLoop(ctx context.Context) {
	for {
		data, err := pe.connection.Read(ctx)
		if err != nil {
			pe.sendCtrlEvent(ctx, peerEvent{kind: evReadError, err: err})
			return
		}
		pe.session.TouchRead()
		if err := pe.dispatcher.Dispatch(ctx, pe.session.ID(), data); err != nil {
			slog.WarnContext(ctx, "peer dispatch failed", "uid", pe.session.ID(), "err", err)
		}
	}
}

func (pe *PeerEndpoint) writeLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case data := <-pe.writeCh:
			if err := pe.connection.Write(ctx, data); err != nil {
				pe.sendCtrlEvent(ctx, peerEvent{kind: evWriteError, err: err})
				return
			}
			pe.session.TouchWrite()
		}
	}
}

func (pe *PeerEndpoint) close() {
	if !pe.closed.CompareAndSwap(false, true) {
		return
	}
	pe.cancel()
	pe.session.Close()
	pe.connection.Close()
}

// handleControlEvent は制御チャネルからのイベントを処理する唯一の関数です。
// 読み書きのエラーは回復できないため、いずれも切断として扱います。
func (pe *PeerEndpoint) handleControlEvent(ctx context.Context, ev peerEvent) {
	switch ev.kind {
	case evClose:
		if ev.err != nil {
			slog.InfoContext(ctx, "closing peer", "uid", pe.session.ID(), "reason", ev.err)
		}
		pe.close()
	case evIdle:
		slog.InfoContext(ctx, "closing idle peer", "uid", pe.session.ID(), "idle", ev.reason.String())
		pe.close()
	case evReadError, evWriteError:
		slog.DebugContext(ctx, "peer i/o error", "uid", pe.session.ID(), "err", ev.err)
		pe.close()
	default:
		slog.WarnContext(ctx, "unknown peer event kind", "kind", ev.kind)
	}
}

func (pe *PeerEndpoint) sendCtrlEvent(ctx context.Context, ev peerEvent) {
	select {
	case pe.ctrlCh <- ev:
	case <-ctx.Done():
	}
}
