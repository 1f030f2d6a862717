package terminal

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"skirmish/game/domain"
)

// DefaultHoldWindow は最後のキー入力から押下中とみなす時間です。
// 端末にはキーを離したイベントが無いため、オートリピートの間隔より長めに取ります。
const DefaultHoldWindow = 120 * time.Millisecond

var (
	_ domain.Renderer    = (*Screen)(nil)
	_ domain.InputDevice = (*Screen)(nil)
)

// Screen は tcell の画面を Renderer と InputDevice として使うアダプタです。
// アリーナ座標は画面のセル数に合わせて縮小して描画します。
type Screen struct {
	screen tcell.Screen
	arena  domain.Rect
	clock  domain.Clock
	hold   time.Duration

	events chan tcell.Event
	done   chan struct{}

	pressed map[domain.Key]time.Time
	cols    int
	rows    int
}

type Option func(*Screen)

func WithClock(c domain.Clock) Option {
	return func(s *Screen) { s.clock = c }
}

func WithHoldWindow(d time.Duration) Option {
	return func(s *Screen) { s.hold = d }
}

// Open は端末を初期化して Screen を返します。終了時は Close を呼んでください。
func Open(arena domain.Rect, opts ...Option) (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	s := NewWithScreen(screen, arena, opts...)
	s.Start()
	return s, nil
}

// NewWithScreen は初期化済みの tcell.Screen から Screen を作ります。
func NewWithScreen(screen tcell.Screen, arena domain.Rect, opts ...Option) *Screen {
	s := &Screen{
		screen:  screen,
		arena:   arena,
		clock:   domain.SystemClock{},
		hold:    DefaultHoldWindow,
		events:  make(chan tcell.Event, 64),
		done:    make(chan struct{}),
		pressed: make(map[domain.Key]time.Time),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.cols, s.rows = screen.Size()
	return s
}

// Start はイベントを受け取るゴルーチンを起動します。
func (s *Screen) Start() {
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case s.events <- ev:
			case <-s.done:
				return
			}
		}
	}()
}

func (s *Screen) Close() {
	select {
	case <-s.done:
		return
	default:
	}
	close(s.done)
	s.screen.Fini()
}

// PollEvents は溜まっている端末イベントを処理し、ゲームに関係するものを返します。
func (s *Screen) PollEvents() []domain.DeviceEvent {
	var out []domain.DeviceEvent
	for {
		select {
		case ev := <-s.events:
			if de := s.handle(ev); de.Kind != domain.DeviceEventNone {
				out = append(out, de)
			}
		default:
			return out
		}
	}
}

func (s *Screen) handle(ev tcell.Event) domain.DeviceEvent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.screen.Sync()
		s.cols, s.rows = ev.Size()
		return domain.DeviceEvent{Kind: domain.DeviceEventResize}
	case *tcell.EventKey:
		if isQuit(ev.Key(), ev.Rune()) {
			return domain.DeviceEvent{Kind: domain.DeviceEventQuit}
		}
		if key, ok := keyName(ev.Key(), ev.Rune()); ok {
			s.press(key)
		}
	}
	return domain.DeviceEvent{}
}

func (s *Screen) press(key domain.Key) {
	s.pressed[key] = s.clock.Now()
}

// Pressed は保持時間内に入力があったキーを返します。
func (s *Screen) Pressed() []domain.Key {
	now := s.clock.Now()
	var out []domain.Key
	for key, at := range s.pressed {
		if now.Sub(at) > s.hold {
			delete(s.pressed, key)
			continue
		}
		out = append(out, key)
	}
	return out
}

func (s *Screen) Clear() {
	s.screen.Clear()
}

func (s *Screen) Present() {
	s.screen.Show()
}

// DrawEntity は dst が覆うセルをグリフで塗ります。フレームが無ければ色付きのブロックで塗ります。
func (s *Screen) DrawEntity(v domain.Visual, dst domain.Rect) {
	c0, r0, c1, r1 := s.cells(dst)
	style := styleOf(v.Fallback)
	ch := '█'
	if g, ok := v.Frame.(Glyph); ok {
		ch = rune(g)
	} else if c1-c0 == 1 && r1-r0 == 1 {
		ch = '•'
	}
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			s.screen.SetContent(col, row, ch, nil, style)
		}
	}
}

func (s *Screen) DrawHealthBar(dst domain.Rect, ratio float64) {
	c0, r0, c1, _ := s.cells(dst)
	width := c1 - c0
	filled := int(math.Round(clampRatio(ratio) * float64(width)))
	green := styleOf(domain.ColorGreen)
	red := styleOf(domain.ColorRed)
	for i := 0; i < width; i++ {
		style := red
		if i < filled {
			style = green
		}
		s.screen.SetContent(c0+i, r0, '━', nil, style)
	}
}

func (s *Screen) DrawText(x, y float64, text string, c domain.Color) {
	col, row := s.cell(x, y)
	style := styleOf(c)
	for _, r := range text {
		if col >= s.cols {
			return
		}
		if col >= 0 && row >= 0 && row < s.rows {
			s.screen.SetContent(col, row, r, nil, style)
		}
		col++
	}
}

func (s *Screen) cell(x, y float64) (int, int) {
	if s.arena.W <= 0 || s.arena.H <= 0 {
		return int(x), int(y)
	}
	col := int(math.Floor((x - s.arena.X) / s.arena.W * float64(s.cols)))
	row := int(math.Floor((y - s.arena.Y) / s.arena.H * float64(s.rows)))
	return col, row
}

// cells は dst が覆うセル範囲 [c0,c1)×[r0,r1) を返します。最低1セルは確保します。
func (s *Screen) cells(dst domain.Rect) (c0, r0, c1, r1 int) {
	c0, r0 = s.cell(dst.X, dst.Y)
	c1, r1 = s.cell(dst.X+dst.W, dst.Y+dst.H)
	if c1 <= c0 {
		c1 = c0 + 1
	}
	if r1 <= r0 {
		r1 = r0 + 1
	}
	return c0, r0, c1, r1
}

func styleOf(c domain.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

func clampRatio(r float64) float64 {
	return math.Max(0, math.Min(1, r))
}
