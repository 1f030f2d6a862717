package domain

//go:generate go tool mockgen -destination=./mocks/render_mock.go -package=mocks . Renderer,InputDevice,FrameSource

// Color は RGB カラーです。
type Color struct {
	R, G, B uint8
}

var (
	ColorWhite = Color{R: 255, G: 255, B: 255}
	ColorRed   = Color{R: 255}
	ColorGreen = Color{G: 255}
	ColorBlue  = Color{B: 255}
	ColorGray  = Color{R: 128, G: 128, B: 128}
)

// Frame はアセット側が用意する描画可能な1コマです。中身は描画コラボレータだけが解釈します。
type Frame any

// AnimationKey はアニメーションテーブルの検索キー (向き × アクション) です。
type AnimationKey struct {
	Facing Facing
	Action string
}

// FallbackAnimationKey はキーが見つからない場合に使うキーです。
var FallbackAnimationKey = AnimationKey{Facing: FacingDown, Action: "walk1"}

// FrameSource はスプライト名とキーからフレーム列を返すアセットコラボレータです。
// キーが存在しない場合は空スライスを返します。
type FrameSource interface {
	Frames(sprite string, key AnimationKey) []Frame
}

// Visual は1エンティティの描画内容です。Frame が nil のときは Fallback 色の矩形で描画します。
type Visual struct {
	Frame    Frame
	Fallback Color
}

// Renderer は描画コラボレータです。コアには何も返しません。
type Renderer interface {
	Clear()
	DrawEntity(v Visual, dst Rect)
	DrawHealthBar(dst Rect, ratio float64)
	DrawText(x, y float64, text string, c Color)
	Present()
}

// DeviceEventKind は入力デバイスのイベント種別です。
type DeviceEventKind uint8

const (
	DeviceEventNone DeviceEventKind = iota
	DeviceEventQuit
	DeviceEventResize
)

type DeviceEvent struct {
	Kind DeviceEventKind
}

// InputDevice は入力デバイスコラボレータです。
type InputDevice interface {
	// PollEvents は前回呼び出し以降のイベントを返します。ブロックしません。
	PollEvents() []DeviceEvent
	// Pressed は現在押されている物理キーを返します。
	Pressed() []Key
}
