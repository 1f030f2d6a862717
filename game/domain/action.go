package domain

// Action はゲームが解釈する入力トークンです。
// ネットワーク上でもこの文字列表現のまま送受信します。
type Action string

const (
	ActionUp    Action = "UP"
	ActionDown  Action = "DOWN"
	ActionLeft  Action = "LEFT"
	ActionRight Action = "RIGHT"
	ActionShoot Action = "SHOOT"
)

// Valid は既知のアクションかどうかを返します。
func (a Action) Valid() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight, ActionShoot:
		return true
	}
	return false
}

// Key は入力デバイス上の物理キーの名前です ("w", "up", "enter" など)。
type Key string

// Facing はエンティティの向きです。
type Facing uint8

const (
	FacingDown Facing = iota
	FacingUp
	FacingLeft
	FacingRight
)

func (f Facing) String() string {
	switch f {
	case FacingUp:
		return "up"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "down"
	}
}
