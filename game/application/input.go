package application

import "skirmish/game/domain"

// DefaultInputCapacity は1プレイヤーあたりの入力バッファ上限です。
const DefaultInputCapacity = 20

// Keymap は物理キーからアクションへの対応表です。
type Keymap map[domain.Key]domain.Action

// KeymapWASD は1P用のキー配置です。
var KeymapWASD = Keymap{
	"w":     domain.ActionUp,
	"s":     domain.ActionDown,
	"a":     domain.ActionLeft,
	"d":     domain.ActionRight,
	"space": domain.ActionShoot,
}

// KeymapArrows は2P用のキー配置です。
var KeymapArrows = Keymap{
	"up":    domain.ActionUp,
	"down":  domain.ActionDown,
	"left":  domain.ActionLeft,
	"right": domain.ActionRight,
	"enter": domain.ActionShoot,
}

// InputBuffer は容量付きのFIFOです。あふれた場合は最も古い入力を捨てます。
// 重複や逆方向の打ち消しは行いません。
type InputBuffer struct {
	actions  []domain.Action
	capacity int
}

func NewInputBuffer(capacity int) *InputBuffer {
	if capacity <= 0 {
		capacity = DefaultInputCapacity
	}
	return &InputBuffer{
		actions:  make([]domain.Action, 0, capacity),
		capacity: capacity,
	}
}

func (b *InputBuffer) Add(a domain.Action) {
	if len(b.actions) == b.capacity {
		copy(b.actions, b.actions[1:])
		b.actions = b.actions[:len(b.actions)-1]
	}
	b.actions = append(b.actions, a)
}

// Snapshot は現在の入力列のコピーを返します。
func (b *InputBuffer) Snapshot() []domain.Action {
	out := make([]domain.Action, len(b.actions))
	copy(out, b.actions)
	return out
}

func (b *InputBuffer) Clear() {
	b.actions = b.actions[:0]
}

func (b *InputBuffer) Len() int {
	return len(b.actions)
}

// InputManager はプレイヤーIDごとの入力バッファとキーマップを管理します。
// シミュレーション goroutine からのみ操作されます。
type InputManager struct {
	capacity int
	keymaps  map[string]Keymap
	buffers  map[string]*InputBuffer
}

func NewInputManager(capacity int) *InputManager {
	if capacity <= 0 {
		capacity = DefaultInputCapacity
	}
	return &InputManager{
		capacity: capacity,
		keymaps:  make(map[string]Keymap),
		buffers:  make(map[string]*InputBuffer),
	}
}

func (m *InputManager) AddKeymap(uid string, keymap Keymap) {
	m.keymaps[uid] = keymap
}

// AddInput は物理キーをキーマップで変換して追加します。未登録のキーは無視します。
func (m *InputManager) AddInput(uid string, key domain.Key) {
	action, ok := m.keymaps[uid][key]
	if !ok {
		return
	}
	m.buffer(uid).Add(action)
}

// AddInputs はネットワーク経由の入力列をそのまま追加します。
func (m *InputManager) AddInputs(uid string, actions []domain.Action) {
	buf := m.buffer(uid)
	for _, a := range actions {
		buf.Add(a)
	}
}

func (m *InputManager) Inputs(uid string) []domain.Action {
	buf, ok := m.buffers[uid]
	if !ok || buf.Len() == 0 {
		return []domain.Action{}
	}
	return buf.Snapshot()
}

func (m *InputManager) ClearInputs(uid string) {
	if buf, ok := m.buffers[uid]; ok {
		buf.Clear()
	}
}

func (m *InputManager) buffer(uid string) *InputBuffer {
	buf, ok := m.buffers[uid]
	if !ok {
		buf = NewInputBuffer(m.capacity)
		m.buffers[uid] = buf
	}
	return buf
}
