package application

import (
	"time"

	"skirmish/game/domain"
)

const (
	ArenaWidth      = 800.0
	ArenaHeight     = 600.0
	DefaultTickRate = 50
	DefaultWinScore = 200
	DefaultAddr     = "localhost:3333"
)

// Participant はセッションに最初から参加するプレイヤー1人分の設定です。
type Participant struct {
	UID    string
	Name   string
	Keymap Keymap // ローカルのキー入力を使わない場合は nil
	Spawn  domain.Vec2
	Color  domain.Color
	Bot    bool // true のとき RuleBotController が入力を生成する
}

// Config はゲームセッションの設定です。
// ロールによる振る舞いの違いはこの設定と Replicator の有無だけで表します。
type Config struct {
	Role         domain.Role
	Self         string // ネットワーク上での自分の UID
	Participants []Participant
	Arena        domain.Rect
	TickRate     int
	InputCap     int
	WinScore     int
	Spawn        SpawnConfig
	// InitialSpawn が true のとき、開始時に敵を1体出現させる
	InitialSpawn bool
	// RemoteSpawn はネットワーク経由で新しく参加したプレイヤーの初期位置です。
	RemoteSpawn domain.Vec2
	RemoteColor domain.Color
}

// DefaultConfig はローカル1人プレイの既定値です。参加者は含みません。
func DefaultConfig() Config {
	return Config{
		Role:        domain.RoleLocal,
		Arena:       domain.Rect{W: ArenaWidth, H: ArenaHeight},
		TickRate:    DefaultTickRate,
		InputCap:    DefaultInputCapacity,
		WinScore:    DefaultWinScore,
		Spawn:       DefaultSpawnConfig(),
		RemoteSpawn: domain.Vec2{X: 20, Y: 20},
		RemoteColor: domain.ColorBlue,
	}
}

// TickInterval は1tickの長さを返します。
func (c Config) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// Networked はネットワーク同期を行うかを返します。
func (c Config) Networked() bool {
	return c.Role != domain.RoleLocal
}

// SingleConfig は WASD で操作する1人プレイの設定です。
func SingleConfig(name string) Config {
	cfg := DefaultConfig()
	cfg.Self = "Player1"
	cfg.InitialSpawn = true
	cfg.Participants = []Participant{
		{UID: "Player1", Name: name, Keymap: KeymapWASD, Spawn: domain.Vec2{X: 20, Y: 20}, Color: domain.ColorGreen},
	}
	return cfg
}

// CoopConfig は1台のキーボードで2人が遊ぶ設定です。
func CoopConfig() Config {
	cfg := DefaultConfig()
	cfg.Self = "Player1"
	cfg.InitialSpawn = true
	cfg.Participants = []Participant{
		{UID: "Player1", Name: "Player1", Keymap: KeymapWASD, Spawn: domain.Vec2{X: 20, Y: 20}, Color: domain.ColorGreen},
		{UID: "Player2", Name: "Player2", Keymap: KeymapArrows, Spawn: domain.Vec2{X: 100, Y: 20}, Color: domain.ColorBlue},
	}
	return cfg
}

// HostConfig は状態を配信する側の設定です。
func HostConfig(uid, name string) Config {
	cfg := DefaultConfig()
	cfg.Role = domain.RoleHost
	cfg.Self = uid
	cfg.InitialSpawn = true
	cfg.Participants = []Participant{
		{UID: uid, Name: name, Keymap: KeymapWASD, Spawn: domain.Vec2{X: 20, Y: 20}, Color: domain.ColorGreen},
	}
	return cfg
}

// ClientConfig はホストに接続する側の設定です。
// クライアントは敵を出現させず、受信したスナップショットだけを描画します。
func ClientConfig(uid, name string) Config {
	cfg := DefaultConfig()
	cfg.Role = domain.RoleClient
	cfg.Self = uid
	cfg.Participants = []Participant{
		{UID: uid, Name: name, Keymap: KeymapWASD, Spawn: domain.Vec2{X: 100, Y: 20}, Color: domain.ColorBlue},
	}
	return cfg
}

// BotClientConfig は RuleBotController が操作するクライアントの設定です。
func BotClientConfig(uid, name string) Config {
	cfg := ClientConfig(uid, name)
	cfg.Participants[0].Keymap = nil
	cfg.Participants[0].Bot = true
	return cfg
}
