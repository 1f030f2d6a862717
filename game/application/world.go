package application

// World はセッションが所有するエンティティの集合です。Players の並びがロスター順です。
type World struct {
	Players       []*Player
	Enemies       []*Enemy
	PlayerBullets []*Bullet
	EnemyBullets  []*Bullet
	Score         int
}

func (w *World) Player(uid string) (*Player, bool) {
	for _, p := range w.Players {
		if p.UID == uid {
			return p, true
		}
	}
	return nil, false
}

// LivingPlayers は体力が残っているプレイヤーの数を返します。
func (w *World) LivingPlayers() int {
	n := 0
	for _, p := range w.Players {
		if p.Alive() {
			n++
		}
	}
	return n
}
