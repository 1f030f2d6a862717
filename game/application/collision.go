package application

// CollisionReport は1回の衝突判定の結果です。
type CollisionReport struct {
	ScoreGained int
	Kills       int
	Contacts    int
	PlayerHits  int // 敵弾がプレイヤーに当たった数
	EnemyHits   int // 自弾が敵に当たった数
}

// ResolveCollisions は衝突判定を固定の順序で1回行い、World を更新します。
//  1. 敵弾 → 生存プレイヤー (ロスター順で最初に当たった1人)
//  2. 自弾 → 敵。体力が尽きた敵はその場で取り除き、スコアを加算する
//  3. 敵の体当たり → 最初に重なった生存プレイヤーに 2 倍のダメージ。敵は取り除く (スコアなし)
//
// 1発の弾が当たるのは1回だけです。
func ResolveCollisions(w *World) CollisionReport {
	var report CollisionReport

	// 1. enemy bullets vs players
	keptEnemyBullets := w.EnemyBullets[:0]
BULLET_LOOP:
	for _, b := range w.EnemyBullets {
		for _, p := range w.Players {
			if !p.Alive() || !b.Rect.Intersects(p.Rect) {
				continue
			}
			p.ApplyDamage(b.Damage)
			report.PlayerHits++
			continue BULLET_LOOP
		}
		keptEnemyBullets = append(keptEnemyBullets, b)
	}
	clear(w.EnemyBullets[len(keptEnemyBullets):])
	w.EnemyBullets = keptEnemyBullets

	// 2. player bullets vs enemies
	keptPlayerBullets := w.PlayerBullets[:0]
	for _, b := range w.PlayerBullets {
		hit := -1
		for i, e := range w.Enemies {
			if b.Rect.Intersects(e.Rect) {
				hit = i
				break
			}
		}
		if hit < 0 {
			keptPlayerBullets = append(keptPlayerBullets, b)
			continue
		}
		e := w.Enemies[hit]
		e.ApplyDamage(b.Damage)
		report.EnemyHits++
		if !e.Alive() {
			w.Enemies = append(w.Enemies[:hit], w.Enemies[hit+1:]...)
			report.Kills++
			report.ScoreGained += e.Archetype.Score
		}
	}
	clear(w.PlayerBullets[len(keptPlayerBullets):])
	w.PlayerBullets = keptPlayerBullets

	// 3. body contact
	keptEnemies := w.Enemies[:0]
	for _, e := range w.Enemies {
		touched := false
		for _, p := range w.Players {
			if p.Alive() && e.Rect.Intersects(p.Rect) {
				p.ApplyDamage(e.Archetype.Damage * 2)
				touched = true
				break
			}
		}
		if touched {
			report.Contacts++
			continue
		}
		keptEnemies = append(keptEnemies, e)
	}
	clear(w.Enemies[len(keptEnemies):])
	w.Enemies = keptEnemies

	w.Score += report.ScoreGained
	return report
}
