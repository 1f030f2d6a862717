package application

import (
	"fmt"

	"skirmish/game/domain"
)

// render は現在の World を描画します。死亡したプレイヤーは描きません。
func (s *GameSession) render() {
	r := s.renderer
	r.Clear()
	for _, p := range s.world.Players {
		if p.Alive() {
			p.Draw(r, s.frames)
		}
	}
	for _, e := range s.world.Enemies {
		e.Draw(r, s.frames)
	}
	for _, b := range s.world.PlayerBullets {
		b.Draw(r, s.frames)
	}
	for _, b := range s.world.EnemyBullets {
		b.Draw(r, s.frames)
	}
	r.DrawText(10, 10, fmt.Sprintf("Score: %d", s.world.Score), domain.ColorWhite)
	r.Present()
}

// renderStatus は接続待ちなどの状態表示だけを描画します。
func (s *GameSession) renderStatus(text string) {
	r := s.renderer
	r.Clear()
	r.DrawText(10, 10, text, domain.ColorGray)
	r.Present()
}

// NopRenderer は何も描画しない Renderer です。ヘッドレスのボットやテストで使います。
type NopRenderer struct{}

func (NopRenderer) Clear()                                          {}
func (NopRenderer) DrawEntity(domain.Visual, domain.Rect)           {}
func (NopRenderer) DrawHealthBar(domain.Rect, float64)              {}
func (NopRenderer) DrawText(float64, float64, string, domain.Color) {}
func (NopRenderer) Present()                                        {}
