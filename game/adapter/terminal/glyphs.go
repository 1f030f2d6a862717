package terminal

import (
	"skirmish/game/application"
	"skirmish/game/domain"
)

// Glyph は端末1セル分のフレームです。
type Glyph rune

// GlyphFrames はスプライト名とアニメーションキーからグリフ列を引く FrameSource です。
type GlyphFrames map[string]map[domain.AnimationKey][]domain.Frame

func (g GlyphFrames) Frames(sprite string, key domain.AnimationKey) []domain.Frame {
	return g[sprite][key]
}

var facings = []domain.Facing{domain.FacingDown, domain.FacingUp, domain.FacingLeft, domain.FacingRight}

// DefaultGlyphs はプレイヤーと各敵種別のグリフ表を返します。
func DefaultGlyphs() GlyphFrames {
	g := GlyphFrames{}

	arrows := map[domain.Facing]Glyph{
		domain.FacingDown:  '▼',
		domain.FacingUp:    '▲',
		domain.FacingLeft:  '◀',
		domain.FacingRight: '▶',
	}
	player := map[domain.AnimationKey][]domain.Frame{}
	for _, f := range facings {
		for _, a := range []string{application.ActionWalk1, application.ActionWalk2, application.ActionWalk3, application.ActionIdle} {
			player[domain.AnimationKey{Facing: f, Action: a}] = []domain.Frame{arrows[f]}
		}
		player[domain.AnimationKey{Facing: f, Action: application.ActionShoot1}] = []domain.Frame{Glyph('◆')}
		player[domain.AnimationKey{Facing: f, Action: application.ActionShoot2}] = []domain.Frame{Glyph('◇')}
	}
	g[application.PlayerSprite] = player

	enemies := map[application.Kind][2]Glyph{
		application.KindGrunt:   {'g', 'G'},
		application.KindUnicorn: {'u', 'U'},
		application.KindBrute:   {'b', 'B'},
	}
	for kind, pair := range enemies {
		table := map[domain.AnimationKey][]domain.Frame{}
		for _, f := range facings {
			table[domain.AnimationKey{Facing: f, Action: application.ActionIdle}] = []domain.Frame{pair[0]}
			table[domain.AnimationKey{Facing: f, Action: application.ActionMove}] = []domain.Frame{pair[0], pair[1]}
		}
		// 歩行キーはフォールバック用
		table[domain.FallbackAnimationKey] = []domain.Frame{pair[0]}
		g[string(kind)] = table
	}
	return g
}
