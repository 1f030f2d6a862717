package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"skirmish/game/domain"
)

// keyName は tcell のキーをキーマップで使う名前に変換します。
func keyName(k tcell.Key, r rune) (domain.Key, bool) {
	switch k {
	case tcell.KeyUp:
		return "up", true
	case tcell.KeyDown:
		return "down", true
	case tcell.KeyLeft:
		return "left", true
	case tcell.KeyRight:
		return "right", true
	case tcell.KeyEnter:
		return "enter", true
	case tcell.KeyRune:
		if r == ' ' {
			return "space", true
		}
		if unicode.IsPrint(r) {
			return domain.Key(string(unicode.ToLower(r))), true
		}
	}
	return "", false
}

func isQuit(k tcell.Key, r rune) bool {
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return r == 'q' || r == 'Q'
	}
	return false
}
