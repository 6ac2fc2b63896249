package input

import "github.com/gdamore/tcell/v2"

// FromTcell converts a tcell key event. Control characters that tcell
// reports as their own keys (ctrl+a through ctrl+z) become ctrl-modified
// runes; Enter and Tab keep their names.
func FromTcell(ev *tcell.EventKey) KeyEvent {
	mods := convertMod(ev.Modifiers())

	switch k := ev.Key(); k {
	case tcell.KeyRune:
		r := ev.Rune()
		if mods.Has(ModCtrl) || mods.Has(ModAlt) || mods.Has(ModMeta) {
			r = toLower(r)
		} else {
			// The rune itself carries shift.
			mods &^= ModShift
		}
		return KeyEvent{Key: KeyRune, Rune: r, Mods: mods}
	case tcell.KeyEnter:
		return KeyEvent{Key: KeyEnter, Mods: mods}
	case tcell.KeyTab:
		return KeyEvent{Key: KeyTab, Mods: mods}
	case tcell.KeyEscape:
		return KeyEvent{Key: KeyEscape, Mods: mods}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyEvent{Key: KeyBackspace, Mods: mods &^ ModCtrl}
	case tcell.KeyDelete:
		return KeyEvent{Key: KeyDelete, Mods: mods}
	case tcell.KeyUp:
		return KeyEvent{Key: KeyUp, Mods: mods}
	case tcell.KeyDown:
		return KeyEvent{Key: KeyDown, Mods: mods}
	case tcell.KeyLeft:
		return KeyEvent{Key: KeyLeft, Mods: mods}
	case tcell.KeyRight:
		return KeyEvent{Key: KeyRight, Mods: mods}
	case tcell.KeyHome:
		return KeyEvent{Key: KeyHome, Mods: mods}
	case tcell.KeyEnd:
		return KeyEvent{Key: KeyEnd, Mods: mods}
	default:
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			return KeyEvent{Key: KeyRune, Rune: rune('a' + (k - tcell.KeyCtrlA)), Mods: mods | ModCtrl}
		}
	}
	return KeyEvent{}
}

// ToTcell converts a key event into a tcell event, for injecting keys into
// a simulation screen.
func ToTcell(ev KeyEvent) *tcell.EventKey {
	var mods tcell.ModMask
	if ev.Mods.Has(ModShift) {
		mods |= tcell.ModShift
	}
	if ev.Mods.Has(ModCtrl) {
		mods |= tcell.ModCtrl
	}
	if ev.Mods.Has(ModAlt) {
		mods |= tcell.ModAlt
	}
	if ev.Mods.Has(ModMeta) {
		mods |= tcell.ModMeta
	}

	var k tcell.Key
	switch ev.Key {
	case KeyRune:
		if ev.Mods.Has(ModCtrl) && ev.Rune >= 'a' && ev.Rune <= 'z' {
			return tcell.NewEventKey(tcell.KeyCtrlA+tcell.Key(ev.Rune-'a'), 0, mods)
		}
		return tcell.NewEventKey(tcell.KeyRune, ev.Rune, mods)
	case KeyEnter:
		k = tcell.KeyEnter
	case KeyEscape:
		k = tcell.KeyEscape
	case KeyTab:
		k = tcell.KeyTab
	case KeyBackspace:
		k = tcell.KeyBackspace2
	case KeyDelete:
		k = tcell.KeyDelete
	case KeyUp:
		k = tcell.KeyUp
	case KeyDown:
		k = tcell.KeyDown
	case KeyLeft:
		k = tcell.KeyLeft
	case KeyRight:
		k = tcell.KeyRight
	case KeyHome:
		k = tcell.KeyHome
	case KeyEnd:
		k = tcell.KeyEnd
	default:
		return nil
	}
	return tcell.NewEventKey(k, 0, mods)
}

func convertMod(m tcell.ModMask) Modifier {
	var mods Modifier
	if m&tcell.ModShift != 0 {
		mods |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= ModMeta
	}
	return mods
}
