package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func keyEvent(key tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(key, r, tcell.ModNone)
}

func TestDefaultBindings(t *testing.T) {
	kt := DefaultKeyTable()

	cases := []struct {
		ev   tcell.Event
		want Action
	}{
		{keyEvent(tcell.KeyRune, 'w'), ActionForward},
		{keyEvent(tcell.KeyRune, 'W'), ActionForward},
		{keyEvent(tcell.KeyRune, 's'), ActionBackward},
		{keyEvent(tcell.KeyRune, 'a'), ActionTurnLeft},
		{keyEvent(tcell.KeyRune, 'd'), ActionTurnRight},
		{keyEvent(tcell.KeyRune, ' '), ActionFire},
		{keyEvent(tcell.KeyRune, 'r'), ActionReload},
		{keyEvent(tcell.KeyRune, '3'), ActionWeaponRifle},
		{keyEvent(tcell.KeyRune, 'q'), ActionQuit},
		{keyEvent(tcell.KeyUp, 0), ActionForward},
		{keyEvent(tcell.KeyLeft, 0), ActionTurnLeft},
		{keyEvent(tcell.KeyCtrlC, 0), ActionQuit},
		{keyEvent(tcell.KeyEscape, 0), ActionPause},
		{keyEvent(tcell.KeyRune, 'x'), ActionNone},
		{keyEvent(tcell.KeyHome, 0), ActionNone},
	}
	for _, tc := range cases {
		if got := kt.Translate(tc.ev); got != tc.want {
			t.Errorf("Translate(%v) = %v, want %v", tc.ev, got, tc.want)
		}
	}
}

func TestNonKeyEventsIgnored(t *testing.T) {
	kt := DefaultKeyTable()
	if got := kt.Translate(tcell.NewEventResize(80, 25)); got != ActionNone {
		t.Errorf("Resize event translated to %v", got)
	}
}

func TestLoadKeyConfigOverrides(t *testing.T) {
	data := []byte("m: reload\nspace: forward\nup: fire\n")
	overrides, err := LoadKeyConfig(data)
	if err != nil {
		t.Fatal(err)
	}

	kt := DefaultKeyTable()
	kt.Merge(overrides)

	if got := kt.Translate(keyEvent(tcell.KeyRune, 'm')); got != ActionReload {
		t.Errorf("New binding m = %v, want Reload", got)
	}
	if got := kt.Translate(keyEvent(tcell.KeyRune, ' ')); got != ActionForward {
		t.Errorf("Rebound space = %v, want Forward", got)
	}
	if got := kt.Translate(keyEvent(tcell.KeyUp, 0)); got != ActionFire {
		t.Errorf("Rebound up = %v, want Fire", got)
	}
	// Untouched defaults survive the merge
	if got := kt.Translate(keyEvent(tcell.KeyRune, 'w')); got != ActionForward {
		t.Errorf("Default w lost after merge, got %v", got)
	}
}

func TestLoadKeyConfigRejectsUnknownAction(t *testing.T) {
	if _, err := LoadKeyConfig([]byte("w: moonwalk\n")); err == nil {
		t.Error("Unknown action name accepted")
	}
}

func TestLoadKeyConfigRejectsUnknownKey(t *testing.T) {
	if _, err := LoadKeyConfig([]byte("hyperkey: fire\n")); err == nil {
		t.Error("Unknown key name accepted")
	}
}

func TestLoadKeyConfigRejectsBadYAML(t *testing.T) {
	if _, err := LoadKeyConfig([]byte("{{nope")); err == nil {
		t.Error("Malformed YAML accepted")
	}
}
