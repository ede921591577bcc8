package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starfall/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyMovement(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
	}{
		{runeKey('a'), core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{runeKey('d'), core.ActionRight},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{runeKey('w'), core.ActionUp},
		{runeKey('s'), core.ActionDown},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionFire},
		{runeKey('r'), core.ActionRestart},
	}

	for _, tt := range tests {
		action, isQuit := km.MapKey(tt.msg, false)
		if isQuit {
			t.Errorf("Key %q should not quit", tt.msg.String())
		}
		if action != tt.action {
			t.Errorf("Key %q: expected %v, got %v", tt.msg.String(), tt.action, action)
		}
	}
}

func TestMapKeyPauseIsContextSensitive(t *testing.T) {
	km := NewKeyMapper()

	action, _ := km.MapKey(runeKey('p'), false)
	if action != core.ActionPause {
		t.Errorf("Expected pause while playing, got %v", action)
	}

	action, _ = km.MapKey(runeKey('p'), true)
	if action != core.ActionResume {
		t.Errorf("Expected resume while paused, got %v", action)
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()

	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		action, isQuit := km.MapKey(msg, false)
		if !isQuit || action != core.ActionQuit {
			t.Errorf("Key %q should quit, got %v", msg.String(), action)
		}
	}
}
