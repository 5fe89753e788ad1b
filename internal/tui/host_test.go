package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHostQuitsOnCompletion(t *testing.T) {
	h := NewHost(newTestModel(t), HostOptions{Title: "Signup", Outline: []string{"Plan", "Details", "Confirm"}})
	h.Init()
	if !h.Child().Focused() {
		t.Fatal("host should focus the stepper on init")
	}
	for i := 0; i < 2; i++ {
		_, msg := send(h, keyMsg("right"))
		send(h, msg)
	}
	if h.LastStep() != 3 {
		t.Fatalf("last step = %d, want 3", h.LastStep())
	}
	_, msg := send(h, keyMsg("right"))
	if _, ok := msg.(CompletedMsg); !ok {
		t.Fatalf("expected CompletedMsg, got %#v", msg)
	}
	_, quit := send(h, msg)
	if _, ok := quit.(tea.QuitMsg); !ok {
		t.Fatalf("expected quit, got %#v", quit)
	}
	if !h.Completed() || h.Completions() != 1 {
		t.Fatalf("completed=%v completions=%d", h.Completed(), h.Completions())
	}
}

func TestHostStayKeepsRunning(t *testing.T) {
	h := NewHost(newTestModel(t, stepperTotal(1)), HostOptions{Stay: true})
	h.Init()
	for i := 0; i < 3; i++ {
		_, msg := send(h, keyMsg("enter"))
		if _, after := send(h, msg); after != nil {
			t.Fatalf("stay host produced %#v", after)
		}
	}
	if h.Completed() || h.Completions() != 3 {
		t.Fatalf("completed=%v completions=%d", h.Completed(), h.Completions())
	}
}

func TestHostEscQuits(t *testing.T) {
	h := NewHost(newTestModel(t), HostOptions{})
	_, msg := send(h, keyMsg("esc"))
	if _, ok := msg.(tea.QuitMsg); !ok {
		t.Fatalf("expected quit, got %#v", msg)
	}
}

func TestHostViewAndMouseOffset(t *testing.T) {
	h := NewHost(newTestModel(t), HostOptions{Title: "Signup", Version: "1.2.3", Outline: []string{"Plan", "Details"}})
	h.Init()
	view := h.View()
	for _, want := range []string{"Signup", "v1.2.3", "Plan", "Details", "1/3"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	child := h.Child()
	_, msg := send(h, tea.MouseMsg{
		X:      child.layout.nextStart,
		Y:      child.layout.row + h.headerRows,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if change, ok := msg.(StepChangeMsg); !ok || change.Step != 2 {
		t.Fatalf("expected click to advance, got %#v", msg)
	}
}
