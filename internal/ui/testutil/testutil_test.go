package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/ui/popup"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no ansi codes", "hello world", "hello world"},
		{"with color codes", "\x1b[31mred\x1b[0m text", "red text"},
		{"with truecolor", "\x1b[38;2;167;139;250mcard\x1b[0m", "card"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLineHelpers(t *testing.T) {
	output := "first\nsecond card\nthird\n\n"

	if !ContainsLine(output, "card") {
		t.Error("ContainsLine should find card")
	}
	if got := FindLine(output, "card"); got != "second card" {
		t.Errorf("FindLine = %q", got)
	}
	if got := LineIndex(output, "third"); got != 2 {
		t.Errorf("LineIndex = %d, want 2", got)
	}
	if got := LineIndex(output, "missing"); got != -1 {
		t.Errorf("LineIndex = %d, want -1", got)
	}
	if got := len(SplitLines(output)); got != 3 {
		t.Errorf("SplitLines returned %d lines, want 3", got)
	}
	if got := MeasureWidth("\x1b[1mwide\x1b[0m"); got != 4 {
		t.Errorf("MeasureWidth = %d, want 4", got)
	}
}

type mockPopup struct {
	keys []string
}

var _ popup.Popup = (*mockPopup)(nil)

func (m *mockPopup) Init() tea.Cmd { return func() tea.Msg { return "init" } }

func (m *mockPopup) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		m.keys = append(m.keys, key.String())
		return m, func() tea.Msg { return key.String() }
	}
	return m, nil
}

func (m *mockPopup) View() string { return "\x1b[1mmock\x1b[0m" }

func (m *mockPopup) SetSize(int, int) {}

func TestPopupHarness(t *testing.T) {
	p := &mockPopup{}
	h := NewPopupHarness(p)

	if msg := ExecuteCmd(h.LastCommand()); msg != "init" {
		t.Errorf("init command returned %v", msg)
	}

	h.SendKey("x")
	h.SendEnter()
	h.SendEscape()

	want := []string{"x", "enter", "esc"}
	if len(p.keys) != len(want) {
		t.Fatalf("keys = %v, want %v", p.keys, want)
	}
	for i := range want {
		if p.keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, p.keys[i], want[i])
		}
	}
	if msg := ExecuteCmd(h.LastCommand()); msg != "esc" {
		t.Errorf("last command returned %v", msg)
	}
	if !h.ViewContains("mock") {
		t.Error("view should contain mock")
	}
	if ExecuteCmd(nil) != nil {
		t.Error("ExecuteCmd(nil) should return nil")
	}
}
