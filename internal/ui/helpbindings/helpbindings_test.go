package helpbindings

import (
	"testing"

	"github.com/llehouerou/carousel/internal/ui/action"
	"github.com/llehouerou/carousel/internal/ui/testutil"
)

func newTestHelpPopup(contexts []string, height int) *testutil.PopupHarness {
	m := New(contexts)
	m.SetSize(80, height)
	return testutil.NewPopupHarness(&m)
}

func assertClosed(t *testing.T, h *testutil.PopupHarness) {
	t.Helper()
	msg := testutil.ExecuteCmd(h.LastCommand())
	actionMsg, ok := msg.(action.Msg)
	if !ok {
		t.Fatalf("expected action.Msg, got %T", msg)
	}
	if _, ok := actionMsg.Action.(Close); !ok {
		t.Fatalf("expected Close, got %T", actionMsg.Action)
	}
}

func TestHelpBindings_Close(t *testing.T) {
	for _, key := range []string{"q", "?"} {
		t.Run(key, func(t *testing.T) {
			h := newTestHelpPopup(Contexts, 40)
			h.SendKey(key)
			assertClosed(t, h)
		})
	}

	t.Run("esc", func(t *testing.T) {
		h := newTestHelpPopup(Contexts, 40)
		h.SendEscape()
		assertClosed(t, h)
	})
}

func TestHelpBindings_Scroll(t *testing.T) {
	h := newTestHelpPopup(Contexts, 12)
	m, ok := h.Popup().(*Model)
	if !ok {
		t.Fatal("expected *Model")
	}

	h.SendKey("k")
	if m.scrollOffset != 0 {
		t.Errorf("scroll offset = %d, want 0 at top", m.scrollOffset)
	}

	h.SendKey("j")
	h.SendKey("j")
	if m.scrollOffset != 2 {
		t.Errorf("scroll offset = %d, want 2", m.scrollOffset)
	}

	for range 50 {
		h.SendKey("j")
	}
	if m.scrollOffset != m.maxScroll() {
		t.Errorf("scroll offset = %d, want clamp at %d", m.scrollOffset, m.maxScroll())
	}

	h.SendKey("k")
	if m.scrollOffset != m.maxScroll()-1 {
		t.Errorf("scroll offset = %d after k", m.scrollOffset)
	}
	if !h.ViewContains("j/k scroll") {
		t.Error("footer should mention scrolling when content overflows")
	}
}

func TestHelpBindings_ViewShowsCategories(t *testing.T) {
	h := newTestHelpPopup(Contexts, 60)

	for _, want := range []string{"Help", "Carousel", "Autoplay", "Global", "Cycle layout mode", "space", "?/esc close"} {
		if !h.ViewContains(want) {
			t.Errorf("view should contain %q", want)
		}
	}
	if h.ViewContains("j/k scroll") {
		t.Error("footer should not offer scrolling when everything fits")
	}
}

func TestHelpBindings_OnlySelectedContexts(t *testing.T) {
	h := newTestHelpPopup([]string{"global"}, 60)

	if !h.ViewContains("Quit") {
		t.Error("view should list global bindings")
	}
	if h.ViewContains("Carousel") {
		t.Error("view should not list carousel bindings")
	}
}

func TestHelpBindings_EmptyViewWhenNoSize(t *testing.T) {
	m := New(Contexts)
	if v := m.View(); v != "" {
		t.Errorf("View() = %q, want empty", v)
	}
}
