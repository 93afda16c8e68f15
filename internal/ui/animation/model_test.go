package animation

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	figuredto "watersim/internal/modules/figure/dto"
)

func sampleAnimation(n int) figuredto.AnimationOutput {
	out := figuredto.AnimationOutput{Capacity: 500, CollectionTime: 180, Interval: 20 * time.Millisecond}
	for i := 0; i < n; i++ {
		out.Frames = append(out.Frames, figuredto.FrameOutput{
			Index:       i,
			Time:        float64(i) * 0.5,
			Volume:      float64(i),
			TimeLabel:   "Time: " + strings.Repeat("x", i),
			VolumeLabel: "Water",
		})
	}
	return out
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestTicksAdvanceUntilLastFrame(t *testing.T) {
	t.Parallel()
	var model tea.Model = New(sampleAnimation(3))
	for i := 1; i < 3; i++ {
		var cmd tea.Cmd
		model, cmd = model.Update(tickMsg(time.Now()))
		if cmd == nil {
			t.Fatalf("tick %d: expected next tick command", i)
		}
		if got := model.(Model).Frame().Index; got != i {
			t.Fatalf("tick %d: expected frame %d, got %d", i, i, got)
		}
	}
	model, cmd := model.Update(tickMsg(time.Now()))
	if !isQuit(cmd) {
		t.Fatalf("expected quit after last frame")
	}
	m := model.(Model)
	if !m.Finished() || m.Aborted() || m.Frame().Index != 2 {
		t.Fatalf("unexpected final state: finished=%v aborted=%v frame=%d", m.Finished(), m.Aborted(), m.Frame().Index)
	}
}

func TestQuitKeys(t *testing.T) {
	t.Parallel()
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		model, cmd := New(sampleAnimation(5)).Update(msg)
		if !isQuit(cmd) {
			t.Fatalf("%s: expected quit", msg.String())
		}
		if !model.(Model).Aborted() {
			t.Fatalf("%s: expected aborted state", msg.String())
		}
	}
}

func TestInitWithoutFramesQuits(t *testing.T) {
	t.Parallel()
	m := New(figuredto.AnimationOutput{Capacity: 500})
	if !isQuit(m.Init()) {
		t.Fatalf("expected immediate quit without frames")
	}
	if m.View() == "" {
		t.Fatalf("expected a view even without frames")
	}
}

func TestViewShowsLabels(t *testing.T) {
	t.Parallel()
	model, _ := New(sampleAnimation(3)).Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	view := model.View()
	for _, want := range []string{"Virtual Water Collection Simulation", "Water", "frame 1/3"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestViewUsesAnimationTitle(t *testing.T) {
	t.Parallel()
	anim := sampleAnimation(2)
	anim.Title = "Water Collection Simulation"
	view := New(anim).View()
	if !strings.Contains(view, "Water Collection Simulation") || strings.Contains(view, "Virtual") {
		t.Fatalf("expected the literal title:\n%s", view)
	}
}
