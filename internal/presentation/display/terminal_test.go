package display

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/penwyp/go-tuxsplit/internal/util"
)

// captureOutput collects everything fn writes to stdout.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read captured output: %v", err)
	}
	return string(data)
}

func TestFirstRenderPaintsEverything(t *testing.T) {
	td := NewTerminalDisplay()
	frame := []string{"alpha", "beta", "gamma"}

	out := captureOutput(t, func() { td.Render(frame) })

	for _, line := range frame {
		if !strings.Contains(out, line) {
			t.Errorf("first render missing %q", line)
		}
	}
	if !strings.Contains(out, util.ClearScreen) {
		t.Error("first render did not clear the screen")
	}
}

func TestSecondRenderRepaintsOnlyChangedLines(t *testing.T) {
	td := NewTerminalDisplay()
	captureOutput(t, func() { td.Render([]string{"alpha", "beta", "gamma"}) })

	out := captureOutput(t, func() { td.Render([]string{"alpha", "BETA", "gamma"}) })

	if !strings.Contains(out, "BETA") {
		t.Error("changed line was not repainted")
	}
	if strings.Contains(out, "alpha") || strings.Contains(out, "gamma") {
		t.Errorf("unchanged lines were repainted: %q", out)
	}
	if !strings.Contains(out, util.MoveCursor(2, 1)) {
		t.Error("repaint did not address the changed row")
	}
}

func TestIdenticalFrameWritesNothing(t *testing.T) {
	td := NewTerminalDisplay()
	frame := []string{"alpha", "beta"}
	captureOutput(t, func() { td.Render(frame) })

	out := captureOutput(t, func() { td.Render(frame) })

	if out != "" {
		t.Errorf("identical frame produced output: %q", out)
	}
}

func TestShrunkFrameBlanksLeftoverLines(t *testing.T) {
	td := NewTerminalDisplay()
	captureOutput(t, func() { td.Render([]string{"alpha", "beta", "gamma"}) })

	out := captureOutput(t, func() { td.Render([]string{"alpha"}) })

	for _, row := range []int{2, 3} {
		if !strings.Contains(out, util.MoveCursor(row, 1)) {
			t.Errorf("leftover row %d was not addressed", row)
		}
	}
	if !strings.Contains(out, util.ClearLine) {
		t.Error("leftover rows were not cleared")
	}
}

func TestInvalidateForcesFullRepaint(t *testing.T) {
	td := NewTerminalDisplay()
	frame := []string{"alpha", "beta"}
	captureOutput(t, func() { td.Render(frame) })

	td.Invalidate()
	out := captureOutput(t, func() { td.Render(frame) })

	if !strings.Contains(out, util.ClearScreen) || !strings.Contains(out, "alpha") {
		t.Errorf("invalidated render was not a full repaint: %q", out)
	}
}

func TestAlternateScreenLifecycle(t *testing.T) {
	td := NewTerminalDisplay()

	enter := captureOutput(t, func() { td.EnterAlternateScreen() })
	if !strings.Contains(enter, util.EnterAltScreen) || !strings.Contains(enter, util.HideCursor) {
		t.Errorf("enter sequence incomplete: %q", enter)
	}

	// Entering twice must not emit the sequence again.
	again := captureOutput(t, func() { td.EnterAlternateScreen() })
	if again != "" {
		t.Errorf("re-entering alternate screen emitted output: %q", again)
	}

	exit := captureOutput(t, func() { td.ExitAlternateScreen() })
	if !strings.Contains(exit, util.ExitAltScreen) || !strings.Contains(exit, util.ShowCursor) {
		t.Errorf("exit sequence incomplete: %q", exit)
	}

	if out := captureOutput(t, func() { td.ExitAlternateScreen() }); out != "" {
		t.Errorf("exiting twice emitted output: %q", out)
	}
}
