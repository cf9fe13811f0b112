package e2e

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/creack/pty"
)

// WatchConfig describes how to launch the live view under a pty.
type WatchConfig struct {
	// Binary and arguments to run.
	Binary string
	Args   []string

	// Working directory.
	WorkDir string

	// Extra environment variables, appended to the current environment.
	Env []string

	// Terminal size presented to the process.
	Rows uint16
	Cols uint16
}

// WatchSession drives the live view end to end: it runs the binary
// under a pty, captures everything it writes, and can replay that
// capture into the screen a user would be looking at.
type WatchSession struct {
	cmd  *exec.Cmd
	ptmx *os.File
	rows int
	cols int

	outputLock sync.RWMutex
	output     bytes.Buffer

	stopOnce sync.Once
	waitErr  error
}

// StartWatch launches the binary under a pty of the configured size.
func StartWatch(config *WatchConfig) (*WatchSession, error) {
	if config.Rows == 0 {
		config.Rows = 24
	}
	if config.Cols == 0 {
		config.Cols = 80
	}

	cmd := exec.Command(config.Binary, config.Args...)
	if config.WorkDir != "" {
		cmd.Dir = config.WorkDir
	}
	cmd.Env = append(os.Environ(), config.Env...)

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: config.Rows,
		Cols: config.Cols,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start pty: %w", err)
	}

	session := &WatchSession{
		cmd:  cmd,
		ptmx: ptmx,
		rows: int(config.Rows),
		cols: int(config.Cols),
	}
	go session.captureOutput()

	return session, nil
}

// captureOutput reads the pty until the process side closes. A read
// error after exit (EIO on Linux) ends the capture like EOF.
func (s *WatchSession) captureOutput() {
	buf := make([]byte, 4096)
	for {
		n, err := s.ptmx.Read(buf)
		if n > 0 {
			s.outputLock.Lock()
			s.output.Write(buf[:n])
			s.outputLock.Unlock()
		}
		if err != nil {
			return
		}
	}
}

// RawOutput returns everything captured so far, escape codes included.
func (s *WatchSession) RawOutput() string {
	s.outputLock.RLock()
	defer s.outputLock.RUnlock()
	return s.output.String()
}

// CleanOutput returns the capture with ANSI escape codes removed. Note
// that differential repaints make this a transcript, not a screen: text
// from superseded frames is still present.
func (s *WatchSession) CleanOutput() string {
	return StripANSI(s.RawOutput())
}

// Screenshot replays the capture and returns the screen as it would
// look right now.
func (s *WatchSession) Screenshot() *VirtualScreen {
	return PlayBack(s.RawOutput(), s.rows, s.cols)
}

// WaitForText polls the transcript until text has appeared at least
// once. Use this for "was it ever rendered" checks.
func (s *WatchSession) WaitForText(text string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(s.CleanOutput(), text) {
			return nil
		}
		time.Sleep(50 * time.Millisecond)
	}
	return fmt.Errorf("timeout waiting for text: %s", text)
}

// WaitForScreen polls the reconstructed screen until text is visible
// on it. Use this for "is it showing now" checks, which diverge from
// the transcript once lines have been repainted.
func (s *WatchSession) WaitForScreen(text string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if s.Screenshot().Contains(text) {
			return nil
		}
		time.Sleep(50 * time.Millisecond)
	}
	return fmt.Errorf("timeout waiting for screen to show: %s", text)
}

// WaitForScreenGone polls the reconstructed screen until text is no
// longer visible, proving a repaint replaced it.
func (s *WatchSession) WaitForScreenGone(text string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if !s.Screenshot().Contains(text) {
			return nil
		}
		time.Sleep(50 * time.Millisecond)
	}
	return fmt.Errorf("timeout waiting for screen to drop: %s", text)
}

// Stop interrupts the process and waits for it to exit. The live view
// has no keyboard handling, so shutdown goes through SIGINT exactly as
// a user's Ctrl+C would. Returns the process's exit error, nil for a
// clean exit.
func (s *WatchSession) Stop() error {
	s.stopOnce.Do(func() {
		if s.cmd.Process != nil {
			s.cmd.Process.Signal(syscall.SIGINT)
		}

		done := make(chan error, 1)
		go func() { done <- s.cmd.Wait() }()

		select {
		case err := <-done:
			s.waitErr = err
		case <-time.After(5 * time.Second):
			s.cmd.Process.Kill()
			s.waitErr = fmt.Errorf("process did not exit after SIGINT")
			<-done
		}

		s.ptmx.Close()
	})
	return s.waitErr
}

// ForceStop kills the process without the graceful signal.
func (s *WatchSession) ForceStop() error {
	s.stopOnce.Do(func() {
		if s.cmd.Process != nil {
			s.cmd.Process.Kill()
		}
		s.waitErr = s.cmd.Wait()
		s.ptmx.Close()
	})
	return s.waitErr
}
