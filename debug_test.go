package ebitools

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

// captureLog redirects the standard logger for the duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(old) })
	return &buf
}

func TestDebugMode_ParticleCountWarningOnce(t *testing.T) {
	buf := captureLog(t)
	e := NewParticleEngine(fixedTestConfig(debugMaxParticles/2+1, 1000), nil)
	e.SetDebug(true)

	e.Update()
	if buf.Len() != 0 {
		t.Fatalf("unexpected warning below the limit: %q", buf.String())
	}
	e.Update()
	e.Update()
	output := buf.String()
	if !strings.Contains(output, "warning:") {
		t.Fatalf("expected particle count warning, got: %q", output)
	}
	if strings.Count(output, "warning:") != 1 {
		t.Errorf("warning should be logged once, got: %q", output)
	}
}

func TestDebugMode_ParticleWarningOffByDefault(t *testing.T) {
	buf := captureLog(t)
	e := NewParticleEngine(fixedTestConfig(debugMaxParticles+1, 10), nil)
	e.Update()
	if buf.Len() != 0 {
		t.Errorf("engine without debug logged: %q", buf.String())
	}
}

func TestDebugLog_EveryInterval(t *testing.T) {
	buf := captureLog(t)
	ctx := newTestContext()
	ctx.Screens.AddScreen("title", &recordingScreen{})
	g := NewGame(ctx, DefaultRunConfig())

	for i := 0; i < debugLogInterval-1; i++ {
		g.debugLog()
	}
	if buf.Len() != 0 {
		t.Fatalf("logged before interval: %q", buf.String())
	}
	g.debugLog()
	if !strings.Contains(buf.String(), `screen: "title"`) {
		t.Errorf("expected timing line naming the screen, got: %q", buf.String())
	}
	if g.stats.ticks != 0 {
		t.Errorf("stats not reset: %+v", g.stats)
	}
}

func TestDebugMode_ScreenChangesLogged(t *testing.T) {
	buf := captureLog(t)
	ctx := newTestContext()
	ctx.SetDebug(true)
	ctx.Screens.AddScreen("a", &recordingScreen{})
	ctx.Screens.AddScreen("b", &recordingScreen{})
	ctx.Screens.ChangeScreen("b", nil)
	if !strings.Contains(buf.String(), `switched to "b"`) {
		t.Errorf("expected screen switch log, got: %q", buf.String())
	}
}
