package debug

import (
	"testing"
	"time"
)

func TestBreakpointLifecycle(t *testing.T) {
	d := NewDebugger()
	d.SetBreakpoint(0x8000)

	if !d.CheckBreakpoint(0x8000) {
		t.Fatal("expected breakpoint hit at 0x8000")
	}
	bp, ok := d.GetBreakpoint(0x8000)
	if !ok || bp.HitCount != 1 {
		t.Fatalf("expected hit count 1, got %+v", bp)
	}

	d.DisableBreakpoint(0x8000)
	if d.CheckBreakpoint(0x8000) {
		t.Fatal("disabled breakpoint should not trigger")
	}

	d.EnableBreakpoint(0x8000)
	if !d.CheckBreakpoint(0x8000) {
		t.Fatal("re-enabled breakpoint should trigger")
	}

	if !d.RemoveBreakpoint(0x8000) {
		t.Fatal("expected RemoveBreakpoint to report success")
	}
	if d.CheckBreakpoint(0x8000) {
		t.Fatal("removed breakpoint should not trigger")
	}
}

func TestSteppingPausesAfterCount(t *testing.T) {
	d := NewDebugger()
	d.Step(2)

	if !d.ShouldBreak(0x1000) {
		t.Fatal("expected break on first step")
	}
	if d.IsPaused() {
		t.Fatal("should not be paused after first of two steps")
	}
	if !d.ShouldBreak(0x1001) {
		t.Fatal("expected break on second step")
	}
	if !d.IsPaused() {
		t.Fatal("expected paused after step count exhausted")
	}
}

func TestCallStackPushPop(t *testing.T) {
	d := NewDebugger()
	d.PushCallFrame(0x8000, "main")
	d.PushCallFrame(0x8100, "helper")

	frame := d.PopCallFrame()
	if frame == nil || frame.FunctionName != "helper" {
		t.Fatalf("expected to pop helper frame, got %+v", frame)
	}
	if len(d.GetCallStack()) != 1 {
		t.Fatalf("expected 1 frame remaining, got %d", len(d.GetCallStack()))
	}
}

func TestLoggerComponentGating(t *testing.T) {
	l := NewLogger(100)
	defer l.Shutdown()

	l.SetMinLevel(LogLevelDebug)
	l.SetComponentEnabled(ComponentVideo, true)

	l.LogVideo(LogLevelDebug, "frame rendered", nil)
	l.LogAudio(LogLevelDebug, "fifo drained", nil) // Audio stays disabled by default

	// Give the background goroutine a chance to drain; GetEntries locks
	// the same mutex addEntry writes under so this is safe to call
	// immediately after in a single-goroutine test, but the channel send
	// is async, so poll briefly.
	var entries []LogEntry
	for i := 0; i < 1000; i++ {
		entries = l.GetEntries()
		if len(entries) > 0 {
			break
		}
		time.Sleep(time.Millisecond)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly 1 entry (video only), got %d", len(entries))
	}
	if entries[0].Component != ComponentVideo {
		t.Fatalf("expected Video component, got %s", entries[0].Component)
	}
}
