package core

import (
	"testing"
	"time"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"debug", LogLevelDebug, false},
		{"INFO", LogLevelInfo, false},
		{" warning ", LogLevelWarn, false},
		{"error", LogLevelError, false},
		{"fatal", LogLevelFatal, false},
		{"", LogLevelDebug, false},
		{"verbose", LogLevelDebug, true},
	}
	for _, tt := range tests {
		got, err := ParseLogLevel(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestEventBus(t *testing.T) {
	bus := NewEventBus()
	var order []string
	first, second := "first", "second"

	bus.Register(EVENT_CODE_KEY_PRESSED, &first, func(ctx EventContext) bool {
		order = append(order, first)
		return false
	})
	bus.Register(EVENT_CODE_KEY_PRESSED, &second, func(ctx EventContext) bool {
		order = append(order, second)
		return ctx.Data.(*KeyEvent).KeyCode == KEY_ESCAPE
	})
	if bus.Register(EVENT_CODE_KEY_PRESSED, &first, func(EventContext) bool { return true }) {
		t.Error("duplicate listener was registered")
	}

	if !bus.Fire(EVENT_CODE_KEY_PRESSED, nil, &KeyEvent{KeyCode: KEY_ESCAPE}) {
		t.Error("event not reported as handled")
	}
	if len(order) != 2 || order[0] != first {
		t.Errorf("listeners ran as %v", order)
	}

	if !bus.Unregister(EVENT_CODE_KEY_PRESSED, &second) {
		t.Fatal("Unregister failed")
	}
	if bus.Fire(EVENT_CODE_KEY_PRESSED, nil, &KeyEvent{KeyCode: KEY_ESCAPE}) {
		t.Error("event handled after the handling listener left")
	}
	if bus.Fire(EVENT_CODE_RESIZED, nil, nil) {
		t.Error("event without listeners reported as handled")
	}
}

func TestInputFiresOnTransitions(t *testing.T) {
	bus := NewEventBus()
	presses, releases := 0, 0
	bus.Register(EVENT_CODE_KEY_PRESSED, nil, func(EventContext) bool { presses++; return true })
	bus.Register(EVENT_CODE_KEY_RELEASED, nil, func(EventContext) bool { releases++; return true })

	in := NewInput(bus)
	in.ProcessKey(KEY_W, true)
	in.ProcessKey(KEY_W, true)
	if presses != 1 || !in.IsKeyDown(KEY_W) {
		t.Errorf("presses = %d, down %t", presses, in.IsKeyDown(KEY_W))
	}
	in.Update()
	in.ProcessKey(KEY_W, false)
	if releases != 1 || !in.WasKeyDown(KEY_W) || !in.IsKeyUp(KEY_W) {
		t.Errorf("releases = %d, was down %t", releases, in.WasKeyDown(KEY_W))
	}
}

func TestMetrics(t *testing.T) {
	m := NewMetrics()
	for i := 0; i < AVG_COUNT+10; i++ {
		m.Update(0.010)
	}
	if got := m.FrameTime(); got < 9.999 || got > 10.001 {
		t.Errorf("FrameTime = %v, want 10ms", got)
	}
	for i := 0; i < 100; i++ {
		m.Update(0.010)
	}
	if fps := m.FPS(); fps < 99 || fps > 101 {
		t.Errorf("FPS = %v, want about 100", fps)
	}
	m.RecordRender(3, 300, 100, 7)
	if m.DrawCalls != 3 || m.SkippedStates != 7 {
		t.Errorf("render totals = %+v", m)
	}
}

func TestClock(t *testing.T) {
	now := time.Unix(100, 0)
	c := &Clock{now: func() time.Time { return now }}
	c.Update()
	if c.Elapsed() != 0 {
		t.Error("stopped clock advanced")
	}
	c.Start()
	now = now.Add(1500 * time.Millisecond)
	c.Update()
	if c.ElapsedSeconds() != 1.5 {
		t.Errorf("ElapsedSeconds = %v, want 1.5", c.ElapsedSeconds())
	}
	c.Stop()
	now = now.Add(time.Second)
	c.Update()
	if c.Elapsed() != 1500*time.Millisecond {
		t.Errorf("stopped clock kept counting: %v", c.Elapsed())
	}
}
