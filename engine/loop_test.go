package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/termstrike/arena"
	"github.com/lixenwraith/termstrike/event"
	"github.com/lixenwraith/termstrike/input"
)

func newTestLoop(t *testing.T) (*Loop, *MockClock, chan input.Action, *State) {
	t.Helper()
	q := event.NewQueue()
	s, err := NewState(arena.NewGrid(30, 30), stillMode, 1, q)
	if err != nil {
		t.Fatal(err)
	}
	clock := NewMockClock(time.Unix(0, 0))
	actions := make(chan input.Action, 64)
	return NewLoop(s, q, clock, actions), clock, actions, s
}

func TestLoopTicksUntilStopped(t *testing.T) {
	l, _, _, s := newTestLoop(t)

	rendered := 0
	l.Render = func(st *State) {
		rendered++
		if st.Tick() >= 10 {
			l.Stop()
		}
	}
	l.Run()

	if s.Tick() < 10 {
		t.Errorf("Loop stopped at tick %d, want at least 10", s.Tick())
	}
	if rendered < 10 {
		t.Errorf("Rendered %d frames over 10 ticks", rendered)
	}
	if l.Running() {
		t.Error("Running still true after Run returned")
	}
}

func TestLoopQuitActionStops(t *testing.T) {
	l, _, actions, s := newTestLoop(t)

	l.Render = func(st *State) {
		if st.Tick() == 3 {
			actions <- input.ActionQuit
		}
	}
	done := make(chan struct{})
	go func() {
		l.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Loop did not stop on quit action")
	}
	if s.Tick() > 5 {
		t.Errorf("Loop ran to tick %d after quit at 3", s.Tick())
	}
}

func TestLoopBatchesActionsIntoOneTick(t *testing.T) {
	l, _, actions, s := newTestLoop(t)

	actions <- input.ActionForward
	actions <- input.ActionForward
	actions <- input.ActionForward
	start := s.Player.Pose.Pos

	l.Render = func(st *State) {
		l.Stop()
	}
	l.Run()

	if s.Tick() != 1 {
		t.Fatalf("Tick %d, want exactly 1", s.Tick())
	}
	moved := s.Player.Pose.Pos.Sub(start).Len()
	if moved < 0.29 || moved > 0.31 {
		t.Errorf("Three queued moves advanced %f cells in one tick, want ~0.3", moved)
	}
}

func TestLoopPauseKeepsRenderingWithoutTicking(t *testing.T) {
	l, _, actions, s := newTestLoop(t)
	actions <- input.ActionPause

	rendered := 0
	l.Render = func(st *State) {
		rendered++
		if rendered >= 5 {
			l.Stop()
		}
	}
	l.Run()

	if s.Tick() != 0 {
		t.Errorf("Paused loop ticked %d times", s.Tick())
	}
	if rendered < 5 {
		t.Errorf("Paused loop rendered %d frames, want 5", rendered)
	}
	if !s.Paused() {
		t.Error("Pause action not applied")
	}
}

func TestLoopDispatchesEvents(t *testing.T) {
	l, _, _, _ := newTestLoop(t)

	var seen []event.Type
	l.Handle = func(ev event.Event) {
		seen = append(seen, ev.Type)
	}
	l.Render = func(st *State) {
		if st.Tick() >= 2 {
			l.Stop()
		}
	}
	l.Run()

	found := false
	for _, typ := range seen {
		if typ == event.WaveStarted {
			found = true
		}
	}
	if !found {
		t.Error("WaveStarted never reached the event handler")
	}
}

func TestLoopSleepsTowardDeadline(t *testing.T) {
	l, clock, _, _ := newTestLoop(t)

	l.Render = func(st *State) {
		if st.Tick() >= 30 {
			l.Stop()
		}
	}
	l.Run()

	// Simulation work is instant under the mock clock, so every tick
	// should sleep out its full interval
	if clock.SleepCount < 30 {
		t.Errorf("Slept %d times over 30 ticks, want one per tick", clock.SleepCount)
	}
	elapsed := clock.Now().Sub(time.Unix(0, 0))
	if elapsed < 29*tickInterval {
		t.Errorf("Mock time advanced %v over 30 ticks, want about %v", elapsed, 30*tickInterval)
	}
}

func TestLoopRecoversFromLongStall(t *testing.T) {
	l, clock, _, s := newTestLoop(t)

	stalled := false
	l.Render = func(st *State) {
		if st.Tick() == 2 && !stalled {
			stalled = true
			clock.Advance(2 * time.Second)
		}
		if st.Tick() >= 6 {
			l.Stop()
		}
	}
	l.Run()

	// The deadline resynchronizes after the stall instead of running
	// a catch-up burst, so the run still reaches its tick count
	if s.Tick() < 6 {
		t.Errorf("Loop stuck at tick %d after a stall", s.Tick())
	}
}

func TestStopIsIdempotent(t *testing.T) {
	l, _, _, _ := newTestLoop(t)
	l.Stop()
	l.Stop()
	l.Run() // returns immediately on the closed stop channel
	if l.Running() {
		t.Error("Running true after stopped Run")
	}
}
