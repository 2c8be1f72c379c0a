package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/termstrike/event"
	"github.com/lixenwraith/termstrike/input"
	"github.com/lixenwraith/termstrike/parameter"
)

// maxBehind is how far the tick deadline may fall behind real time
// before the loop resynchronizes instead of fast-forwarding
const maxBehind = 5 * tickInterval

const tickInterval = time.Second / parameter.TickRate

// Loop drives the simulation on a fixed tick without busy-waiting.
// Input actions accumulate between ticks and apply as a batch; pause
// freezes the simulation but keeps the loop polling and rendering.
type Loop struct {
	state   *State
	queue   *event.Queue
	clock   Clock
	actions <-chan input.Action

	// Render is called once per tick after the simulation step
	Render func(s *State)

	// Handle is called for every drained event, in emit order
	Handle func(ev event.Event)

	stopChan chan struct{}
	stopOnce sync.Once
	running  atomic.Bool
}

// NewLoop creates a loop over a wired simulation state
func NewLoop(state *State, queue *event.Queue, clock Clock, actions <-chan input.Action) *Loop {
	return &Loop{
		state:    state,
		queue:    queue,
		clock:    clock,
		actions:  actions,
		stopChan: make(chan struct{}),
	}
}

// Stop requests loop shutdown; safe to call more than once
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
	})
}

// Running reports whether Run is active
func (l *Loop) Running() bool {
	return l.running.Load()
}

// Run blocks until Stop is called or a quit action arrives. A
// finished run keeps rendering its final screen so the game-over
// overlay stays visible until the player quits.
func (l *Loop) Run() {
	l.running.Store(true)
	defer l.running.Store(false)

	deadline := l.clock.Now().Add(tickInterval)
	batch := make([]input.Action, 0, 16)

	for {
		select {
		case <-l.stopChan:
			return
		default:
		}

		batch = batch[:0]
	drain:
		for {
			select {
			case a := <-l.actions:
				switch a {
				case input.ActionQuit:
					l.Stop()
					return
				case input.ActionPause:
					l.state.TogglePause()
				default:
					batch = append(batch, a)
				}
			default:
				break drain
			}
		}

		l.state.Advance(batch)

		if l.Handle != nil {
			for _, ev := range l.queue.Consume() {
				l.Handle(ev)
			}
		} else {
			l.queue.Consume()
		}
		if l.Render != nil {
			l.Render(l.state)
		}

		if sleep := deadline.Sub(l.clock.Now()); sleep > 0 {
			l.clock.Sleep(sleep)
		}
		deadline = deadline.Add(tickInterval)
		if l.clock.Now().Sub(deadline) > maxBehind {
			// A long stall would otherwise trigger a tick burst
			deadline = l.clock.Now().Add(tickInterval)
		}
	}
}
