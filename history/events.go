package history

import (
	"fmt"
	"math"

	"github.com/Micah-Ribbens/Game-Qu/calc"
	"github.com/google/uuid"
	"github.com/spf13/cast"
)

// TriggerState is the state of an edge-triggered event.
type TriggerState int

const (
	// Armed events are counting towards their threshold.
	Armed TriggerState = iota
	// Triggered events have reached their threshold. One-shot events stay
	// triggered until they are reset; repeating events re-arm on the next
	// count.
	Triggered
)

func (s TriggerState) String() string {
	switch s {
	case Armed:
		return "armed"
	case Triggered:
		return "triggered"
	default:
		return fmt.Sprintf("TriggerState(%d)", int(s))
	}
}

// trigger is the state machine shared by CountEvent and TimedEvent.
type trigger struct {
	threshold int
	count     int
	repeating bool
	state     TriggerState
}

func newTrigger(threshold int, repeating bool) trigger {
	return trigger{threshold: max(threshold, 1), repeating: repeating}
}

// advance counts once and reports whether this count fired the trigger.
func (t *trigger) advance() bool {
	if t.state == Triggered {
		if !t.repeating {
			return false
		}
		t.state = Armed
		t.count = 0
	}
	t.count++
	if t.count >= t.threshold {
		t.state = Triggered
		return true
	}
	return false
}

func (t *trigger) reset() {
	t.count = 0
	t.state = Armed
}

// CountEvent fires once it has been incremented Threshold times.
type CountEvent struct {
	trigger
}

// NewCountEvent returns an armed event that fires on the threshold'th call to
// Increment. Thresholds below one are treated as one.
func NewCountEvent(threshold int, repeating bool) *CountEvent {
	return &CountEvent{trigger: newTrigger(threshold, repeating)}
}

// Increment counts one occurrence and reports whether the event fired as a
// result. A one-shot event fires exactly once until it is reset, no matter
// how often Increment is called afterwards.
func (e *CountEvent) Increment() bool {
	fired := e.advance()
	if fired {
		eventsTriggered.WithLabelValues("count").Inc()
	}
	return fired
}

func (e *CountEvent) Reset()              { e.reset() }
func (e *CountEvent) State() TriggerState { return e.state }
func (e *CountEvent) Count() int          { return e.count }
func (e *CountEvent) Threshold() int      { return e.threshold }

// TimedEvent fires after a number of frames has passed.
type TimedEvent struct {
	trigger
}

// NewTimedEvent returns an armed event that fires on the frames'th call to
// Tick.
func NewTimedEvent(frames int, repeating bool) *TimedEvent {
	return &TimedEvent{trigger: newTrigger(frames, repeating)}
}

// NewTimedEventFor returns an event that fires once the given number of
// seconds has passed at the given tick duration, rounding up to whole frames.
// The frame count is computed on exact fractions, so 1 second at a tick of
// 0.1 is exactly 10 frames.
func NewTimedEventFor(seconds, tick float64, repeating bool) (*TimedEvent, error) {
	if !(tick > 0) || math.IsInf(tick, 0) {
		return nil, fmt.Errorf("history: tick duration must be positive and finite, got %g", tick)
	}
	if seconds < 0 {
		return nil, fmt.Errorf("history: event duration must not be negative, got %g", seconds)
	}
	s, err := calc.FractionFromFloat(seconds, calc.DefaultMaxDenominator)
	if err != nil {
		return nil, err
	}
	t, err := calc.FractionFromFloat(tick, calc.DefaultMaxDenominator)
	if err != nil {
		return nil, err
	}
	frames, err := s.Div(t)
	if err != nil {
		return nil, fmt.Errorf("history: tick %g: %w", tick, err)
	}
	return NewTimedEvent(int(frames.Ceil()), repeating), nil
}

// Tick counts one frame and reports whether the event fired as a result.
func (e *TimedEvent) Tick() bool {
	fired := e.advance()
	if fired {
		eventsTriggered.WithLabelValues("timed").Inc()
	}
	return fired
}

func (e *TimedEvent) Reset()              { e.reset() }
func (e *TimedEvent) State() TriggerState { return e.state }
func (e *TimedEvent) Frames() int         { return e.threshold }

// Elapsed returns the number of frames counted since the event was last
// armed.
func (e *TimedEvent) Elapsed() int { return e.count }

// Remaining returns the number of ticks until the event fires next. It is
// zero for a triggered one-shot event.
func (e *TimedEvent) Remaining() int {
	if e.state == Triggered {
		if e.repeating {
			return e.threshold
		}
		return 0
	}
	return e.threshold - e.count
}

// Event tracks whether something happened on each frame, such as a key being
// held down, and answers questions about its edges using history.
type Event struct {
	name   string
	keeper *Keeper
}

// NewEvent returns an event recording into k under name. An empty name is
// replaced with a unique generated one.
func NewEvent(k *Keeper, name string) *Event {
	if name == "" {
		name = "event-" + uuid.NewString()
	}
	return &Event{name: name, keeper: k}
}

// Name returns the history name the event records under.
func (e *Event) Name() string { return e.name }

// Run records whether the event happened in the current frame. It should be
// called once per frame.
func (e *Event) Run(happened bool) {
	e.keeper.Record(e.name, happened)
}

func (e *Event) at(framesAgo int) bool {
	v, err := e.keeper.Get(e.name, framesAgo)
	if err != nil {
		return false
	}
	return cast.ToBool(v)
}

// Happened reports whether the event happened in the current frame.
func (e *Event) Happened() bool { return e.at(0) }

// HappenedLastFrame reports whether the event happened in the previous frame.
// Frames without a recorded value count as not having happened.
func (e *Event) HappenedLastFrame() bool { return e.at(1) }

// IsClick reports whether the event started this frame.
func (e *Event) IsClick() bool {
	return e.Happened() && !e.HappenedLastFrame()
}

// HasStopped reports whether the event stopped this frame.
func (e *Event) HasStopped() bool {
	return !e.Happened() && e.HappenedLastFrame()
}
