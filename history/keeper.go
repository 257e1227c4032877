package history

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/spf13/cast"
)

// DefaultWindow is the number of past frames retained when a Keeper is
// created with a non-positive window.
const DefaultWindow = 8

// ErrHistoryUnavailable is returned when a value is requested for a frame
// that is no longer retained, has not happened yet, or has no value recorded
// under the requested name.
var ErrHistoryUnavailable = errors.New("history: value unavailable")

// LookupError describes a failed history lookup.
type LookupError struct {
	Name      string
	FramesAgo int
	// Frame is the keeper's frame number at the time of the lookup.
	Frame uint64
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("history: no value for %q %d frames before frame %d", e.Name, e.FramesAgo, e.Frame)
}

func (e *LookupError) Is(target error) bool {
	return target == ErrHistoryUnavailable
}

type layer map[string]any

// Keeper stores named values per frame for a bounded number of frames, so
// that any computation can ask what a value was N frames ago.
//
// The newest layer belongs to the current frame and accepts writes through
// [Keeper.Record]. [Keeper.AdvanceFrame] commits it and starts a new one,
// evicting the oldest layer once more than Window past frames are held. Only
// the current frame is ever written to, so lookups with framesAgo ≥ 1 always
// observe committed, immutable history.
//
// A Keeper is safe for concurrent use, but frame advancement should still be
// driven by a single owner per simulation.
type Keeper struct {
	mu     sync.RWMutex
	window int
	layers *ring[layer]
	frame  uint64
	logger *slog.Logger
}

// Option configures a Keeper.
type Option func(*Keeper)

// WithLogger sets the logger used for frame lifecycle messages.
func WithLogger(logger *slog.Logger) Option {
	return func(k *Keeper) {
		if logger != nil {
			k.logger = logger
		}
	}
}

// NewKeeper returns an empty keeper positioned at frame 0 that retains window
// past frames in addition to the current one.
func NewKeeper(window int, opts ...Option) *Keeper {
	if window < 1 {
		window = DefaultWindow
	}
	k := &Keeper{
		window: window,
		layers: newRing[layer](window + 1),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(k)
	}
	k.layers.push(layer{})
	return k
}

// Window returns the number of past frames retained.
func (k *Keeper) Window() int {
	return k.window
}

// Frame returns the number of the current frame.
func (k *Keeper) Frame() uint64 {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.frame
}

// Record stores v under name in the current frame, replacing any value
// recorded under the same name earlier in the frame.
func (k *Keeper) Record(name string, v any) {
	k.mu.Lock()
	defer k.mu.Unlock()
	cur, _ := k.layers.at(0)
	cur[name] = v
}

// Get returns the value recorded under name framesAgo frames before the
// current one. Get(name, 0) returns the latest write of the current frame.
func (k *Keeper) Get(name string, framesAgo int) (any, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if framesAgo >= 0 && framesAgo <= k.window {
		if l, ok := k.layers.at(framesAgo); ok {
			if v, ok := l[name]; ok {
				lookups.WithLabelValues("hit").Inc()
				return v, nil
			}
		}
	}
	lookups.WithLabelValues("miss").Inc()
	return nil, &LookupError{Name: name, FramesAgo: framesAgo, Frame: k.frame}
}

// Float is like Get but converts the value to a float64. Values of any
// numeric type, and strings holding numbers, are accepted.
func (k *Keeper) Float(name string, framesAgo int) (float64, error) {
	v, err := k.Get(name, framesAgo)
	if err != nil {
		return 0, err
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("history: value of %q %d frames ago: %w", name, framesAgo, err)
	}
	return f, nil
}

// Has reports whether a value is available for name framesAgo frames ago.
func (k *Keeper) Has(name string, framesAgo int) bool {
	_, err := k.Get(name, framesAgo)
	return err == nil
}

// Lookback returns every retained value of name, newest first, stopping at
// the first frame without one.
func (k *Keeper) Lookback(name string) []any {
	k.mu.RLock()
	defer k.mu.RUnlock()
	var out []any
	for i := range k.layers.len() {
		l, _ := k.layers.at(i)
		v, ok := l[name]
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

// AdvanceFrame commits the current frame and starts a new, empty one. It must
// be called exactly once per simulation tick, before anything reads history
// for that tick.
func (k *Keeper) AdvanceFrame() {
	k.mu.Lock()
	defer k.mu.Unlock()
	_, evicted := k.layers.push(layer{})
	k.frame++
	framesAdvanced.Inc()
	if evicted {
		layersEvicted.Inc()
		k.logger.Debug("evicted history layer", "frame", k.frame, "window", k.window)
	}
}

// Reset discards all history and returns to frame 0.
func (k *Keeper) Reset() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.layers.clear()
	k.layers.push(layer{})
	k.frame = 0
	k.logger.Debug("history reset")
}
