package visibility

// DefaultThreshold is the visible fraction that marks a region as seen.
const DefaultThreshold = 0.1

// Options configures a Tracker.
type Options struct {
	// Threshold is the visible fraction in [0,1] that counts as seen.
	// Values outside the range are clamped.
	Threshold float64
	// OnSeen fires exactly once, on the transition to seen.
	OnSeen func()
}

// DefaultOptions returns options using DefaultThreshold.
func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold}
}

// Tracker reports a one-shot transition from not seen to seen for a target.
// Once seen it releases its observer registration and ignores any later
// notification.
type Tracker struct {
	observer     *Observer
	registration Registration
	threshold    float64
	onSeen       func()
	seen         bool
	closed       bool
}

// New registers target with observer and returns its tracker.
func New(observer *Observer, target Target, opts Options) *Tracker {
	t := &Tracker{
		observer:  observer,
		threshold: clampThreshold(opts.Threshold),
		onSeen:    opts.OnSeen,
	}
	if observer == nil || target == nil {
		t.closed = true
		return t
	}
	t.registration = observer.Observe(target, t.threshold, t.handle)
	return t
}

// Seen reports whether the target has reached the threshold at least once.
func (t *Tracker) Seen() bool {
	return t.seen
}

// Threshold returns the clamped threshold in use.
func (t *Tracker) Threshold() float64 {
	return t.threshold
}

// Active reports whether the tracker still holds an observer registration.
func (t *Tracker) Active() bool {
	return !t.closed
}

// Close releases the observer registration. It is safe to call more than once
// and on trackers that never saw their target.
func (t *Tracker) Close() {
	if t.closed {
		return
	}
	t.closed = true
	t.observer.Unobserve(t.registration)
}

func (t *Tracker) handle(entry Entry) {
	if t.seen || t.closed {
		return
	}
	if !qualifies(entry, t.threshold) {
		return
	}
	t.seen = true
	t.Close()
	if t.onSeen != nil {
		t.onSeen()
	}
}

// A zero threshold still requires some overlap, matching how intersection
// observers treat threshold 0.
func qualifies(entry Entry, threshold float64) bool {
	if !entry.IsIntersecting {
		return false
	}
	return entry.IntersectionRatio >= threshold
}
