// Package visibility detects when rendered regions scroll into view.
//
// An Observer plays the role of a viewport-intersection mechanism: targets
// register with a threshold and a callback, and every call to Notify delivers
// one discrete intersection entry per attached target. A Tracker built on top
// of it turns those entries into a one-shot "seen" flag.
//
// Observers are owned by a single page instance and are driven from the UI
// event loop, so they do no locking.
package visibility

// Rect is an axis-aligned region measured in terminal cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the cell (x, y) lies inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersect returns the overlapping region of r and o.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.X+r.Width, o.X+o.Width)
	y1 := min(r.Y+r.Height, o.Y+o.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Area returns the number of cells covered by the rect.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.Width * r.Height
}

// Target is anything whose placement on the rendering surface can be queried.
// Bounds returns false while the target is not attached to a surface.
type Target interface {
	Bounds() (Rect, bool)
}

// Entry describes one intersection notification.
type Entry struct {
	Target            Target
	Bounds            Rect
	IntersectionRatio float64
	IsIntersecting    bool
}

// Callback receives intersection entries for a registration.
type Callback func(Entry)

// Registration identifies an observed target. The zero value is never issued.
type Registration uint64

type observation struct {
	target    Target
	threshold float64
	callback  Callback
}

// Observer tracks registered targets and reports their intersection with a viewport.
type Observer struct {
	next    Registration
	entries map[Registration]*observation
	order   []Registration
}

// NewObserver creates an observer with no registrations.
func NewObserver() *Observer {
	return &Observer{entries: make(map[Registration]*observation)}
}

// Observe starts watching target. The callback is invoked from Notify.
func (o *Observer) Observe(target Target, threshold float64, callback Callback) Registration {
	o.next++
	id := o.next
	o.entries[id] = &observation{target: target, threshold: clampThreshold(threshold), callback: callback}
	o.order = append(o.order, id)
	return id
}

// Unobserve stops watching the registration. Unknown or already released
// registrations are ignored.
func (o *Observer) Unobserve(id Registration) {
	if _, ok := o.entries[id]; !ok {
		return
	}
	delete(o.entries, id)
	for i, existing := range o.order {
		if existing == id {
			o.order = append(o.order[:i], o.order[i+1:]...)
			break
		}
	}
}

// Observing reports whether the registration is still live.
func (o *Observer) Observing(id Registration) bool {
	_, ok := o.entries[id]
	return ok
}

// Len returns the number of live registrations.
func (o *Observer) Len() int {
	return len(o.entries)
}

// Notify computes intersections against viewport and delivers one entry to
// every attached target. Callbacks may unobserve themselves while Notify runs.
func (o *Observer) Notify(viewport Rect) {
	ids := append([]Registration(nil), o.order...)
	for _, id := range ids {
		obs, ok := o.entries[id]
		if !ok || obs.callback == nil {
			continue
		}
		bounds, attached := obs.target.Bounds()
		if !attached {
			continue
		}
		obs.callback(computeEntry(obs.target, bounds, viewport))
	}
}

func computeEntry(target Target, bounds, viewport Rect) Entry {
	entry := Entry{Target: target, Bounds: bounds}
	area := bounds.Area()
	if area == 0 {
		return entry
	}
	overlap := bounds.Intersect(viewport).Area()
	entry.IsIntersecting = overlap > 0
	entry.IntersectionRatio = float64(overlap) / float64(area)
	return entry
}

func clampThreshold(threshold float64) float64 {
	if threshold < 0 {
		return 0
	}
	if threshold > 1 {
		return 1
	}
	return threshold
}
