package history

// ring is a fixed-capacity circular buffer. Pushing onto a full ring
// overwrites the oldest item.
type ring[T any] struct {
	data  []T
	head  int // next write position
	count int
}

func newRing[T any](capacity int) *ring[T] {
	return &ring[T]{data: make([]T, capacity)}
}

// push appends item and reports the item it evicted, if any.
func (r *ring[T]) push(item T) (evicted T, ok bool) {
	if r.count == len(r.data) {
		evicted, ok = r.data[r.head], true
	} else {
		r.count++
	}
	r.data[r.head] = item
	r.head = (r.head + 1) % len(r.data)
	return evicted, ok
}

// at returns the item pushed i pushes ago; at(0) is the newest item.
func (r *ring[T]) at(i int) (T, bool) {
	var zero T
	if i < 0 || i >= r.count {
		return zero, false
	}
	idx := (r.head - 1 - i + 2*len(r.data)) % len(r.data)
	return r.data[idx], true
}

func (r *ring[T]) len() int { return r.count }

func (r *ring[T]) clear() {
	var zero T
	for i := range r.data {
		r.data[i] = zero
	}
	r.head = 0
	r.count = 0
}
