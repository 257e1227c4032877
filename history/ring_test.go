package history

import "testing"

func TestRing(t *testing.T) {
	r := newRing[int](3)
	if _, ok := r.at(0); ok {
		t.Fatal("empty ring returned an item")
	}
	for i := 1; i <= 3; i++ {
		if _, ok := r.push(i); ok {
			t.Fatalf("push %d evicted an item", i)
		}
	}
	evicted, ok := r.push(4)
	if !ok || evicted != 1 {
		t.Fatalf("got eviction (%d, %t), want (1, true)", evicted, ok)
	}
	var got []int
	for i := range r.len() {
		v, _ := r.at(i)
		got = append(got, v)
	}
	diff(t, []int{4, 3, 2}, got)
	if _, ok := r.at(3); ok {
		t.Error("at(3) succeeded on a ring of capacity 3")
	}

	r.clear()
	diff(t, 0, r.len())
	r.push(7)
	v, _ := r.at(0)
	diff(t, 7, v)
}
