package uzu

// NotFound is returned by FindIndex when the item is not present.
const NotFound = -1

// minGrowCap is the smallest backing capacity a List allocates when it grows.
const minGrowCap = 32

// List is a growable sequence that keeps its backing slice on Clear, so hot
// per-frame code can reuse the same storage without allocating.
//
// Slices returned by Items are views into the backing store and become stale
// after any call that grows the list.
type List[T comparable] struct {
	buf  []T
	size int
}

// NewList creates a List with the given initial backing capacity.
func NewList[T comparable](capacity int) *List[T] {
	l := &List[T]{}
	if capacity > 0 {
		l.buf = make([]T, capacity)
	}
	return l
}

// Len returns the number of stored elements.
func (l *List[T]) Len() int { return l.size }

// Cap returns the capacity of the backing store, which may exceed Len.
func (l *List[T]) Cap() int { return len(l.buf) }

// At returns the element at index i. Panics if i is out of range of the
// backing store.
func (l *List[T]) At(i int) T { return l.buf[i] }

// Set overwrites the element at index i.
func (l *List[T]) Set(i int, v T) { l.buf[i] = v }

// Items returns the live elements as a slice view of the backing store.
func (l *List[T]) Items() []T { return l.buf[:l.size] }

// Add appends item, growing the backing store when full.
func (l *List[T]) Add(item T) {
	if l.size == len(l.buf) {
		l.grow()
	}
	l.buf[l.size] = item
	l.size++
}

// Insert places item at index, shifting later elements back by one.
// An index at or beyond Len appends.
func (l *List[T]) Insert(index int, item T) {
	if l.size == len(l.buf) {
		l.grow()
	}
	if index < 0 || index >= l.size {
		l.Add(item)
		return
	}
	copy(l.buf[index+1:l.size+1], l.buf[index:l.size])
	l.buf[index] = item
	l.size++
}

// Contains reports whether item is stored in the list.
func (l *List[T]) Contains(item T) bool {
	return l.FindIndex(item) != NotFound
}

// FindIndex returns the index of the first element equal to item, or NotFound.
func (l *List[T]) FindIndex(item T) int {
	for i := 0; i < l.size; i++ {
		if l.buf[i] == item {
			return i
		}
	}
	return NotFound
}

// Remove deletes the first element equal to item. RemoveAt is cheaper when
// the index is already known.
func (l *List[T]) Remove(item T) bool {
	i := l.FindIndex(item)
	if i == NotFound {
		return false
	}
	l.RemoveAt(i)
	return true
}

// RemoveAt deletes the element at index, shifting later elements forward.
// Out-of-range indices are ignored.
func (l *List[T]) RemoveAt(index int) {
	if index < 0 || index >= l.size {
		return
	}
	copy(l.buf[index:l.size-1], l.buf[index+1:l.size])
	l.size--
	var zero T
	l.buf[l.size] = zero
}

// Last returns the final element. ok is false when the list is empty.
func (l *List[T]) Last() (v T, ok bool) {
	if l.size == 0 {
		return v, false
	}
	return l.buf[l.size-1], true
}

// Pop removes and returns the final element, so a List can serve as a stack.
func (l *List[T]) Pop() (v T, ok bool) {
	if l.size == 0 {
		return v, false
	}
	l.size--
	v = l.buf[l.size]
	var zero T
	l.buf[l.size] = zero
	return v, true
}

// Clear resets the length to zero. The backing store is kept; slots are
// zeroed so stale pointers are not retained.
func (l *List[T]) Clear() {
	clear(l.buf[:l.size])
	l.size = 0
}

// Release clears the list and drops the backing store.
func (l *List[T]) Release() {
	l.size = 0
	l.buf = nil
}

// Expand grows the backing store to hold at least capacity elements.
// It never shrinks.
func (l *List[T]) Expand(capacity int) {
	if len(l.buf) >= capacity {
		return
	}
	buf := make([]T, capacity)
	copy(buf, l.buf[:l.size])
	l.buf = buf
}

// Trim shrinks the backing store to exactly Len. An empty list releases its
// backing store entirely.
func (l *List[T]) Trim() {
	if l.size == 0 {
		l.buf = nil
		return
	}
	if l.size < len(l.buf) {
		buf := make([]T, l.size)
		copy(buf, l.buf[:l.size])
		l.buf = buf
	}
}

// ToSlice trims the list and returns its backing store, which then holds
// exactly the live elements. Returns nil for an empty list.
func (l *List[T]) ToSlice() []T {
	l.Trim()
	return l.buf
}

func (l *List[T]) grow() {
	newCap := max(len(l.buf)*2, minGrowCap)
	buf := make([]T, newCap)
	copy(buf, l.buf[:l.size])
	l.buf = buf
}
