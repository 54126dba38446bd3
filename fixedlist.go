package uzu

// FixedList is a List that never grows. Its capacity is set at construction;
// adding beyond it is a caller error and panics with an index out of range.
type FixedList[T comparable] struct {
	buf  []T
	size int
}

// NewFixedList creates a FixedList holding at most capacity elements.
func NewFixedList[T comparable](capacity int) *FixedList[T] {
	return &FixedList[T]{buf: make([]T, capacity)}
}

// Len returns the number of stored elements.
func (l *FixedList[T]) Len() int { return l.size }

// Cap returns the fixed capacity.
func (l *FixedList[T]) Cap() int { return len(l.buf) }

// Full reports whether the list has no room left.
func (l *FixedList[T]) Full() bool { return l.size == len(l.buf) }

// At returns the element at index i.
func (l *FixedList[T]) At(i int) T { return l.buf[i] }

// Set replaces the element at index i.
func (l *FixedList[T]) Set(i int, v T) { l.buf[i] = v }

// Items returns the live elements as a slice view of the backing store.
func (l *FixedList[T]) Items() []T { return l.buf[:l.size] }

// Add appends item.
func (l *FixedList[T]) Add(item T) {
	l.buf[l.size] = item
	l.size++
}

// Insert places item at index, shifting later elements back by one. An index
// outside [0, Len) appends.
func (l *FixedList[T]) Insert(index int, item T) {
	if index < 0 || index >= l.size {
		l.Add(item)
		return
	}
	copy(l.buf[index+1:l.size+1], l.buf[index:l.size])
	l.buf[index] = item
	l.size++
}

// Contains reports whether item is stored.
func (l *FixedList[T]) Contains(item T) bool {
	return l.FindIndex(item) != NotFound
}

// FindIndex returns the index of the first element equal to item, or NotFound.
func (l *FixedList[T]) FindIndex(item T) int {
	for i := 0; i < l.size; i++ {
		if l.buf[i] == item {
			return i
		}
	}
	return NotFound
}

// Remove deletes the first element equal to item.
func (l *FixedList[T]) Remove(item T) bool {
	i := l.FindIndex(item)
	if i == NotFound {
		return false
	}
	l.RemoveAt(i)
	return true
}

// RemoveAt deletes the element at index. Out-of-range indices are ignored.
func (l *FixedList[T]) RemoveAt(index int) {
	if index < 0 || index >= l.size {
		return
	}
	copy(l.buf[index:l.size-1], l.buf[index+1:l.size])
	l.size--
	var zero T
	l.buf[l.size] = zero
}

// Clear resets the length to zero without releasing storage.
func (l *FixedList[T]) Clear() {
	clear(l.buf[:l.size])
	l.size = 0
}

// ToSlice returns the whole backing store, including unused slots.
func (l *FixedList[T]) ToSlice() []T {
	return l.buf
}
