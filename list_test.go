package uzu

import "testing"

func listItems(l *List[int]) []int {
	return append([]int(nil), l.Items()...)
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestListAddGrows(t *testing.T) {
	var l List[int]
	if l.Cap() != 0 {
		t.Fatalf("zero list cap = %d, want 0", l.Cap())
	}
	l.Add(1)
	if l.Cap() != minGrowCap {
		t.Errorf("cap after first add = %d, want %d", l.Cap(), minGrowCap)
	}
	for i := 2; i <= minGrowCap+1; i++ {
		l.Add(i)
	}
	if l.Cap() != minGrowCap*2 {
		t.Errorf("cap after overflow = %d, want %d", l.Cap(), minGrowCap*2)
	}
	if l.Len() != minGrowCap+1 {
		t.Errorf("len = %d, want %d", l.Len(), minGrowCap+1)
	}
	for i := 0; i < l.Len(); i++ {
		if l.At(i) != i+1 {
			t.Fatalf("At(%d) = %d, want %d", i, l.At(i), i+1)
		}
	}
}

func TestListGrowFromSmallCapacity(t *testing.T) {
	l := NewList[int](4)
	for i := 0; i < 5; i++ {
		l.Add(i)
	}
	// max(4*2, 32)
	if l.Cap() != 32 {
		t.Errorf("cap = %d, want 32", l.Cap())
	}
}

func TestListInsert(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  []int
	}{
		{"front", 0, []int{9, 1, 2, 3}},
		{"middle", 1, []int{1, 9, 2, 3}},
		{"at len appends", 3, []int{1, 2, 3, 9}},
		{"past len appends", 10, []int{1, 2, 3, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewList[int](0)
			l.Add(1)
			l.Add(2)
			l.Add(3)
			l.Insert(tt.index, 9)
			if got := listItems(l); !equalInts(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestListInsertAtCapacityGrows(t *testing.T) {
	l := NewList[int](2)
	l.Add(1)
	l.Add(2)
	l.Insert(0, 0)
	if got := listItems(l); !equalInts(got, []int{0, 1, 2}) {
		t.Errorf("got %v", got)
	}
	if l.Cap() != minGrowCap {
		t.Errorf("cap = %d, want %d", l.Cap(), minGrowCap)
	}
}

func TestListRemove(t *testing.T) {
	l := NewList[int](0)
	for _, v := range []int{1, 2, 3, 2} {
		l.Add(v)
	}
	if !l.Remove(2) {
		t.Fatal("Remove(2) = false")
	}
	if got := listItems(l); !equalInts(got, []int{1, 3, 2}) {
		t.Errorf("after remove: %v", got)
	}
	if l.Remove(7) {
		t.Error("Remove of absent item returned true")
	}
	// Vacated tail slot is cleared.
	if v := l.buf[3]; v != 0 {
		t.Errorf("tail slot = %d, want 0", v)
	}
}

func TestListRemoveAt(t *testing.T) {
	l := NewList[int](0)
	for _, v := range []int{1, 2, 3} {
		l.Add(v)
	}
	l.RemoveAt(5)
	l.RemoveAt(-1)
	if l.Len() != 3 {
		t.Fatalf("out-of-range RemoveAt changed len to %d", l.Len())
	}
	l.RemoveAt(0)
	if got := listItems(l); !equalInts(got, []int{2, 3}) {
		t.Errorf("got %v", got)
	}
}

func TestListFindIndex(t *testing.T) {
	l := NewList[string](0)
	l.Add("a")
	l.Add("b")
	if i := l.FindIndex("b"); i != 1 {
		t.Errorf("FindIndex(b) = %d, want 1", i)
	}
	if i := l.FindIndex("z"); i != NotFound {
		t.Errorf("FindIndex(z) = %d, want NotFound", i)
	}
	if !l.Contains("a") || l.Contains("z") {
		t.Error("Contains mismatch")
	}
}

func TestListClearKeepsStorage(t *testing.T) {
	l := NewList[*int](0)
	x := 1
	l.Add(&x)
	capBefore := l.Cap()
	buf := l.buf

	l.Clear()
	if l.Len() != 0 {
		t.Fatalf("len after clear = %d", l.Len())
	}
	if buf[0] != nil {
		t.Error("Clear should zero live slots")
	}

	l.Add(&x)
	if l.Cap() != capBefore {
		t.Errorf("cap changed from %d to %d", capBefore, l.Cap())
	}
	if &l.buf[0] != &buf[0] {
		t.Error("Add after Clear reallocated")
	}
	if l.Len() != 1 {
		t.Errorf("len = %d, want 1", l.Len())
	}
}

func TestListRelease(t *testing.T) {
	l := NewList[int](8)
	l.Add(1)
	l.Release()
	if l.Len() != 0 || l.Cap() != 0 {
		t.Errorf("after release len=%d cap=%d", l.Len(), l.Cap())
	}
}

func TestListTrimAndToSlice(t *testing.T) {
	l := NewList[int](16)
	l.Add(4)
	l.Add(5)
	s := l.ToSlice()
	if !equalInts(s, []int{4, 5}) || len(s) != cap(s) {
		t.Errorf("ToSlice = %v (cap %d)", s, cap(s))
	}
	if l.Cap() != 2 {
		t.Errorf("cap after trim = %d, want 2", l.Cap())
	}

	l.Clear()
	if s := l.ToSlice(); s != nil {
		t.Errorf("empty ToSlice = %v, want nil", s)
	}
	if l.Cap() != 0 {
		t.Errorf("cap after empty trim = %d, want 0", l.Cap())
	}
}

func TestListExpand(t *testing.T) {
	l := NewList[int](0)
	l.Add(1)
	l.Expand(100)
	if l.Cap() != 100 || l.At(0) != 1 {
		t.Errorf("Expand: cap=%d first=%d", l.Cap(), l.At(0))
	}
	l.Expand(10)
	if l.Cap() != 100 {
		t.Errorf("Expand shrank to %d", l.Cap())
	}
}

func TestListStackOps(t *testing.T) {
	l := NewList[int](0)
	if _, ok := l.Pop(); ok {
		t.Error("Pop on empty list succeeded")
	}
	if _, ok := l.Last(); ok {
		t.Error("Last on empty list succeeded")
	}
	l.Add(1)
	l.Add(2)
	if v, _ := l.Last(); v != 2 {
		t.Errorf("Last = %d", v)
	}
	if v, _ := l.Pop(); v != 2 {
		t.Errorf("Pop = %d", v)
	}
	if l.Len() != 1 {
		t.Errorf("len after pop = %d", l.Len())
	}
}

// TestListSequenceInvariant drives a fixed mixed sequence and checks the list
// against a plain slice model.
func TestListSequenceInvariant(t *testing.T) {
	l := NewList[int](0)
	var model []int
	for i := 0; i < 200; i++ {
		switch i % 5 {
		case 0, 1, 2:
			l.Add(i)
			model = append(model, i)
		case 3:
			v := i - 2
			removed := l.Remove(v)
			for j, m := range model {
				if m == v {
					model = append(model[:j], model[j+1:]...)
					break
				}
			}
			if !removed {
				t.Fatalf("Remove(%d) = false", v)
			}
		case 4:
			l.RemoveAt(0)
			model = model[1:]
		}
		if l.Len() != len(model) {
			t.Fatalf("step %d: len %d, model %d", i, l.Len(), len(model))
		}
	}
	if !equalInts(listItems(l), model) {
		t.Errorf("order mismatch:\n got %v\nwant %v", listItems(l), model)
	}
}

func BenchmarkListClearAdd(b *testing.B) {
	l := NewList[int](64)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Clear()
		for j := 0; j < 64; j++ {
			l.Add(j)
		}
	}
}
