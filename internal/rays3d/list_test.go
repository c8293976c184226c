package rays3d

import (
	"cmp"
	"testing"
)

func TestList(t *testing.T) {
	l := NewList[int](0)
	for _, v := range []int{3, 1, 2} {
		l.Add(v)
	}
	if l.Len() != 3 || l.At(0) != 3 || l.At(2) != 2 {
		t.Fatalf("list content wrong: %v", l.Slice())
	}
	sum := 0
	for i, v := range l.All() {
		sum += i * v
	}
	if sum != 0*3+1*1+2*2 {
		t.Fatalf("All iterated wrong: %d", sum)
	}
	l.SortBy(cmp.Compare[int])
	if got := l.Slice(); got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("SortBy wrong: %v", got)
	}
}

func TestListSortByStable(t *testing.T) {
	l := NewList[*Sphere](2)
	a := &Sphere{Center: Vector3{X: 1}, Radius: 1}
	b := &Sphere{Center: Vector3{X: 1}, Radius: 2}
	c := &Sphere{Center: Vector3{X: 0}, Radius: 3}
	l.Add(a)
	l.Add(b)
	l.Add(c)
	l.SortBy(func(p, q *Sphere) int { return cmp.Compare(p.Center.X, q.Center.X) })
	if l.At(0) != c || l.At(1) != a || l.At(2) != b {
		t.Fatal("sort by x should be stable")
	}
}

func TestListAtOutOfRange(t *testing.T) {
	l := NewList[string](1)
	l.Add("a")
	defer func() {
		if recover() == nil {
			t.Fatal("At out of range should panic")
		}
	}()
	_ = l.At(1)
}
