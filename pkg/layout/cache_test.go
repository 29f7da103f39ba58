package layout

import "testing"

func TestCache_Memoizes(t *testing.T) {
	c := NewCache(10)
	l := NewHorizontal(Length(3), Min(0))
	area := NewRect(0, 0, 10, 1)

	first := c.Split(l, area)
	if got := c.Len(); got != 1 {
		t.Fatalf("Len() after first split = %d, want 1", got)
	}

	second := c.Split(l, area)
	if got := c.Len(); got != 1 {
		t.Errorf("Len() after repeated split = %d, want 1", got)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("segment[%d] = %+v on repeat, want %+v", i, second[i], first[i])
		}
	}
}

func TestCache_KeyedOnAreaAndLayout(t *testing.T) {
	c := NewCache(10)
	l := NewHorizontal(Length(3), Min(0))

	c.Split(l, NewRect(0, 0, 10, 1))
	c.Split(l, NewRect(0, 0, 20, 1))
	c.Split(l.Spacing(1), NewRect(0, 0, 10, 1))

	if got := c.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}

func TestCache_ReturnsCopies(t *testing.T) {
	c := NewCache(10)
	l := NewHorizontal(Length(3), Min(0))
	area := NewRect(0, 0, 10, 1)

	first := c.Split(l, area)
	first[0] = NewRect(99, 99, 99, 99)

	second := c.Split(l, area)
	if second[0] == first[0] {
		t.Error("mutating a returned slice leaked into the cache")
	}
}

func TestCache_Evicts(t *testing.T) {
	c := NewCache(2)
	l := NewHorizontal(Min(0))

	c.Split(l, NewRect(0, 0, 10, 1))
	c.Split(l, NewRect(0, 0, 11, 1))
	c.Split(l, NewRect(0, 0, 12, 1))

	if got := c.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2 (capacity)", got)
	}
	if got := c.Cap(); got != 2 {
		t.Errorf("Cap() = %d, want 2", got)
	}
}

func TestCache_MinimumCapacity(t *testing.T) {
	c := NewCache(0)
	if got := c.Cap(); got != 1 {
		t.Errorf("Cap() = %d, want 1", got)
	}
}

func TestInitCache_OnlyFirstCallWins(t *testing.T) {
	// The package default cache may already have been created by another
	// test, so the first call here is allowed to lose. The second call must
	// always lose: the default cache exists by then either way.
	first := InitCache(64)
	second := InitCache(128)

	if second {
		t.Error("second InitCache() = true, want false")
	}
	if first {
		if got := defaultCache().Cap(); got != 64 {
			t.Errorf("default cache Cap() = %d, want 64", got)
		}
	}
}
