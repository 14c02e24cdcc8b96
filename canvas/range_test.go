package canvas

import "testing"

func TestRangeManagerClamping(t *testing.T) {
	n := 5
	m := NewRangeManager(func() int { return n })

	tt := []struct {
		name       string
		start, end int
		want       Range
	}{
		{"inside", 1, 3, Range{1, 3}},
		{"negative start", -2, 3, Range{0, 3}},
		{"end past length", 2, 99, Range{2, 5}},
		{"inverted", 4, 1, Range{4, 4}},
		{"both past length", 9, 9, Range{5, 5}},
		{"full", 0, 5, Range{0, 5}},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			m.SetRange(tc.start, tc.end)
			if got := m.Range(); got != tc.want {
				t.Errorf("SetRange(%d, %d) = %v, want %v", tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestRangeManagerClampAfterShrink(t *testing.T) {
	n := 5
	m := NewRangeManager(func() int { return n })
	m.SetRange(2, 5)

	n = 3
	m.clamp()
	if got := m.Range(); got != (Range{2, 3}) {
		t.Errorf("after shrink: %v, want {2 3}", got)
	}
}

func TestRangeContains(t *testing.T) {
	r := Range{2, 4}
	if r.Collapsed() {
		t.Error("non-empty range reported collapsed")
	}
	for i, want := range map[int]bool{1: false, 2: true, 3: true, 4: false} {
		if got := r.Contains(i); got != want {
			t.Errorf("Contains(%d) = %v, want %v", i, got, want)
		}
	}
	if !(Range{3, 3}).Collapsed() {
		t.Error("caret range not reported collapsed")
	}
}
