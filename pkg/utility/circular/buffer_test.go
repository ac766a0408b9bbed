package circular

import "testing"

func TestBuffer_PushGet(t *testing.T) {
	b := NewBuffer[int](5)
	b.Push(0)
	b.Push(1)
	b.Push(2)
	b.Push(3)
	b.Push(4)
	b.Push(5)
	b.Push(6)
	b.Push(7)
	b.Push(8)

	c := NewBuffer[int](8)
	c.Push(0)
	c.Push(1)

	tests := []struct {
		name     string
		result   int
		expected int
	}{
		{"b.Get(0) == 8", b.Get(0), 8},
		{"b.Get(1) == 7", b.Get(1), 7},
		{"b.Get(2) == 6", b.Get(2), 6},
		{"b.Get(3) == 5", b.Get(3), 5},
		{"b.Get(4) == 4", b.Get(4), 4},
		{"b.Last() == 4", b.Last(), 4},
		{"c.Get(0) == 1", c.Get(0), 1},
		{"c.Get(1) == 0", c.Get(1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.result != tt.expected {
				t.Errorf("got %d, want %d", tt.result, tt.expected)
			}
		})
	}
}

func TestBuffer_State(t *testing.T) {
	b := NewBuffer[float64](3)
	if !b.IsEmpty() || b.IsFull() {
		t.Fatal("new buffer should be empty")
	}
	b.Push(1.5)
	b.Push(2.5)
	if b.IsEmpty() || b.IsFull() || b.Size() != 2 {
		t.Fatalf("got size %d, want 2", b.Size())
	}
	b.Push(3.5)
	b.Push(4.5)
	if !b.IsFull() || b.Size() != 3 {
		t.Errorf("buffer should stay full at capacity, got size %d", b.Size())
	}
	if b.Get(0) != 4.5 || b.Last() != 2.5 {
		t.Errorf("got newest=%v oldest=%v, want 4.5 and 2.5", b.Get(0), b.Last())
	}
}

func TestBuffer_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Get past size should panic")
		}
	}()
	NewBuffer[int](2).Get(0)
}
