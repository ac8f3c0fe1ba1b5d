package cursor

import "testing"

func TestMove(t *testing.T) {
	tests := []struct {
		name       string
		start      int
		delta      int
		len        int
		height     int
		wantPos    int
		wantOffset int
	}{
		{"down within view", 0, 1, 10, 5, 1, 0},
		{"down into margin scrolls", 0, 3, 10, 5, 3, 1},
		{"up clamps to first", 2, -5, 10, 5, 0, 0},
		{"down clamps to last", 0, 20, 10, 5, 9, 5},
		{"short list never scrolls", 0, 3, 4, 5, 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(2)
			c.Jump(tt.start, tt.len, tt.height)
			c.Move(tt.delta, tt.len, tt.height)
			if c.Pos() != tt.wantPos || c.Offset() != tt.wantOffset {
				t.Errorf("pos/offset = %d/%d, want %d/%d", c.Pos(), c.Offset(), tt.wantPos, tt.wantOffset)
			}
		})
	}
}

func TestMove_UpScrollsBack(t *testing.T) {
	c := New(2)
	c.Jump(9, 10, 5)
	c.Move(-5, 10, 5)
	if c.Pos() != 4 || c.Offset() != 2 {
		t.Errorf("pos/offset = %d/%d, want 4/2", c.Pos(), c.Offset())
	}
}

func TestJump_EmptyListResets(t *testing.T) {
	c := New(2)
	c.Jump(5, 10, 4)
	c.Jump(3, 0, 4)
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("pos/offset = %d/%d, want 0/0", c.Pos(), c.Offset())
	}
}

func TestClamp_AfterShrink(t *testing.T) {
	c := New(1)
	c.Jump(8, 10, 4)
	c.Clamp(3, 4)
	if c.Pos() != 2 || c.Offset() != 0 {
		t.Errorf("pos/offset = %d/%d, want 2/0", c.Pos(), c.Offset())
	}
}

func TestMarginLargerThanViewport(t *testing.T) {
	c := New(5)
	c.Jump(4, 10, 3)
	if start, end := c.VisibleRange(10, 3); c.Pos() < start || c.Pos() >= end {
		t.Errorf("cursor %d outside visible range [%d, %d)", c.Pos(), start, end)
	}
}

func TestVisibleRange(t *testing.T) {
	c := New(0)
	if s, e := c.VisibleRange(0, 5); s != 0 || e != 0 {
		t.Errorf("empty list range = [%d, %d)", s, e)
	}
	c.Jump(7, 10, 4)
	if s, e := c.VisibleRange(10, 4); s != 4 || e != 8 {
		t.Errorf("range = [%d, %d), want [4, 8)", s, e)
	}
}

func TestRowAt(t *testing.T) {
	c := New(0)
	c.Jump(7, 10, 4)
	tests := []struct {
		y, len, want int
	}{
		{0, 10, 4},
		{3, 10, 7},
		{4, 10, -1},
		{-1, 10, -1},
		{2, 5, -1},
	}
	for _, tt := range tests {
		if got := c.RowAt(tt.y, tt.len, 4); got != tt.want {
			t.Errorf("RowAt(%d, len %d) = %d, want %d", tt.y, tt.len, got, tt.want)
		}
	}
}

func TestHandleKey(t *testing.T) {
	tests := []struct {
		key     string
		start   int
		wantPos int
		handled bool
	}{
		{"j", 0, 1, true},
		{"down", 0, 1, true},
		{"k", 3, 2, true},
		{"up", 3, 2, true},
		{"g", 5, 0, true},
		{"home", 5, 0, true},
		{"G", 0, 19, true},
		{"end", 0, 19, true},
		{"ctrl+d", 0, 5, true},
		{"pgdown", 0, 5, true},
		{"ctrl+u", 10, 5, true},
		{"pgup", 10, 5, true},
		{"x", 4, 4, false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			c := New(2)
			c.Jump(tt.start, 20, 10)
			if got := c.HandleKey(tt.key, 20, 10); got != tt.handled {
				t.Errorf("HandleKey(%q) = %v, want %v", tt.key, got, tt.handled)
			}
			if c.Pos() != tt.wantPos {
				t.Errorf("pos = %d, want %d", c.Pos(), tt.wantPos)
			}
		})
	}
}
