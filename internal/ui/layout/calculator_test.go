package layout

import "testing"

func TestIsNarrowMode(t *testing.T) {
	tests := []struct {
		width int
		want  bool
	}{
		{40, true},
		{59, true},
		{60, false},
		{120, false},
	}
	for _, tt := range tests {
		if got := IsNarrowMode(tt.width); got != tt.want {
			t.Errorf("IsNarrowMode(%d) = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestPaneArea(t *testing.T) {
	tests := []struct {
		name         string
		windowHeight int
		top          int
		want         int
	}{
		{"regular", 40, 10, 29},
		{"keeps one row when tiny", 8, 10, 3},
		{"exact minimum", 14, 10, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PaneArea(tt.windowHeight, tt.top); got != tt.want {
				t.Errorf("PaneArea(%d, %d) = %d, want %d", tt.windowHeight, tt.top, got, tt.want)
			}
		})
	}
}

func TestStacked(t *testing.T) {
	tests := []struct {
		name  string
		width int
		area  int
		want  bool
	}{
		{"wide", 100, 30, false},
		{"narrow with room", 50, 30, true},
		{"narrow and short", 50, 5, false},
		{"narrow at two panes", 50, 6, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Stacked(tt.width, tt.area); got != tt.want {
				t.Errorf("Stacked(%d, %d) = %v, want %v", tt.width, tt.area, got, tt.want)
			}
		})
	}
}

func TestWidths(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		stacked    bool
		wantList   int
		wantDetail int
	}{
		{"side by side halves", 100, false, 50, 50},
		{"list keeps its minimum", 40, false, 24, 16},
		{"tiny terminal", 20, false, 20, 0},
		{"stacked uses full width", 50, true, 50, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ListWidth(tt.width, tt.stacked); got != tt.wantList {
				t.Errorf("ListWidth(%d, %v) = %d, want %d", tt.width, tt.stacked, got, tt.wantList)
			}
			if got := DetailWidth(tt.width, tt.stacked); got != tt.wantDetail {
				t.Errorf("DetailWidth(%d, %v) = %d, want %d", tt.width, tt.stacked, got, tt.wantDetail)
			}
		})
	}
}

func TestHeights(t *testing.T) {
	tests := []struct {
		name       string
		area       int
		stacked    bool
		wantList   int
		wantDetail int
	}{
		{"side by side", 30, false, 30, 30},
		{"stacked two thirds", 30, true, 20, 10},
		{"stacked minimum", 6, true, 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, detail := ListHeight(tt.area, tt.stacked), DetailHeight(tt.area, tt.stacked)
			if list != tt.wantList || detail != tt.wantDetail {
				t.Errorf("heights(%d, %v) = %d/%d, want %d/%d",
					tt.area, tt.stacked, list, detail, tt.wantList, tt.wantDetail)
			}
			if tt.stacked && list+detail != tt.area {
				t.Errorf("stacked panes use %d rows, want %d", list+detail, tt.area)
			}
		})
	}
}
