package dial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeGeometry(t *testing.T) {
	tests := []struct {
		name        string
		count       int
		size        Size
		spacing     float64
		viewport    float64
		wantContent float64
		wantInset   float64
		wantValid   bool
	}{
		{
			name:        "five items no spacing",
			count:       5,
			size:        Size{Width: 60, Height: 40},
			viewport:    300,
			wantContent: 300,
			wantInset:   120,
			wantValid:   true,
		},
		{
			name:        "spacing between items only",
			count:       3,
			size:        Size{Width: 10, Height: 3},
			spacing:     2,
			viewport:    50,
			wantContent: 34,
			wantInset:   20,
			wantValid:   true,
		},
		{
			name:        "empty list has no content",
			count:       0,
			size:        Size{Width: 60, Height: 40},
			viewport:    300,
			wantContent: 0,
			wantInset:   120,
		},
		{
			name:        "viewport narrower than item clamps inset",
			count:       2,
			size:        Size{Width: 60, Height: 40},
			viewport:    40,
			wantContent: 120,
			wantInset:   0,
			wantValid:   true,
		},
		{
			name:        "zero viewport is invalid",
			count:       2,
			size:        Size{Width: 60, Height: 40},
			viewport:    0,
			wantContent: 120,
			wantInset:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := ComputeGeometry(tt.count, tt.size, tt.spacing, tt.viewport)
			assert.InDelta(t, tt.wantContent, g.ContentWidth, 1e-9)
			assert.InDelta(t, tt.wantInset, g.HorizontalInset, 1e-9)
			assert.Equal(t, tt.wantValid, g.Valid())
		})
	}
}

func TestComputeGeometry_Idempotent(t *testing.T) {
	a := ComputeGeometry(7, Size{Width: 12, Height: 3}, 1, 81)
	b := ComputeGeometry(7, Size{Width: 12, Height: 3}, 1, 81)
	assert.Equal(t, a, b)
}

func TestGeometry_CenteredOffsetPutsItemAtViewportCenter(t *testing.T) {
	g := ComputeGeometry(5, Size{Width: 60, Height: 40}, 0, 300)

	off := g.CenteredOffset(2)
	assert.InDelta(t, 0, off, 1e-9)
	// Item 2's center in viewport coordinates.
	assert.InDelta(t, 150, g.ItemCenter(2)-off, 1e-9)

	lo, hi := g.Bounds()
	assert.InDelta(t, -120, lo, 1e-9)
	assert.InDelta(t, 120, hi, 1e-9)
}

func TestGeometry_ItemCenters(t *testing.T) {
	g := ComputeGeometry(3, Size{Width: 10, Height: 1}, 2, 30)
	assert.Equal(t, []float64{5, 17, 29}, g.ItemCenters())
}

func TestGeometry_ItemAt(t *testing.T) {
	g := ComputeGeometry(3, Size{Width: 10, Height: 1}, 2, 30)

	tests := []struct {
		name   string
		offset float64
		x      float64
		want   int
	}{
		{"first item", 0, 3, 0},
		{"spacing gap", 0, 10.5, -1},
		{"second item", 0, 12, 1},
		{"shifted by offset", 12, 0, 1},
		{"negative content coordinate", -5, 2, -1},
		{"past content end", 0, 34, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.ItemAt(tt.offset, tt.x))
		})
	}
}

func TestResizeCorrection(t *testing.T) {
	// Shrinking by 100 moves the offset right by half of it.
	assert.InDelta(t, 50, ResizeCorrection(0, 300, 0, 200), 1e-9)
	assert.InDelta(t, -50, ResizeCorrection(0, 200, 0, 300), 1e-9)
	assert.InDelta(t, 0, ResizeCorrection(40, 300, 40, 300), 1e-9)
}
