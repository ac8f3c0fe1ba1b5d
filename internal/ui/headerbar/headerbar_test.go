package headerbar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/sukinote/internal/ui/testutil"
)

var tabs = []Tab{{Name: "Notes", Active: true}, {Name: "Category"}, {Name: "Sort"}}

func TestRender_FullWidth(t *testing.T) {
	out := Render("All · 3 notes", tabs, 80)
	plain := testutil.StripANSI(out)

	assert.Equal(t, 80, testutil.MeasureWidth(out))
	assert.Contains(t, plain, "sukinote  All · 3 notes")
	assert.Contains(t, plain, "Notes │ Category │ Sort")
	assert.True(t, len(plain) > 0 && plain[len(plain)-1] == 't', "tabs are right aligned")
}

func TestRender_NarrowDropsTabs(t *testing.T) {
	out := Render("All · 3 notes", tabs, 20)
	plain := testutil.StripANSI(out)

	assert.LessOrEqual(t, testutil.MeasureWidth(out), 20)
	assert.NotContains(t, plain, "Category")
	assert.Contains(t, plain, "sukinote")
}

func TestRender_SummaryTruncatedBeforeTabs(t *testing.T) {
	out := Render("a very long summary that cannot possibly fit next to the tabs", tabs, 50)
	plain := testutil.StripANSI(out)

	assert.Equal(t, 50, testutil.MeasureWidth(out))
	assert.Contains(t, plain, "…")
	assert.Contains(t, plain, "Sort")
}

func TestRender_NoTabs(t *testing.T) {
	plain := testutil.StripANSI(Render("", nil, 40))
	assert.Equal(t, "sukinote", plain)
}

func TestRender_ZeroWidth(t *testing.T) {
	assert.Empty(t, Render("x", tabs, 0))
}
