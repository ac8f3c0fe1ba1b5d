package searchbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/sukinote/internal/ui/action"
	"github.com/llehouerou/sukinote/internal/ui/testutil"
)

func result(t *testing.T, m *Model, key string) Result {
	t.Helper()
	cmd := m.Update(testutil.Key(key))
	require.NotNil(t, cmd)
	msg, ok := cmd().(action.Msg)
	require.True(t, ok, "expected an action message")
	assert.Equal(t, "searchbar", msg.Source)
	res, ok := msg.Action.(Result)
	require.True(t, ok)
	return res
}

func TestSearchbar_TypeAndApply(t *testing.T) {
	m := New()
	assert.Nil(t, m.Update(testutil.Key("x")), "inactive bar ignores keys")
	assert.Empty(t, m.Query())

	m.Start()
	require.True(t, m.Active())
	m.Update(testutil.Key("cof"))
	assert.Equal(t, "cof", m.Query())

	res := result(t, &m, "enter")
	assert.Equal(t, Result{Query: "cof"}, res)
	assert.False(t, m.Active())
	assert.Equal(t, "cof", m.Query(), "enter keeps the query applied")

	m.Start()
	m.Update(testutil.Key("backspace"))
	assert.Equal(t, "co", m.Query(), "reopening edits the same query")
}

func TestSearchbar_EscapeClears(t *testing.T) {
	m := New()
	m.Start()
	m.Update(testutil.Key("tea"))

	res := result(t, &m, "esc")
	assert.True(t, res.Canceled)
	assert.False(t, m.Active())
	assert.Empty(t, m.Query())
}

func TestSearchbar_View(t *testing.T) {
	m := New()
	assert.Empty(t, m.View(40), "nothing to show without a query")

	m.Start()
	m.Update(testutil.Key("piano"))
	assert.Contains(t, testutil.StripANSI(m.View(40)), "/piano")
	assert.LessOrEqual(t, testutil.MeasureWidth(m.View(10)), 10)

	m.Update(testutil.Key("enter"))
	view := testutil.StripANSI(m.View(40))
	assert.Contains(t, view, "/piano")
	assert.Contains(t, view, "esc: clear search")
	assert.Empty(t, m.View(0))
}
