package diff

import (
	"bytes"
	"errors"
	"testing"

	"github.com/jonathan/device-watch/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Plain(t *testing.T) {
	changes := []types.Change{
		{Op: types.OpEqual, Text: "same\n"},
		{Op: types.OpDelete, Text: "gone\n"},
		{Op: types.OpInsert, Text: "added\n"},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, changes, false))
	assert.Equal(t, " same\n-gone\n+added\n", buf.String())
}

func TestRender_Color(t *testing.T) {
	changes := []types.Change{
		{Op: types.OpEqual, Text: "same\n"},
		{Op: types.OpDelete, Text: "gone\n"},
		{Op: types.OpInsert, Text: "added\n"},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, changes, true))
	assert.Equal(t,
		" same\n"+
			ColorRed+"-gone"+ColorReset+"\n"+
			ColorGreen+"+added"+ColorReset+"\n",
		buf.String())
}

func TestRender_LineWithoutNewline(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, []types.Change{{Op: types.OpInsert, Text: "tail"}}, false))
	assert.Equal(t, "+tail\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRender_WriteError(t *testing.T) {
	err := Render(failingWriter{}, []types.Change{{Op: types.OpEqual, Text: "x\n"}}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to render diff")
}
