package execctx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/splitstring/internal/grammar"
	"github.com/dshills/splitstring/internal/host"
)

func TestEditor(t *testing.T) {
	ctx := New("id", nil, nil, nil)
	assert.Nil(t, ctx.Editor())
	assert.NotNil(t, ctx.Logger)

	_, err := ctx.RequireEditor()
	assert.ErrorIs(t, err, ErrNoEditor)

	ws := host.NewMemoryWorkspace(nil)
	ctx = New("id", ws, nil, nil)
	_, err = ctx.RequireEditor()
	assert.ErrorIs(t, err, ErrNoEditor)

	ws.SetActive(host.NewDocument("", "x", grammar.JavaScript()))
	ed, err := ctx.RequireEditor()
	require.NoError(t, err)
	assert.Equal(t, "x", ed.LineText(0))
}

func TestData(t *testing.T) {
	ctx := New("id", nil, nil, nil)
	_, ok := ctx.GetData("k")
	assert.False(t, ok)

	ctx.SetData("k", 1)
	v, ok := ctx.GetData("k")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}
