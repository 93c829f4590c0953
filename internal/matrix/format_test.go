package matrix

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDenseString(t *testing.T) {
	assert.Equal(t, "Dense[int16](3x3)", Must(New[int16](3, 3)).String())

	var unbound Dense[float64]
	assert.Equal(t, "Dense[float64](unbound)", unbound.String())
}

func TestFprint(t *testing.T) {
	d := mustRows(t, [][]int{{1, 2, 3}, {20, 5, 300}})

	var buf bytes.Buffer
	require.NoError(t, d.Fprint(&buf))
	assert.Equal(t, "1  2 3\n20 5 300\n", buf.String())
	assert.Equal(t, buf.String(), d.Pretty())
}

func TestFprint_Unbound(t *testing.T) {
	var d Dense[int]
	assert.Equal(t, "<unbound>\n", d.Pretty())
}
