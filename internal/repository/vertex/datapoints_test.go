package vertex

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatapointWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewDatapointWriter(&buf)

	require.NoError(t, w.Write("v1", "DR", []float32{0.5, -0.25}))
	require.NoError(t, w.Write("v2", "NABRE", []float32{1}))
	assert.Equal(t, 2, w.Count())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.JSONEq(t,
		`{"id":"v1","embedding":[0.5,-0.25],"restricts":[{"namespace":"translation","allow":["DR"]}]}`,
		lines[0])
}
