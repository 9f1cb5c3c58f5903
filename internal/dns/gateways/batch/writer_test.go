package batch

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/domcheck/internal/dns/domain"
)

func TestWriter_WriteVerdicts(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	for _, v := range []domain.Verdict{domain.Bad, domain.Good, domain.Bad} {
		require.NoError(t, w.WriteVerdict(v))
	}
	assert.Empty(t, buf.String(), "output should be buffered until Flush")

	require.NoError(t, w.Flush())
	assert.Equal(t, "Bad\nGood\nBad\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriter_FlushError(t *testing.T) {
	w := NewWriter(failingWriter{})
	require.NoError(t, w.WriteVerdict(domain.Good))
	assert.EqualError(t, w.Flush(), "disk full")
}
