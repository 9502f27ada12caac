package publish

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/patrolgrid/internal/grid"
	"github.com/vk/patrolgrid/internal/patrol"
	"github.com/vk/patrolgrid/internal/testutil"
)

func TestPayload(t *testing.T) {
	report := &patrol.Report{
		Name:          "sample",
		Rows:          10,
		Cols:          10,
		Visited:       41,
		Candidates:    40,
		Loops:         2,
		LoopPositions: []grid.Position{{Row: 6, Col: 3}, {Row: 9, Col: 7}},
		Duration:      1500 * time.Millisecond,
	}

	payload := Payload(report)

	assert.Equal(t, "sample", payload["name"])
	assert.Equal(t, 41, payload["visited"])
	assert.Equal(t, 2, payload["loops"])
	assert.Equal(t, [][]int{{6, 3}, {9, 7}}, payload["loop_positions"])
	assert.Equal(t, int64(1500), payload["duration_ms"])
}

func TestPayload_NoLoopsEncodesEmptyList(t *testing.T) {
	payload := Payload(&patrol.Report{Name: "tiny", Visited: 1})

	assert.Equal(t, [][]int{}, payload["loop_positions"])
}

func TestNop(t *testing.T) {
	var p Publisher = Nop{}

	require.NoError(t, p.Publish(context.Background(), &patrol.Report{}))
	require.NoError(t, p.Close())
}

func TestDial_InvalidURL(t *testing.T) {
	testCases := []string{
		"://missing-scheme",
		"not a url",
		"/relative/path",
	}

	for _, rawURL := range testCases {
		t.Run(rawURL, func(t *testing.T) {
			_, err := Dial(testutil.Context(t), rawURL, Options{})
			require.ErrorIs(t, err, ErrInvalidURL)
		})
	}
}

func TestDial_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(testutil.Context(t))
	cancel()

	_, err := Dial(ctx, "http://127.0.0.1:1", Options{ConnectTimeout: time.Second})

	require.Error(t, err)
}
