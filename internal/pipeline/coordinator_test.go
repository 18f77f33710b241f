package pipeline

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nrgchamp/sensormon/internal/record"
	"nrgchamp/sensormon/internal/workerpool"
)

func TestProcessRecordDropsUnparseableLine(t *testing.T) {
	c := New(Deps{})
	c.ProcessRecord("not a sensor line at all")
	assert.Equal(t, int64(1), c.Stats().RecordsDropped)
	assert.Equal(t, int64(0), c.Stats().RecordsProcessed)
}

func TestProcessRecordFeedsEveryCollaborator(t *testing.T) {
	c := New(Deps{})
	c.ProcessRecord("serial:S1 type:temp temp:24.5")
	assert.Equal(t, int64(1), c.Stats().RecordsProcessed)
	assert.Equal(t, 1, c.Registry().Count())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	res, err := c.AnalyzeType(ctx, record.TypeTemperature)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)
}

func TestRunSequentialProcessesEveryLine(t *testing.T) {
	c := New(Deps{})
	in := strings.NewReader("serial:S1 type:temp temp:20\nserial:S2 type:humidity hum:40\n")
	require.NoError(t, c.RunSequential(in))
	assert.Equal(t, int64(2), c.Stats().RecordsProcessed)
}

func TestRunPoolProcessesEveryLine(t *testing.T) {
	c := New(Deps{})
	pool := workerpool.New(2)
	in := strings.NewReader("serial:S1 type:temp temp:20\nserial:S2 type:humidity hum:40\nserial:S3 type:battery bat:10 batmax:100\n")
	require.NoError(t, c.RunPool(in, pool))
	assert.Equal(t, int64(3), c.Stats().RecordsProcessed)
}

func TestStreamDriverProcessesProducedLines(t *testing.T) {
	c := New(Deps{})
	d := NewStreamDriver(c, 4)
	require.NoError(t, d.Start(c))
	require.NoError(t, d.Produce("serial:S1 type:temp temp:20"))
	d.Stop()
	assert.Equal(t, int64(1), c.Stats().RecordsProcessed)
}
