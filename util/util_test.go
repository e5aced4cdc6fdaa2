package util

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestPriorityQueueOrder(t *testing.T) {
	pq := NewPriorityQueue[string, float32](4)
	pq.Enqueue("c", 3)
	pq.Enqueue("a", 1)
	pq.Enqueue("d", 4.5)
	pq.Enqueue("b", 2)

	require.Equal(t, 4, pq.Length())
	order := NewList[string](4)
	for {
		item, ok := pq.Dequeue()
		if !ok {
			break
		}
		order.Add(item)
	}
	require.Equal(t, List[string]{"a", "b", "c", "d"}, order)

	_, ok := pq.Dequeue()
	require.False(t, ok)
}

func TestPriorityQueueClear(t *testing.T) {
	pq := NewPriorityQueue[int32, int32](2)
	pq.Enqueue(1, 1)
	pq.Enqueue(2, 2)
	pq.Clear()
	require.Equal(t, 0, pq.Length())
}

func TestDict(t *testing.T) {
	d := NewDict[string, int](2)
	d.Set("auto", 1)
	require.True(t, d.ContainsKey("auto"))
	require.False(t, d.ContainsKey("bogus"))
	require.Equal(t, 1, d.Get("auto"))
	require.Equal(t, 1, d.Length())

	pair := MakeTuple(uint32(1), uint32(2))
	require.Equal(t, uint32(1), pair.A)
	require.Equal(t, uint32(2), pair.B)
}

func TestLogHandler(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(NewLogHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	logger.Debug("hidden")
	logger.Info("costing created", "costing", "auto")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.True(t, strings.HasSuffix(out, "\n"))
	require.Contains(t, out, "INFO costing created costing=auto")
}
