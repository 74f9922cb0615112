package evdev

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectEvents(t *testing.T, ch <-chan InputEvent, n int) []InputEvent {
	t.Helper()

	var out []InputEvent
	timeout := time.After(5 * time.Second)
	for len(out) < n {
		select {
		case ev, ok := <-ch:
			require.True(t, ok, "stream closed after %d of %d events", len(out), n)
			out = append(out, ev)
		case <-timeout:
			t.Fatalf("timed out after %d of %d events", len(out), n)
		}
	}
	return out
}

func TestStreamEvents(t *testing.T) {
	d, w := newPipeDevice(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := d.StreamEvents(ctx)
	require.NoError(t, err)

	events := []InputEvent{
		{Type: EV_KEY, Code: KEY_A, Value: 1},
		{Type: EV_SYN, Code: SYN_REPORT},
		{Type: EV_KEY, Code: KEY_A, Value: 0},
		{Type: EV_SYN, Code: SYN_REPORT},
	}
	writeEvents(t, w, events)

	got := collectEvents(t, ch, len(events))
	assert.Equal(t, events, got)

	cancel()
	for range ch {
	}
}

func TestStreamEventsClosesOnCancel(t *testing.T) {
	d, _ := newPipeDevice(t)

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := d.StreamEvents(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok, "channel must close, not deliver")
	case <-time.After(5 * time.Second):
		t.Fatal("channel did not close after cancellation")
	}
}

func TestStreamEventsClosesOnDeviceLoss(t *testing.T) {
	d, w := newPipeDevice(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := d.StreamEvents(ctx)
	require.NoError(t, err)

	// a closed write end reads as EOF, same as a removed device node
	require.NoError(t, w.Close())

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("channel did not close after device loss")
	}
}

func TestStreamReports(t *testing.T) {
	d, w := newPipeDevice(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := d.StreamReports(ctx)
	require.NoError(t, err)

	events := []InputEvent{
		{Type: EV_KEY, Code: KEY_A, Value: 1},
		{Type: EV_ABS, Code: ABS_X, Value: 7},
		{Type: EV_SYN, Code: SYN_REPORT},
		{Type: EV_KEY, Code: KEY_A, Value: 0},
		{Type: EV_SYN, Code: SYN_REPORT},
	}
	writeEvents(t, w, events)

	timeout := time.After(5 * time.Second)
	var reports []Report
	for len(reports) < 2 {
		select {
		case report, ok := <-ch:
			require.True(t, ok)
			reports = append(reports, report)
		case <-timeout:
			t.Fatal("timed out waiting for reports")
		}
	}

	assert.Equal(t, events[:2], reports[0].Events)
	assert.Equal(t, events[3:4], reports[1].Events)
	assert.False(t, reports[0].AfterDrop)
}
