package evdev

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedAll(t *testing.T, tracker *ReportTracker, events []InputEvent) []*Report {
	t.Helper()

	var reports []*Report
	for i := range events {
		report, done := tracker.Feed(&events[i])
		if done {
			reports = append(reports, report)
		}
	}
	return reports
}

func TestReportGrouping(t *testing.T) {
	var tracker ReportTracker

	events := []InputEvent{
		{Type: EV_KEY, Code: KEY_A, Value: 1},
		{Type: EV_ABS, Code: ABS_X, Value: 120},
		{Type: EV_SYN, Code: SYN_REPORT},
	}

	reports := feedAll(t, &tracker, events)
	require.Len(t, reports, 1)
	assert.Equal(t, events[:2], reports[0].Events)
	assert.False(t, reports[0].AfterDrop)
	assert.Equal(t, 0, tracker.Pending(), "tracker must return to accumulating")
}

func TestReportMultipleBoundaries(t *testing.T) {
	var tracker ReportTracker

	events := []InputEvent{
		{Type: EV_KEY, Code: KEY_A, Value: 1},
		{Type: EV_SYN, Code: SYN_REPORT},
		{Type: EV_KEY, Code: KEY_A, Value: 0},
		{Type: EV_SYN, Code: SYN_REPORT},
	}

	reports := feedAll(t, &tracker, events)
	require.Len(t, reports, 2)
	assert.Equal(t, events[:1], reports[0].Events)
	assert.Equal(t, events[2:3], reports[1].Events)
}

func TestReportEmpty(t *testing.T) {
	var tracker ReportTracker

	report, done := tracker.Feed(&InputEvent{Type: EV_SYN, Code: SYN_REPORT})
	require.True(t, done)
	assert.Empty(t, report.Events)
	assert.False(t, report.AfterDrop)
}

func TestReportDropDiscardsPending(t *testing.T) {
	var tracker ReportTracker

	events := []InputEvent{
		{Type: EV_KEY, Code: KEY_A, Value: 1},
		{Type: EV_KEY, Code: KEY_B, Value: 1},
		{Type: EV_SYN, Code: SYN_DROPPED},
		{Type: EV_KEY, Code: KEY_C, Value: 1},
		{Type: EV_SYN, Code: SYN_REPORT},
	}

	reports := feedAll(t, &tracker, events)
	require.Len(t, reports, 1)

	// the pre-drop events are known-incomplete and must not survive
	assert.Equal(t, events[3:4], reports[0].Events)
	assert.True(t, reports[0].AfterDrop)
}

func TestReportAfterDropClears(t *testing.T) {
	var tracker ReportTracker

	events := []InputEvent{
		{Type: EV_SYN, Code: SYN_DROPPED},
		{Type: EV_SYN, Code: SYN_REPORT},
		{Type: EV_KEY, Code: KEY_X, Value: 1},
		{Type: EV_SYN, Code: SYN_REPORT},
	}

	reports := feedAll(t, &tracker, events)
	require.Len(t, reports, 2)
	assert.True(t, reports[0].AfterDrop)
	assert.False(t, reports[1].AfterDrop, "only the first post-drop report is flagged")
}

func TestReportKeepsMTBoundaries(t *testing.T) {
	var tracker ReportTracker

	events := []InputEvent{
		{Type: EV_ABS, Code: ABS_MT_POSITION_X, Value: 10},
		{Type: EV_SYN, Code: SYN_MT_REPORT},
		{Type: EV_ABS, Code: ABS_MT_POSITION_X, Value: 30},
		{Type: EV_SYN, Code: SYN_MT_REPORT},
		{Type: EV_SYN, Code: SYN_REPORT},
	}

	reports := feedAll(t, &tracker, events)
	require.Len(t, reports, 1)
	// protocol A multitouch relies on SYN_MT_REPORT markers inside the report
	assert.Equal(t, events[:4], reports[0].Events)
}
