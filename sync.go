package evdev

// Report groups every event delivered between two SYN_REPORT markers: one
// atomic state change as the kernel saw it.
//
// AfterDrop marks a report that follows a SYN_DROPPED. The kernel's event
// queue overflowed and events were lost: state the consumer derived from
// earlier reports is suspect and should be rebuilt from a fresh query
// (the InputDevice re-queries its own caches when it decodes the drop).
type Report struct {
	Events    []InputEvent
	AfterDrop bool
}

// ReportTracker folds a raw event stream into report boundaries. It has
// two states: accumulating events into the pending report, and having just
// emitted one. Consumers that only want the raw firehose can skip it
// entirely.
type ReportTracker struct {
	pending   []InputEvent
	afterDrop bool
}

// Feed consumes one decoded event. When the event completes a report the
// report is returned with done=true and the tracker goes back to
// accumulating, otherwise done is false.
//
// SYN_DROPPED discards everything accumulated since the last boundary, the
// kernel already threw part of it away so what remains is known-incomplete.
func (t *ReportTracker) Feed(ev *InputEvent) (report *Report, done bool) {
	if ev.Type != EV_SYN {
		t.pending = append(t.pending, *ev)
		return nil, false
	}

	switch ev.Code {
	case SYN_REPORT:
		report = &Report{Events: t.pending, AfterDrop: t.afterDrop}
		t.pending = nil
		t.afterDrop = false
		return report, true
	case SYN_DROPPED:
		t.pending = nil
		t.afterDrop = true
		return nil, false
	default:
		// SYN_CONFIG and SYN_MT_REPORT travel inside the report
		t.pending = append(t.pending, *ev)
		return nil, false
	}
}

// Pending returns the number of events accumulated towards the next report.
func (t *ReportTracker) Pending() int {
	return len(t.pending)
}
