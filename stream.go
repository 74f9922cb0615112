package evdev

import (
	"context"
	"fmt"
	"time"

	"github.com/hxkit/evdev/internal/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

var log = logger.GetLogger()

// epollTimeout bounds how long the stream goroutine sits in epoll_wait
// before rechecking context cancellation.
const epollTimeout = 500 * time.Millisecond

// StreamEvents adapts the synchronous read path to channel consumption.
// It switches the descriptor into non-blocking mode, registers it with an
// epoll instance and, whenever the kernel signals readability, drains the
// queue through the same batch-read-and-decode the blocking path uses.
//
// The channel closes when ctx is cancelled or the device fails (removal,
// revocation). The adapter does not own the handle: the caller still
// closes the device, and must not read from the handle concurrently.
func (d *InputDevice) StreamEvents(ctx context.Context) (<-chan InputEvent, error) {
	drain, err := d.streamLoop(ctx)
	if err != nil {
		return nil, err
	}

	events := make(chan InputEvent)
	go func() {
		defer close(events)
		for batch := range drain {
			for _, ev := range batch {
				select {
				case events <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return events, nil
}

// StreamReports is StreamEvents grouped into synchronization reports.
// Reports following a kernel-side drop arrive with AfterDrop set, state
// re-queries are the caller's call.
func (d *InputDevice) StreamReports(ctx context.Context) (<-chan Report, error) {
	drain, err := d.streamLoop(ctx)
	if err != nil {
		return nil, err
	}

	reports := make(chan Report)
	go func() {
		defer close(reports)
		var tracker ReportTracker
		for batch := range drain {
			for i := range batch {
				report, done := tracker.Feed(&batch[i])
				if !done {
					continue
				}
				select {
				case reports <- *report:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return reports, nil
}

// streamLoop runs the epoll readiness loop, emitting one decoded batch per
// readable wakeup.
func (d *InputDevice) streamLoop(ctx context.Context) (<-chan []InputEvent, error) {
	fd := int(d.fd())

	if err := d.NonBlock(); err != nil {
		return nil, fmt.Errorf("%s: cannot enter non-blocking mode: %w", d.Path(), err)
	}

	epfd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return nil, fmt.Errorf("%s: epoll_create1: %w", d.Path(), err)
	}

	err = unix.EpollCtl(epfd, unix.EPOLL_CTL_ADD, fd, &unix.EpollEvent{
		Events: unix.EPOLLIN,
		Fd:     int32(fd),
	})
	if err != nil {
		unix.Close(epfd)
		return nil, fmt.Errorf("%s: epoll_ctl: %w", d.Path(), err)
	}

	batches := make(chan []InputEvent)

	go func() {
		defer close(batches)
		defer unix.Close(epfd)

		log.Debug("event stream started", zap.String("device", d.Path()))

		var epollEvents [1]unix.EpollEvent
		for {
			select {
			case <-ctx.Done():
				log.Debug("event stream cancelled", zap.String("device", d.Path()))
				return
			default:
			}

			n, err := unix.EpollWait(epfd, epollEvents[:], int(epollTimeout.Milliseconds()))
			if err != nil {
				if err == unix.EINTR {
					continue
				}
				log.Warn("epoll_wait failed, stopping event stream",
					zap.String("device", d.Path()), zap.Error(err))
				return
			}
			if n == 0 {
				continue
			}

			// drain everything the kernel has queued before waiting again
			for {
				batch, err := d.Read()
				if err == ErrWouldBlock {
					break
				}
				if err != nil {
					log.Debug("device read failed, stopping event stream",
						zap.String("device", d.Path()), zap.Error(err))
					return
				}

				select {
				case batches <- batch:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return batches, nil
}
