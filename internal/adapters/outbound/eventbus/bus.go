package eventbus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	evbus "github.com/asaskevich/EventBus"

	"github.com/realitycheck/realitycheck/internal/domain"
)

const progressTopic = "analysis:progress"

// Bus implements domain.ProgressBus for a single analysis.
//
// Publishing never waits on an observer: the bus handler only appends the
// event to the observer's mailbox, and a goroutine per observer delivers the
// mailbox in publish order.
type Bus struct {
	bus     evbus.Bus
	logger  *slog.Logger
	pending sync.WaitGroup

	mu        sync.Mutex
	mailboxes []*mailbox
	closed    bool
}

// New creates an empty bus. Each analysis gets its own.
func New(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Bus{bus: evbus.New(), logger: logger}
}

// Subscribe registers an observer for events published from now on.
func (b *Bus) Subscribe(observer domain.ProgressObserver) error {
	if observer == nil {
		return fmt.Errorf("subscribing to %s: nil observer", progressTopic)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return fmt.Errorf("subscribing to %s: bus closed", progressTopic)
	}

	mb := newMailbox()
	enqueue := func(e domain.ProgressEvent) {
		b.pending.Add(1)
		if !mb.put(e) {
			b.pending.Done()
		}
	}
	if err := b.bus.Subscribe(progressTopic, enqueue); err != nil {
		return fmt.Errorf("subscribing to %s: %w", progressTopic, err)
	}
	b.mailboxes = append(b.mailboxes, mb)
	go b.deliver(mb, observer)
	return nil
}

// Publish hands an event to every current subscriber and returns at once.
func (b *Bus) Publish(event domain.ProgressEvent) {
	b.bus.Publish(progressTopic, event)
}

// Drain waits until every published event has been handled, or until ctx
// ends. A stuck observer keeps its goroutine but no longer holds up the caller.
func (b *Bus) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		b.pending.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting subscribers. Observers still receive what is already
// queued for them, then their goroutines exit.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for _, mb := range b.mailboxes {
		mb.close()
	}
}

func (b *Bus) deliver(mb *mailbox, observer domain.ProgressObserver) {
	for {
		e, ok := mb.next()
		if !ok {
			return
		}
		b.notify(observer, e)
		b.pending.Done()
	}
}

func (b *Bus) notify(observer domain.ProgressObserver, e domain.ProgressEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Warn("progress observer panicked", "percentage", e.Percentage, "panic", r)
		}
	}()
	observer(e)
}

// mailbox is an unbounded FIFO of events for one observer.
type mailbox struct {
	mu     sync.Mutex
	queue  []domain.ProgressEvent
	closed bool
	wake   chan struct{}
}

func newMailbox() *mailbox {
	return &mailbox{wake: make(chan struct{}, 1)}
}

func (m *mailbox) put(e domain.ProgressEvent) bool {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return false
	}
	m.queue = append(m.queue, e)
	m.mu.Unlock()
	m.signal()
	return true
}

func (m *mailbox) close() {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	m.signal()
}

func (m *mailbox) signal() {
	select {
	case m.wake <- struct{}{}:
	default:
	}
}

// next blocks until an event is queued or the mailbox is closed and empty.
func (m *mailbox) next() (domain.ProgressEvent, bool) {
	for {
		m.mu.Lock()
		if len(m.queue) > 0 {
			e := m.queue[0]
			m.queue = m.queue[1:]
			m.mu.Unlock()
			return e, true
		}
		closed := m.closed
		m.mu.Unlock()
		if closed {
			return domain.ProgressEvent{}, false
		}
		<-m.wake
	}
}

// Factory returns a constructor producing a fresh bus per analysis.
func Factory(logger *slog.Logger) func() domain.ProgressBus {
	return func() domain.ProgressBus { return New(logger) }
}
