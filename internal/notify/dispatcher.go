package notify

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"vpprealtech/server/internal/mailer"
)

var (
	ErrQueueFull = errors.New("notification queue is full")
	ErrClosed    = errors.New("notification queue is closed")
)

// Sender delivers a single outbound message.
type Sender interface {
	Send(msg mailer.Message) error
}

// Dispatcher is an in-memory one-way queue for outbound notifications.
// Enqueue never blocks and delivery happens on a background goroutine, so
// the operation that triggered a notification is already durable and
// answered by the time the send is attempted. Send failures are logged
// and dropped.
type Dispatcher struct {
	items  chan mailer.Message
	done   chan struct{}
	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
	sender Sender
	logger *logrus.Logger
}

// NewDispatcher creates a dispatcher with the given buffer size.
func NewDispatcher(sender Sender, bufferSize int, logger *logrus.Logger) *Dispatcher {
	return &Dispatcher{
		items:  make(chan mailer.Message, bufferSize),
		done:   make(chan struct{}),
		sender: sender,
		logger: logger,
	}
}

// Start begins delivering queued messages.
func (d *Dispatcher) Start() {
	d.wg.Add(1)
	go d.process()
}

// Enqueue adds a message to the queue. It returns ErrQueueFull instead of
// blocking when the buffer is full; the message is dropped in that case.
func (d *Dispatcher) Enqueue(msg mailer.Message) error {
	d.mu.RLock()
	if d.closed {
		d.mu.RUnlock()
		return ErrClosed
	}
	d.mu.RUnlock()

	select {
	case d.items <- msg:
		d.logger.WithField("to", msg.To).Debug("Queued notification")
		return nil
	default:
		return ErrQueueFull
	}
}

func (d *Dispatcher) process() {
	defer d.wg.Done()
	for {
		select {
		case <-d.done:
			return
		case msg := <-d.items:
			if err := d.sender.Send(msg); err != nil {
				d.logger.WithError(err).WithFields(logrus.Fields{
					"to":      msg.To,
					"subject": msg.Subject,
				}).Error("Failed to send notification")
			}
		}
	}
}

// Close stops delivery and rejects further messages. Safe to call twice.
func (d *Dispatcher) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.done)
	d.mu.Unlock()

	d.wg.Wait()
	return nil
}

// Len returns the number of queued messages.
func (d *Dispatcher) Len() int {
	return len(d.items)
}

// IsClosed reports whether the dispatcher has been closed.
func (d *Dispatcher) IsClosed() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.closed
}
