// Package notification provides best-effort notification dispatch for roster events.
package notification

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Notification is a message addressed to a single recipient.
type Notification struct {
	Recipient string
	Message   string
}

// Notifier delivers a notification to its recipient.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// LogNotifier writes notifications to the application log.
// Stands in for an email or websocket delivery channel.
type LogNotifier struct {
	logger *zap.SugaredLogger
}

// NewLogNotifier creates a new log-backed notifier.
func NewLogNotifier(logger *zap.SugaredLogger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the notification.
func (n *LogNotifier) Notify(_ context.Context, msg Notification) error {
	n.logger.Infow("notification sent",
		"recipient", msg.Recipient,
		"message", msg.Message,
	)
	return nil
}

// Dispatcher sends notifications asynchronously. Delivery failures are
// logged and never propagated to the caller.
type Dispatcher struct {
	notifier Notifier
	logger   *zap.SugaredLogger
	timeout  time.Duration
	wg       sync.WaitGroup
}

// NewDispatcher creates a new asynchronous dispatcher around a notifier.
func NewDispatcher(notifier Notifier, logger *zap.SugaredLogger) *Dispatcher {
	return &Dispatcher{
		notifier: notifier,
		logger:   logger,
		timeout:  5 * time.Second,
	}
}

// Dispatch delivers the notification in the background.
func (d *Dispatcher) Dispatch(n Notification) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				d.logger.Errorw("notifier panicked", "recipient", n.Recipient, "panic", r)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := d.notifier.Notify(ctx, n); err != nil {
			d.logger.Warnw("notification delivery failed",
				"recipient", n.Recipient,
				"error", err,
			)
		}
	}()
}

// Wait blocks until all in-flight notifications have been processed.
// Used on shutdown and in tests.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
