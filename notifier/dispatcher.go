package notifier

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/achraf-fouad/aura-scents/repository"
)

const sendTimeout = 10 * time.Second

// Dispatcher runs confirmation notifications off the request path. Jobs
// are queued on a buffered channel and processed by a single worker;
// delivery failures are logged and dropped, never retried or surfaced.
type Dispatcher struct {
	queue     chan uuid.UUID
	orderRepo repository.OrderRepository
	sender    Sender
	logger    *zap.Logger
	wg        sync.WaitGroup
	closeOnce sync.Once
}

func NewDispatcher(orderRepo repository.OrderRepository, sender Sender, queueSize int, logger *zap.Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}
	d := &Dispatcher{
		queue:     make(chan uuid.UUID, queueSize),
		orderRepo: orderRepo,
		sender:    sender,
		logger:    logger,
	}
	d.wg.Add(1)
	go d.run()
	return d
}

// EnqueueOrderConfirmed schedules a confirmation email. It never
// blocks: when the queue is full the job is dropped with a warning.
func (d *Dispatcher) EnqueueOrderConfirmed(orderID uuid.UUID) {
	select {
	case d.queue <- orderID:
	default:
		d.logger.Warn("Notification queue full, dropping job",
			zap.String("order_id", orderID.String()),
		)
	}
}

// Close stops accepting jobs and waits for in-flight sends to finish.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	d.wg.Wait()
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for orderID := range d.queue {
		d.process(orderID)
	}
}

func (d *Dispatcher) process(orderID uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	order, err := d.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		d.logger.Error("Notification skipped, order not readable",
			zap.String("order_id", orderID.String()),
			zap.Error(err),
		)
		return
	}

	if d.sender == nil {
		d.logger.Warn("No notification sender configured, skipping",
			zap.String("order_id", orderID.String()),
		)
		return
	}

	result, err := d.sender.SendOrderConfirmation(ctx, order)
	if err != nil {
		d.logger.Error("Confirmation notification failed",
			zap.String("order_id", orderID.String()),
			zap.Error(err),
		)
		return
	}

	d.logger.Info("Confirmation notification sent",
		zap.String("order_id", orderID.String()),
		zap.String("message_id", result.MessageID),
	)
}
