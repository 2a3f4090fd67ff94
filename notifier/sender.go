package notifier

import (
	"context"
	"time"

	"github.com/achraf-fouad/aura-scents/models"
)

// SendResult reports a delivered notification.
type SendResult struct {
	MessageID string
	SentAt    time.Time
}

// Sender delivers the order-confirmation notification to the customer.
type Sender interface {
	SendOrderConfirmation(ctx context.Context, order *models.Order) (SendResult, error)
}
