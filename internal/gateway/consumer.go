// Package gateway consumes payment-confirmation events from the payment
// gateway's callback pipeline. Events may arrive with fields missing; they
// are stored exactly as given and the reconciliation engine fills the gaps
// later, keeping this path fast and free of guesswork.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	errdefs "github.com/Majormiles/job-portal-sub004/internal/errors"
	"github.com/Majormiles/job-portal-sub004/internal/models"
	"github.com/Majormiles/job-portal-sub004/pkg/logging"
)

type PaymentConfirmer interface {
	ConfirmPayment(ctx context.Context, input *models.ConfirmPaymentInput) (*models.User, error)
}

// ConfirmationEvent is the wire shape of one gateway confirmation.
type ConfirmationEvent struct {
	UserID    string    `json:"user_id"`
	Reference string    `json:"reference"`
	Amount    *float64  `json:"amount,omitempty"`
	Currency  *string   `json:"currency,omitempty"`
	Gateway   *string   `json:"gateway,omitempty"`
	PaidAt    time.Time `json:"paid_at"`
}

type Consumer struct {
	reader  *kafka.Reader
	service PaymentConfirmer
	log     *logging.Logger
}

func NewConsumer(brokers []string, topic, groupID string, service PaymentConfirmer, log *logging.Logger) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		GroupID: groupID,
		Topic:   topic,
	})
	return &Consumer{
		reader:  reader,
		service: service,
		log:     log,
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}

// Run fetches confirmations until the context is cancelled. Malformed events
// and unknown users are logged and committed; the consumer never blocks the
// confirmation stream on one bad message.
func (c *Consumer) Run(ctx context.Context) {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.log.Info(ctx, "confirmation consumer shutting down")
				return
			}
			c.log.Error(ctx, "failed to fetch message", zap.Error(err))
			continue
		}

		c.handleMessage(ctx, msg)

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.log.Error(ctx, "failed to commit message", zap.Error(err))
		}
	}
}

func (c *Consumer) handleMessage(ctx context.Context, msg kafka.Message) {
	var event ConfirmationEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		c.log.Warn(ctx, "failed to unmarshal confirmation",
			zap.String("topic", msg.Topic),
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		return
	}

	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		c.log.Warn(ctx, "confirmation with invalid user id",
			zap.String("user_id", event.UserID),
			zap.Error(err),
		)
		return
	}

	input := &models.ConfirmPaymentInput{
		UserID:    userID,
		Reference: event.Reference,
		Amount:    event.Amount,
		Currency:  event.Currency,
		Gateway:   event.Gateway,
		PaidAt:    event.PaidAt,
	}

	if _, err := c.service.ConfirmPayment(ctx, input); err != nil {
		switch {
		case errors.Is(err, errdefs.ErrNotFound):
			c.log.Warn(ctx, "confirmation for unknown user",
				zap.String("user_id", event.UserID),
			)
		case errors.Is(err, errdefs.ErrInvalidArgument):
			c.log.Warn(ctx, "confirmation with missing reference",
				zap.String("user_id", event.UserID),
			)
		default:
			c.log.Error(ctx, "failed to apply confirmation",
				zap.String("user_id", event.UserID),
				zap.Error(err),
			)
		}
		return
	}

	c.log.Info(ctx, "payment confirmed",
		zap.String("user_id", event.UserID),
		zap.String("reference", event.Reference),
	)
}
