package notification

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const KindEmail = "email"

type Topic string

const (
	TopicPickupScheduled   Topic = "pickup_scheduled"
	TopicExchangeCompleted Topic = "exchange_completed"
)

type Status string

const (
	StatusQueued     Status = "queued"
	StatusProcessing Status = "processing"
	StatusSent       Status = "sent"
	StatusFailed     Status = "failed"
)

// Job is an outbox entry written in the same transaction as the business rows.
type Job struct {
	Kind    string
	Topic   Topic
	Payload []byte
	RunAt   time.Time
}

type PickupScheduledPayload struct {
	UserID        uuid.UUID `json:"user_id"`
	PickupID      uuid.UUID `json:"pickup_id"`
	WasteType     string    `json:"waste_type"`
	Weight        float64   `json:"estimated_weight"`
	PreferredDate string    `json:"preferred_date"`
	PointsAwarded int64     `json:"points_awarded"`
}

type ExchangeCompletedPayload struct {
	UserID      uuid.UUID `json:"user_id"`
	OrderID     uuid.UUID `json:"order_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	PointsSpent int64     `json:"points_spent"`
}

func NewJob(topic Topic, payload any, runAt time.Time) (Job, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Job{}, fmt.Errorf("marshal %s payload: %w", topic, err)
	}
	return Job{Kind: KindEmail, Topic: topic, Payload: body, RunAt: runAt}, nil
}

// NextStatus decides where a job goes after a failed attempt.
func NextStatus(attempts, maxAttempts int32) Status {
	if attempts >= maxAttempts {
		return StatusFailed
	}
	return StatusQueued
}
