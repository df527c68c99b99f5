package tasks

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"beautycrave/models"
)

const TypeConfirmationSend = "confirmation:send"

// NewConfirmationTask wraps a booking confirmation payload for the queue.
func NewConfirmationTask(payload models.ConfirmationPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal confirmation payload: %w", err)
	}
	return asynq.NewTask(TypeConfirmationSend, b), nil
}
