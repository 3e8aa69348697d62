package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeMarketSnapshot = "market:snapshot"

// SnapshotPayload identifies the (pincode, category) pair to refresh.
type SnapshotPayload struct {
	Pincode  string `json:"pincode"`
	Category string `json:"category"`
}

// NewSnapshotTask builds a market snapshot refresh task.
func NewSnapshotTask(payload SnapshotPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeMarketSnapshot, b), nil
}
