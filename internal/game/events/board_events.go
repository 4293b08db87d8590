package events

import (
	"time"
)

// Event type constants
const (
	TypeBoardCreated  = "board.created"
	TypeBoardRejected = "board.rejected"
)

// BoardCreatedEvent is published when a board has been generated
type BoardCreatedEvent struct {
	BaseEvent
	Width     int           `json:"width"`
	MineCount int           `json:"mine_count"`
	Duration  time.Duration `json:"duration"`
}

// NewBoardCreatedEvent creates a new BoardCreatedEvent
func NewBoardCreatedEvent(boardID string, width, mineCount int, duration time.Duration) *BoardCreatedEvent {
	return &BoardCreatedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeBoardCreated,
			Time:      time.Now(),
			Board:     boardID,
		},
		Width:     width,
		MineCount: mineCount,
		Duration:  duration,
	}
}

// BoardRejectedEvent is published when a board request fails validation.
// It carries no board ID since no board was made.
type BoardRejectedEvent struct {
	BaseEvent
	Width     int    `json:"width"`
	MineCount int    `json:"mine_count"`
	Reason    string `json:"reason"`
}

// NewBoardRejectedEvent creates a new BoardRejectedEvent
func NewBoardRejectedEvent(width, mineCount int, err error) *BoardRejectedEvent {
	return &BoardRejectedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeBoardRejected,
			Time:      time.Now(),
		},
		Width:     width,
		MineCount: mineCount,
		Reason:    err.Error(),
	}
}
