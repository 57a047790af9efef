package dto

import "time"

// Payloads pushed on the per-session live channel. Shapes deliberately
// mirror the REST responses so clients can reconcile by re-fetching.

type PollOptionBrief struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

type PollCreatedEvent struct {
	ID       uint              `json:"id"`
	Question string            `json:"question"`
	Options  []PollOptionBrief `json:"options"`
}

type OptionCountEntry struct {
	OptionID uint  `json:"optionId"`
	Count    int64 `json:"count"`
}

type PollUpdateEvent struct {
	PollID  uint               `json:"pollId"`
	Results []OptionCountEntry `json:"results"`
}

type DoubtEvent struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
