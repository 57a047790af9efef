package dto

import "time"

type CreateClassRequest struct {
	Name    string `json:"name" binding:"required"`
	Subject string `json:"subject" binding:"required"`
}

// CreateSessionRequest starts a class meeting. StartsAt defaults to now;
// the attendance window is always a fixed five minutes from the start.
type CreateSessionRequest struct {
	ClassID  uint       `json:"classId" binding:"required"`
	StartsAt *time.Time `json:"startsAt"`
}

type CreatePollRequest struct {
	SessionID uint     `json:"sessionId" binding:"required"`
	Question  string   `json:"question" binding:"required"`
	Options   []string `json:"options" binding:"required,min=2,dive,required"`
}

type PollRespondRequest struct {
	OptionID uint `json:"optionId" binding:"required"`
}

type SubmitDoubtRequest struct {
	Content string `json:"content" binding:"required"`
}

// SubmitFeedbackRequest carries the 1-5 rating; range is validated in the
// service so out-of-range values surface as a ValidationError, not a bind
// failure.
type SubmitFeedbackRequest struct {
	Rating  int     `json:"rating" binding:"required"`
	Comment *string `json:"comment"`
}
