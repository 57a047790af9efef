package dto

import "time"

type ClassResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject"`
	TeacherID uint      `json:"teacher_id"`
	CreatedAt time.Time `json:"created_at"`
}

type TeacherInfo struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ClassWithTeacherResponse is the admin listing shape; it embeds the owning
// teacher but never any student data.
type ClassWithTeacherResponse struct {
	ID        uint        `json:"id"`
	Name      string      `json:"name"`
	Subject   string      `json:"subject"`
	Teacher   TeacherInfo `json:"teacher"`
	CreatedAt time.Time   `json:"created_at"`
}

type SessionResponse struct {
	ID                 uint      `json:"id"`
	ClassID            uint      `json:"class_id"`
	StartsAt           time.Time `json:"starts_at"`
	AttendanceClosesAt time.Time `json:"attendance_closes_at"`
	CreatedAt          time.Time `json:"created_at"`
}

type AttendanceCountResponse struct {
	SessionID uint  `json:"sessionId"`
	Count     int64 `json:"count"`
}

type PollOptionResponse struct {
	ID       uint   `json:"id"`
	Text     string `json:"text"`
	Position int    `json:"position"`
}

type PollResponseDTO struct {
	ID        uint                 `json:"id"`
	SessionID uint                 `json:"session_id"`
	Question  string               `json:"question"`
	IsActive  bool                 `json:"is_active"`
	Options   []PollOptionResponse `json:"options"`
	CreatedAt time.Time            `json:"created_at"`
}

type PollSummary struct {
	ID       uint   `json:"id"`
	Question string `json:"question"`
}

// PollResultEntry reports a single option's count. Options with zero votes
// are always present; the results view is seeded from the full option list.
type PollResultEntry struct {
	OptionID uint   `json:"optionId"`
	Text     string `json:"text"`
	Count    int64  `json:"count"`
}

type PollResultsResponse struct {
	Poll    PollSummary       `json:"poll"`
	Results []PollResultEntry `json:"results"`
}

// DoubtResponse is the anonymous projection of a doubt. There is
// deliberately no student field here.
type DoubtResponse struct {
	ID         uint      `json:"id"`
	Content    string    `json:"content"`
	IsResolved bool      `json:"is_resolved"`
	CreatedAt  time.Time `json:"created_at"`
}

type FeedbackAggregateResponse struct {
	SessionID     uint    `json:"sessionId"`
	AverageRating float64 `json:"averageRating"`
	TotalFeedback int64   `json:"totalFeedback"`
}

// FeedbackCommentResponse is anonymous: rating, comment and timestamp only.
type FeedbackCommentResponse struct {
	ID        uint      `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
