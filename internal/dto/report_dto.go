package dto

// TeacherReport aggregates a teacher's feedback across every session of
// every class they own, plus the derived bonus suggestion. BonusAmount is
// nil when the average falls below the lowest tier and the row is flagged
// for manual review.
type TeacherReport struct {
	TeacherID     uint    `json:"teacherId"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	AverageRating float64 `json:"averageRating"`
	TotalFeedback int64   `json:"totalFeedback"`
	BonusAmount   *int    `json:"bonusAmount"`
	BonusStatus   string  `json:"bonusStatus"`
}
