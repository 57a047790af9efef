package repository

import (
	"github.com/classpulse/backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OptionCount is a grouped vote tally for one poll option.
type OptionCount struct {
	OptionID uint
	Count    int64
}

type PollRepository interface {
	// CreateExclusive deactivates every active poll of the session and
	// inserts the new poll with its options as one transaction. A partial
	// result (two active polls, or none) is never observable.
	CreateExclusive(poll *model.Poll) error
	FindByIDWithOptions(id uint) (*model.Poll, error)
	UpsertResponse(response *model.PollResponse) error
	CountsByOption(pollID uint) ([]OptionCount, error)
}

type pollRepository struct {
	db *gorm.DB
}

func NewPollRepository(db *gorm.DB) PollRepository {
	return &pollRepository{db: db}
}

func (r *pollRepository) CreateExclusive(poll *model.Poll) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.Poll{}).
			Where("session_id = ? AND is_active = ?", poll.SessionID, true).
			Update("is_active", false).Error
		if err != nil {
			return err
		}
		// GORM creates the associated options alongside the poll.
		return tx.Create(poll).Error
	})
}

func (r *pollRepository) FindByIDWithOptions(id uint) (*model.Poll, error) {
	var poll model.Poll
	err := r.db.Preload("Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("poll_options.position ASC")
	}).First(&poll, id).Error
	if err != nil {
		return nil, err
	}
	return &poll, nil
}

// UpsertResponse keeps a student's vote unique per poll; re-voting shifts
// the counted option instead of adding a row.
func (r *pollRepository) UpsertResponse(response *model.PollResponse) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "poll_id"}, {Name: "student_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"option_id", "updated_at"}),
	}).Create(response).Error
}

func (r *pollRepository) CountsByOption(pollID uint) ([]OptionCount, error) {
	var counts []OptionCount
	err := r.db.Model(&model.PollResponse{}).
		Select("option_id, COUNT(*) as count").
		Where("poll_id = ?", pollID).
		Group("option_id").
		Scan(&counts).Error
	return counts, err
}
