package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classpulse/backend/internal/apperr"
	"github.com/classpulse/backend/internal/dto"
	"github.com/classpulse/backend/internal/model"
	"github.com/classpulse/backend/internal/repository"
)

func newPollFixture(t *testing.T) (PollService, *recordingPublisher, *testFixture, *model.Session) {
	fx := newFixture(t)
	pub := &recordingPublisher{}
	svc := NewPollService(
		repository.NewSessionRepository(fx.db),
		repository.NewPollRepository(fx.db),
		pub,
	)
	session := createSession(t, fx.db, fx.class.ID, time.Now().Add(AttendanceWindow))
	return svc, pub, fx, session
}

func createPoll(t *testing.T, svc PollService, teacherID, sessionID uint, question string, options []string) *dto.PollResponseDTO {
	t.Helper()
	poll, err := svc.CreatePoll(teacherID, dto.CreatePollRequest{
		SessionID: sessionID,
		Question:  question,
		Options:   options,
	})
	require.NoError(t, err)
	return poll
}

func TestCreatePollSupersedesActivePoll(t *testing.T) {
	svc, pub, fx, session := newPollFixture(t)

	first := createPoll(t, svc, fx.teacher.ID, session.ID, "Pace so far?", []string{"Fast", "Slow"})
	second := createPoll(t, svc, fx.teacher.ID, session.ID, "Topic clear?", []string{"Yes", "No"})

	var active []model.Poll
	require.NoError(t, fx.db.Where("session_id = ? AND is_active = ?", session.ID, true).Find(&active).Error)
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)

	var old model.Poll
	require.NoError(t, fx.db.First(&old, first.ID).Error)
	assert.False(t, old.IsActive)

	events := pub.named(EventPollNew)
	require.Len(t, events, 2)
	payload, ok := events[1].Payload.(dto.PollCreatedEvent)
	require.True(t, ok)
	assert.Equal(t, "Topic clear?", payload.Question)
	assert.Len(t, payload.Options, 2)
}

func TestCreatePollRequiresTwoOptions(t *testing.T) {
	svc, _, fx, session := newPollFixture(t)

	_, err := svc.CreatePoll(fx.teacher.ID, dto.CreatePollRequest{
		SessionID: session.ID,
		Question:  "Alone?",
		Options:   []string{"Only one"},
	})
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestCreatePollUnknownSession(t *testing.T) {
	svc, _, fx, _ := newPollFixture(t)

	_, err := svc.CreatePoll(fx.teacher.ID, dto.CreatePollRequest{
		SessionID: 9999,
		Question:  "Anyone there?",
		Options:   []string{"Yes", "No"},
	})
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestRespondReVoteKeepsSingleRow(t *testing.T) {
	svc, pub, fx, session := newPollFixture(t)
	poll := createPoll(t, svc, fx.teacher.ID, session.ID, "Pace?", []string{"Fast", "Just right", "Slow"})

	require.NoError(t, svc.Respond(poll.ID, fx.student.ID, dto.PollRespondRequest{OptionID: poll.Options[0].ID}))
	require.NoError(t, svc.Respond(poll.ID, fx.student.ID, dto.PollRespondRequest{OptionID: poll.Options[2].ID}))

	var rows int64
	require.NoError(t, fx.db.Model(&model.PollResponse{}).
		Where("poll_id = ? AND student_id = ?", poll.ID, fx.student.ID).
		Count(&rows).Error)
	assert.EqualValues(t, 1, rows)

	results, err := svc.GetResults(poll.ID)
	require.NoError(t, err)
	require.Len(t, results.Results, 3)
	assert.EqualValues(t, 0, results.Results[0].Count)
	assert.EqualValues(t, 0, results.Results[1].Count)
	assert.EqualValues(t, 1, results.Results[2].Count)

	require.Len(t, pub.named(EventPollUpdate), 2)
}

func TestRespondRejectsInactivePoll(t *testing.T) {
	svc, _, fx, session := newPollFixture(t)
	old := createPoll(t, svc, fx.teacher.ID, session.ID, "First?", []string{"A", "B"})
	createPoll(t, svc, fx.teacher.ID, session.ID, "Second?", []string{"C", "D"})

	err := svc.Respond(old.ID, fx.student.ID, dto.PollRespondRequest{OptionID: old.Options[0].ID})
	require.Error(t, err)
	assert.Equal(t, apperr.State, apperr.KindOf(err))
}

func TestRespondRejectsForeignOption(t *testing.T) {
	svc, _, fx, session := newPollFixture(t)
	poll := createPoll(t, svc, fx.teacher.ID, session.ID, "Pace?", []string{"Fast", "Slow"})
	other := createPoll(t, svc, fx.teacher.ID, session.ID, "Clear?", []string{"Yes", "No"})

	err := svc.Respond(other.ID, fx.student.ID, dto.PollRespondRequest{OptionID: poll.Options[0].ID})
	require.Error(t, err)
	assert.Equal(t, apperr.State, apperr.KindOf(err))
}

func TestGetResultsZeroVotesIncludesAllOptions(t *testing.T) {
	svc, _, fx, session := newPollFixture(t)
	poll := createPoll(t, svc, fx.teacher.ID, session.ID, "Pace?", []string{"Fast", "Just right", "Slow"})

	results, err := svc.GetResults(poll.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pace?", results.Poll.Question)
	require.Len(t, results.Results, 3)
	for i, entry := range results.Results {
		assert.EqualValues(t, 0, entry.Count, "option %d", i)
	}
	// Creation order is preserved.
	assert.Equal(t, "Fast", results.Results[0].Text)
	assert.Equal(t, "Just right", results.Results[1].Text)
	assert.Equal(t, "Slow", results.Results[2].Text)
}

func TestGetResultsUnknownPoll(t *testing.T) {
	svc, _, _, _ := newPollFixture(t)

	_, err := svc.GetResults(9999)
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}
