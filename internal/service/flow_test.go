package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classpulse/backend/internal/dto"
	"github.com/classpulse/backend/internal/repository"
)

// TestClassroomFlow walks the whole product path: class, session,
// attendance, poll, doubt, feedback, admin aggregate and bonus report.
func TestClassroomFlow(t *testing.T) {
	db := newTestDB(t)
	teacher := createTeacher(t, db, "teacher@example.com")
	student := createStudent(t, db, "STU-AB12CD")
	pub := &recordingPublisher{}

	classSvc := NewClassService(repository.NewClassRepository(db))
	sessionSvc := NewSessionService(repository.NewSessionRepository(db), repository.NewClassRepository(db))
	attendanceSvc := NewAttendanceService(repository.NewSessionRepository(db), repository.NewAttendanceRepository(db), pub)
	pollSvc := NewPollService(repository.NewSessionRepository(db), repository.NewPollRepository(db), pub)
	doubtSvc := NewDoubtService(repository.NewSessionRepository(db), repository.NewDoubtRepository(db), pub)
	feedbackSvc := NewFeedbackService(repository.NewFeedbackRepository(db))
	reportSvc := NewReportService(repository.NewUserRepository(db), repository.NewFeedbackRepository(db))

	// Teacher creates "Math 101" / "Algebra" and opens a session.
	class, err := classSvc.CreateClass(teacher.ID, dto.CreateClassRequest{Name: "Math 101", Subject: "Algebra"})
	require.NoError(t, err)

	session, err := sessionSvc.CreateSession(dto.CreateSessionRequest{ClassID: class.ID})
	require.NoError(t, err)
	assert.Equal(t, AttendanceWindow, session.AttendanceClosesAt.Sub(session.StartsAt))

	// Student marks attendance inside the window.
	require.NoError(t, attendanceSvc.MarkAttendance(session.ID, student.ID))
	count, err := attendanceSvc.GetAttendanceCount(session.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count.Count)

	// Teacher launches a poll; student votes "Fast".
	poll, err := pollSvc.CreatePoll(teacher.ID, dto.CreatePollRequest{
		SessionID: session.ID,
		Question:  "How is the pace?",
		Options:   []string{"Fast", "Just right", "Slow"},
	})
	require.NoError(t, err)
	require.NoError(t, pollSvc.Respond(poll.ID, student.ID, dto.PollRespondRequest{OptionID: poll.Options[0].ID}))

	results, err := pollSvc.GetResults(poll.ID)
	require.NoError(t, err)
	require.Len(t, results.Results, 3)
	assert.EqualValues(t, 1, results.Results[0].Count)
	assert.EqualValues(t, 0, results.Results[1].Count)
	assert.EqualValues(t, 0, results.Results[2].Count)

	// Student raises a doubt; the teacher's list has one anonymous entry.
	require.NoError(t, doubtSvc.SubmitDoubt(session.ID, student.ID, dto.SubmitDoubtRequest{Content: "recap please"}))
	doubts, err := doubtSvc.GetSessionDoubts(session.ID)
	require.NoError(t, err)
	require.Len(t, doubts, 1)
	assert.Equal(t, "recap please", doubts[0].Content)

	// Student rates the session 5; admin sees the aggregate and report.
	require.NoError(t, feedbackSvc.SubmitFeedback(session.ID, student.ID, dto.SubmitFeedbackRequest{Rating: 5}))

	agg, err := feedbackSvc.GetAggregate(session.ID)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, agg.AverageRating, 0.0001)
	assert.EqualValues(t, 1, agg.TotalFeedback)

	reports, err := reportSvc.GetTeacherReports()
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.InDelta(t, 5.0, reports[0].AverageRating, 0.0001)
	require.NotNil(t, reports[0].BonusAmount)
	assert.Equal(t, 600, *reports[0].BonusAmount)

	// The live channel saw every event kind.
	assert.Len(t, pub.named(EventAttendanceUpdate), 1)
	assert.Len(t, pub.named(EventPollNew), 1)
	assert.Len(t, pub.named(EventPollUpdate), 1)
	assert.Len(t, pub.named(EventDoubtNew), 1)
}
