package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classpulse/backend/internal/dto"
	"github.com/classpulse/backend/internal/repository"
)

func TestCalculateBonusTiers(t *testing.T) {
	cases := []struct {
		avg    float64
		amount int
		ok     bool
	}{
		{5.0, 600, true},
		{4.8, 600, true},
		{4.79, 500, true},
		{4.5, 500, true},
		{4.49, 400, true},
		{4.2, 400, true},
		{4.19, 300, true},
		{4.0, 300, true},
		{3.99, 0, false},
		{0, 0, false},
	}
	for _, tc := range cases {
		amount, ok := CalculateBonus(tc.avg)
		assert.Equal(t, tc.ok, ok, "avg %v", tc.avg)
		assert.Equal(t, tc.amount, amount, "avg %v", tc.avg)
	}
}

func TestGetTeacherReportsAggregatesAcrossSessions(t *testing.T) {
	fx := newFixture(t)
	feedbackSvc := NewFeedbackService(repository.NewFeedbackRepository(fx.db))
	reportSvc := NewReportService(
		repository.NewUserRepository(fx.db),
		repository.NewFeedbackRepository(fx.db),
	)

	// Two sessions for the same teacher; ratings 5 and 4 average to 4.5.
	first := createSession(t, fx.db, fx.class.ID, time.Now().Add(AttendanceWindow))
	second := createSession(t, fx.db, fx.class.ID, time.Now().Add(AttendanceWindow))
	require.NoError(t, feedbackSvc.SubmitFeedback(first.ID, fx.student.ID, dto.SubmitFeedbackRequest{Rating: 5}))
	require.NoError(t, feedbackSvc.SubmitFeedback(second.ID, fx.student.ID, dto.SubmitFeedbackRequest{Rating: 4}))

	reports, err := reportSvc.GetTeacherReports()
	require.NoError(t, err)
	require.Len(t, reports, 1)

	report := reports[0]
	assert.Equal(t, fx.teacher.ID, report.TeacherID)
	assert.Equal(t, "teacher@example.com", report.Email)
	assert.InDelta(t, 4.5, report.AverageRating, 0.0001)
	assert.EqualValues(t, 2, report.TotalFeedback)
	require.NotNil(t, report.BonusAmount)
	assert.Equal(t, 500, *report.BonusAmount)
	assert.Equal(t, BonusStatusComputed, report.BonusStatus)
}

func TestGetTeacherReportsManualReviewWithoutFeedback(t *testing.T) {
	fx := newFixture(t)
	reportSvc := NewReportService(
		repository.NewUserRepository(fx.db),
		repository.NewFeedbackRepository(fx.db),
	)

	reports, err := reportSvc.GetTeacherReports()
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Nil(t, reports[0].BonusAmount)
	assert.Equal(t, BonusStatusManualReview, reports[0].BonusStatus)
	assert.Zero(t, reports[0].AverageRating)
}

func TestGetTeacherReportsIsolatesTeachers(t *testing.T) {
	fx := newFixture(t)
	other := createTeacher(t, fx.db, "other@example.com")
	otherClass := createClass(t, fx.db, other.ID)

	feedbackSvc := NewFeedbackService(repository.NewFeedbackRepository(fx.db))
	reportSvc := NewReportService(
		repository.NewUserRepository(fx.db),
		repository.NewFeedbackRepository(fx.db),
	)

	mine := createSession(t, fx.db, fx.class.ID, time.Now().Add(AttendanceWindow))
	theirs := createSession(t, fx.db, otherClass.ID, time.Now().Add(AttendanceWindow))
	require.NoError(t, feedbackSvc.SubmitFeedback(mine.ID, fx.student.ID, dto.SubmitFeedbackRequest{Rating: 5}))
	require.NoError(t, feedbackSvc.SubmitFeedback(theirs.ID, fx.student.ID, dto.SubmitFeedbackRequest{Rating: 3}))

	reports, err := reportSvc.GetTeacherReports()
	require.NoError(t, err)
	require.Len(t, reports, 2)

	byID := map[uint]dto.TeacherReport{}
	for _, r := range reports {
		byID[r.TeacherID] = r
	}
	assert.InDelta(t, 5.0, byID[fx.teacher.ID].AverageRating, 0.0001)
	assert.InDelta(t, 3.0, byID[other.ID].AverageRating, 0.0001)
	assert.Nil(t, byID[other.ID].BonusAmount)
}
