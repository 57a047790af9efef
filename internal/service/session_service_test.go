package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classpulse/backend/internal/apperr"
	"github.com/classpulse/backend/internal/dto"
	"github.com/classpulse/backend/internal/repository"
)

func newSessionFixture(t *testing.T) (SessionService, *testFixture) {
	fx := newFixture(t)
	svc := NewSessionService(repository.NewSessionRepository(fx.db), repository.NewClassRepository(fx.db))
	return svc, fx
}

func TestCreateSessionFixedWindow(t *testing.T) {
	svc, fx := newSessionFixture(t)

	startsAt := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	session, err := svc.CreateSession(dto.CreateSessionRequest{ClassID: fx.class.ID, StartsAt: &startsAt})
	require.NoError(t, err)
	assert.True(t, session.StartsAt.Equal(startsAt))
	assert.True(t, session.AttendanceClosesAt.Equal(startsAt.Add(AttendanceWindow)))
}

func TestCreateSessionDefaultsToNow(t *testing.T) {
	svc, fx := newSessionFixture(t)

	before := time.Now()
	session, err := svc.CreateSession(dto.CreateSessionRequest{ClassID: fx.class.ID})
	require.NoError(t, err)
	assert.False(t, session.StartsAt.Before(before))
	assert.Equal(t, AttendanceWindow, session.AttendanceClosesAt.Sub(session.StartsAt))
}

func TestCreateSessionUnknownClass(t *testing.T) {
	svc, _ := newSessionFixture(t)

	_, err := svc.CreateSession(dto.CreateSessionRequest{ClassID: 9999})
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestGetClassSessionsOrdered(t *testing.T) {
	svc, fx := newSessionFixture(t)

	later := time.Now().Add(2 * time.Hour)
	earlier := time.Now().Add(time.Hour)
	_, err := svc.CreateSession(dto.CreateSessionRequest{ClassID: fx.class.ID, StartsAt: &later})
	require.NoError(t, err)
	_, err = svc.CreateSession(dto.CreateSessionRequest{ClassID: fx.class.ID, StartsAt: &earlier})
	require.NoError(t, err)

	sessions, err := svc.GetClassSessions(fx.class.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.True(t, sessions[0].StartsAt.Before(sessions[1].StartsAt))
}

func TestGetAllClassesEmbedsTeacherOnly(t *testing.T) {
	fx := newFixture(t)
	svc := NewClassService(repository.NewClassRepository(fx.db))

	classes, err := svc.GetAllClasses()
	require.NoError(t, err)
	require.Len(t, classes, 1)
	assert.Equal(t, fx.teacher.ID, classes[0].Teacher.ID)
	assert.Equal(t, "teacher@example.com", classes[0].Teacher.Email)
}
