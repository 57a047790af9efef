package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/classpulse/backend/internal/model"
)

// newTestDB opens an isolated in-memory database per test. The named
// shared-cache DSN keeps every pooled connection on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Class{},
		&model.Enrollment{},
		&model.Session{},
		&model.Attendance{},
		&model.Poll{},
		&model.PollOption{},
		&model.PollResponse{},
		&model.Feedback{},
		&model.Doubt{},
	))
	return db
}

// testFixture is the common cast: one teacher owning one class, one
// anonymous student.
type testFixture struct {
	db      *gorm.DB
	teacher *model.User
	student *model.User
	class   *model.Class
}

func newFixture(t *testing.T) *testFixture {
	t.Helper()
	db := newTestDB(t)
	teacher := createTeacher(t, db, "teacher@example.com")
	student := createStudent(t, db, "STU-AB12CD")
	class := createClass(t, db, teacher.ID)
	return &testFixture{db: db, teacher: teacher, student: student, class: class}
}

type publishedEvent struct {
	SessionID uint
	Name      string
	Payload   any
}

// recordingPublisher captures events so services can be tested without a
// websocket layer.
type recordingPublisher struct {
	events []publishedEvent
}

func (p *recordingPublisher) Publish(sessionID uint, event string, payload any) {
	p.events = append(p.events, publishedEvent{SessionID: sessionID, Name: event, Payload: payload})
}

func (p *recordingPublisher) named(name string) []publishedEvent {
	var out []publishedEvent
	for _, e := range p.events {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

func createTeacher(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	teacher := &model.User{
		Role:         model.RoleTeacher,
		Name:         "Teacher " + email,
		Email:        &email,
		PasswordHash: string(hash),
	}
	require.NoError(t, db.Create(teacher).Error)
	return teacher
}

func createStudent(t *testing.T, db *gorm.DB, code string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.MinCost)
	require.NoError(t, err)
	student := &model.User{
		Role:          model.RoleStudent,
		PasswordHash:  string(hash),
		AnonymousCode: &code,
	}
	require.NoError(t, db.Create(student).Error)
	return student
}

func createClass(t *testing.T, db *gorm.DB, teacherID uint) *model.Class {
	t.Helper()
	class := &model.Class{Name: "Math 101", Subject: "Algebra", TeacherID: teacherID}
	require.NoError(t, db.Create(class).Error)
	return class
}

func createSession(t *testing.T, db *gorm.DB, classID uint, closesAt time.Time) *model.Session {
	t.Helper()
	session := &model.Session{
		ClassID:            classID,
		StartsAt:           closesAt.Add(-AttendanceWindow),
		AttendanceClosesAt: closesAt,
	}
	require.NoError(t, db.Create(session).Error)
	return session
}
