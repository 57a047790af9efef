package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/classpulse/backend/config"
	"github.com/classpulse/backend/database"
	"github.com/classpulse/backend/internal/logger"
	"github.com/classpulse/backend/internal/model"
	"github.com/classpulse/backend/internal/service"
)

// Development fixtures: an admin, a teacher with one class and session,
// three enrolled anonymous students, and a sample poll.
func main() {
	logger.Init()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Config load failed")
	}
	db, err := database.NewDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Database connection failed")
	}

	if err := seed(db); err != nil {
		log.Fatal().Err(err).Msg("Seeding failed")
	}
	log.Info().Msg("Seed data created")
}

func seed(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	adminEmail := "admin@example.com"
	admin := model.User{
		Email:        &adminEmail,
		Name:         "Admin",
		Role:         model.RoleAdmin,
		PasswordHash: string(hash),
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&admin).Error; err != nil {
		return err
	}

	teacherEmail := "teacher@example.com"
	teacher := model.User{
		Email:        &teacherEmail,
		Name:         "Teacher One",
		Role:         model.RoleTeacher,
		PasswordHash: string(hash),
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&teacher).Error; err != nil {
		return err
	}

	students := make([]model.User, 0, 3)
	for i := 1; i <= 3; i++ {
		code, err := studentCode()
		if err != nil {
			return err
		}
		codeHash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		student := model.User{
			Name:          fmt.Sprintf("Student %d", i),
			Role:          model.RoleStudent,
			PasswordHash:  string(codeHash),
			AnonymousCode: &code,
		}
		if err := db.Create(&student).Error; err != nil {
			return err
		}
		log.Info().Str("code", code).Msg("Seeded anonymous student")
		students = append(students, student)
	}

	class := model.Class{
		Name:      "Math 101",
		Subject:   "Algebra",
		TeacherID: teacher.ID,
	}
	if err := db.Create(&class).Error; err != nil {
		return err
	}

	for _, student := range students {
		enrollment := model.Enrollment{ClassID: class.ID, StudentID: student.ID}
		if err := db.Create(&enrollment).Error; err != nil {
			return err
		}
	}

	now := time.Now()
	session := model.Session{
		ClassID:            class.ID,
		StartsAt:           now,
		AttendanceClosesAt: now.Add(service.AttendanceWindow),
	}
	if err := db.Create(&session).Error; err != nil {
		return err
	}

	poll := model.Poll{
		SessionID: session.ID,
		TeacherID: teacher.ID,
		Question:  "How confident are you with today's topic?",
		IsActive:  true,
		Options: []model.PollOption{
			{Text: "Very confident", Position: 0},
			{Text: "Somewhat confident", Position: 1},
			{Text: "Not confident", Position: 2},
		},
	}
	return db.Create(&poll).Error
}

func studentCode() (string, error) {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return "STU-" + strings.ToUpper(hex.EncodeToString(buf)), nil
}
