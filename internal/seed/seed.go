package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/yigit/hostelhub/internal/app/models"
	"github.com/yigit/hostelhub/internal/pkg/apperrors"
	"github.com/yigit/hostelhub/internal/pkg/auth"
)

// Default administrator account
const (
	AdminName     = "Admin User"
	AdminEmail    = "admin@gndec.ac.in"
	AdminPhone    = "1234567890"
	AdminPassword = "123"
)

// DefaultRooms are created on first start
var DefaultRooms = []models.Room{
	{RoomNumber: "70", Capacity: 2},
	{RoomNumber: "71", Capacity: 2},
	{RoomNumber: "72", Capacity: 3},
	{RoomNumber: "73", Capacity: 3},
	{RoomNumber: "74", Capacity: 1},
}

// StudentStore is the part of the student repository the seeder needs
type StudentStore interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, student *models.Student) error
}

// RoomStore is the part of the room repository the seeder needs
type RoomStore interface {
	Create(ctx context.Context, room *models.Room) error
}

// Seeder creates the default admin and rooms. Running it again is a no-op.
type Seeder struct {
	students     StudentStore
	rooms        RoomStore
	hashPassword func(string) (string, error)
	logger       zerolog.Logger
}

// NewSeeder creates a Seeder
func NewSeeder(students StudentStore, rooms RoomStore, lgr zerolog.Logger) *Seeder {
	return &Seeder{
		students:     students,
		rooms:        rooms,
		hashPassword: auth.HashPassword,
		logger:       lgr,
	}
}

// CreateDefaultData seeds the admin account and default rooms.
// Failures are collected so one bad row does not stop the rest.
func (s *Seeder) CreateDefaultData(ctx context.Context) error {
	s.logger.Info().Msg("Checking/Creating default data (admin, rooms)...")

	var finalErr error

	if err := s.createAdmin(ctx); err != nil {
		s.logger.Error().Err(err).Msg("Error creating default admin")
		finalErr = errors.Join(finalErr, err)
	}

	created := 0
	for _, def := range DefaultRooms {
		room := &models.Room{RoomNumber: def.RoomNumber, Capacity: def.Capacity, Status: models.RoomAvailable}
		err := s.rooms.Create(ctx, room)
		switch {
		case err == nil:
			created++
		case errors.Is(err, apperrors.ErrRoomNumberExists):
			// already seeded
		default:
			s.logger.Error().Err(err).Str("room_number", def.RoomNumber).Msg("Error creating default room")
			finalErr = errors.Join(finalErr, err)
		}
	}

	s.logger.Info().Int("rooms_created", created).Msg("Default data check complete")
	return finalErr
}

func (s *Seeder) createAdmin(ctx context.Context) error {
	exists, err := s.students.EmailExists(ctx, AdminEmail)
	if err != nil {
		return err
	}
	if exists {
		s.logger.Debug().Str("email", AdminEmail).Msg("Default admin already exists")
		return nil
	}

	hashed, err := s.hashPassword(AdminPassword)
	if err != nil {
		return err
	}

	phone := AdminPhone
	admin := &models.Student{
		Name:     AdminName,
		Email:    AdminEmail,
		Phone:    &phone,
		Password: hashed,
		IsAdmin:  true,
	}
	if err := s.students.Create(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		return err
	}

	s.logger.Info().Int64("student_id", admin.ID).Str("email", AdminEmail).Msg("Default admin created")
	return nil
}
