package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yigit/hostelhub/internal/app/models"
	"github.com/yigit/hostelhub/internal/app/models/dto"
	"github.com/yigit/hostelhub/internal/app/repositories"
	"github.com/yigit/hostelhub/internal/pkg/apperrors"
	"github.com/yigit/hostelhub/internal/pkg/auth"
	"github.com/yigit/hostelhub/internal/pkg/validation"
)

// StudentService defines the interface for student registration and directory reads
type StudentService interface {
	Register(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	ListStudents(ctx context.Context) ([]*models.StudentWithRoom, error)
	// GetStudentRoom returns nil without error when the student holds no active room
	GetStudentRoom(ctx context.Context, studentID int64) (*models.Room, error)
	GetProfile(ctx context.Context, studentID int64) (*models.Student, error)
}

type studentServiceImpl struct {
	studentRepo  repositories.IStudentRepository
	roomRepo     repositories.IRoomRepository
	hashPassword func(string) (string, error)
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo repositories.IStudentRepository, roomRepo repositories.IRoomRepository) StudentService {
	return &studentServiceImpl{
		studentRepo:  studentRepo,
		roomRepo:     roomRepo,
		hashPassword: auth.HashPassword,
	}
}

func validateRegistration(req *dto.CreateStudentRequest) error {
	if !validation.NewStringValidation(req.Name).WithMaxLength(validation.NameMaxLength).Validate() {
		return apperrors.NewValidationError(fmt.Sprintf("name is required and must be at most %d characters", validation.NameMaxLength))
	}

	if !validation.NewStringValidation(req.Email).WithMaxLength(validation.EmailMaxLength).Validate() {
		return apperrors.NewValidationError(fmt.Sprintf("email is required and must be at most %d characters", validation.EmailMaxLength))
	}

	if req.Password == "" {
		return apperrors.NewValidationError("password is required")
	}

	if len(req.Password) > validation.PasswordMaxBytes {
		return apperrors.NewValidationError(fmt.Sprintf("password must be at most %d bytes", validation.PasswordMaxBytes))
	}

	if req.Phone != nil && !validation.NewStringValidation(*req.Phone).
		WithRequired(false).
		WithPattern(validation.CompiledPatterns.Phone).
		Validate() {
		return apperrors.NewValidationError("phone must contain 7 to 15 digits")
	}

	if req.Course != nil && !validation.NewStringValidation(*req.Course).
		WithRequired(false).
		WithMaxLength(validation.CourseMaxLength).
		Validate() {
		return apperrors.NewValidationError(fmt.Sprintf("course must be at most %d characters", validation.CourseMaxLength))
	}

	if req.Year != nil && !validation.NewNumericValidation(*req.Year).
		WithMin(validation.YearMin).
		WithMax(validation.YearMax).
		Validate() {
		return apperrors.NewValidationError(fmt.Sprintf("year must be between %d and %d", validation.YearMin, validation.YearMax))
	}

	return nil
}

// trimOptional trims an optional field, treating blank values as absent
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// Register creates a student account with a hashed password
func (s *studentServiceImpl) Register(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = trimOptional(req.Phone)
	req.Course = trimOptional(req.Course)

	if err := validateRegistration(req); err != nil {
		return nil, err
	}

	exists, err := s.studentRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashed, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	student := &models.Student{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Course:   req.Course,
		Year:     req.Year,
		Password: hashed,
	}

	// The unique index still guards against a concurrent registration
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// ListStudents returns non-admin students with their active room
func (s *studentServiceImpl) ListStudents(ctx context.Context) ([]*models.StudentWithRoom, error) {
	return s.studentRepo.ListNonAdminWithRoom(ctx)
}

// GetStudentRoom returns the room of the student's active assignment
func (s *studentServiceImpl) GetStudentRoom(ctx context.Context, studentID int64) (*models.Room, error) {
	if studentID <= 0 {
		return nil, apperrors.NewBadRequestError("Invalid student ID")
	}

	room, err := s.roomRepo.GetActiveRoomForStudent(ctx, studentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrRoomNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return room, nil
}

// GetProfile returns the student's own record
func (s *studentServiceImpl) GetProfile(ctx context.Context, studentID int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, studentID)
}
