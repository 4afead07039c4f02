package services

import (
	"context"
	"errors"
	"strings"

	"github.com/yigit/hostelhub/internal/app/models/dto"
	"github.com/yigit/hostelhub/internal/app/repositories"
	"github.com/yigit/hostelhub/internal/pkg/apperrors"
	"github.com/yigit/hostelhub/internal/pkg/auth"
	"github.com/yigit/hostelhub/internal/pkg/logger"
)

// AuthService defines the interface for login checks
type AuthService interface {
	Login(ctx context.Context, identifier, password string) (*dto.LoginResponse, error)
}

type authServiceImpl struct {
	studentRepo repositories.IStudentRepository
	jwtService  *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(studentRepo repositories.IStudentRepository, jwtService *auth.JWTService) AuthService {
	return &authServiceImpl{
		studentRepo: studentRepo,
		jwtService:  jwtService,
	}
}

// Login matches identifier against email or phone and checks the password
func (s *authServiceImpl) Login(ctx context.Context, identifier, password string) (*dto.LoginResponse, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, apperrors.NewValidationError("Username and password are required")
	}

	student, err := s.studentRepo.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(student.Password, password) {
		logger.Warn().Int64("studentID", student.ID).Msg("Login with incorrect password")
		return nil, apperrors.ErrPasswordIncorrect
	}

	token, expiresIn, err := s.jwtService.GenerateToken(student.ID, student.Name, student.IsAdmin)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Message:   "Login successful",
		UserID:    student.ID,
		UserName:  student.Name,
		IsAdmin:   student.IsAdmin,
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: expiresIn,
	}, nil
}
