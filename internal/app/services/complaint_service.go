package services

import (
	"context"
	"strings"

	"github.com/yigit/hostelhub/internal/app/models"
	"github.com/yigit/hostelhub/internal/app/repositories"
	"github.com/yigit/hostelhub/internal/pkg/apperrors"
)

// ComplaintService defines the interface for complaint operations
type ComplaintService interface {
	CreateComplaint(ctx context.Context, studentID int64, text string) (*models.Complaint, error)
	ListStudentComplaints(ctx context.Context, studentID int64) ([]*models.Complaint, error)
	ListComplaints(ctx context.Context) ([]*models.ComplaintDetail, error)
	ResolveComplaint(ctx context.Context, complaintID int64, notes *string) error
}

type complaintServiceImpl struct {
	complaintRepo repositories.IComplaintRepository
}

// NewComplaintService creates a new complaint service instance
func NewComplaintService(complaintRepo repositories.IComplaintRepository) ComplaintService {
	return &complaintServiceImpl{
		complaintRepo: complaintRepo,
	}
}

// CreateComplaint files a complaint against the student's current room, if any
func (s *complaintServiceImpl) CreateComplaint(ctx context.Context, studentID int64, text string) (*models.Complaint, error) {
	text = strings.TrimSpace(text)
	if studentID <= 0 || text == "" {
		return nil, apperrors.NewValidationError("student_id and complaint_text are required")
	}
	return s.complaintRepo.Create(ctx, studentID, text)
}

func (s *complaintServiceImpl) ListStudentComplaints(ctx context.Context, studentID int64) ([]*models.Complaint, error) {
	if studentID <= 0 {
		return nil, apperrors.NewBadRequestError("Invalid student ID")
	}
	return s.complaintRepo.ListByStudent(ctx, studentID)
}

func (s *complaintServiceImpl) ListComplaints(ctx context.Context) ([]*models.ComplaintDetail, error) {
	return s.complaintRepo.ListAll(ctx)
}

// ResolveComplaint marks a complaint Resolved; resolving twice succeeds
func (s *complaintServiceImpl) ResolveComplaint(ctx context.Context, complaintID int64, notes *string) error {
	return s.complaintRepo.Resolve(ctx, complaintID, trimOptional(notes))
}
