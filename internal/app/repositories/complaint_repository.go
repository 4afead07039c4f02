package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/hostelhub/internal/app/models"
	"github.com/yigit/hostelhub/internal/db"
	"github.com/yigit/hostelhub/internal/pkg/apperrors"
	"github.com/yigit/hostelhub/internal/pkg/dberrors"
	"github.com/yigit/hostelhub/internal/pkg/helpers"
	"github.com/yigit/hostelhub/internal/pkg/logger"
)

var complaintColumns = []string{
	"complaint_id", "student_id", "room_id", "complaint_text", "date_submitted",
	"status", "resolution_notes", "created_at", "updated_at",
}

// ComplaintRepository handles complaint database operations
type ComplaintRepository struct {
	db db.Pool
	sb squirrel.StatementBuilderType
}

// NewComplaintRepository creates a new ComplaintRepository
func NewComplaintRepository(pool db.Pool) *ComplaintRepository {
	return &ComplaintRepository{
		db: pool,
		sb: newStatementBuilder(),
	}
}

func scanComplaint(row pgx.Row, extra ...any) (*models.Complaint, error) {
	var (
		c      models.Complaint
		roomID sql.NullInt64
		notes  sql.NullString
	)

	dest := []any{
		&c.ID, &c.StudentID, &roomID, &c.Text, &c.DateSubmitted,
		&c.Status, &notes, &c.CreatedAt, &c.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}

	c.RoomID = helpers.Int64Ptr(roomID)
	c.ResolutionNotes = helpers.StringPtr(notes)
	return &c, nil
}

// Create records a complaint tagged with the student's active room at submission time
func (r *ComplaintRepository) Create(ctx context.Context, studentID int64, text string) (*models.Complaint, error) {
	// Placeholders stay as ? so the outer Dollar pass numbers the whole statement
	activeRoom := squirrel.Expr(
		"(SELECT room_id FROM student_rooms WHERE student_id = ? AND status = ? ORDER BY allocation_date DESC LIMIT 1)",
		studentID, models.AssignmentActive,
	)

	query, args, err := r.sb.Insert("complaints").
		Columns("student_id", "room_id", "complaint_text", "status").
		Values(studentID, activeRoom, text, models.ComplaintPending).
		Suffix("RETURNING complaint_id, student_id, room_id, complaint_text, date_submitted, status, resolution_notes, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create complaint query: %w", err)
	}

	complaint, err := scanComplaint(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if dberrors.IsForeignKeyError(err) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error creating complaint")
		return nil, fmt.Errorf("error creating complaint: %w", err)
	}

	return complaint, nil
}

// ListByStudent lists a student's complaints, newest first
func (r *ComplaintRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Complaint, error) {
	query, args, err := r.sb.Select(complaintColumns...).
		From("complaints").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("date_submitted DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list student complaints query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing list student complaints query")
		return nil, fmt.Errorf("error querying complaints: %w", err)
	}
	defer rows.Close()

	complaints := []*models.Complaint{}
	for rows.Next() {
		complaint, err := scanComplaint(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning complaint row: %w", err)
		}
		complaints = append(complaints, complaint)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating complaint rows: %w", err)
	}

	return complaints, nil
}

// ListAll lists every complaint with the submitting student's name and the room number
func (r *ComplaintRepository) ListAll(ctx context.Context) ([]*models.ComplaintDetail, error) {
	columns := make([]string, 0, len(complaintColumns)+2)
	for _, c := range complaintColumns {
		columns = append(columns, "c."+c)
	}
	columns = append(columns, "s.name", "r.room_number")

	query, args, err := r.sb.Select(columns...).
		From("complaints c").
		Join("students s ON s.student_id = c.student_id").
		LeftJoin("rooms r ON r.room_id = c.room_id").
		OrderBy("c.date_submitted DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list complaints query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list complaints query")
		return nil, fmt.Errorf("error querying complaints: %w", err)
	}
	defer rows.Close()

	complaints := []*models.ComplaintDetail{}
	for rows.Next() {
		var (
			studentName string
			roomNumber  sql.NullString
		)
		complaint, err := scanComplaint(rows, &studentName, &roomNumber)
		if err != nil {
			return nil, fmt.Errorf("error scanning complaint row: %w", err)
		}
		complaints = append(complaints, &models.ComplaintDetail{
			Complaint:   *complaint,
			StudentName: studentName,
			RoomNumber:  helpers.StringPtr(roomNumber),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating complaint rows: %w", err)
	}

	return complaints, nil
}

// Resolve marks a complaint Resolved. Resolving twice is a no-op apart from
// updated_at; notes are only overwritten when supplied.
func (r *ComplaintRepository) Resolve(ctx context.Context, id int64, notes *string) error {
	update := r.sb.Update("complaints").
		Set("status", models.ComplaintResolved).
		Set("updated_at", squirrel.Expr("NOW()"))
	if notes != nil {
		update = update.Set("resolution_notes", *notes)
	}

	query, args, err := update.Where(squirrel.Eq{"complaint_id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build resolve complaint query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("complaintID", id).Msg("Error resolving complaint")
		return fmt.Errorf("error resolving complaint: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrComplaintNotFound
	}

	return nil
}
