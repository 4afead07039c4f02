package repositories

import (
	"context"
	"database/sql"
	"errors"
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

var studentColumns = []string{
	"student_id", "name", "email", "phone", "course", "year", "password", "is_admin", "created_at", "updated_at",
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db db.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(pool db.Pool) *StudentRepository {
	return &StudentRepository{
		db: pool,
		sb: newStatementBuilder(),
	}
}

// scanStudent scans the studentColumns followed by any extra destinations
func scanStudent(row pgx.Row, extra ...any) (*models.Student, error) {
	var (
		student models.Student
		phone   sql.NullString
		course  sql.NullString
		year    sql.NullInt32
	)

	dest := []any{
		&student.ID, &student.Name, &student.Email, &phone, &course, &year,
		&student.Password, &student.IsAdmin, &student.CreatedAt, &student.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}

	student.Phone = helpers.StringPtr(phone)
	student.Course = helpers.StringPtr(course)
	student.Year = helpers.IntPtr(year)
	return &student, nil
}

// Create inserts a student and fills in the generated id and timestamps
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query, args, err := r.sb.Insert("students").
		Columns("name", "email", "phone", "course", "year", "password", "is_admin").
		Values(student.Name, student.Email, student.Phone, student.Course, student.Year, student.Password, student.IsAdmin).
		Suffix("RETURNING student_id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	err = r.db.QueryRow(ctx, query, args...).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("email", student.Email).Msg("Error creating student")
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// EmailExists checks whether a student already uses the email
func (r *StudentRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	query, args, err := r.sb.Select("1").
		Prefix("SELECT EXISTS (").
		From("students").
		Where(squirrel.Eq{"email": email}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build email exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		logger.Error().Err(err).Msg("Error checking student email")
		return false, fmt.Errorf("error checking email: %w", err)
	}

	return exists, nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"student_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error getting student by ID")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	return student, nil
}

// GetByIdentifier retrieves the student whose email or phone matches identifier
func (r *StudentRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.Student, error) {
	query, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Or{squirrel.Eq{"email": identifier}, squirrel.Eq{"phone": identifier}}).
		OrderBy("student_id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student by identifier query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Msg("Error getting student by identifier")
		return nil, fmt.Errorf("error getting student by identifier: %w", err)
	}

	return student, nil
}

// ListNonAdminWithRoom lists non-admin students with the room of their active assignment
func (r *StudentRepository) ListNonAdminWithRoom(ctx context.Context) ([]*models.StudentWithRoom, error) {
	columns := make([]string, 0, len(studentColumns)+2)
	for _, c := range studentColumns {
		columns = append(columns, "s."+c)
	}
	columns = append(columns, "r.room_id", "r.room_number")

	query, args, err := r.sb.Select(columns...).
		From("students s").
		LeftJoin("student_rooms sr ON sr.student_id = s.student_id AND sr.status = ?", models.AssignmentActive).
		LeftJoin("rooms r ON r.room_id = sr.room_id").
		Where(squirrel.Eq{"s.is_admin": false}).
		OrderBy("s.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.StudentWithRoom{}
	for rows.Next() {
		var (
			roomID     sql.NullInt64
			roomNumber sql.NullString
		)
		student, err := scanStudent(rows, &roomID, &roomNumber)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning student row")
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, &models.StudentWithRoom{
			Student:    *student,
			RoomID:     helpers.Int64Ptr(roomID),
			RoomNumber: helpers.StringPtr(roomNumber),
		})
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student rows")
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}
