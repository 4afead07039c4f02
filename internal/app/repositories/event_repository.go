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

var eventColumns = []string{
	"event_id", "title", "description", "event_date", "location", "created_by", "created_at", "updated_at",
}

const eventReturning = "RETURNING event_id, title, description, event_date, location, created_by, created_at, updated_at"

// EventRepository handles event database operations
type EventRepository struct {
	db db.Pool
	sb squirrel.StatementBuilderType
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(pool db.Pool) *EventRepository {
	return &EventRepository{
		db: pool,
		sb: newStatementBuilder(),
	}
}

func scanEvent(row pgx.Row, extra ...any) (*models.Event, error) {
	var (
		e           models.Event
		description sql.NullString
		location    sql.NullString
		createdBy   sql.NullInt64
	)

	dest := []any{&e.ID, &e.Title, &description, &e.EventDate, &location, &createdBy, &e.CreatedAt, &e.UpdatedAt}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}

	e.Description = helpers.StringPtr(description)
	e.Location = helpers.StringPtr(location)
	e.CreatedBy = helpers.Int64Ptr(createdBy)
	return &e, nil
}

func (r *EventRepository) listQuery() squirrel.SelectBuilder {
	columns := make([]string, 0, len(eventColumns)+1)
	for _, c := range eventColumns {
		columns = append(columns, "e."+c)
	}
	columns = append(columns, "s.name")

	return r.sb.Select(columns...).
		From("events e").
		LeftJoin("students s ON s.student_id = e.created_by")
}

func (r *EventRepository) queryEvents(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.Event, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list events query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list events query")
		return nil, fmt.Errorf("error querying events: %w", err)
	}
	defer rows.Close()

	events := []*models.Event{}
	for rows.Next() {
		var createdByName sql.NullString
		event, err := scanEvent(rows, &createdByName)
		if err != nil {
			return nil, fmt.Errorf("error scanning event row: %w", err)
		}
		event.CreatedByName = helpers.StringPtr(createdByName)
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}

	return events, nil
}

// List retrieves all events with the creator's name, latest first
func (r *EventRepository) List(ctx context.Context) ([]*models.Event, error) {
	return r.queryEvents(ctx, r.listQuery().OrderBy("e.event_date DESC"))
}

// ListUpcoming retrieves the next events that have not started yet
func (r *EventRepository) ListUpcoming(ctx context.Context, limit uint64) ([]*models.Event, error) {
	return r.queryEvents(ctx, r.listQuery().
		Where("e.event_date >= NOW()").
		OrderBy("e.event_date ASC").
		Limit(limit))
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	query, args, err := r.sb.Select(eventColumns...).
		From("events").
		Where(squirrel.Eq{"event_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get event query: %w", err)
	}

	event, err := scanEvent(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		logger.Error().Err(err).Int64("eventID", id).Msg("Error getting event by ID")
		return nil, fmt.Errorf("error getting event by ID: %w", err)
	}

	return event, nil
}

// Create inserts an event and refreshes it with the stored row
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	query, args, err := r.sb.Insert("events").
		Columns("title", "description", "event_date", "location", "created_by").
		Values(event.Title, event.Description, event.EventDate, event.Location, event.CreatedBy).
		Suffix(eventReturning).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create event query: %w", err)
	}

	stored, err := scanEvent(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if dberrors.IsForeignKeyError(err) {
			return apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("title", event.Title).Msg("Error creating event")
		return fmt.Errorf("error creating event: %w", err)
	}

	*event = *stored
	return nil
}

// Update overwrites the editable fields of an event
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	query, args, err := r.sb.Update("events").
		SetMap(map[string]interface{}{
			"title":       event.Title,
			"description": event.Description,
			"event_date":  event.EventDate,
			"location":    event.Location,
			"created_by":  event.CreatedBy,
			"updated_at":  squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"event_id": event.ID}).
		Suffix(eventReturning).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update event query: %w", err)
	}

	stored, err := scanEvent(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return apperrors.ErrEventNotFound
		case dberrors.IsForeignKeyError(err):
			return apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("eventID", event.ID).Msg("Error updating event")
		return fmt.Errorf("error updating event: %w", err)
	}

	*event = *stored
	return nil
}

// Delete removes an event
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.sb.Delete("events").
		Where(squirrel.Eq{"event_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete event query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("eventID", id).Msg("Error deleting event")
		return fmt.Errorf("error deleting event: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}
