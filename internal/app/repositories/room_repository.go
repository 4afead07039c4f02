package repositories

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/hostelhub/internal/app/models"
	"github.com/yigit/hostelhub/internal/db"
	"github.com/yigit/hostelhub/internal/pkg/apperrors"
	"github.com/yigit/hostelhub/internal/pkg/dberrors"
	"github.com/yigit/hostelhub/internal/pkg/logger"
)

var roomColumns = []string{"room_id", "room_number", "capacity", "status", "created_at", "updated_at"}

// RoomRepository handles room and room assignment database operations
type RoomRepository struct {
	db db.Pool
	sb squirrel.StatementBuilderType
}

// NewRoomRepository creates a new RoomRepository
func NewRoomRepository(pool db.Pool) *RoomRepository {
	return &RoomRepository{
		db: pool,
		sb: newStatementBuilder(),
	}
}

func scanRoom(row pgx.Row) (*models.Room, error) {
	room := &models.Room{}
	if err := row.Scan(&room.ID, &room.RoomNumber, &room.Capacity, &room.Status, &room.CreatedAt, &room.UpdatedAt); err != nil {
		return nil, err
	}
	return room, nil
}

// List retrieves all rooms ordered by room number
func (r *RoomRepository) List(ctx context.Context) ([]*models.Room, error) {
	query, args, err := r.sb.Select(roomColumns...).
		From("rooms").
		OrderBy("room_number ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list rooms query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list rooms query")
		return nil, fmt.Errorf("error querying rooms: %w", err)
	}
	defer rows.Close()

	rooms := []*models.Room{}
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning room row")
			return nil, fmt.Errorf("error scanning room row: %w", err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating room rows: %w", err)
	}

	return rooms, nil
}

// GetByID retrieves a room by ID
func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*models.Room, error) {
	query, args, err := r.sb.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"room_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get room query: %w", err)
	}

	room, err := scanRoom(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoomNotFound
		}
		logger.Error().Err(err).Int64("roomID", id).Msg("Error getting room by ID")
		return nil, fmt.Errorf("error getting room by ID: %w", err)
	}

	return room, nil
}

// Create inserts a room; new rooms start Available unless a status is given
func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	if room.Status == "" {
		room.Status = models.RoomAvailable
	}

	query, args, err := r.sb.Insert("rooms").
		Columns("room_number", "capacity", "status").
		Values(room.RoomNumber, room.Capacity, room.Status).
		Suffix("RETURNING room_id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create room query: %w", err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&room.ID, &room.CreatedAt, &room.UpdatedAt); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrRoomNumberExists
		}
		logger.Error().Err(err).Str("roomNumber", room.RoomNumber).Msg("Error creating room")
		return fmt.Errorf("error creating room: %w", err)
	}

	return nil
}

// UpdateStatus sets the status of a room and returns the updated row
func (r *RoomRepository) UpdateStatus(ctx context.Context, id int64, status models.RoomStatus) (*models.Room, error) {
	query, args, err := r.sb.Update("rooms").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"room_id": id}).
		Suffix("RETURNING room_id, room_number, capacity, status, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update room status query: %w", err)
	}

	room, err := scanRoom(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoomNotFound
		}
		logger.Error().Err(err).Int64("roomID", id).Msg("Error updating room status")
		return nil, fmt.Errorf("error updating room status: %w", err)
	}

	return room, nil
}

// GetActiveRoomForStudent returns the room of the student's active assignment,
// or ErrRoomNotFound when the student has none.
func (r *RoomRepository) GetActiveRoomForStudent(ctx context.Context, studentID int64) (*models.Room, error) {
	query, args, err := r.sb.Select("r.room_id", "r.room_number", "r.capacity", "r.status", "r.created_at", "r.updated_at").
		From("student_rooms sr").
		Join("rooms r ON r.room_id = sr.room_id").
		Where(squirrel.Eq{"sr.student_id": studentID, "sr.status": models.AssignmentActive}).
		OrderBy("sr.allocation_date DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student room query: %w", err)
	}

	room, err := scanRoom(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoomNotFound
		}
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error getting student room")
		return nil, fmt.Errorf("error getting student room: %w", err)
	}

	return room, nil
}

// AssignRoom allocates the room to the student in a single transaction.
// The target room and every room the student currently holds are locked in
// room_id order, so concurrent allocations cannot overfill a room and two
// swaps between the same rooms cannot deadlock. Any previous active
// allocation of the student is retired.
func (r *RoomRepository) AssignRoom(ctx context.Context, studentID, roomID int64) (*models.RoomAssignment, error) {
	var assignment *models.RoomAssignment

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		held, err := r.heldRoomIDs(ctx, tx, studentID)
		if err != nil {
			return err
		}

		locked, err := r.lockRooms(ctx, tx, append(held, roomID))
		if err != nil {
			return err
		}
		room, ok := locked[roomID]
		if !ok {
			return apperrors.ErrRoomNotFound
		}

		occupants, err := r.countActive(ctx, tx, roomID)
		if err != nil {
			return err
		}
		if room.IsFull(occupants) {
			return apperrors.ErrRoomFull
		}
		if room.Status == models.RoomUnderMaintenance {
			return apperrors.ErrRoomUnderMaintenance
		}

		previousRooms, err := r.retireActive(ctx, tx, studentID)
		if err != nil {
			return err
		}

		assignment, err = r.insertActive(ctx, tx, studentID, roomID)
		if err != nil {
			return err
		}

		occupants, err = r.countActive(ctx, tx, roomID)
		if err != nil {
			return err
		}
		if room.IsFull(occupants) {
			if err := r.setStatus(ctx, tx, roomID, models.RoomOccupied); err != nil {
				return err
			}
		}

		for _, previous := range previousRooms {
			if previous == roomID {
				continue
			}
			if err := r.releaseRoom(ctx, tx, previous); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int64("studentID", studentID).
		Int64("roomID", roomID).
		Int64("assignmentID", assignment.ID).
		Msg("Room assigned")

	return assignment, nil
}

// heldRoomIDs returns the rooms of the student's active allocations
func (r *RoomRepository) heldRoomIDs(ctx context.Context, q db.Querier, studentID int64) ([]int64, error) {
	query, args, err := r.sb.Select("room_id").
		From("student_rooms").
		Where(squirrel.Eq{"student_id": studentID, "status": models.AssignmentActive}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build held rooms query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying held rooms: %w", err)
	}
	defer rows.Close()

	var roomIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning held room: %w", err)
		}
		roomIDs = append(roomIDs, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating held rooms: %w", err)
	}

	return roomIDs, nil
}

// lockRooms takes row locks on the given rooms in ascending room_id order
func (r *RoomRepository) lockRooms(ctx context.Context, q db.Querier, roomIDs []int64) (map[int64]*models.Room, error) {
	ids := slices.Clone(roomIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	query, args, err := r.sb.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"room_id": ids}).
		OrderBy("room_id").
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build lock rooms query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error locking rooms: %w", err)
	}
	defer rows.Close()

	locked := make(map[int64]*models.Room, len(ids))
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning locked room: %w", err)
		}
		locked[room.ID] = room
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locked rooms: %w", err)
	}

	return locked, nil
}

func (r *RoomRepository) countActive(ctx context.Context, q db.Querier, roomID int64) (int64, error) {
	query, args, err := r.sb.Select("COUNT(*)").
		From("student_rooms").
		Where(squirrel.Eq{"room_id": roomID, "status": models.AssignmentActive}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count occupants query: %w", err)
	}

	var count int64
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting room occupants: %w", err)
	}

	return count, nil
}

// retireActive marks the student's active allocations Inactive and returns their rooms
func (r *RoomRepository) retireActive(ctx context.Context, q db.Querier, studentID int64) ([]int64, error) {
	query, args, err := r.sb.Update("student_rooms").
		Set("status", models.AssignmentInactive).
		Where(squirrel.Eq{"student_id": studentID, "status": models.AssignmentActive}).
		Suffix("RETURNING room_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build retire assignments query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error retiring assignments: %w", err)
	}
	defer rows.Close()

	var roomIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning retired assignment: %w", err)
		}
		roomIDs = append(roomIDs, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating retired assignments: %w", err)
	}

	return roomIDs, nil
}

func (r *RoomRepository) insertActive(ctx context.Context, q db.Querier, studentID, roomID int64) (*models.RoomAssignment, error) {
	query, args, err := r.sb.Insert("student_rooms").
		Columns("student_id", "room_id", "status").
		Values(studentID, roomID, models.AssignmentActive).
		Suffix("RETURNING id, student_id, room_id, allocation_date, status").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert assignment query: %w", err)
	}

	a := &models.RoomAssignment{}
	err = q.QueryRow(ctx, query, args...).Scan(&a.ID, &a.StudentID, &a.RoomID, &a.AllocationDate, &a.Status)
	if err != nil {
		switch {
		case dberrors.IsForeignKeyError(err):
			return nil, apperrors.ErrStudentNotFound
		case dberrors.IsDuplicateKeyError(err):
			return nil, apperrors.NewConflictError("Student already has an active room assignment")
		}
		return nil, fmt.Errorf("error inserting assignment: %w", err)
	}

	return a, nil
}

func (r *RoomRepository) setStatus(ctx context.Context, q db.Querier, roomID int64, status models.RoomStatus) error {
	query, args, err := r.sb.Update("rooms").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"room_id": roomID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build set room status query: %w", err)
	}

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("error setting room status: %w", err)
	}

	return nil
}

// releaseRoom flips an Occupied room back to Available once it has a free bed
func (r *RoomRepository) releaseRoom(ctx context.Context, q db.Querier, roomID int64) error {
	query, args, err := r.sb.Update("rooms").
		Set("status", models.RoomAvailable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"room_id": roomID, "status": models.RoomOccupied}).
		Where("capacity > (SELECT COUNT(*) FROM student_rooms WHERE room_id = ? AND status = ?)", roomID, models.AssignmentActive).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build release room query: %w", err)
	}

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("error releasing room: %w", err)
	}

	return nil
}
