package repositories

import (
	"context"
	"slices"
	"strconv"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/hostelhub/internal/app/models"
	"github.com/yigit/hostelhub/internal/pkg/apperrors"
)

func roomRows(id int64, number string, capacity int, status models.RoomStatus) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows(roomColumns).AddRow(id, number, capacity, status, now, now)
}

func countRows(n int64) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"count"}).AddRow(n)
}

func assignmentRows(id, studentID, roomID int64) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "student_id", "room_id", "allocation_date", "status"}).
		AddRow(id, studentID, roomID, time.Now(), models.AssignmentActive)
}

func heldRows(ids ...int64) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{"room_id"})
	for _, id := range ids {
		rows.AddRow(id)
	}
	return rows
}

// expectLock queues the held rooms lookup followed by the row lock on lockIDs,
// which must already be in the ascending order the repository locks them in.
func expectLock(mock pgxmock.PgxPoolIface, studentID int64, held []int64, lockIDs []int64, locked *pgxmock.Rows) {
	mock.ExpectQuery(`SELECT room_id FROM student_rooms WHERE status = \$1 AND student_id = \$2`).
		WithArgs(models.AssignmentActive, studentID).
		WillReturnRows(heldRows(held...))

	args := make([]any, 0, len(lockIDs))
	for _, id := range lockIDs {
		args = append(args, id)
	}
	mock.ExpectQuery(`FROM rooms WHERE room_id IN \(.+\) ORDER BY room_id FOR UPDATE`).
		WithArgs(args...).
		WillReturnRows(locked)
}

// expectAssignment queues the statements of a successful allocation
func expectAssignment(mock pgxmock.PgxPoolIface, studentID, roomID int64, capacity int, before int64, previous ...int64) {
	lockIDs := slices.Clone(previous)
	lockIDs = append(lockIDs, roomID)
	slices.Sort(lockIDs)
	lockIDs = slices.Compact(lockIDs)

	locked := pgxmock.NewRows(roomColumns)
	now := time.Now()
	for _, id := range lockIDs {
		locked.AddRow(id, strconv.FormatInt(id, 10), capacity, models.RoomAvailable, now, now)
	}

	mock.ExpectBegin()
	expectLock(mock, studentID, previous, lockIDs, locked)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM student_rooms`).
		WithArgs(roomID, models.AssignmentActive).
		WillReturnRows(countRows(before))
	mock.ExpectQuery(`UPDATE student_rooms SET status = \$1 WHERE status = \$2 AND student_id = \$3 RETURNING room_id`).
		WithArgs(models.AssignmentInactive, models.AssignmentActive, studentID).
		WillReturnRows(heldRows(previous...))
	mock.ExpectQuery(`INSERT INTO student_rooms`).
		WithArgs(studentID, roomID, models.AssignmentActive).
		WillReturnRows(assignmentRows(before+100, studentID, roomID))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM student_rooms`).
		WithArgs(roomID, models.AssignmentActive).
		WillReturnRows(countRows(before + 1))
}

func TestAssignRoom_CapacityScenario(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRoomRepository(mock)
	ctx := context.Background()

	// First student takes one of two beds; room stays Available
	expectAssignment(mock, 1, 70, 2, 0)
	mock.ExpectCommit()

	a, err := repo.AssignRoom(ctx, 1, 70)
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.StudentID)
	assert.Equal(t, int64(70), a.RoomID)
	assert.Equal(t, models.AssignmentActive, a.Status)

	// Second student fills the room, which becomes Occupied
	expectAssignment(mock, 2, 70, 2, 1)
	mock.ExpectExec(`UPDATE rooms SET status`).
		WithArgs(models.RoomOccupied, int64(70)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	_, err = repo.AssignRoom(ctx, 2, 70)
	require.NoError(t, err)

	// Third student is rejected and nothing is written
	mock.ExpectBegin()
	expectLock(mock, 3, nil, []int64{70}, roomRows(70, "70", 2, models.RoomOccupied))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM student_rooms`).
		WithArgs(int64(70), models.AssignmentActive).
		WillReturnRows(countRows(2))
	mock.ExpectRollback()

	_, err = repo.AssignRoom(ctx, 3, 70)
	assert.ErrorIs(t, err, apperrors.ErrRoomFull)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignRoom_ReleasesPreviousRoom(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	expectAssignment(mock, 1, 70, 3, 0, 74)
	mock.ExpectExec(`UPDATE rooms SET status .+ capacity >`).
		WithArgs(models.RoomAvailable, int64(74), models.RoomOccupied, int64(74), models.AssignmentActive).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	_, err = NewRoomRepository(mock).AssignRoom(context.Background(), 1, 70)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignRoom_SwapsLockRoomsInSameOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRoomRepository(mock)
	ctx := context.Background()
	now := time.Now()

	// Moving 74 -> 70 and 70 -> 74 both lock room 70 before room 74
	for _, move := range []struct{ student, from, to int64 }{{1, 74, 70}, {2, 70, 74}} {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT room_id FROM student_rooms WHERE status = \$1 AND student_id = \$2`).
			WithArgs(models.AssignmentActive, move.student).
			WillReturnRows(heldRows(move.from))
		mock.ExpectQuery(`SELECT room_id, room_number, capacity, status, created_at, updated_at FROM rooms ` +
			`WHERE room_id IN \(\$1,\$2\) ORDER BY room_id FOR UPDATE`).
			WithArgs(int64(70), int64(74)).
			WillReturnRows(pgxmock.NewRows(roomColumns).
				AddRow(int64(70), "70", 2, models.RoomAvailable, now, now).
				AddRow(int64(74), "74", 2, models.RoomAvailable, now, now))
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM student_rooms`).
			WithArgs(move.to, models.AssignmentActive).
			WillReturnRows(countRows(0))
		mock.ExpectQuery(`UPDATE student_rooms SET status`).
			WithArgs(models.AssignmentInactive, models.AssignmentActive, move.student).
			WillReturnRows(heldRows(move.from))
		mock.ExpectQuery(`INSERT INTO student_rooms`).
			WithArgs(move.student, move.to, models.AssignmentActive).
			WillReturnRows(assignmentRows(move.student, move.student, move.to))
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM student_rooms`).
			WithArgs(move.to, models.AssignmentActive).
			WillReturnRows(countRows(1))
		mock.ExpectExec(`UPDATE rooms SET status .+ capacity >`).
			WithArgs(models.RoomAvailable, move.from, models.RoomOccupied, move.from, models.AssignmentActive).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectCommit()

		a, err := repo.AssignRoom(ctx, move.student, move.to)
		require.NoError(t, err)
		assert.Equal(t, move.to, a.RoomID)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignRoom_SameRoomAddsHistory(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	// The retired row belongs to the target room, so no release is issued
	expectAssignment(mock, 1, 70, 3, 1, 70)
	mock.ExpectCommit()

	_, err = NewRoomRepository(mock).AssignRoom(context.Background(), 1, 70)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignRoom_RoomNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	expectLock(mock, 1, nil, []int64{99}, pgxmock.NewRows(roomColumns))
	mock.ExpectRollback()

	_, err = NewRoomRepository(mock).AssignRoom(context.Background(), 1, 99)
	assert.ErrorIs(t, err, apperrors.ErrRoomNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignRoom_UnderMaintenance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	expectLock(mock, 1, nil, []int64{72}, roomRows(72, "72", 3, models.RoomUnderMaintenance))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM student_rooms`).
		WithArgs(int64(72), models.AssignmentActive).
		WillReturnRows(countRows(0))
	mock.ExpectRollback()

	_, err = NewRoomRepository(mock).AssignRoom(context.Background(), 1, 72)
	assert.ErrorIs(t, err, apperrors.ErrRoomUnderMaintenance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignRoom_UnknownStudent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	expectLock(mock, 404, nil, []int64{70}, roomRows(70, "70", 2, models.RoomAvailable))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM student_rooms`).
		WithArgs(int64(70), models.AssignmentActive).
		WillReturnRows(countRows(0))
	mock.ExpectQuery(`UPDATE student_rooms SET status`).
		WithArgs(models.AssignmentInactive, models.AssignmentActive, int64(404)).
		WillReturnRows(heldRows())
	mock.ExpectQuery(`INSERT INTO student_rooms`).
		WithArgs(int64(404), int64(70), models.AssignmentActive).
		WillReturnError(&pgconn.PgError{Code: "23503"})
	mock.ExpectRollback()

	_, err = NewRoomRepository(mock).AssignRoom(context.Background(), 404, 70)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM rooms ORDER BY room_number ASC`).
		WillReturnRows(pgxmock.NewRows(roomColumns).
			AddRow(int64(1), "70", 2, models.RoomAvailable, now, now).
			AddRow(int64(2), "71", 2, models.RoomOccupied, now, now))

	rooms, err := NewRoomRepository(mock).List(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "70", rooms[0].RoomNumber)
	assert.Equal(t, models.RoomOccupied, rooms[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_CreateDuplicateNumber(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO rooms`).
		WithArgs("70", 2, models.RoomAvailable).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err = NewRoomRepository(mock).Create(context.Background(), &models.Room{RoomNumber: "70", Capacity: 2})
	assert.ErrorIs(t, err, apperrors.ErrRoomNumberExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_UpdateStatusNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`UPDATE rooms SET status`).
		WithArgs(models.RoomUnderMaintenance, int64(9)).
		WillReturnRows(pgxmock.NewRows(roomColumns))

	_, err = NewRoomRepository(mock).UpdateStatus(context.Background(), 9, models.RoomUnderMaintenance)
	assert.ErrorIs(t, err, apperrors.ErrRoomNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_GetActiveRoomForStudent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`FROM student_rooms sr JOIN rooms r`).
		WithArgs(models.AssignmentActive, int64(5)).
		WillReturnRows(roomRows(3, "72", 3, models.RoomAvailable))
	mock.ExpectQuery(`FROM student_rooms sr JOIN rooms r`).
		WithArgs(models.AssignmentActive, int64(6)).
		WillReturnRows(pgxmock.NewRows(roomColumns))

	repo := NewRoomRepository(mock)
	room, err := repo.GetActiveRoomForStudent(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "72", room.RoomNumber)

	_, err = repo.GetActiveRoomForStudent(context.Background(), 6)
	assert.ErrorIs(t, err, apperrors.ErrRoomNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
