package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/hostelhub/internal/app/models"
	"github.com/yigit/hostelhub/internal/pkg/apperrors"
)

func TestComplaintRepository_CreateSnapshotsActiveRoom(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO complaints \(student_id,room_id,complaint_text,status\) ` +
		`VALUES \(\$1,\(SELECT room_id FROM student_rooms WHERE student_id = \$2 AND status = \$3 ` +
		`ORDER BY allocation_date DESC LIMIT 1\),\$4,\$5\) RETURNING`).
		WithArgs(int64(5), int64(5), models.AssignmentActive, "Fan not working", models.ComplaintPending).
		WillReturnRows(pgxmock.NewRows(complaintColumns).
			AddRow(int64(1), int64(5), int64(70), "Fan not working", now, models.ComplaintPending, nil, now, now))

	complaint, err := NewComplaintRepository(mock).Create(context.Background(), 5, "Fan not working")
	require.NoError(t, err)
	require.NotNil(t, complaint.RoomID)
	assert.Equal(t, int64(70), *complaint.RoomID)
	assert.Equal(t, models.ComplaintPending, complaint.Status)
	assert.Nil(t, complaint.ResolutionNotes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestComplaintRepository_CreateWithoutRoom(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO complaints`).
		WithArgs(int64(6), int64(6), models.AssignmentActive, "No water", models.ComplaintPending).
		WillReturnRows(pgxmock.NewRows(complaintColumns).
			AddRow(int64(2), int64(6), nil, "No water", now, models.ComplaintPending, nil, now, now))

	complaint, err := NewComplaintRepository(mock).Create(context.Background(), 6, "No water")
	require.NoError(t, err)
	assert.Nil(t, complaint.RoomID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestComplaintRepository_CreateUnknownStudent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO complaints`).
		WithArgs(int64(404), int64(404), models.AssignmentActive, "x", models.ComplaintPending).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	_, err = NewComplaintRepository(mock).Create(context.Background(), 404, "x")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestComplaintRepository_ListAll(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	columns := append(append([]string{}, complaintColumns...), "name", "room_number")
	now := time.Now()
	mock.ExpectQuery(`FROM complaints c JOIN students s .+ LEFT JOIN rooms r .+ ORDER BY c.date_submitted DESC`).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(int64(2), int64(6), nil, "No water", now, models.ComplaintPending, nil, now, now, "Bhavna", nil).
			AddRow(int64(1), int64(5), int64(70), "Fan", now.Add(-time.Hour), models.ComplaintResolved, "Fixed", now, now, "Asha", "70"))

	complaints, err := NewComplaintRepository(mock).ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, complaints, 2)
	assert.Equal(t, "Bhavna", complaints[0].StudentName)
	assert.Nil(t, complaints[0].RoomNumber)
	require.NotNil(t, complaints[1].ResolutionNotes)
	assert.Equal(t, "Fixed", *complaints[1].ResolutionNotes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestComplaintRepository_ListByStudent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`FROM complaints WHERE student_id = .+ ORDER BY date_submitted DESC`).
		WithArgs(int64(9)).
		WillReturnRows(pgxmock.NewRows(complaintColumns))

	complaints, err := NewComplaintRepository(mock).ListByStudent(context.Background(), 9)
	require.NoError(t, err)
	assert.NotNil(t, complaints)
	assert.Empty(t, complaints)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestComplaintRepository_Resolve(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	notes := "Replaced the fan"
	mock.ExpectExec(`UPDATE complaints SET status = .+, updated_at = NOW\(\), resolution_notes = .+ WHERE complaint_id = `).
		WithArgs(models.ComplaintResolved, notes, int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	// Resolving again without notes keeps the previous notes
	mock.ExpectExec(`UPDATE complaints SET status = .+, updated_at = NOW\(\) WHERE complaint_id = `).
		WithArgs(models.ComplaintResolved, int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	repo := NewComplaintRepository(mock)
	require.NoError(t, repo.Resolve(context.Background(), 1, &notes))
	require.NoError(t, repo.Resolve(context.Background(), 1, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestComplaintRepository_ResolveNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`UPDATE complaints`).
		WithArgs(models.ComplaintResolved, int64(999)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = NewComplaintRepository(mock).Resolve(context.Background(), 999, nil)
	assert.ErrorIs(t, err, apperrors.ErrComplaintNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
