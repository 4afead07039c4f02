package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/hostelhub/internal/db"
	"github.com/yigit/hostelhub/internal/pkg/logger"
)

// StatsRepository answers the counters shown on the admin dashboard
type StatsRepository struct {
	db db.Pool
	sb squirrel.StatementBuilderType
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(pool db.Pool) *StatsRepository {
	return &StatsRepository{
		db: pool,
		sb: newStatementBuilder(),
	}
}

func (r *StatsRepository) count(ctx context.Context, builder squirrel.SelectBuilder, name string) (int64, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count %s query: %w", name, err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Str("table", name).Msg("Error counting rows")
		return 0, fmt.Errorf("error counting %s: %w", name, err)
	}

	return count, nil
}

// CountStudents counts students excluding administrators
func (r *StatsRepository) CountStudents(ctx context.Context) (int64, error) {
	return r.count(ctx, r.sb.Select("COUNT(*)").From("students").Where(squirrel.Eq{"is_admin": false}), "students")
}

// CountRooms counts all rooms
func (r *StatsRepository) CountRooms(ctx context.Context) (int64, error) {
	return r.count(ctx, r.sb.Select("COUNT(*)").From("rooms"), "rooms")
}

// CountComplaints counts all complaints regardless of status
func (r *StatsRepository) CountComplaints(ctx context.Context) (int64, error) {
	return r.count(ctx, r.sb.Select("COUNT(*)").From("complaints"), "complaints")
}
