package services

import (
	"context"

	"github.com/yigit/hostelhub/internal/app/models/dto"
	"github.com/yigit/hostelhub/internal/app/repositories"
	"golang.org/x/sync/errgroup"
)

// StatsService defines the interface for dashboard statistics
type StatsService interface {
	GetAdminStats(ctx context.Context) (*dto.AdminStatsResponse, error)
}

type statsServiceImpl struct {
	statsRepo repositories.IStatsRepository
}

// NewStatsService creates a new stats service instance
func NewStatsService(statsRepo repositories.IStatsRepository) StatsService {
	return &statsServiceImpl{
		statsRepo: statsRepo,
	}
}

// GetAdminStats runs the three counters concurrently
func (s *statsServiceImpl) GetAdminStats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	var stats dto.AdminStatsResponse
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		stats.Students, err = s.statsRepo.CountStudents(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Rooms, err = s.statsRepo.CountRooms(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Complaints, err = s.statsRepo.CountComplaints(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &stats, nil
}
