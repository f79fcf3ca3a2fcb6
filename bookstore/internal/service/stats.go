package service

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/SihamELBOUBAKRI/LibraryHub-sub000/bookstore/internal/model"
)

// Dashboard gathers the admin counters concurrently.
func (s *Service) Dashboard(ctx context.Context) (model.Dashboard, error) {
	var (
		mu sync.Mutex
		d  model.Dashboard
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, m := range model.DashboardMetrics {
		m := m
		g.Go(func() error {
			v, err := s.repo.Metric(gctx, m)
			if err != nil {
				return err
			}
			mu.Lock()
			d.Set(m, v)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return model.Dashboard{}, err
	}
	return d, nil
}

func (s *Service) EventStats(ctx context.Context) ([]model.EventStat, error) {
	stats, err := s.repo.EventStats(ctx)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		stats = []model.EventStat{}
	}
	return stats, nil
}
