package service

import (
	"context"

	"github.com/msomdec/weblog/internal/domain"
)

// MaintenanceService exposes the admin maintenance operations.
type MaintenanceService struct {
	store domain.Maintainer
}

// NewMaintenanceService creates a new MaintenanceService.
func NewMaintenanceService(store domain.Maintainer) *MaintenanceService {
	return &MaintenanceService{store: store}
}

// OptimizeData rewrites the data files keeping only lines that parse.
func (s *MaintenanceService) OptimizeData(ctx context.Context) (domain.OptimizeReport, error) {
	return s.store.Optimize(ctx)
}

// ClearLogs truncates the log files in the data directory.
func (s *MaintenanceService) ClearLogs(ctx context.Context) (int, error) {
	return s.store.ClearLogs(ctx)
}
