package domain

import "context"

// OptimizeReport summarizes a data file optimization pass.
type OptimizeReport struct {
	Kept    int
	Dropped int
}

// Maintainer exposes the store-level maintenance operations used by the
// admin tooling.
type Maintainer interface {
	Optimize(ctx context.Context) (OptimizeReport, error)
	ClearLogs(ctx context.Context) (int, error)
}
