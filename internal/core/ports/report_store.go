package ports

import "go.trai.ch/figc/internal/core/domain"

// ReportStore defines the interface for persisting run reports.
//
//go:generate go run go.uber.org/mock/mockgen -source=report_store.go -destination=mocks/mock_report_store.go -package=mocks
type ReportStore interface {
	// Put writes the report to the file at the given path.
	Put(path string, report domain.Report) error

	// Get reads a previously persisted report.
	// Returns nil, nil if the file does not exist.
	Get(path string) (*domain.Report, error)
}
