package ports

import "go.trai.ch/figc/internal/core/domain"

// Scanner defines the interface for staleness detection.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type Scanner interface {
	// Scan enumerates source units under sourceRoot and returns the jobs
	// whose artifact under outputRoot is missing or strictly older than the
	// source. Order follows traversal order. An empty worklist is a normal
	// result.
	Scan(sourceRoot, outputRoot string, profile domain.Profile) (domain.Worklist, error)
}
