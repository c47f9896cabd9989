package ports

// Mirrorer defines the interface for establishing the output namespace.
//
//go:generate go run go.uber.org/mock/mockgen -source=mirror.go -destination=mocks/mock_mirror.go -package=mocks
type Mirrorer interface {
	// Mirror ensures every directory reachable under sourceRoot exists at
	// the same relative path under outputRoot. It is idempotent. Directory
	// names matching an ignore pattern are skipped with their subtrees.
	Mirror(sourceRoot, outputRoot string, ignores []string) error
}
