package ports

import "context"

// DependencyFetcher pulls the transitive dependencies of the source tree.
//
//go:generate mockgen -source=gclient.go -destination=mocks/mock_gclient.go -package=mocks
type DependencyFetcher interface {
	// Sync fetches dependencies without running hooks.
	Sync(ctx context.Context, root, depotTools string, args []string) error

	// RunHooks executes the post-fetch hooks.
	RunHooks(ctx context.Context, root, depotTools string) error
}
