package app

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"colcon-ls/internal/shared"
	"colcon-ls/internal/types"
)

// listRoot is one traversal root: a --paths entry (non-recursive) or a
// --base-paths entry (recursive).
type listRoot struct {
	path    string
	recurse bool
}

// List runs one full discovery: every root is walked, the merged records
// are filtered, deduplicated and sorted, and only then handed back. A
// missing root is fatal before its walk begins; zero packages is a
// warning, not an error.
func (s Service) List(ctx context.Context, req ListRequest) (ListResult, error) {
	var roots []listRoot
	for _, path := range shared.PreprocessPaths(req.Paths) {
		roots = append(roots, listRoot{path: path, recurse: false})
	}
	basePaths := shared.PreprocessPaths(req.BasePaths)
	if len(roots) == 0 && len(basePaths) == 0 {
		basePaths = []string{"."}
	}
	for _, path := range basePaths {
		roots = append(roots, listRoot{path: path, recurse: true})
	}

	// Roots are traversal-independent, so they run in parallel. Each walk
	// writes only its own slot; ordering is restored by slot index before
	// the collector, which is the single-threaded barrier.
	results := make([][]types.PackageRecord, len(roots))
	g, gctx := errgroup.WithContext(ctx)
	for i, root := range roots {
		g.Go(func() error {
			records, err := s.Walker.Walk(gctx, root.path, root.recurse)
			if err != nil {
				return err
			}
			results[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return ListResult{}, err
	}

	var merged []types.PackageRecord
	for _, records := range results {
		merged = append(merged, records...)
	}

	filter := types.NameFilter{Pattern: req.Filter, Exact: req.Exact}
	collected := s.Collector.Collect(ctx, merged, filter)
	if len(collected) == 0 {
		log.Warn().Msg("no packages found")
	}
	return ListResult{Records: collected}, nil
}
