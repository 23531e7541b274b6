package core

import (
	"context"
	"sort"

	assert "github.com/ZanzyTHEbar/assert-lib"

	"colcon-ls/internal/types"
)

// CollectorCore is the single-threaded barrier at the end of a discovery
// run: it filters by name, drops duplicate names keeping the earliest
// record in traversal order, and sorts the survivors.
type CollectorCore struct{}

func NewCollectorCore() CollectorCore {
	return CollectorCore{}
}

// Collect expects records in traversal order (base-path order first, then
// walk order within each base path). The returned sequence is sorted by
// name bytewise, ties broken by path, so output is deterministic across
// runs and platforms regardless of how the walks interleaved.
func (CollectorCore) Collect(ctx context.Context, records []types.PackageRecord, filter types.NameFilter) []types.PackageRecord {
	seen := map[string]struct{}{}
	var kept []types.PackageRecord
	for _, rec := range records {
		assert.NotEmpty(ctx, rec.Name, "package record must carry a name")
		assert.NotEmpty(ctx, rec.Path, "package record must carry a path")
		if !filter.Matches(rec.Name) {
			continue
		}
		if _, dup := seen[rec.Name]; dup {
			// Documented policy: first discovered wins, the rest are
			// silently dropped.
			continue
		}
		seen[rec.Name] = struct{}{}
		kept = append(kept, rec)
	}
	sort.Slice(kept, func(i, j int) bool {
		if kept[i].Name != kept[j].Name {
			return kept[i].Name < kept[j].Name
		}
		return kept[i].Path < kept[j].Path
	})
	return kept
}
