package core

import (
	"sync"

	pep440 "github.com/aquasecurity/go-pep440-version"
)

// versionCache memoizes version well-formedness checks. Workspaces repeat
// the same version strings across many manifests, and parallel walks may
// classify concurrently, so the cache is guarded.
type versionCache struct {
	mu    sync.Mutex
	known map[string]bool
}

func newVersionCache() *versionCache {
	return &versionCache{known: map[string]bool{}}
}

// wellFormed reports whether value parses as a PEP 440 version. ROS
// manifest versions are dotted numeric triples, which parse cleanly.
func (c *versionCache) wellFormed(value string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ok, cached := c.known[value]; cached {
		return ok
	}
	_, err := pep440.Parse(value)
	c.known[value] = err == nil
	return err == nil
}
