// Package invalidation tracks which rendered routes are out of date.
//
// Every MarkStale bumps the route's revision. Readers expose the revision as
// an ETag, so a client holding an older revision refetches and one holding
// the current revision gets 304 Not Modified.
package invalidation

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/vncsmyrnk/polly/internal/core/ports"
	"github.com/vncsmyrnk/polly/internal/metrics"
)

type Registry struct {
	mu        sync.RWMutex
	revisions map[string]uint64
	// epoch keeps validators from a previous process from matching.
	epoch string
}

var _ ports.ViewInvalidator = (*Registry)(nil)

func NewRegistry() *Registry {
	return &Registry{
		revisions: make(map[string]uint64),
		epoch:     strconv.FormatInt(time.Now().UnixNano(), 36),
	}
}

func (r *Registry) MarkStale(route string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.revisions[route]++
	metrics.IncInvalidation(routePattern(route))
}

func routePattern(route string) string {
	if strings.HasPrefix(route, ports.PollsRoute()+"/") {
		return ports.PollsRoute() + "/{id}"
	}
	return route
}

// Revision is zero for routes never marked stale.
func (r *Registry) Revision(route string) uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.revisions[route]
}

// ETag is a weak validator for the route's current revision.
func (r *Registry) ETag(route string) string {
	return `W/"` + r.epoch + "." + strconv.FormatUint(r.Revision(route), 10) + `"`
}
