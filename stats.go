// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

// statCounters are the counters the context maintains itself. Cache
// counters are read from the caches.
type statCounters struct {
	submissions uint64
	draws       uint64
	dispatches  uint64
	dropped     uint64
}

// Stats is a snapshot of context activity.
type Stats struct {
	PipelineHits   uint64
	PipelineMisses uint64
	Pipelines      int

	BindGroupHits      uint64
	BindGroupMisses    uint64
	BindGroupEvictions uint64

	Submissions uint64
	Draws       uint64 // draws recorded to the backend
	Dispatches  uint64
	Dropped     uint64 // draws and dispatches dropped by validation
}

// PipelineHitRate returns the fraction of pipeline lookups served from the
// cache.
func (s Stats) PipelineHitRate() float64 {
	total := s.PipelineHits + s.PipelineMisses
	if total == 0 {
		return 0
	}
	return float64(s.PipelineHits) / float64(total)
}

// Stats returns the activity counters of the context.
func (c *Context) Stats() Stats {
	ph, pm := c.pipelines.Stats()
	bh, bm, be := c.bindGroups.Stats()
	return Stats{
		PipelineHits:       ph,
		PipelineMisses:     pm,
		Pipelines:          c.pipelines.Len(),
		BindGroupHits:      bh,
		BindGroupMisses:    bm,
		BindGroupEvictions: be,
		Submissions:        c.stats.submissions,
		Draws:              c.stats.draws,
		Dispatches:         c.stats.dispatches,
		Dropped:            c.stats.dropped,
	}
}
