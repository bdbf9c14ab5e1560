// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glhal

import (
	"time"

	"github.com/gogpu/glhal/glenum"
)

// Query is a query object. Results are produced on the host: primitive
// counts from the draws issued while the query is active, sample counts as
// a conservative bound over the covered viewport area, and times from the
// host clock. A result becomes available when the submission holding the
// commands it covers completes.
type Query struct {
	name   uint32
	target glenum.QueryTarget
	used   bool // target is fixed
	active bool
	result uint64
	after  uint64 // submission that must complete before the result is available
	begin  time.Time
}

func newQuery(name uint32) *Query { return &Query{name: name} }

// queryTargetValid reports whether target can be used with BeginQuery.
func queryTargetValid(target glenum.QueryTarget) bool {
	switch target {
	case glenum.SamplesPassed, glenum.AnySamplesPassed, glenum.AnySamplesPassedConservative,
		glenum.PrimitivesGenerated, glenum.TransformFeedbackPrimitivesWritten, glenum.TimeElapsed:
		return true
	}
	return false
}

// GenQueries reserves n query names.
func (c *Context) GenQueries(n int32) []uint32 {
	if !c.live() || !c.count("GenQueries", n) {
		return nil
	}
	return c.queries.Gen(int(n))
}

// CreateQueries creates n queries of target.
func (c *Context) CreateQueries(target glenum.QueryTarget, n int32) []uint32 {
	if !c.live() || !c.count("CreateQueries", n) {
		return nil
	}
	if !queryTargetValid(target) && target != glenum.Timestamp {
		c.errorf(glenum.InvalidEnum, "CreateQueries: target %s", target)
		return nil
	}
	names := c.queries.Create(int(n))
	for _, name := range names {
		q, _ := c.queries.Get(name)
		q.target, q.used = target, true
	}
	return names
}

// IsQuery reports whether name is a query object.
func (c *Context) IsQuery(name uint32) bool {
	if !c.live() {
		return false
	}
	return c.queries.Is(name)
}

// DeleteQueries deletes queries. An active query is ended first.
func (c *Context) DeleteQueries(list []uint32) {
	if !c.live() {
		return
	}
	for _, name := range list {
		if q, ok := c.queries.Get(name); ok && q.active {
			c.endQuery(q)
		}
		if name != 0 && c.queries.Reserved(name) {
			c.dropLabel(glenum.ObjectQuery, name)
		}
	}
	c.queries.Delete(list)
}

// BeginQuery starts counting into query name.
func (c *Context) BeginQuery(target glenum.QueryTarget, name uint32) {
	if !c.live() {
		return
	}
	if !queryTargetValid(target) {
		c.errorf(glenum.InvalidEnum, "BeginQuery: target %s", target)
		return
	}
	if c.activeQueries[target] != 0 {
		c.errorf(glenum.InvalidOperation, "BeginQuery: a %s query is already active", target)
		return
	}
	if name == 0 || !c.queries.Reserved(name) {
		c.errorf(glenum.InvalidOperation, "BeginQuery: %d is not a query name", name)
		return
	}
	q := c.queries.EnsureInit(name)
	if q.active {
		c.errorf(glenum.InvalidOperation, "BeginQuery: query %d is active", name)
		return
	}
	if q.used && q.target != target {
		c.errorf(glenum.InvalidOperation, "BeginQuery: query %d is a %s query", name, q.target)
		return
	}
	q.target, q.used, q.active = target, true, true
	q.result, q.after = 0, 0
	q.begin = time.Now()
	c.activeQueries[target] = name
}

// EndQuery stops the active query of target.
func (c *Context) EndQuery(target glenum.QueryTarget) {
	if !c.live() {
		return
	}
	if !queryTargetValid(target) {
		c.errorf(glenum.InvalidEnum, "EndQuery: target %s", target)
		return
	}
	q, ok := c.queries.Get(c.activeQueries[target])
	if !ok {
		c.errorf(glenum.InvalidOperation, "EndQuery: no active %s query", target)
		return
	}
	c.endQuery(q)
}

func (c *Context) endQuery(q *Query) {
	delete(c.activeQueries, q.target)
	q.active = false
	if q.target == glenum.TimeElapsed {
		q.result = uint64(time.Since(q.begin).Nanoseconds())
	}
	if q.target == glenum.AnySamplesPassed || q.target == glenum.AnySamplesPassedConservative {
		q.result = min(q.result, 1)
	}
	q.after = c.pendingSubmission()
}

// pendingSubmission is the submission index that will hold the commands
// recorded so far.
func (c *Context) pendingSubmission() uint64 {
	if c.enc.cmd != nil || c.enc.clear.any() {
		return c.enc.submitted + 1
	}
	return c.enc.submitted
}

// QueryCounter records the time at which the preceding commands complete
// into query name. Only TIMESTAMP is accepted.
func (c *Context) QueryCounter(name uint32, target glenum.QueryTarget) {
	if !c.live() {
		return
	}
	if target != glenum.Timestamp {
		c.errorf(glenum.InvalidEnum, "QueryCounter: target %s", target)
		return
	}
	if name == 0 || !c.queries.Reserved(name) {
		c.errorf(glenum.InvalidOperation, "QueryCounter: %d is not a query name", name)
		return
	}
	q := c.queries.EnsureInit(name)
	if q.active {
		c.errorf(glenum.InvalidOperation, "QueryCounter: query %d is active", name)
		return
	}
	if q.used && q.target != target {
		c.errorf(glenum.InvalidOperation, "QueryCounter: query %d is a %s query", name, q.target)
		return
	}
	q.target, q.used = target, true
	q.result = c.timestamp()
	q.after = c.pendingSubmission()
}

// timestamp is the host clock in nanoseconds since the context was created.
func (c *Context) timestamp() uint64 {
	return uint64(time.Since(c.epoch).Nanoseconds())
}

// countQueries adds the work of one draw to the active queries.
func (c *Context) countQueries(primitives, samples uint64) {
	for target, name := range c.activeQueries {
		q, ok := c.queries.Get(name)
		if !ok {
			continue
		}
		switch target {
		case glenum.PrimitivesGenerated:
			q.result += primitives
		case glenum.SamplesPassed, glenum.AnySamplesPassed, glenum.AnySamplesPassedConservative:
			q.result += samples
		}
	}
}

// GetQueryObjectui64v returns a query parameter. QUERY_RESULT waits for the
// result.
func (c *Context) GetQueryObjectui64v(name uint32, pname glenum.QueryParameter) uint64 {
	if !c.live() {
		return 0
	}
	q, ok := c.queries.Get(name)
	if !ok || !q.used {
		c.errorf(glenum.InvalidOperation, "GetQueryObjectui64v: %d is not a query object", name)
		return 0
	}
	if q.active {
		c.errorf(glenum.InvalidOperation, "GetQueryObjectui64v: query %d is active", name)
		return 0
	}
	switch pname {
	case glenum.QueryTargetParam:
		return uint64(q.target)
	case glenum.QueryResultAvailable:
		return uint64(glenum.FromBool(c.queryAvailable(q)))
	case glenum.QueryResultNoWait:
		if !c.queryAvailable(q) {
			return 0
		}
		return q.result
	case glenum.QueryResult:
		if !c.queryAvailable(q) {
			if q.after > c.enc.submitted && !c.submit() {
				return 0
			}
			c.waitSubmission(q.after, time.Duration(1<<63-1))
		}
		return q.result
	}
	c.errorf(glenum.InvalidEnum, "GetQueryObjectui64v: pname %s", pname)
	return 0
}

// GetQueryObjectuiv returns a query parameter truncated to 32 bits.
func (c *Context) GetQueryObjectuiv(name uint32, pname glenum.QueryParameter) uint32 {
	return uint32(min(c.GetQueryObjectui64v(name, pname), 0xFFFFFFFF))
}

func (c *Context) queryAvailable(q *Query) bool {
	return q.after == 0 || (q.after <= c.enc.submitted && c.dev.Queue.PollCompleted() >= q.after)
}

// GetQueryiv returns a parameter of a query target.
func (c *Context) GetQueryiv(target glenum.QueryTarget, pname glenum.QueryTargetParameter) int32 {
	if !c.live() {
		return 0
	}
	if !queryTargetValid(target) && target != glenum.Timestamp {
		c.errorf(glenum.InvalidEnum, "GetQueryiv: target %s", target)
		return 0
	}
	switch pname {
	case glenum.CurrentQuery:
		if target == glenum.Timestamp {
			return 0
		}
		return int32(c.activeQueries[target])
	case glenum.QueryCounterBits:
		switch target {
		case glenum.TimeElapsed, glenum.Timestamp:
			return 64
		case glenum.AnySamplesPassed, glenum.AnySamplesPassedConservative:
			return 1
		}
		return 32
	}
	c.errorf(glenum.InvalidEnum, "GetQueryiv: pname %s", pname)
	return 0
}
