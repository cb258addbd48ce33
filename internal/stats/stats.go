package stats

import (
	"sync/atomic"
	"time"
)

// Counters tracks in-memory service totals. Nothing is persisted, so the
// numbers reset on restart.
type Counters struct {
	started             time.Time
	rendersSucceeded    atomic.Int64
	rendersFailed       atomic.Int64
	transformsSucceeded atomic.Int64
	transformsFailed    atomic.Int64
	blocked             atomic.Int64
}

func New() *Counters {
	return &Counters{started: time.Now()}
}

func (c *Counters) RenderSucceeded()    { c.rendersSucceeded.Add(1) }
func (c *Counters) RenderFailed()       { c.rendersFailed.Add(1) }
func (c *Counters) TransformSucceeded() { c.transformsSucceeded.Add(1) }
func (c *Counters) TransformFailed()    { c.transformsFailed.Add(1) }
func (c *Counters) Blocked()            { c.blocked.Add(1) }

// Outcome pairs success and failure totals for one operation.
type Outcome struct {
	Succeeded int64 `json:"succeeded"`
	Failed    int64 `json:"failed"`
}

// Summary is the JSON shape served by the stats endpoint.
type Summary struct {
	UptimeSeconds int64   `json:"uptime_seconds"`
	Renders       Outcome `json:"renders"`
	Transforms    Outcome `json:"transforms"`
	Blocked       int64   `json:"blocked"`
}

func (c *Counters) Snapshot() Summary {
	return Summary{
		UptimeSeconds: int64(time.Since(c.started).Seconds()),
		Renders: Outcome{
			Succeeded: c.rendersSucceeded.Load(),
			Failed:    c.rendersFailed.Load(),
		},
		Transforms: Outcome{
			Succeeded: c.transformsSucceeded.Load(),
			Failed:    c.transformsFailed.Load(),
		},
		Blocked: c.blocked.Load(),
	}
}
