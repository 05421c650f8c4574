package cursor

import "math"

// Candidate is an entity reported as overlapping the cursor this frame.
type Candidate struct {
	Target Target
	Depth  float64
}

// Resolver picks the frontmost of the candidates reported during a frame.
// The greatest depth wins; on an exact tie the earliest report is kept.
type Resolver struct {
	best  Candidate
	count int
}

// Report records one overlap notification. It may be called any number of
// times per frame. A NaN depth ranks below every other depth.
func (r *Resolver) Report(id EntityID, group string, depth float64) {
	if math.IsNaN(depth) {
		depth = math.Inf(-1)
	}
	if r.count == 0 || depth > r.best.Depth {
		r.best = Candidate{Target: Target{ID: id, Group: group}, Depth: depth}
	}
	r.count++
}

// Count returns the number of reports since the last Resolve.
func (r *Resolver) Count() int {
	return r.count
}

// Resolve returns the winning candidate, if any, and clears the frame.
func (r *Resolver) Resolve() (Candidate, bool) {
	c, ok := r.best, r.count > 0
	r.best = Candidate{}
	r.count = 0
	return c, ok
}
