// File: snapshot.go
// Role: Snapshot — one published frame of the blend, plus Seek's linear
// index lookup.

package exec

import "github.com/katalvlaran/topoblend/graph"

// Snapshot is one deep-copied frame of the active graph, published at the
// end of a timestep.
type Snapshot struct {
	// GlobalT is the normalized time in [0, 1+Δ] this snapshot was taken at.
	GlobalT float64
	// Active is an independent deep copy of the active graph at GlobalT.
	Active *graph.Graph
}

// Seek resolves the snapshot nearest to normalized time t by linear index
// (idx = len(snapshots) * t, clamped). t is expected in [0,1]; out-of-range
// values are clamped to the first/last snapshot.
//
// Complexity: O(1).
func Seek(snapshots []Snapshot, t float64) Snapshot {
	if len(snapshots) == 0 {
		return Snapshot{}
	}

	idx := int(float64(len(snapshots)) * t)
	if idx < 0 {
		idx = 0
	}
	if idx >= len(snapshots) {
		idx = len(snapshots) - 1
	}
	return snapshots[idx]
}
