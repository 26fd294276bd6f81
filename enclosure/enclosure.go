package enclosure

import "github.com/voxfield/fluxgrid/grid"

// offsets precomputes the neighbor steps used by one classification
// run: per-axis coordinate deltas for the bounds guard, and the
// matching flat-index delta for O(1) stepping.
type offsets struct {
	deltas [][]int
	flat   []int
}

// neighborOffsets enumerates the step set for conn over the given
// geometry. Axes of extent 1 admit no step and are pinned to 0, which
// also keeps the Moore set small on degenerate shapes.
func neighborOffsets(conn Connectivity, dims, strides []int) (offsets, error) {
	rank := len(dims)
	switch conn {
	case ConnFaces:
		o := offsets{}
		for d := 0; d < rank; d++ {
			if dims[d] == 1 {
				continue
			}
			for _, step := range [2]int{1, -1} {
				delta := make([]int, rank)
				delta[d] = step
				o.deltas = append(o.deltas, delta)
				o.flat = append(o.flat, step*strides[d])
			}
		}
		return o, nil

	case ConnMoore:
		// Odometer over {-1,0,1} per steppable axis, skipping the
		// all-zero tuple.
		o := offsets{}
		cur := make([]int, rank)
		for d := range cur {
			if dims[d] > 1 {
				cur[d] = -1
			}
		}
		for {
			zero := true
			for _, v := range cur {
				if v != 0 {
					zero = false
					break
				}
			}
			if !zero {
				delta := make([]int, rank)
				copy(delta, cur)
				f := 0
				for d, v := range cur {
					f += v * strides[d]
				}
				o.deltas = append(o.deltas, delta)
				o.flat = append(o.flat, f)
			}
			d := rank - 1
			for ; d >= 0; d-- {
				if dims[d] == 1 {
					continue
				}
				cur[d]++
				if cur[d] <= 1 {
					break
				}
				cur[d] = -1
			}
			if d < 0 {
				return o, nil
			}
		}

	default:
		return offsets{}, ErrConnectivity
	}
}

// inBounds reports whether stepping coords by delta stays inside dims
// on every axis. Guarding per axis prevents flat-index wraparound
// between adjacent rows.
func inBounds(coords, delta, dims []int) bool {
	for d, dv := range delta {
		if dv == 0 {
			continue
		}
		if c := coords[d] + dv; c < 0 || c >= dims[d] {
			return false
		}
	}
	return true
}

// Interior returns the mask of open cells that the array boundary
// cannot reach through open-cell steps: the enclosed interior.
//
// The walk seeds an explicit FIFO queue with every open cell lying on
// a bounding face, then drains every open region connected to the
// hull. Open cells left unvisited are interior. Wall cells are never
// interior.
//
// Time:   O(C×K×N), where C = cell count, K = neighbors per cell,
// N = rank (coordinate guard per step).
// Memory: O(C) for visited flags, queue and the result mask.
func Interior(b *grid.Binary, opts Options) (*grid.Mask, error) {
	if b == nil {
		return nil, ErrNilGrid
	}
	dims := b.Dims()
	off, err := neighborOffsets(opts.Conn, dims, b.Strides())
	if err != nil {
		return nil, err
	}

	total := b.Len()
	seen := make([]bool, total)
	var queue []int

	// Seed with every open cell on a bounding face.
	for idx := 0; idx < total; idx++ {
		if b.Cell(idx) == 0 && b.OnBoundary(idx) {
			seen[idx] = true
			queue = append(queue, idx)
		}
	}

	// BFS: everything reachable from the hull is exterior.
	coords := make([]int, b.Rank())
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		coords = b.Coords(u, coords)
		for k, delta := range off.deltas {
			if !inBounds(coords, delta, dims) {
				continue
			}
			v := u + off.flat[k]
			if b.Cell(v) != 0 || seen[v] {
				continue // wall, or already drained
			}
			seen[v] = true
			queue = append(queue, v)
		}
	}

	// Interior = open cells the walk never reached.
	mask, err := grid.NewMask(dims)
	if err != nil {
		return nil, err
	}
	for idx := 0; idx < total; idx++ {
		if b.Cell(idx) == 0 && !seen[idx] {
			mask.SetBit(idx, true)
		}
	}
	return mask, nil
}

// IsClosed reports whether the walls seal off at least one open cell.
// An all-wall array has no open cells and is therefore not closed.
//
// Complexity: same as Interior.
func IsClosed(b *grid.Binary, opts Options) (bool, error) {
	in, err := Interior(b, opts)
	if err != nil {
		return false, err
	}
	return in.Count() > 0, nil
}
