package raycast

import (
	"golang.org/x/sync/errgroup"

	"chosenoffset.com/raycaster/internal/core/geom"
)

// Fan casts a fixed number of rays spread evenly across a field of view.
// The hit buffer is allocated once and overwritten by every cast.
type Fan struct {
	hits []Hit
}

// NewFan creates a fan of n rays.
func NewFan(n int) *Fan {
	if n < 1 {
		n = 1
	}
	return &Fan{hits: make([]Hit, n)}
}

// Len returns the number of rays in the fan.
func (f *Fan) Len() int {
	return len(f.hits)
}

// Hits returns the results of the most recent cast, leftmost ray first.
func (f *Fan) Hits() []Hit {
	return f.hits
}

// Angle returns the normalized angle of ray i for the given heading and
// field of view in degrees.
func (f *Fan) Angle(i int, heading, fovDeg float64) float64 {
	fov := geom.Radians(fovDeg)
	start := heading - fov/2
	step := fov / float64(len(f.hits))
	return geom.NormalizeAngle(start + float64(i)*step)
}

// Cast fills the fan from origin. Index 0 is the leftmost ray.
func (f *Fan) Cast(g Grid, origin geom.Point, heading, fovDeg float64) []Hit {
	f.castRange(g, origin, heading, fovDeg, 0, len(f.hits))
	return f.hits
}

// CastParallel produces the same result as Cast, spreading contiguous chunks
// of rays over at most workers goroutines.
func (f *Fan) CastParallel(g Grid, origin geom.Point, heading, fovDeg float64, workers int) []Hit {
	n := len(f.hits)
	if workers <= 1 || n < 2 {
		return f.Cast(g, origin, heading, fovDeg)
	}
	if workers > n {
		workers = n
	}

	chunk := (n + workers - 1) / workers

	var eg errgroup.Group
	eg.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		eg.Go(func() error {
			f.castRange(g, origin, heading, fovDeg, lo, hi)
			return nil
		})
	}
	// Workers never fail; Wait only joins them.
	_ = eg.Wait()

	return f.hits
}

func (f *Fan) castRange(g Grid, origin geom.Point, heading, fovDeg float64, lo, hi int) {
	for i := lo; i < hi; i++ {
		f.hits[i] = Cast(g, origin, f.Angle(i, heading, fovDeg))
	}
}
