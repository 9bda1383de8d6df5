package sim

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Eye discretizes an animal's field of view into cells. Each visible
// food deposits energy into the cell its bearing falls in; the summed
// cell values are the brain's input vector.
type Eye struct {
	fovRange float64
	fovAngle float64
	cells    int
}

// NewEye panics on non-positive geometry; the sensory configuration is
// fixed for an animal's lifetime.
func NewEye(fovRange, fovAngle float64, cells int) Eye {
	if fovRange <= 0 {
		panic("sim: eye fov range must be positive")
	}
	if fovAngle <= 0 {
		panic("sim: eye fov angle must be positive")
	}
	if cells < 1 {
		panic("sim: eye needs at least one cell")
	}
	return Eye{fovRange: fovRange, fovAngle: fovAngle, cells: cells}
}

// Cells returns the eye's resolution.
func (e Eye) Cells() int { return e.cells }

// Vision senses the foods visible from a position and rotation. Foods
// at exactly fovRange are out of range; a food on the upper FOV edge
// maps into the last cell. Closer food contributes more energy, and
// foods sharing a cell sum their contributions.
func (e Eye) Vision(position r2.Vec, rotation float64, foods []Food) []float32 {
	cells := make([]float32, e.cells)

	for i := range foods {
		vec := r2.Sub(foods[i].position, position)
		distance := r2.Norm(vec)
		if distance >= e.fovRange {
			continue
		}

		// Bearing of the food relative to the forward (+Y) axis,
		// corrected for the animal's own rotation.
		angle := wrapAngle(math.Atan2(-vec.X, vec.Y) - rotation)
		if angle < -e.fovAngle/2 || angle > e.fovAngle/2 {
			continue
		}

		// Shift [-fov/2, fov/2] to [0, fov], normalize to [0, 1] and
		// scale by the cell count to get a fractional index.
		cell := (angle + e.fovAngle/2) / e.fovAngle * float64(e.cells)

		// Truncation leaves the upper boundary at index e.cells.
		idx := int(cell)
		if idx > e.cells-1 {
			idx = e.cells - 1
		}

		cells[idx] += float32((e.fovRange - distance) / e.fovRange)
	}

	return cells
}
