package sim

import (
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

const testEyeCells = 13

// renderVision turns a vision vector into a string so the expectations
// below read as a picture of the field of view.
func renderVision(cells []float32) string {
	var b strings.Builder
	for _, cell := range cells {
		switch {
		case cell >= 0.7:
			b.WriteByte('#')
		case cell >= 0.3:
			b.WriteByte('+')
		case cell > 0:
			b.WriteByte('.')
		default:
			b.WriteByte(' ')
		}
	}
	return b.String()
}

type eyeTestCase struct {
	foods    []Food
	x, y     float64
	fovRange float64
	fovAngle float64
	rotation float64
	want     string
}

func (tc eyeTestCase) run(t *testing.T) {
	t.Helper()

	eye := NewEye(tc.fovRange, tc.fovAngle, testEyeCells)
	vision := eye.Vision(r2.Vec{X: tc.x, Y: tc.y}, tc.rotation, tc.foods)

	if got := renderVision(vision); got != tc.want {
		t.Errorf("vision %q, want %q", got, tc.want)
	}
}

func foodAt(x, y float64) Food {
	return Food{position: r2.Vec{X: x, Y: y}}
}

// A single food to the left of the agent, seen through a full-circle
// FOV: rotating the agent cyclically shifts which cell lights up.
func TestEyeRotation(t *testing.T) {
	tests := []struct {
		rotation float64
		want     string
	}{
		{0.00 * math.Pi, "         +   "}, // food is to our right
		{0.25 * math.Pi, "        +    "},
		{0.50 * math.Pi, "      +      "}, // food is in front of us
		{0.75 * math.Pi, "    +        "},
		{1.00 * math.Pi, "   +         "}, // food is to our left
		{1.25 * math.Pi, " +           "},
		{1.45 * math.Pi, "+            "}, // almost directly behind:
		{1.55 * math.Pi, "            +"}, // the bearing wraps around
		{1.75 * math.Pi, "           + "},
		{2.00 * math.Pi, "         +   "}, // full turn, same as 0
		{2.25 * math.Pi, "        +    "},
		{2.50 * math.Pi, "      +      "},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			eyeTestCase{
				foods:    []Food{foodAt(0.0, 0.5)},
				x:        0.5,
				y:        0.5,
				fovRange: 1.0,
				fovAngle: 2 * math.Pi,
				rotation: tt.rotation,
				want:     tt.want,
			}.run(t)
		})
	}
}

// Two foods to the east, agent facing east with a quarter FOV. Moving
// the agent shifts the foods across cells and changes their intensity.
func TestEyePosition(t *testing.T) {
	tests := []struct {
		x, y float64
		want string
	}{
		// Walking the X axis toward the foods.
		{0.8, 0.5, "  #       #  "},
		{0.7, 0.5, "   +     +   "},
		{0.6, 0.5, "    +   +    "},
		{0.5, 0.5, "    +   +    "},
		{0.4, 0.5, "     + +     "},
		{0.3, 0.5, "     . .     "},
		{0.2, 0.5, "     . .     "},
		{0.1, 0.5, "     . .     "},
		{0.0, 0.5, "             "}, // too far, everything out of range
		// Sliding along the Y axis past the foods.
		{0.5, 0.0, "            +"},
		{0.5, 0.2, "         +  +"},
		{0.5, 0.3, "        + +  "},
		{0.5, 0.4, "      +  +   "},
		{0.5, 0.6, "   +  +      "},
		{0.5, 0.7, "  + +        "},
		{0.5, 0.8, "+  +         "},
		{0.5, 1.0, "+            "},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			eyeTestCase{
				foods:    []Food{foodAt(1.0, 0.4), foodAt(1.0, 0.6)},
				x:        tt.x,
				y:        tt.y,
				fovRange: 1.0,
				fovAngle: math.Pi / 2,
				rotation: 3 * math.Pi / 2,
				want:     tt.want,
			}.run(t)
		})
	}
}

// One food straight ahead; shrinking the range dims it and finally
// drops it. The boundary is exclusive: a food at exactly fovRange is
// invisible.
func TestEyeFovRange(t *testing.T) {
	tests := []struct {
		fovRange float64
		want     string
	}{
		{1.0, "      +      "},
		{0.9, "      +      "},
		{0.8, "      +      "},
		{0.7, "      .      "},
		{0.6, "      .      "},
		{0.5, "             "}, // food sits exactly at the range edge
		{0.4, "             "},
		{0.1, "             "},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			eyeTestCase{
				foods:    []Food{foodAt(0.5, 1.0)},
				x:        0.5,
				y:        0.5,
				fovRange: tt.fovRange,
				fovAngle: math.Pi / 2,
				rotation: 0,
				want:     tt.want,
			}.run(t)
		})
	}
}

func TestEyeFoodsShareACell(t *testing.T) {
	eye := NewEye(1.0, 2*math.Pi, testEyeCells)

	// Two foods stacked straight ahead at different distances land in
	// the same cell and their energies add up.
	vision := eye.Vision(r2.Vec{X: 0.5, Y: 0.5}, 0, []Food{
		foodAt(0.5, 0.7),
		foodAt(0.5, 0.9),
	})

	lit := 0
	for _, cell := range vision {
		if cell > 0 {
			lit++
		}
	}
	if lit != 1 {
		t.Fatalf("%d cells lit, want 1", lit)
	}

	want := float32((1.0-0.2)/1.0 + (1.0-0.4)/1.0)
	got := vision[6]
	if math.Abs(float64(got-want)) > 1e-6 {
		t.Errorf("shared cell energy = %v, want %v", got, want)
	}
}

func TestNewEyePanics(t *testing.T) {
	tests := []struct {
		name     string
		fovRange float64
		fovAngle float64
		cells    int
	}{
		{"zero range", 0, 1, 4},
		{"negative angle", 1, -1, 4},
		{"zero cells", 1, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			NewEye(tt.fovRange, tt.fovAngle, tt.cells)
		})
	}
}
