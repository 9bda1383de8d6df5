package sim

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// coherenceAttenuation keeps the pull toward the flock centroid small
// relative to world scale so animals drift toward it instead of
// teleporting onto it.
const coherenceAttenuation = 1.0 / 100.0

// coherence pulls animal i toward the centroid of all other animals.
// With no other animals the centroid degenerates to the animal's own
// position and the force is zero.
func (w *World) coherence(i int) r2.Vec {
	self := w.animals[i]

	var centroid r2.Vec
	others := 0
	for j, a := range w.animals {
		if j == i {
			continue
		}
		centroid = r2.Add(centroid, a.position)
		others++
	}
	if others == 0 {
		return r2.Vec{}
	}
	centroid = r2.Scale(1/float64(others), centroid)

	return r2.Scale(coherenceAttenuation, r2.Sub(centroid, self.position))
}

// separation pushes animal i away from every other animal strictly
// closer than the separation distance.
func (w *World) separation(i int, distance float64) r2.Vec {
	self := w.animals[i]

	var force r2.Vec
	for j, a := range w.animals {
		if j == i {
			continue
		}
		away := r2.Sub(self.position, a.position)
		if r2.Norm(away) < distance {
			force = r2.Add(force, away)
		}
	}
	return force
}

// alignment steers animal i toward the average velocity of all other
// animals. With no other animals there is nothing to align with and
// the force is zero.
func (w *World) alignment(i int) r2.Vec {
	var sum r2.Vec
	others := 0
	for j, a := range w.animals {
		if j == i {
			continue
		}
		sum = r2.Add(sum, a.velocity())
		others++
	}
	if others == 0 {
		return r2.Vec{}
	}
	return r2.Scale(1/float64(others), sum)
}

// flockingDeltas computes every animal's combined flocking displacement
// from the pre-update positions, so the result does not depend on the
// order animals are moved in.
func (w *World) flockingDeltas(cfg Config) []r2.Vec {
	deltas := make([]r2.Vec, len(w.animals))
	for i := range w.animals {
		coherence := r2.Scale(cfg.CoherenceWeight, w.coherence(i))
		separation := r2.Scale(cfg.SeparationWeight, w.separation(i, cfg.SeparationDistance))
		alignment := r2.Scale(cfg.AlignmentWeight, w.alignment(i))
		deltas[i] = r2.Add(r2.Add(coherence, separation), alignment)
	}
	return deltas
}
