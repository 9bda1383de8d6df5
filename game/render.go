package game

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"
)

var (
	backgroundColor = rl.NewColor(10, 16, 30, 255)
	animalColor     = rl.NewColor(235, 235, 245, 255)
	foodColor       = rl.NewColor(120, 200, 140, 255)
	hudColor        = rl.NewColor(180, 190, 210, 255)
)

// toScreen maps a unit-square world point to pixel space. World Y
// points up, screen Y points down.
func (g *Game) toScreen(p r2.Vec) rl.Vector2 {
	w := float64(g.cfg.Screen.Width)
	h := float64(g.cfg.Screen.Height)
	return rl.NewVector2(float32(p.X*w), float32(h-p.Y*h))
}

// Draw renders the world and the HUD for the current frame.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)

	g.drawFoods()
	g.drawAnimals()
	g.drawHUD()

	rl.EndDrawing()
}

func (g *Game) drawFoods() {
	// Food dots are half the collision radius so the moment of overlap
	// reads as the animal reaching the food, not grazing a large blob.
	radius := float32(g.cfg.World.CollisionRadius * 0.5 * float64(g.cfg.Screen.Width))
	if radius < 1 {
		radius = 1
	}
	for _, f := range g.sim.World().Foods() {
		rl.DrawCircleV(g.toScreen(f.Position()), radius, foodColor)
	}
}

func (g *Game) drawAnimals() {
	size := g.cfg.World.CollisionRadius * float64(g.cfg.Screen.Width)
	if size < 4 {
		size = 4
	}

	for _, a := range g.sim.World().Animals() {
		center := a.Position()
		rotation := a.Rotation()

		// Triangle pointing along the animal's forward axis.
		tip := vertexAt(center, rotation, 0, size)
		left := vertexAt(center, rotation, 2.0*math.Pi/3.0+math.Pi/6.0, size*0.8)
		right := vertexAt(center, rotation, -2.0*math.Pi/3.0-math.Pi/6.0, size*0.8)

		// Screen Y is flipped relative to world Y, which reverses the
		// winding; raylib fills counter-clockwise triangles only.
		rl.DrawTriangle(g.toScreen(tip), g.toScreen(left), g.toScreen(right), animalColor)
	}
}

// vertexAt returns a point offset from center along the direction that
// is the animal's forward axis rotated by the given angle.
func vertexAt(center r2.Vec, rotation, offset, distance float64) r2.Vec {
	angle := rotation + offset
	return r2.Add(center, r2.Vec{
		X: -math.Sin(angle) * distance,
		Y: math.Cos(angle) * distance,
	})
}

func (g *Game) drawHUD() {
	rl.DrawText(fmt.Sprintf("generation %d  age %d/%d",
		g.sim.Generation(), g.sim.Age(), g.cfg.Simulation.GenerationLength),
		10, 10, 20, hudColor)
	rl.DrawText(fmt.Sprintf("speed x%d", g.stepsPerUpdate), 10, 34, 20, hudColor)
	rl.DrawText(fmt.Sprintf("%d fps", rl.GetFPS()), 10, 58, 20, hudColor)

	barY := float32(g.cfg.Screen.Height) - 34

	steps := gui.SliderBar(rl.Rectangle{X: 40, Y: barY, Width: 160, Height: 24},
		"1", "10", float32(g.stepsPerUpdate), 1, 10)
	g.stepsPerUpdate = int(steps + 0.5)

	label := "Pause"
	if g.paused {
		label = "Resume"
	}
	if gui.Button(rl.Rectangle{X: 220, Y: barY, Width: 80, Height: 24}, label) {
		g.paused = !g.paused
	}

	if gui.Button(rl.Rectangle{X: 310, Y: barY, Width: 120, Height: 24}, "Fast forward") {
		g.FastForward()
	}

	if g.paused {
		rl.DrawText("paused", 10, 82, 20, hudColor)
	}
}
