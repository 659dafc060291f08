package main

import (
	"image/color"
	"math"
)

// Random is the randomness the simulation draws from. *rand.Rand satisfies it.
type Random interface {
	Float64() float64
	Intn(n int) int
}

// Particle is one spark of a burst. It is owned by its Firework and dropped
// once Alpha reaches zero.
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Color    color.Color
	Size     float64
	Alpha    float64
	Decay    float64
	Gravity  float64
	Friction float64
}

func newParticle(x, y float64, c color.Color, rng Random) *Particle {
	angle := rng.Float64() * math.Pi * 2
	speed := rng.Float64()*particleSpeed + particleMinSpeed
	return &Particle{
		X:        x,
		Y:        y,
		VX:       math.Cos(angle) * speed,
		VY:       math.Sin(angle) * speed,
		Color:    c,
		Size:     rng.Float64()*particleSizeSpan + particleMinSize,
		Alpha:    1,
		Decay:    rng.Float64()*particleDecay + particleMinDecay,
		Gravity:  particleGravity,
		Friction: particleFriction,
	}
}

func (p *Particle) Update() {
	p.VX *= p.Friction
	p.VY *= p.Friction
	p.VY += p.Gravity

	p.X += p.VX
	p.Y += p.VY

	p.Alpha -= p.Decay
}

func (p *Particle) Draw(s Surface) {
	s.FillRadial(p.X, p.Y, p.Size, []GradientStop{
		{Offset: 0, Color: p.Color},
		{Offset: 1, Color: transparentOf(p.Color)},
	}, p.Alpha)
}

func (p *Particle) Dead() bool {
	return p.Alpha <= 0
}

// transparentOf keeps the hue so the gradient fades instead of darkening.
func transparentOf(c color.Color) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = 0
	return n
}
