package main

import (
	"image/color"
)

// trailRing keeps the last positions of a rising rocket, oldest first.
type trailRing struct {
	points []point
	next   int
	full   bool
}

func newTrailRing(size int) *trailRing {
	if size <= 0 {
		size = trailLength
	}
	return &trailRing{points: make([]point, size)}
}

func (t *trailRing) Push(p point) {
	t.points[t.next] = p
	t.next++
	if t.next >= len(t.points) {
		t.next = 0
		t.full = true
	}
}

func (t *trailRing) Len() int {
	if t.full {
		return len(t.points)
	}
	return t.next
}

// Points returns the stored positions in chronological order.
func (t *trailRing) Points() []point {
	if !t.full {
		out := make([]point, t.next)
		copy(out, t.points[:t.next])
		return out
	}
	out := make([]point, 0, len(t.points))
	out = append(out, t.points[t.next:]...)
	out = append(out, t.points[:t.next]...)
	return out
}

// Firework is a rocket that rises, detonates into a burst of particles and is
// done once every particle has faded.
type Firework struct {
	X, Y     float64
	VY       float64
	TargetY  float64
	Color    color.Color
	Gravity  float64
	Exploded bool

	Particles []*Particle
	trail     *trailRing
	rng       Random
}

func NewFirework(x, y, targetY float64, c color.Color, rng Random) *Firework {
	return &Firework{
		X:       x,
		Y:       y,
		VY:      -(rng.Float64()*rocketSpeedSpan + rocketMinSpeed),
		TargetY: targetY,
		Color:   c,
		Gravity: rocketGravity,
		trail:   newTrailRing(trailLength),
		rng:     rng,
	}
}

func (f *Firework) Update() {
	if !f.Exploded {
		f.trail.Push(point{X: f.X, Y: f.Y})

		f.VY += f.Gravity
		f.Y += f.VY

		// Detonate on the way down, at or below the target altitude.
		if f.VY >= 0 && f.Y >= f.TargetY {
			f.explode()
		}
		return
	}

	alive := f.Particles[:0]
	for _, p := range f.Particles {
		p.Update()
		if !p.Dead() {
			alive = append(alive, p)
		}
	}
	for i := len(alive); i < len(f.Particles); i++ {
		f.Particles[i] = nil
	}
	f.Particles = alive
}

func (f *Firework) explode() {
	f.Exploded = true

	count := minBurst + f.rng.Intn(burstSpan+1)
	f.Particles = make([]*Particle, 0, count)
	for i := 0; i < count; i++ {
		f.Particles = append(f.Particles, newParticle(f.X, f.Y, f.Color, f.rng))
	}
}

func (f *Firework) Draw(s Surface) {
	if f.Exploded {
		for _, p := range f.Particles {
			p.Draw(s)
		}
		return
	}

	trail := f.trail.Points()
	for i, pt := range trail {
		alpha := float64(i) / float64(len(trail)) * 0.8
		s.FillRadial(pt.X, pt.Y, 3, []GradientStop{
			{Offset: 0, Color: f.Color},
			{Offset: 1, Color: transparentOf(f.Color)},
		}, alpha)
	}

	s.FillRadial(f.X, f.Y, 4, []GradientStop{
		{Offset: 0, Color: color.White},
		{Offset: 0.3, Color: f.Color},
		{Offset: 1, Color: transparentOf(f.Color)},
	}, 1)
}

func (f *Firework) Done() bool {
	return f.Exploded && len(f.Particles) == 0
}
