package main

import (
	"image/color"
	"io"
	"log/slog"
	"time"
)

// fireworkPalette is the fixed set of burst colors.
var fireworkPalette = []color.Color{
	color.RGBA{0xff, 0x08, 0x44, 0xff},
	color.RGBA{0xff, 0xb7, 0x00, 0xff},
	color.RGBA{0x00, 0xe5, 0xff, 0xff},
	color.RGBA{0x6c, 0x5c, 0xe7, 0xff},
	color.RGBA{0x00, 0xff, 0x88, 0xff},
	color.RGBA{0xff, 0x6b, 0x6b, 0xff},
	color.RGBA{0x4e, 0xcd, 0xc4, 0xff},
	color.RGBA{0xff, 0xe6, 0x6d, 0xff},
	color.RGBA{0xa8, 0xe6, 0xcf, 0xff},
	color.RGBA{0xff, 0xd9, 0x3d, 0xff},
}

var fadeColor = color.NRGBA{0, 0, 0, uint8(fadeAlpha*255 + 0.5)}

// Simulation runs the fireworks show on a Surface, one update per frame.
type Simulation struct {
	surface Surface
	sched   Scheduler
	rng     Random
	logger  *slog.Logger

	fireworks []*Firework
	palette   []color.Color
	active    bool
	width     float64
	height    float64

	frame  CallbackID
	spawns []CallbackID
	clear  CallbackID
}

func NewSimulation(surface Surface, sched Scheduler, rng Random, logger *slog.Logger) (*Simulation, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	w, h := surface.Size()
	if w <= 0 || h <= 0 {
		return nil, ErrNoSurface
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Simulation{
		surface: surface,
		sched:   sched,
		rng:     rng,
		logger:  logger,
		palette: fireworkPalette,
		width:   float64(w),
		height:  float64(h),
	}, nil
}

func (s *Simulation) Active() bool {
	return s.active
}

// Fireworks returns the active fireworks in launch order.
func (s *Simulation) Fireworks() []*Firework {
	return s.fireworks
}

// Resize re-reads the surface dimensions.
func (s *Simulation) Resize() {
	w, h := s.surface.Size()
	s.width, s.height = float64(w), float64(h)
}

func (s *Simulation) createFirework() {
	x := s.rng.Float64() * s.width
	targetY := s.rng.Float64()*(s.height*0.4) + s.height*0.1
	c := s.palette[s.rng.Intn(len(s.palette))]

	s.fireworks = append(s.fireworks, NewFirework(x, s.height, targetY, c, s.rng))
}

func (s *Simulation) update() {
	s.frame = 0
	s.surface.FillRect(0, 0, s.width, s.height, fadeColor)

	if s.rng.Float64() < spawnChance && len(s.fireworks) < maxFireworks {
		s.createFirework()
	}

	live := s.fireworks[:0]
	for _, f := range s.fireworks {
		f.Update()
		f.Draw(s.surface)
		if !f.Done() {
			live = append(live, f)
		}
	}
	for i := len(live); i < len(s.fireworks); i++ {
		s.fireworks[i] = nil
	}
	s.fireworks = live

	if s.active {
		s.frame = s.sched.RequestFrame(s.update)
	}
}

func (s *Simulation) Start() {
	if s.active {
		return
	}
	s.active = true

	if s.clear != 0 {
		s.sched.Cancel(s.clear)
		s.clear = 0
	}
	s.surface.Clear()

	s.spawns = s.spawns[:0]
	for i := 0; i < initialSpawns; i++ {
		s.spawns = append(s.spawns, s.sched.After(time.Duration(i)*spawnStagger, s.createFirework))
	}
	s.logger.Debug("fireworks started", "width", s.width, "height", s.height)

	s.update()
}

// Stop halts the frame loop at once and wipes the show after a grace delay.
func (s *Simulation) Stop() {
	s.active = false

	if s.frame != 0 {
		s.sched.CancelFrame(s.frame)
		s.frame = 0
	}
	for _, id := range s.spawns {
		s.sched.Cancel(id)
	}
	s.spawns = s.spawns[:0]

	if s.clear != 0 {
		s.sched.Cancel(s.clear)
	}
	s.clear = s.sched.After(fireworksGrace, func() {
		s.clear = 0
		s.fireworks = nil
		s.surface.Clear()
		s.logger.Debug("fireworks cleared")
	})
}

// Cleanup stops the show on shutdown.
func (s *Simulation) Cleanup() {
	s.Stop()
}
