package main

import "time"

type Mode int

const (
	ModeCountdown Mode = iota
	ModeTransition
	ModeCelebration
)

const (
	TimezoneLocal = "local"
	TimezoneUTC   = "UTC"

	defaultTargetYear = 2026
	defaultTimezone   = TimezoneLocal
	defaultTheme      = "dark-gold"
	defaultFPS        = 60

	// Countdown unit sizes in milliseconds
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

const (
	celebrationDelay = 600 * time.Millisecond
	fireworksGrace   = 3000 * time.Millisecond
	initialSpawns    = 5
	spawnStagger     = 300 * time.Millisecond

	maxFireworks = 8
	spawnChance  = 0.08
	fadeAlpha    = 0.1

	rocketGravity   = 0.25
	rocketMinSpeed  = 10.0
	rocketSpeedSpan = 8.0
	trailLength     = 10

	minBurst  = 80
	burstSpan = 50 // bursts hold minBurst..minBurst+burstSpan particles

	particleGravity  = 0.15
	particleFriction = 0.98
	particleMinSpeed = 2.0
	particleSpeed    = 6.0
	particleMinSize  = 2.0
	particleSizeSpan = 3.0
	particleMinDecay = 0.01
	particleDecay    = 0.02
)

const (
	cellWidth  = 8  // surface pixels per terminal column
	cellHeight = 16 // surface pixels per terminal row
)
