package constants

import "time"

// Game Loop Timing Constants
const (
	// TickInterval is the default simulation step, each step ticks and moves once
	TickInterval = 70 * time.Millisecond

	// MinTickInterval is the fastest accepted cadence from config
	MinTickInterval = 10 * time.Millisecond
)

// Simulation Defaults
const (
	// BulletPoolCapacity is the declared pool size, not enforced
	BulletPoolCapacity = 16

	// EventQueueCapacity is the ring size of the game event queue
	EventQueueCapacity = 32

	// BulletCooldownTicks is the minimum number of ticks between shots
	BulletCooldownTicks = 3

	// BulletSpeed is cells per tick
	BulletSpeed = 2

	// BulletMaxLifetime is ticks before a bullet expires
	BulletMaxLifetime = 50

	// FoodSpeedMultiplier scales edge-spawned food velocity
	FoodSpeedMultiplier = 1
)
