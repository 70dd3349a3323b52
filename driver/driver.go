// Package driver runs an Engine at a fixed tick rate while input and rendering
// happen on other goroutines.
package driver

import (
	"context"
	"io"
	"log"
	"sync"
	"time"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

// Driver serializes every call into the engine behind one mutex.
type Driver struct {
	engine   *game.Engine
	mutex    sync.Mutex
	interval time.Duration
	frames   chan game.Snapshot
	log      *log.Logger
}

// New wraps engine. A zero interval means the engine's own TickInterval.
func New(engine *game.Engine, interval time.Duration, logger *log.Logger) *Driver {
	if interval <= 0 {
		interval = engine.TickInterval()
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Driver{
		engine:   engine,
		interval: interval,
		frames:   make(chan game.Snapshot, 1), // latest frame only
		log:      logger,
	}
}

// Frames delivers a snapshot after every step and every input that changed state.
// Frames nobody picked up are replaced by newer ones.
func (d *Driver) Frames() <-chan game.Snapshot {
	return d.frames
}

// Run ticks the engine until ctx is cancelled.
func (d *Driver) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.log.Printf("ticking every %s", d.interval)
	for {
		select {
		case <-ctx.Done():
			d.log.Print("stopped")
			return ctx.Err()
		case <-ticker.C:
			d.Step()
		}
	}
}

// Step performs one tick synchronously.
func (d *Driver) Step() game.Snapshot {
	d.mutex.Lock()
	d.engine.Tick()
	snap := d.engine.Snapshot()
	d.mutex.Unlock()

	d.publish(snap)
	return snap
}

func (d *Driver) SetDirection(dir types.Direction) {
	d.mutex.Lock()
	d.engine.SetDirection(dir)
	snap := d.engine.Snapshot()
	d.mutex.Unlock()

	d.publish(snap)
}

func (d *Driver) Reset() {
	d.mutex.Lock()
	d.engine.Reset()
	snap := d.engine.Snapshot()
	d.mutex.Unlock()

	d.publish(snap)
}

func (d *Driver) Snapshot() game.Snapshot {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.engine.Snapshot()
}

func (d *Driver) SetPlayerID(id string) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.engine.SetPlayerID(id)
}

func (d *Driver) publish(snap game.Snapshot) {
	for {
		select {
		case d.frames <- snap:
			return
		default:
		}
		// Drop the stale frame and retry.
		select {
		case <-d.frames:
		default:
		}
	}
}
