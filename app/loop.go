package app

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/config"
)

// eventBuffer holds key presses that arrive while a frame is being drawn
const eventBuffer = 64

// Run polls the screen and steps the game until quit or ctx is cancelled
// The screen must be initialized; Run does not call Fini
func (a *App) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event, eventBuffer)
	go a.poll(eventChan, done)

	var (
		updates <-chan *config.Config
		errs    <-chan error
	)
	if a.watcher != nil {
		updates = a.watcher.Updates()
		errs = a.watcher.Errors()
	}

	a.Draw()
	timer := time.NewTimer(a.scheduler.Timeout())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-eventChan:
			if !a.HandleEvent(ev) {
				return nil
			}

		case <-timer.C:

		case c := <-updates:
			if err := a.ApplyConfig(c); err != nil {
				log.Printf("[APP] %v", err)
			}

		case err := <-errs:
			log.Printf("[APP] config watch: %v", err)
		}

		a.Step()
		a.Draw()
		timer.Reset(a.scheduler.Timeout())
	}
}

// poll forwards screen events until the screen is finalized or Run returns
func (a *App) poll(out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}
