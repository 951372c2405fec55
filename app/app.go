// Package app drives one terminal session: it sizes the board from the
// screen, feeds key presses to the game, steps the simulation on tick
// boundaries and routes the resulting events to logging, metrics and audio.
package app

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/events"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/status"
	"github.com/lixenwraith/vi-snake/vmath"
)

// Options carries the collaborators that do not come from the config file
type Options struct {
	Debug bool

	// Player defaults to a silent player
	Player audio.Player
	// Clock defaults to the monotonic clock
	Clock engine.TimeProvider
	// Watcher, when set, feeds config revisions into Run
	Watcher *config.Watcher
	// NewRand, when set, supplies the food RNG for every game built
	NewRand func() vmath.RNG
}

// App owns the running Game and everything around it
// Not safe for concurrent use; Run serializes all access
type App struct {
	screen    tcell.Screen
	cfg       *config.Config
	keys      *input.KeyTable
	renderer  *render.GameRenderer
	scheduler *engine.TickScheduler
	router    *events.Router[*engine.Game]
	metrics   *status.Registry
	player    audio.Player
	watcher   *config.Watcher
	newRand   func() vmath.RNG
	debug     bool

	game    *engine.Game // nil while the screen is too small
	session uuid.UUID
	cols    int
	rows    int
}

// New builds an App sized to the screen's current dimensions
func New(screen tcell.Screen, cfg *config.Config, opts Options) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	keys, err := cfg.KeyTable()
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	player := opts.Player
	if player == nil {
		player = &audio.SilentPlayer{}
	}
	clock := opts.Clock
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}

	a := &App{
		screen:    screen,
		cfg:       cfg.Clone(),
		keys:      keys,
		renderer:  render.NewGameRenderer(screen, cfg.RenderConfig(opts.Debug)),
		scheduler: engine.NewTickScheduler(clock, cfg.TickInterval()),
		router:    events.NewRouter[*engine.Game](nil),
		metrics:   status.NewRegistry(),
		player:    player,
		watcher:   opts.Watcher,
		newRand:   opts.NewRand,
		debug:     opts.Debug,
	}

	a.router.Register(events.NewLogHandler[*engine.Game](nil))
	a.router.Register(status.NewEventCounter[*engine.Game](a.metrics))
	a.router.Register(audio.NewEventHandler[*engine.Game](player))
	a.router.Register(events.HandlerFunc[*engine.Game]{
		Types: []events.EventType{events.EventSnakeDied, events.EventGameRestarted},
		Fn:    a.onLifecycle,
	})

	a.metrics.SetFloat(status.MetricTickMs, float64(a.cfg.Game.TickIntervalMs))

	cols, rows := screen.Size()
	a.Resize(cols, rows)
	return a, nil
}

// BoardSize converts terminal dimensions to board cells
// Each cell is two columns wide and the border takes one cell on every side
func BoardSize(cols, rows int) (int, int) {
	w := (cols - 2*constants.BorderSize) / constants.CellWidth
	h := rows - 2*constants.BorderSize
	return w, h
}

// Resize follows a terminal size change, rebuilding the game when the board changes
func (a *App) Resize(cols, rows int) {
	a.cols, a.rows = cols, rows
	a.renderer.Resize(cols, rows)

	w, h := BoardSize(cols, rows)
	if w < 1 || h < 1 {
		if a.game != nil {
			log.Printf("[APP] screen %dx%d too small, game suspended", cols, rows)
		}
		a.game = nil
		return
	}
	if a.game != nil {
		if gw, gh := a.game.Bounds(); gw == w && gh == h {
			return
		}
	}

	g, err := a.buildGame(w, h)
	if err != nil {
		log.Printf("[APP] build game %dx%d: %v", w, h, err)
		a.game = nil
		return
	}
	a.game = g
	a.router.SetQueue(g.Events())
	a.scheduler.Reset()
	a.newSession()
	log.Printf("[APP] board %dx%d", w, h)
}

func (a *App) buildGame(w, h int) (*engine.Game, error) {
	gc := a.cfg.GameConfig(w, h)
	b := engine.NewBuilder().
		WithBounds(w, h).
		WithBulletCapacity(gc.BulletCapacity).
		WithEventCapacity(gc.EventCapacity).
		WithBulletCooldown(gc.BulletCooldown).
		WithSeed(gc.Seed)
	if a.newRand != nil {
		b = b.WithRand(a.newRand())
	}
	return b.Build()
}

func (a *App) newSession() {
	a.session = uuid.New()
	a.metrics.SetString(status.MetricSession, a.session.String())
	log.Printf("[APP] session %s", a.session)
}

// HandleEvent processes one terminal event; false means quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventResize:
		cols, rows := ev.Size()
		a.Resize(cols, rows)
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	action := a.keys.Map(ev)
	switch action.Kind {
	case input.ActionNone:
		return true
	case input.ActionQuit:
		return false
	case input.ActionToggleSound:
		muted := a.player.ToggleMute()
		log.Printf("[APP] sound muted=%t", muted)
		return true
	}

	if a.game == nil {
		return true
	}
	input.Apply(a.game, action)
	// Route input-driven events now rather than on the next tick
	a.dispatch()
	return true
}

// Step advances the simulation when a tick boundary has passed
// Returns true if a tick ran
func (a *App) Step() bool {
	if !a.scheduler.Due() {
		return false
	}
	if a.game == nil {
		return true
	}

	if a.game.State().IsActive() {
		a.metrics.Inc(status.MetricTicks)
		a.game.Tick()
	}
	if a.game.State().IsActive() {
		a.metrics.Inc(status.MetricMoves)
		a.game.MoveSnake()
	}
	a.dispatch()
	return true
}

func (a *App) dispatch() {
	// Restart may have swapped the queue when the event capacity changed
	q := a.game.Events()
	a.router.SetQueue(q)
	a.metrics.Counter(status.MetricEventsDropped).Store(int64(q.Overwritten()))
	a.router.DispatchAll(a.game)
	a.metrics.SetString(status.MetricState, a.game.State().String())
}

func (a *App) onLifecycle(g *engine.Game, ev events.GameEvent) {
	switch ev.Type {
	case events.EventSnakeDied:
		log.Printf("[APP] session %s ended, score %d", a.session, g.Score())
		a.snapshot(g)
	case events.EventGameRestarted:
		a.newSession()
	}
}

// Draw renders the current frame
func (a *App) Draw() {
	if a.game == nil {
		a.renderer.RenderTooSmall(a.cols, a.rows)
		return
	}
	ctx := render.NewRenderContext(a.game, a.cols, a.rows)
	ctx.Muted = a.player.IsMuted()
	if a.debug {
		ctx.DebugLines = a.metrics.Lines()
	}
	a.renderer.Render(ctx)
}

// ApplyConfig takes a new config revision
// The tick interval, key bindings, render and audio settings apply now;
// game parameters wait for the next restart
func (a *App) ApplyConfig(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("apply config: %w", err)
	}
	keys, err := cfg.KeyTable()
	if err != nil {
		return fmt.Errorf("apply config: %w", err)
	}

	if cfg.Audio != a.cfg.Audio {
		if t, ok := a.player.(audio.Tuner); ok {
			if err := t.SetConfig(cfg.AudioConfig()); err != nil {
				return fmt.Errorf("apply config: %w", err)
			}
		} else {
			log.Printf("[APP] audio settings take effect on next start")
		}
	}

	a.cfg = cfg.Clone()
	a.keys = keys
	a.scheduler.SetInterval(cfg.TickInterval())
	a.metrics.SetFloat(status.MetricTickMs, float64(cfg.Game.TickIntervalMs))

	a.renderer = render.NewGameRenderer(a.screen, cfg.RenderConfig(a.debug))
	a.renderer.Resize(a.cols, a.rows)

	if a.game != nil {
		w, h := a.game.Bounds()
		if err := a.game.ApplyConfig(cfg.GameConfig(w, h)); err != nil {
			return err
		}
	}
	log.Printf("[APP] config applied, tick %v", cfg.TickInterval())
	return nil
}

// Close writes the quit snapshot and releases the audio device
func (a *App) Close() {
	if a.game != nil {
		a.snapshot(a.game)
	}
	a.player.Close()
}

// Game returns the running game, nil while the screen is too small
func (a *App) Game() *engine.Game {
	return a.game
}

func (a *App) Session() uuid.UUID {
	return a.session
}

func (a *App) Metrics() *status.Registry {
	return a.metrics
}

func (a *App) Scheduler() *engine.TickScheduler {
	return a.scheduler
}
