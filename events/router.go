package events

// Handler processes specific event types within a context T
// Observers (audio, status, logging, snapshot) implement this to receive routed events
type Handler[T any] interface {
	// HandleEvent processes a single event
	// Called synchronously during dispatch, after the simulation step
	HandleEvent(ctx T, event GameEvent)

	// EventTypes returns the event types this handler processes
	// The router uses this for registration
	EventTypes() []EventType
}

// HandlerFunc adapts a function to Handler for a fixed set of types
type HandlerFunc[T any] struct {
	Types []EventType
	Fn    func(ctx T, event GameEvent)
}

func (h HandlerFunc[T]) HandleEvent(ctx T, event GameEvent) {
	h.Fn(ctx, event)
}

func (h HandlerFunc[T]) EventTypes() []EventType {
	return h.Types
}

// Router dispatches events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch from the frame loop
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//   - Context T is passed to handlers (the running game)
type Router[T any] struct {
	handlers map[EventType][]Handler[T]
	queue    *EventQueue
}

// NewRouter creates a router attached to the given queue
func NewRouter[T any](queue *EventQueue) *Router[T] {
	return &Router[T]{
		handlers: make(map[EventType][]Handler[T]),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *Router[T]) Register(handler Handler[T]) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// SetQueue re-attaches the router, used when the game is rebuilt
func (r *Router[T]) SetQueue(queue *EventQueue) {
	r.queue = queue
}

// DispatchAll drains all pending events and routes them to handlers
// Events are processed in FIFO order; returns the number dispatched
func (r *Router[T]) DispatchAll(ctx T) int {
	if r.queue == nil {
		return 0
	}
	n := 0
	for ev := range r.queue.Drain() {
		r.Dispatch(ctx, ev)
		n++
	}
	return n
}

// Dispatch routes a single event
func (r *Router[T]) Dispatch(ctx T, ev GameEvent) {
	for _, h := range r.handlers[ev.Type] {
		h.HandleEvent(ctx, ev)
	}
}

// HasHandlers returns true if any handlers are registered for the given type
func (r *Router[T]) HasHandlers(t EventType) bool {
	return len(r.handlers[t]) > 0
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router[T]) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
