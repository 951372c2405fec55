// Package status collects runtime counters for the debug overlay and logs
// Counters are written by the frame loop and read by the renderer
package status

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// Metric names
const (
	MetricTicks         = "ticks"
	MetricMoves         = "moves"
	MetricFoodEaten     = "food.eaten"
	MetricFoodShot      = "food.shot"
	MetricBulletsFired  = "bullets.fired"
	MetricSnakeDamaged  = "snake.damaged"
	MetricSegmentsLost  = "snake.segments_lost"
	MetricDeaths        = "deaths"
	MetricRestarts      = "restarts"
	MetricEventsDropped = "events.dropped"
	MetricTickMs        = "tick.ms"
	MetricSession       = "session"
	MetricState         = "state"
)

// Registry is the central metrics facade
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Counter returns the integer metric for name
func (r *Registry) Counter(name string) *atomic.Int64 {
	return r.Ints.Get(name)
}

// Inc adds one to a counter
func (r *Registry) Inc(name string) {
	r.Ints.Get(name).Add(1)
}

// Value reads a counter, 0 if unset
func (r *Registry) Value(name string) int64 {
	if !r.Ints.Has(name) {
		return 0
	}
	return r.Ints.Get(name).Load()
}

func (r *Registry) SetFloat(name string, v float64) {
	r.Floats.Get(name).Set(v)
}

func (r *Registry) SetString(name, v string) {
	r.Strings.Get(name).Store(v)
}

// TotalCount returns the number of registered metrics of all kinds
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Lines formats every metric as "name: value", strings first, then floats and ints
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Strings.Range(func(k string, v *AtomicString) {
		lines = append(lines, k+": "+v.Load())
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s: %.1f", k, v.Get()))
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		lines = append(lines, k+": "+strconv.FormatInt(v.Load(), 10))
	})
	return lines
}
