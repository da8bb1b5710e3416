package tween

import (
	"log"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// State is the lifecycle position of an Engine.
type State int

const (
	// StateIdle means the engine has never run.
	StateIdle State = iota
	// StateRunning means a frame chain is active.
	StateRunning
	// StateCompleted means the last run reached its final frame.
	StateCompleted
	// StateStopped means the last run was interrupted by Stop.
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateStopped:
		return "stopped"
	}
	return "unknown"
}

// Outcome tells whether Run started a new frame chain.
type Outcome int

const (
	// Scheduled means a new run was started and its future is set.
	Scheduled Outcome = iota
	// AlreadyRunning means Run was a no-op because a run is active.
	AlreadyRunning
)

func (o Outcome) String() string {
	if o == AlreadyRunning {
		return "already running"
	}
	return "scheduled"
}

// RunResult is returned by Run.
type RunResult struct {
	Outcome Outcome
	ID      string
	Future  *Future
}

// run is the state derived from the configuration at Run time.
type run struct {
	id          string
	to          StyleMap
	transitions []Transition
	durationMs  float64
	start       float64
	started     bool
	frames      int
	future      *Future
}

// Engine tweens the style of one element from a start style to an end style.
//
// Configuration set through From, To and SetAddons is captured when Run is
// called, so later changes only affect the next run. The engine assumes it is
// the only writer of the target's style while a run is active.
type Engine struct {
	mu        sync.Mutex
	target    Element
	scheduler Scheduler
	logger    *log.Logger

	from   StyleMap
	to     StyleMap
	addons Addons

	state   State
	handle  FrameHandle
	current *run
}

// NewEngine creates an Engine for target driven by scheduler. The scheduler
// must not invoke callbacks synchronously from Schedule.
func NewEngine(target Element, scheduler Scheduler, addons Addons) *Engine {
	e := new(Engine)
	e.target = target
	e.scheduler = scheduler
	e.logger = log.Default()
	e.addons = Addons{}.Merge(addons)
	e.state = StateIdle
	return e
}

// SetLogger replaces the logger used for run lifecycle messages.
func (e *Engine) SetLogger(logger *log.Logger) *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.logger = logger
	return e
}

// From sets start values that override the element's computed style.
func (e *Engine) From(style StyleMap) *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.from = style
	return e
}

// To sets the end values. Its keys define which properties are animated.
func (e *Engine) To(style StyleMap) *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.to = style
	return e
}

// SetAddons merges addons into the registry, replacing entries by name.
func (e *Engine) SetAddons(addons Addons) *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.addons = e.addons.Merge(addons)
	return e
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Run starts animating over seconds. When a run is already active it returns
// AlreadyRunning and does nothing else. A colour property without a registered
// ColorAddon fails with ErrMissingAddon before anything is read or scheduled.
func (e *Engine) Run(seconds float64) (RunResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == StateRunning {
		return RunResult{Outcome: AlreadyRunning}, nil
	}
	return e.run(seconds)
}

// RunWith sets from and to and starts a run in one step. When a run is
// already active the stored configuration is left untouched.
func (e *Engine) RunWith(from, to StyleMap, seconds float64) (RunResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == StateRunning {
		return RunResult{Outcome: AlreadyRunning}, nil
	}
	e.from = from
	e.to = to
	return e.run(seconds)
}

func (e *Engine) run(seconds float64) (RunResult, error) {
	if e.to == nil {
		return RunResult{}, ErrNoTargetStyle
	}

	to := e.to.Clone()
	properties := sortedKeys(to)
	if err := checkAddons(properties, e.addons); err != nil {
		return RunResult{}, err
	}

	from := e.resolveFrom(properties)
	r := new(run)
	r.id = uuid.NewString()
	r.to = to
	r.transitions = buildTransitions(properties, from, to, e.addons[ColorAddonName])
	r.durationMs = seconds * 1000
	r.future = newFuture()

	e.current = r
	e.state = StateRunning
	e.scheduleFrame(r)
	e.logger.Printf("tween %s: running %d properties over %.3fs", r.id, len(properties), seconds)

	return RunResult{Outcome: Scheduled, ID: r.id, Future: r.future}, nil
}

// Stop cancels the pending frame. The outstanding future is left unresolved
// and style already applied is kept. The engine moves to StateStopped and,
// unlike a run that never settles, may be started again with Run.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.handle != 0 {
		e.scheduler.Cancel(e.handle)
		e.handle = 0
	}
	if e.state == StateRunning {
		e.state = StateStopped
		e.logger.Printf("tween %s: stopped after %d frames", e.current.id, e.current.frames)
	}
}

func (e *Engine) scheduleFrame(r *run) {
	e.handle = e.scheduler.Schedule(func(timestamp float64) {
		e.tick(r, timestamp)
	})
}

func (e *Engine) tick(r *run, timestamp float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	// Frames that raced a Stop or belong to an earlier run are dropped.
	if e.current != r || e.state != StateRunning {
		return
	}

	if !r.started {
		r.start = timestamp
		r.started = true
	}
	r.frames++

	elapsed := timestamp - r.start
	if elapsed < r.durationMs {
		progress := elapsed / r.durationMs
		e.target.ApplyStyle(Interpolate(r.transitions, progress))
		e.scheduleFrame(r)
		return
	}

	// The final frame writes the exact end values so no rounding error remains.
	e.target.ApplyStyle(r.to.Clone())
	e.handle = 0
	e.state = StateCompleted
	e.logger.Printf("tween %s: completed after %d frames", r.id, r.frames)
	r.future.resolve(e)
}

// resolveFrom snapshots the computed style of each property and overlays the
// explicit start values.
func (e *Engine) resolveFrom(properties []string) StyleMap {
	computed := make(StyleMap, len(properties))
	for _, p := range properties {
		computed[p] = e.target.ComputedStyle(p)
	}
	if e.from == nil {
		return computed
	}
	return computed.Merge(e.from)
}

func checkAddons(properties []string, addons Addons) error {
	if addon, ok := addons[ColorAddonName]; ok && addon != nil {
		return nil
	}
	for _, p := range properties {
		if IsColorProperty(p) {
			return &MissingAddonError{Property: p, Addon: ColorAddonName}
		}
	}
	return nil
}

func buildTransitions(properties []string, from, to StyleMap, colorAddon Addon) []Transition {
	transitions := make([]Transition, 0, len(properties))
	for _, p := range properties {
		if IsColorProperty(p) {
			transitions = append(transitions, NewColorTransition(p, from[p], to[p], colorAddon))
		} else {
			transitions = append(transitions, NewShapeTransition(p, from[p], to[p]))
		}
	}
	return transitions
}

func sortedKeys(style StyleMap) []string {
	keys := make([]string, 0, len(style))
	for k := range style {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
