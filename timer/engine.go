package timer

import "sync"

// EngineState defines the possible states of the countdown engine.
type EngineState int

const (
	StateIdle EngineState = iota
	StateRunning
)

// App defines the interface the engine needs to communicate back to the
// main application when a countdown finishes or the state changes.
type App interface {
	// TimerCompleted is called exactly once per natural completion with a
	// copy of the timer as it was when started. It plays the alarm, records
	// the completion and notifies the user.
	TimerCompleted(t Timer)
	// EngineStateChanged is called after every Idle/Running transition so
	// the application can start or cancel its tick source and re-render.
	EngineStateChanged(state EngineState)
}

// Engine is the single-slot countdown state machine. It holds no ticker of
// its own: the application delivers one Tick per second while the engine is
// Running.
//
// The engine works on a value copy of the started timer, so deleting the
// timer from the repository mid-run leaves the countdown attached to the
// copy: the alarm still fires on completion while the count increment
// becomes a no-op. That matches the historical behavior on purpose.
type Engine struct {
	mu        sync.RWMutex
	state     EngineState
	active    Timer
	remaining int
}

// NewEngine creates an idle engine.
func NewEngine() *Engine {
	return &Engine{state: StateIdle}
}

// Start begins counting down t. While another timer is active it returns a
// *ConflictError and leaves the running countdown untouched.
func (e *Engine) Start(a App, t Timer) error {
	e.mu.Lock()
	if e.state == StateRunning {
		active := e.active.ID
		e.mu.Unlock()
		return &ConflictError{ActiveID: active}
	}
	e.state = StateRunning
	e.active = t
	e.remaining = t.Duration
	e.mu.Unlock()

	a.EngineStateChanged(StateRunning)
	return nil
}

// Tick processes one second of time passing. Ignored while idle. When the
// countdown reaches zero the engine transitions to Idle and reports the
// completion through a.TimerCompleted.
func (e *Engine) Tick(a App) {
	e.mu.Lock()
	if e.state != StateRunning {
		e.mu.Unlock()
		return
	}
	e.remaining--
	if e.remaining > 0 {
		e.mu.Unlock()
		return
	}
	completed := e.active
	e.state = StateIdle
	e.active = Timer{}
	e.remaining = 0
	e.mu.Unlock()

	a.TimerCompleted(completed)
	a.EngineStateChanged(StateIdle)
}

// Stop abandons the running countdown and returns to Idle, discarding the
// remaining time. No completion side effects fire. Ignored while idle.
func (e *Engine) Stop(a App) {
	e.mu.Lock()
	if e.state != StateRunning {
		e.mu.Unlock()
		return
	}
	e.state = StateIdle
	e.active = Timer{}
	e.remaining = 0
	e.mu.Unlock()

	a.EngineStateChanged(StateIdle)
}

// EngineSnapshot is an atomic snapshot of the engine fields the UI needs to
// render a consistent view.
type EngineSnapshot struct {
	State     EngineState
	Active    Timer
	Remaining int
}

// Snapshot returns a consistent snapshot of the engine's state for UI use.
func (e *Engine) Snapshot() EngineSnapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return EngineSnapshot{State: e.state, Active: e.active, Remaining: e.remaining}
}

// ActiveID returns the id of the running timer, or "" while idle.
func (e *Engine) ActiveID() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.state != StateRunning {
		return ""
	}
	return e.active.ID
}
