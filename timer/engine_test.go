package timer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"HabitTimers/storage"
	"HabitTimers/timer"
)

// recordingApp captures engine callbacks. onComplete, when set, mimics the
// application's completion handling.
type recordingApp struct {
	completed   []timer.Timer
	transitions []timer.EngineState
	onComplete  func(t timer.Timer)
}

func (a *recordingApp) TimerCompleted(t timer.Timer) {
	a.completed = append(a.completed, t)
	if a.onComplete != nil {
		a.onComplete(t)
	}
}

func (a *recordingApp) EngineStateChanged(state timer.EngineState) {
	a.transitions = append(a.transitions, state)
}

func testTimer(duration int) timer.Timer {
	return timer.Timer{ID: "t1", Name: "Test", Duration: duration, Alarm: timer.AlarmBell}
}

// TestEngineStart verifies Idle→Running sets remaining to the timer's
// duration.
func TestEngineStart(t *testing.T) {
	app := &recordingApp{}
	engine := timer.NewEngine()

	require.NoError(t, engine.Start(app, testTimer(90)))

	snap := engine.Snapshot()
	assert.Equal(t, timer.StateRunning, snap.State)
	assert.Equal(t, 90, snap.Remaining)
	assert.Equal(t, "t1", snap.Active.ID)
	assert.Equal(t, []timer.EngineState{timer.StateRunning}, app.transitions)
}

// TestEngineStartConflict verifies starting while Running fails with a
// ConflictError and leaves the original countdown untouched.
func TestEngineStartConflict(t *testing.T) {
	app := &recordingApp{}
	engine := timer.NewEngine()
	require.NoError(t, engine.Start(app, testTimer(60)))
	engine.Tick(app)

	other := timer.Timer{ID: "t2", Name: "Other", Duration: 10, Alarm: timer.AlarmBeep}
	err := engine.Start(app, other)

	var cerr *timer.ConflictError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "t1", cerr.ActiveID)

	snap := engine.Snapshot()
	assert.Equal(t, "t1", snap.Active.ID)
	assert.Equal(t, 59, snap.Remaining)
	assert.Empty(t, app.completed)
}

// TestEngineCountdown verifies N ticks from remaining=N reach exactly zero,
// firing completion exactly once and never going negative.
func TestEngineCountdown(t *testing.T) {
	app := &recordingApp{}
	engine := timer.NewEngine()
	require.NoError(t, engine.Start(app, testTimer(3)))

	engine.Tick(app)
	assert.Equal(t, 2, engine.Snapshot().Remaining)
	assert.Empty(t, app.completed)

	engine.Tick(app)
	assert.Equal(t, 1, engine.Snapshot().Remaining)
	assert.Empty(t, app.completed)

	engine.Tick(app)
	snap := engine.Snapshot()
	assert.Equal(t, timer.StateIdle, snap.State)
	assert.Equal(t, 0, snap.Remaining)
	require.Len(t, app.completed, 1)
	assert.Equal(t, "t1", app.completed[0].ID)
	assert.Equal(t, []timer.EngineState{timer.StateRunning, timer.StateIdle}, app.transitions)

	// Extra ticks while idle change nothing.
	engine.Tick(app)
	assert.Equal(t, 0, engine.Snapshot().Remaining)
	assert.Len(t, app.completed, 1)
}

// TestEngineStop verifies a manual stop returns to Idle without firing any
// completion side effects.
func TestEngineStop(t *testing.T) {
	app := &recordingApp{}
	engine := timer.NewEngine()
	require.NoError(t, engine.Start(app, testTimer(30)))
	engine.Tick(app)

	engine.Stop(app)

	snap := engine.Snapshot()
	assert.Equal(t, timer.StateIdle, snap.State)
	assert.Equal(t, 0, snap.Remaining)
	assert.Empty(t, app.completed)
	assert.Equal(t, []timer.EngineState{timer.StateRunning, timer.StateIdle}, app.transitions)

	// Stop while idle is ignored.
	engine.Stop(app)
	assert.Equal(t, []timer.EngineState{timer.StateRunning, timer.StateIdle}, app.transitions)
}

// TestEngineDetachedFromDeletedTimer verifies the historical quirk: a timer
// deleted mid-run keeps counting down, the completion callback still fires,
// and the count increment lands nowhere.
func TestEngineDetachedFromDeletedTimer(t *testing.T) {
	repo := timer.NewRepository(storage.NewMemoryStore())
	repo.Load()
	added, err := repo.Add("Doomed", 1, timer.AlarmBell)
	require.NoError(t, err)

	app := &recordingApp{}
	app.onComplete = func(completed timer.Timer) {
		repo.RecordCompletion(completed.ID)
	}

	engine := timer.NewEngine()
	require.NoError(t, engine.Start(app, mustGet(t, repo, added.ID)))

	for i := 0; i < 30; i++ {
		engine.Tick(app)
	}
	repo.Remove(added.ID)

	for i := 0; i < 30; i++ {
		engine.Tick(app)
	}

	require.Len(t, app.completed, 1)
	assert.Equal(t, added.ID, app.completed[0].ID)
	assert.Equal(t, timer.StateIdle, engine.Snapshot().State)
	assert.Equal(t, 0, repo.Len())
	assert.Equal(t, 0, repo.TotalElapsed())
}

// TestEngineActiveID verifies the active id accessor across the lifecycle.
func TestEngineActiveID(t *testing.T) {
	app := &recordingApp{}
	engine := timer.NewEngine()
	assert.Equal(t, "", engine.ActiveID())

	require.NoError(t, engine.Start(app, testTimer(5)))
	assert.Equal(t, "t1", engine.ActiveID())

	engine.Stop(app)
	assert.Equal(t, "", engine.ActiveID())
}

func mustGet(t *testing.T, repo *timer.Repository, id string) timer.Timer {
	t.Helper()
	got, ok := repo.Get(id)
	require.True(t, ok)
	return got
}
