// Package main contains the application wiring and the AppManager which
// coordinates the repository, the countdown engine, audio and the UI. This
// file centralizes the shared application state and the command loop used
// to serialize repository mutations and engine transitions.
//
// Maintenance notes / tips:
//   - Concurrency model: one command-loop goroutine (see `commandLoop`)
//     handles every mutation, including ticks: the tick goroutine only
//     enqueues CmdTick messages. The repository and engine still carry
//     RWMutexes because the Fyne render goroutine reads snapshots directly.
//   - The tick goroutine exists only while the engine is Running. It is
//     started on the Idle→Running transition and cancelled via context on
//     the way back to Idle (see EngineStateChanged).
//   - `cmdCh` is a buffered channel used to enqueue commands from the UI.
//     The current implementation drops commands when the channel stays full
//     to avoid blocking the UI.
package main

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"

	"HabitTimers/audio"
	"HabitTimers/config"
	"HabitTimers/control"
	"HabitTimers/i18n"
	"HabitTimers/timer"
	"HabitTimers/ui"
)

const appName = "HabitTimers"

// AppManager is the main application struct, holding all state.
type AppManager struct {
	mainWindow fyne.Window
	repo       *timer.Repository
	engine     *timer.Engine
	player     *audio.Player
	dialogs    ui.Dialogs
	settings   config.Settings

	cmdCh     chan control.Command
	cmdCtx    context.Context
	cmdCancel context.CancelFunc

	tickLock   sync.Mutex
	tickCancel context.CancelFunc

	refresh func()
}

// NewAppManager creates the application manager and starts its command loop.
func NewAppManager(repo *timer.Repository, engine *timer.Engine, player *audio.Player, settings config.Settings) *AppManager {
	a := &AppManager{
		repo:     repo,
		engine:   engine,
		player:   player,
		settings: settings,
	}
	a.cmdCh = make(chan control.Command, 256)
	a.cmdCtx, a.cmdCancel = context.WithCancel(context.Background())
	go a.commandLoop()
	return a
}

// EnqueueCommand posts a command to the internal command loop. If the
// channel stays full for the short timeout, the command is dropped and
// logged rather than blocking the UI.
func (a *AppManager) EnqueueCommand(cmd control.Command) {
	select {
	case a.cmdCh <- cmd:
	case <-time.After(150 * time.Millisecond):
		log.Printf("EnqueueCommand timeout: dropping command")
	}
}

func (a *AppManager) commandLoop() {
	for {
		select {
		case <-a.cmdCtx.Done():
			return
		case cmd := <-a.cmdCh:
			err := a.handleCommand(cmd)
			if cmd.Reply != nil {
				select {
				case cmd.Reply <- err:
				default:
				}
			}
			a.refreshUI()
		}
	}
}

func (a *AppManager) handleCommand(cmd control.Command) error {
	switch cmd.Type {
	case control.CmdAdd:
		_, err := a.repo.Add(cmd.Name, cmd.Minutes, cmd.Alarm)
		return err
	case control.CmdRemove:
		// The engine keeps counting a detached copy if this timer is the
		// active one; only the repository entry goes away.
		a.repo.Remove(cmd.TimerID)
		return nil
	case control.CmdStart:
		t, ok := a.repo.Get(cmd.TimerID)
		if !ok {
			log.Printf("Start requested for unknown timer %s", cmd.TimerID)
			return nil
		}
		return a.engine.Start(a, t)
	case control.CmdStop:
		a.engine.Stop(a)
		return nil
	case control.CmdTick:
		a.engine.Tick(a)
		return nil
	}
	return nil
}

// TimerCompleted implements timer.App. It fires the completion side
// effects: alarm, count increment, acknowledgement prompt. The prompt is
// non-blocking; the engine is already Idle again when it shows.
func (a *AppManager) TimerCompleted(t timer.Timer) {
	a.player.Play(t.Alarm)
	a.repo.RecordCompletion(t.ID)
	if a.dialogs != nil {
		a.dialogs.Info(i18n.T("Time's up!"), fmt.Sprintf("%s %s", t.Name, i18n.T("completed")))
	}
}

// EngineStateChanged implements timer.App. The tick goroutine lives exactly
// as long as the engine is Running.
func (a *AppManager) EngineStateChanged(state timer.EngineState) {
	a.tickLock.Lock()
	switch state {
	case timer.StateRunning:
		if a.tickCancel == nil {
			ctx, cancel := context.WithCancel(a.cmdCtx)
			a.tickCancel = cancel
			go a.tick(ctx)
		}
	case timer.StateIdle:
		if a.tickCancel != nil {
			a.tickCancel()
			a.tickCancel = nil
		}
	}
	a.tickLock.Unlock()

	a.refreshUI()
}

func (a *AppManager) tick(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.EnqueueCommand(control.Command{Type: control.CmdTick})
		}
	}
}

// Timers returns copies of the repository's timers for rendering.
func (a *AppManager) Timers() []timer.Timer {
	return a.repo.All()
}

// EngineSnapshot returns a consistent view of the countdown for rendering.
func (a *AppManager) EngineSnapshot() timer.EngineSnapshot {
	return a.engine.Snapshot()
}

// TotalElapsed returns the cumulative completed seconds across all timers.
func (a *AppManager) TotalElapsed() int {
	return a.repo.TotalElapsed()
}

// DefaultMinutes returns the configured add-form default.
func (a *AppManager) DefaultMinutes() int {
	return a.settings.DefaultMinutes
}

// DefaultAlarm returns the configured default alarm type.
func (a *AppManager) DefaultAlarm() timer.AlarmType {
	alarm := timer.AlarmType(a.settings.DefaultAlarm)
	if !alarm.Valid() {
		return timer.AlarmBell
	}
	return alarm
}

// SetDialogs injects the dialog capability once the main window exists.
func (a *AppManager) SetDialogs(d ui.Dialogs) {
	a.dialogs = d
}

// SetRefresh registers the UI re-render hook.
func (a *AppManager) SetRefresh(refresh func()) {
	a.refresh = refresh
}

func (a *AppManager) refreshUI() {
	if a.refresh != nil {
		a.refresh()
	}
}

// Shutdown stops the command loop and the tick goroutine, if any.
func (a *AppManager) Shutdown() {
	a.tickLock.Lock()
	if a.tickCancel != nil {
		a.tickCancel()
		a.tickCancel = nil
	}
	a.tickLock.Unlock()

	if a.cmdCancel != nil {
		a.cmdCancel()
	}
}
