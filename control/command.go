// Package control defines lightweight command messages used by the UI to
// request actions from the application command loop. The command-loop
// centralizes repository mutations and engine transitions to avoid races
// and to simplify synchronization.
package control

import "HabitTimers/timer"

// CommandType enumerates supported command operations.
type CommandType int

const (
	CmdAdd CommandType = iota
	CmdRemove
	CmdStart
	CmdStop
	// CmdTick is enqueued by the tick goroutine so countdown advancement is
	// serialized with every other mutation.
	CmdTick
)

// Command is the message sent from UI to AppManager.commandLoop. The
// optional Reply channel carries the operation's outcome back to the
// sender, e.g. a validation or conflict error to display.
type Command struct {
	Type CommandType

	// TimerID targets CmdRemove and CmdStart.
	TimerID string

	// Add payload, used by CmdAdd.
	Name    string
	Minutes float64
	Alarm   timer.AlarmType

	Reply chan error // optional reply channel
}
