// Package timer contains the domain logic for habit timers: the Timer
// record, the Repository that keeps the persisted timer list, and the
// Engine countdown state machine.
//
// Maintenance notes:
//   - Mutable state (the repository list, the engine's active slot) is read
//     by the Fyne render goroutine while the command loop mutates it, so both
//     Repository and Engine guard their fields with an RWMutex. Prefer
//     driving mutations through the centralized application command loop to
//     keep behavior deterministic.
//   - Timer records are immutable after creation except for the completion
//     counter; there is deliberately no rename/re-duration path.
package timer

import (
	"math"

	"github.com/google/uuid"
)

// AlarmType selects the completion sound for a timer.
type AlarmType string

const (
	AlarmBell   AlarmType = "bell"
	AlarmChime  AlarmType = "chime"
	AlarmBeep   AlarmType = "beep"
	AlarmSilent AlarmType = "silent"
)

// AlarmTypes lists the valid alarm types in display order.
var AlarmTypes = []AlarmType{AlarmBell, AlarmChime, AlarmBeep, AlarmSilent}

// Valid reports whether a is one of the known alarm types.
func (a AlarmType) Valid() bool {
	switch a {
	case AlarmBell, AlarmChime, AlarmBeep, AlarmSilent:
		return true
	}
	return false
}

// Timer is a named, reusable countdown template with accumulated usage
// stats. The JSON field names are the persisted store layout; changing them
// requires a coordinated reader/writer update.
type Timer struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Duration int       `json:"duration"` // seconds, fixed at creation
	Count    int       `json:"count"`    // completed runs
	Alarm    AlarmType `json:"alarmType"`
}

// NewTimer validates the user-supplied fields and builds a fresh Timer with
// a unique id and a zero completion count. Minutes may be fractional; the
// resulting duration is floored to whole seconds and must stay positive.
func NewTimer(name string, minutes float64, alarm AlarmType) (*Timer, error) {
	if name == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if math.IsNaN(minutes) || math.IsInf(minutes, 0) {
		return nil, &ValidationError{Field: "minutes", Reason: "must be a number"}
	}
	duration := int(minutes * 60)
	if minutes <= 0 || duration <= 0 {
		return nil, &ValidationError{Field: "minutes", Reason: "must be greater than zero"}
	}
	if !alarm.Valid() {
		alarm = AlarmBell
	}
	return &Timer{
		ID:       uuid.NewString(),
		Name:     name,
		Duration: duration,
		Count:    0,
		Alarm:    alarm,
	}, nil
}
