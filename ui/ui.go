package ui

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"HabitTimers/control"
	"HabitTimers/i18n"
	"HabitTimers/timer"
)

// UI constants
const (
	WindowWidth  = 380
	WindowHeight = 540

	CountdownTextSize float32 = 52.0
	ActiveNameSize    float32 = 18.0
)

// App is the minimal interface the UI expects from the application side.
type App interface {
	Timers() []timer.Timer
	EngineSnapshot() timer.EngineSnapshot
	TotalElapsed() int
	DefaultMinutes() int
	DefaultAlarm() timer.AlarmType
	EnqueueCommand(cmd control.Command)
	SetDialogs(d Dialogs)
	SetRefresh(refresh func())
}

// send enqueues a command, waits briefly for the outcome and surfaces any
// error (validation, conflict) through the dialogs. onOK runs only when the
// command succeeded in time.
func send(a App, dialogs Dialogs, cmd control.Command, onOK func()) {
	reply := make(chan error, 1)
	cmd.Reply = reply
	a.EnqueueCommand(cmd)
	select {
	case err := <-reply:
		if err != nil {
			dialogs.Error(err)
			return
		}
		if onOK != nil {
			onOK()
		}
	case <-time.After(200 * time.Millisecond):
	}
}

// buildCountdown builds the active-timer header: the running timer's name,
// the big remaining display and a stop button.
func buildCountdown(a App, dialogs Dialogs) (fyne.CanvasObject, func()) {
	activeName := canvas.NewText("", color.White)
	activeName.TextSize = ActiveNameSize
	activeName.Alignment = fyne.TextAlignCenter

	countdown := canvas.NewText("--:--", color.White)
	countdown.TextSize = CountdownTextSize
	countdown.TextStyle.Bold = true
	countdown.Alignment = fyne.TextAlignCenter

	stopButton := widget.NewButtonWithIcon(i18n.T("Stop"), theme.MediaStopIcon(), func() {
		send(a, dialogs, control.Command{Type: control.CmdStop}, nil)
	})
	stopButton.Hide()

	header := container.NewVBox(
		activeName,
		countdown,
		container.NewHBox(layout.NewSpacer(), stopButton, layout.NewSpacer()),
	)

	update := func() {
		snap := a.EngineSnapshot()
		if snap.State == timer.StateRunning {
			activeName.Text = snap.Active.Name
			countdown.Text = timer.FormatTime(snap.Remaining)
			stopButton.Show()
		} else {
			activeName.Text = ""
			countdown.Text = "--:--"
			stopButton.Hide()
		}
		activeName.Refresh()
		countdown.Refresh()
	}
	return header, update
}

// buildTimerRow builds one list row: name, duration and completion count,
// plus start and delete actions.
func buildTimerRow(a App, dialogs Dialogs, t timer.Timer, active bool) fyne.CanvasObject {
	name := widget.NewLabel(t.Name)
	name.TextStyle.Bold = true

	info := widget.NewLabel(fmt.Sprintf("%s  ·  ×%d", timer.FormatTime(t.Duration), t.Count))

	startButton := widget.NewButtonWithIcon("", theme.MediaPlayIcon(), func() {
		send(a, dialogs, control.Command{Type: control.CmdStart, TimerID: t.ID}, nil)
	})
	if active {
		startButton.Disable()
	}

	deleteButton := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		message := fmt.Sprintf("%s — %s", t.Name, i18n.T("This cannot be undone."))
		dialogs.Confirm(i18n.T("Delete timer?"), message, func(confirmed bool) {
			if !confirmed {
				return
			}
			send(a, dialogs, control.Command{Type: control.CmdRemove, TimerID: t.ID}, nil)
		})
	})

	return container.NewBorder(nil, nil,
		container.NewVBox(name),
		container.NewHBox(startButton, deleteButton),
		info,
	)
}

// buildAddForm builds the add-timer form. Parse failures are passed through
// as NaN so the repository reports them as a minutes validation error, the
// same way any other invalid value is reported.
func buildAddForm(a App, dialogs Dialogs) fyne.CanvasObject {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder(i18n.T("Name"))

	minutesEntry := widget.NewEntry()
	minutesEntry.SetPlaceHolder(i18n.T("Minutes"))
	minutesEntry.SetText(strconv.Itoa(a.DefaultMinutes()))

	alarmNames := make([]string, len(timer.AlarmTypes))
	for i, alarm := range timer.AlarmTypes {
		alarmNames[i] = string(alarm)
	}
	alarmSelect := widget.NewSelect(alarmNames, nil)
	alarmSelect.SetSelected(string(a.DefaultAlarm()))

	addTimer := func() {
		minutes, err := strconv.ParseFloat(strings.TrimSpace(minutesEntry.Text), 64)
		if err != nil {
			minutes = math.NaN()
		}
		cmd := control.Command{
			Type:    control.CmdAdd,
			Name:    strings.TrimSpace(nameEntry.Text),
			Minutes: minutes,
			Alarm:   timer.AlarmType(alarmSelect.Selected),
		}
		send(a, dialogs, cmd, func() {
			nameEntry.SetText("")
			minutesEntry.SetText(strconv.Itoa(a.DefaultMinutes()))
		})
	}

	addButton := widget.NewButtonWithIcon(i18n.T("Add"), theme.ContentAddIcon(), addTimer)
	nameEntry.OnSubmitted = func(string) { addTimer() }
	minutesEntry.OnSubmitted = func(string) { addTimer() }

	fields := container.NewGridWithColumns(3, nameEntry, minutesEntry, alarmSelect)
	return container.NewVBox(fields, addButton)
}

// CreateMainWindow builds the single application screen and registers the
// re-render hook with the application.
func CreateMainWindow(a App, fyneApp fyne.App) fyne.Window {
	title := fyneApp.Metadata().Name
	if title == "" {
		title = "HabitTimers"
	}
	w := fyneApp.NewWindow(title)

	dialogs := NewFyneDialogs(w)
	a.SetDialogs(dialogs)

	countdownHeader, updateCountdown := buildCountdown(a, dialogs)

	listContainer := container.NewVBox()
	listScroll := container.NewVScroll(listContainer)
	listScroll.SetMinSize(fyne.NewSize(0, 260))

	totalLabel := widget.NewLabel("")
	totalLabel.Alignment = fyne.TextAlignCenter

	rebuildList := func() {
		activeID := a.EngineSnapshot().Active.ID
		timers := a.Timers()
		listContainer.Objects = nil
		if len(timers) == 0 {
			placeholder := widget.NewLabel(i18n.T("No timers yet. Add one below."))
			placeholder.Alignment = fyne.TextAlignCenter
			listContainer.Add(placeholder)
		}
		for _, t := range timers {
			listContainer.Add(buildTimerRow(a, dialogs, t, t.ID == activeID))
		}
		listContainer.Refresh()
	}

	update := func() {
		updateCountdown()
		rebuildList()
		totalLabel.SetText(fmt.Sprintf("%s: %s", i18n.T("Total"), timer.FormatTotal(a.TotalElapsed())))
	}

	a.SetRefresh(func() {
		fyne.Do(update)
	})

	content := container.NewVBox(
		countdownHeader,
		widget.NewSeparator(),
		listScroll,
		widget.NewSeparator(),
		totalLabel,
		buildAddForm(a, dialogs),
	)

	update()
	w.SetContent(content)
	w.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	return w
}
