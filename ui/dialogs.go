package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// Dialogs is the confirmation/notification capability the application
// depends on. Keeping it behind an interface leaves room for per-platform
// implementations and lets tests stub the prompts out.
type Dialogs interface {
	// Confirm shows a yes/no prompt and reports the choice to callback.
	Confirm(title, message string, callback func(bool))
	// Info shows a non-blocking acknowledgement prompt.
	Info(title, message string)
	// Error reports a failed operation.
	Error(err error)
}

// FyneDialogs renders the prompts with Fyne's dialog package on the main
// window. All methods are safe to call from any goroutine.
type FyneDialogs struct {
	win fyne.Window
}

// NewFyneDialogs creates dialogs attached to win.
func NewFyneDialogs(win fyne.Window) *FyneDialogs {
	return &FyneDialogs{win: win}
}

func (d *FyneDialogs) Confirm(title, message string, callback func(bool)) {
	fyne.Do(func() {
		dialog.ShowConfirm(title, message, callback, d.win)
	})
}

func (d *FyneDialogs) Info(title, message string) {
	fyne.Do(func() {
		dialog.ShowInformation(title, message, d.win)
	})
}

func (d *FyneDialogs) Error(err error) {
	fyne.Do(func() {
		dialog.ShowError(err, d.win)
	})
}
