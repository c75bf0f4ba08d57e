package main

import (
	"log"

	"fyne.io/fyne/v2/app"

	"HabitTimers/audio"
	"HabitTimers/config"
	"HabitTimers/i18n"
	"HabitTimers/storage"
	"HabitTimers/timer"
	"HabitTimers/ui"
)

func main() {
	// NewWithID so Preferences has a backing store.
	fyneApp := app.NewWithID("io.github.habittimers")
	fyneApp.Settings().SetTheme(ui.NewCustomTheme())

	settings, err := config.LoadSettings(appName)
	if err != nil {
		log.Printf("Using default settings: %v", err)
	}
	if settings.Language != "" {
		i18n.SetLang(settings.Language)
	}

	repo := timer.NewRepository(storage.NewPreferencesStore(fyneApp.Preferences()))
	repo.Load()
	log.Printf("Loaded %d timers.", repo.Len())

	engine := timer.NewEngine()
	player := audio.NewPlayer()

	a := NewAppManager(repo, engine, player, settings)

	w := ui.CreateMainWindow(a, fyneApp)
	a.mainWindow = w
	w.SetOnClosed(a.Shutdown)

	w.ShowAndRun()
}
