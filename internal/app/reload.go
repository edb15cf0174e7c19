package app

import (
	"fmt"
	"time"

	"github.com/gocadlabs/govcad/internal/notify"
	"github.com/gocadlabs/govcad/pkg/scene"
	"github.com/gocadlabs/govcad/pkg/watcher"
)

// setupDocWatcher starts watching the scene document for external changes
func (app *App) setupDocWatcher() error {
	debounce := time.Duration(app.Settings.Watch.DebounceMs) * time.Millisecond
	w, err := watcher.New(app.DocWatch.path, debounce, func() {
		app.DocWatch.needsReload = true
	})
	if err != nil {
		return err
	}
	app.DocWatch.docWatcher = w
	fmt.Printf("Watching %s for changes\n", app.DocWatch.path)
	return nil
}

// reloadScene loads the document in the background; the result is applied on
// the main thread by applyLoadedScene.
func (app *App) reloadScene() {
	app.DocWatch.isLoading = true
	path := app.DocWatch.path

	go func() {
		doc, err := scene.Load(path)
		if err != nil {
			fmt.Printf("Reload failed: %v\n", err)
			app.DocWatch.loadedScene = nil
			app.DocWatch.isLoading = false
			return
		}
		app.DocWatch.loadedScene = doc
		app.DocWatch.isLoading = false
	}()
}

// applyLoadedScene swaps in a background-loaded scene. Must be called on the
// main thread. Stores referring to bodies that no longer exist are reset.
func (app *App) applyLoadedScene() {
	doc := app.DocWatch.loadedScene
	if doc == nil || app.DocWatch.isLoading {
		return
	}
	app.DocWatch.loadedScene = nil
	app.Scene = doc

	if app.Stores.SketchEdit.Editing() {
		if _, ok := doc.Body(app.Stores.SketchEdit.BodyID()); !ok {
			app.Stores.SketchEdit.Exit()
		}
	}
	app.Stores.Selection.Clear()
	app.Stores.Menu.Close()
	app.Stores.Faces.Exit()

	app.Stores.Notifications.Show("Scene reloaded from disk", notify.Info)
}
