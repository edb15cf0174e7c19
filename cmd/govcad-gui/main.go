package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	dlg "github.com/gocadlabs/govcad/internal/dialog"
	"github.com/gocadlabs/govcad/internal/notify"
	"github.com/gocadlabs/govcad/pkg/scene"
	"github.com/gocadlabs/govcad/pkg/sketch"
)

// App is the Fyne-based scene inspector. It drives the same dialog
// controllers and notification store as the raylib viewport, without the 3D
// view.
type App struct {
	window        fyne.Window
	scene         *scene.Scene
	path          string
	notifications *notify.Store

	linearPattern *dlg.LinearPattern
	mirror        *dlg.Mirror

	sceneTree *widget.Tree
	notifList *widget.List
	detail    *widget.Label

	selectedBodyID    string
	selectedElementID string
}

func main() {
	a := fyneapp.New()
	w := a.NewWindow("GoVCAD - Scene Inspector")

	inspector := &App{
		window:        w,
		notifications: notify.NewStore(),
	}
	inspector.linearPattern = dlg.NewLinearPattern(func(cmd sketch.LinearPatternCommand) {
		inspector.applyFeature(scene.FeaturePattern,
			fmt.Sprintf("Linear pattern x%d (%.4g, %.4g) on %s", cmd.Count, cmd.DX, cmd.DY, cmd.ElementID))
	})
	inspector.mirror = dlg.NewMirror(func(cmd sketch.MirrorCommand) {
		inspector.applyFeature(scene.FeatureMirror,
			fmt.Sprintf("Mirror across %s axis on %s", cmd.Axis, cmd.ElementID))
	})

	if len(os.Args) > 1 {
		inspector.loadFile(os.Args[1])
	} else {
		inspector.showWelcomeScreen()
	}

	w.Resize(fyne.NewSize(1100, 720))
	w.ShowAndRun()
}

func (a *App) showWelcomeScreen() {
	welcomeLabel := widget.NewLabel("Welcome to GoVCAD")
	welcomeLabel.TextStyle = fyne.TextStyle{Bold: true}

	openButton := widget.NewButton("Open Scene File", func() {
		a.showFileDialog()
	})

	content := container.NewVBox(
		layout.NewSpacer(),
		container.NewCenter(welcomeLabel),
		container.NewCenter(widget.NewLabel("Open a .vcad.json scene document to inspect it")),
		layout.NewSpacer(),
		container.NewCenter(openButton),
		layout.NewSpacer(),
	)
	a.window.SetContent(content)
}

func (a *App) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()
		a.loadFile(reader.URI().Path())
	}, a.window)
}

func (a *App) loadFile(filename string) {
	doc, err := scene.Load(filename)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load scene: %w", err), a.window)
		return
	}
	a.scene = doc
	a.path = filename
	a.setupMainUI()
}

func (a *App) setupMainUI() {
	a.detail = widget.NewLabel("Select a body or element")
	a.detail.Wrapping = fyne.TextWrapWord

	a.sceneTree = widget.NewTree(
		a.treeChildren,
		a.treeIsBranch,
		func(branch bool) fyne.CanvasObject { return widget.NewLabel("") },
		a.treeUpdate,
	)
	a.sceneTree.OnSelected = a.onTreeSelect

	a.notifList = widget.NewList(
		func() int { return a.notifications.Len() },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, obj fyne.CanvasObject) {
			all := a.notifications.All()
			if i < len(all) {
				n := all[i]
				obj.(*widget.Label).SetText(fmt.Sprintf("[%s] %s", n.Kind, n.Message))
			}
		},
	)

	saveButton := widget.NewButton("Save", func() {
		if err := a.scene.Save(a.path); err != nil {
			a.notifications.Showf(notify.Error, "Save failed: %v", err)
		} else {
			a.notifications.Showf(notify.Info, "Saved %s", a.path)
		}
		a.refresh()
	})
	openButton := widget.NewButton("Open", func() { a.showFileDialog() })
	clearButton := widget.NewButton("Clear Log", func() {
		for _, n := range a.notifications.All() {
			a.notifications.Dismiss(n.ID)
		}
		a.refresh()
	})

	left := container.NewBorder(
		widget.NewLabel("Scene"),
		container.NewHBox(openButton, saveButton),
		nil, nil,
		a.sceneTree,
	)

	right := container.NewVScroll(container.NewVBox(
		widget.NewLabel("Operations:"),
		widget.NewSeparator(),
		a.buildLinearPatternForm(),
		widget.NewSeparator(),
		a.buildMirrorForm(),
		widget.NewSeparator(),
		widget.NewLabel("Notifications:"),
		clearButton,
	))

	center := container.NewBorder(
		widget.NewLabel("Details"), nil, nil, nil,
		container.NewVSplit(a.detail, a.notifList),
	)

	split := container.NewHSplit(left, container.NewHSplit(center, right))
	split.SetOffset(0.25)
	a.window.SetContent(split)
}

// Tree IDs: "" root, body IDs, then "bodyID/elementID"
func (a *App) treeChildren(id widget.TreeNodeID) []widget.TreeNodeID {
	if a.scene == nil {
		return nil
	}
	if id == "" {
		out := make([]widget.TreeNodeID, 0, len(a.scene.Bodies))
		for _, b := range a.scene.Bodies {
			out = append(out, b.ID)
		}
		return out
	}
	if body, ok := a.scene.Body(id); ok {
		f, ok := body.SketchFeature("")
		if !ok || f.Sketch == nil {
			return nil
		}
		out := make([]widget.TreeNodeID, 0, len(f.Sketch.Elements))
		for _, e := range f.Sketch.Elements {
			out = append(out, body.ID+"/"+e.ID)
		}
		return out
	}
	return nil
}

func (a *App) treeIsBranch(id widget.TreeNodeID) bool {
	if id == "" {
		return true
	}
	_, ok := a.scene.Body(id)
	return ok
}

func (a *App) treeUpdate(id widget.TreeNodeID, branch bool, obj fyne.CanvasObject) {
	label := obj.(*widget.Label)
	if body, ok := a.scene.Body(id); ok {
		visibility := ""
		if !body.Visible {
			visibility = " (hidden)"
		}
		label.SetText(fmt.Sprintf("%s%s (%d features)", body.Name, visibility, len(body.Features)))
		return
	}
	bodyID, elementID, ok := splitTreeID(id)
	if !ok {
		label.SetText(id)
		return
	}
	if body, okBody := a.scene.Body(bodyID); okBody {
		if f, okFeature := body.SketchFeature(""); okFeature && f.Sketch != nil {
			if e, okElement := f.Sketch.ElementByID(elementID); okElement {
				label.SetText(string(e.Kind))
				return
			}
		}
	}
	label.SetText(elementID)
}

func (a *App) onTreeSelect(id widget.TreeNodeID) {
	if body, ok := a.scene.Body(id); ok {
		a.selectedBodyID = body.ID
		a.selectedElementID = ""
		a.detail.SetText(fmt.Sprintf("Body: %s\nID: %s\nVisible: %v\nFeatures: %d",
			body.Name, body.ID, body.Visible, len(body.Features)))
		return
	}
	bodyID, elementID, ok := splitTreeID(id)
	if !ok {
		return
	}
	a.selectedBodyID = bodyID
	a.selectedElementID = elementID
	if body, okBody := a.scene.Body(bodyID); okBody {
		if f, okFeature := body.SketchFeature(""); okFeature && f.Sketch != nil {
			if e, okElement := f.Sketch.ElementByID(elementID); okElement {
				a.detail.SetText(describeElement(e))
			}
		}
	}
}

func splitTreeID(id string) (bodyID, elementID string, ok bool) {
	for i := 0; i < len(id); i++ {
		if id[i] == '/' {
			return id[:i], id[i+1:], true
		}
	}
	return "", "", false
}

func describeElement(e sketch.Element) string {
	switch e.Kind {
	case sketch.KindCircle:
		return fmt.Sprintf("Circle\nID: %s\nCenter: (%.3f, %.3f)\nRadius: %.3f", e.ID, e.Center.X, e.Center.Y, e.Radius)
	case sketch.KindArc:
		return fmt.Sprintf("Arc\nID: %s\nCenter: (%.3f, %.3f)\nRadius: %.3f", e.ID, e.Center.X, e.Center.Y, e.Radius)
	default:
		return fmt.Sprintf("%s\nID: %s\nStart: (%.3f, %.3f)\nEnd: (%.3f, %.3f)",
			e.Kind, e.ID, e.Start.X, e.Start.Y, e.End.X, e.End.Y)
	}
}

// buildLinearPatternForm wires Fyne entries to the shared pattern controller
func (a *App) buildLinearPatternForm() fyne.CanvasObject {
	countEntry := widget.NewEntry()
	countEntry.SetText("3")
	dxEntry := widget.NewEntry()
	dxEntry.SetText("10")
	dyEntry := widget.NewEntry()
	dyEntry.SetText("0")

	apply := widget.NewButton("Apply Pattern", func() {
		if a.selectedElementID == "" {
			a.notifications.Show("Select an element in the tree first", notify.Warning)
			a.refresh()
			return
		}
		a.linearPattern.Open(a.selectedElementID)
		a.linearPattern.CountText = countEntry.Text
		a.linearPattern.DXText = dxEntry.Text
		a.linearPattern.DYText = dyEntry.Text
		if err := a.linearPattern.Confirm(); err != nil {
			a.notifications.Showf(notify.Warning, "%v", err)
		}
		a.refresh()
	})

	return container.NewVBox(
		widget.NewLabel("Linear Pattern"),
		widget.NewForm(
			widget.NewFormItem("Count", countEntry),
			widget.NewFormItem("dX", dxEntry),
			widget.NewFormItem("dY", dyEntry),
		),
		apply,
	)
}

// buildMirrorForm wires the axis choice to the shared mirror controller
func (a *App) buildMirrorForm() fyne.CanvasObject {
	axisRadio := widget.NewRadioGroup(
		[]string{"Horizontal", "Vertical", "Symmetry axis"}, nil)
	axisRadio.SetSelected("Horizontal")

	apply := widget.NewButton("Apply Mirror", func() {
		if a.selectedElementID == "" {
			a.notifications.Show("Select an element in the tree first", notify.Warning)
			a.refresh()
			return
		}
		var axis *sketch.Element
		if body, ok := a.scene.Body(a.selectedBodyID); ok {
			if f, okFeature := body.SketchFeature(""); okFeature && f.Sketch != nil {
				if e, okAxis := f.Sketch.SymmetryAxis(); okAxis {
					axis = &e
				}
			}
		}
		a.mirror.Open(a.selectedElementID, axis)
		switch axisRadio.Selected {
		case "Vertical":
			a.mirror.Axis = sketch.MirrorVertical
		case "Symmetry axis":
			a.mirror.Axis = sketch.MirrorCustom
		default:
			a.mirror.Axis = sketch.MirrorHorizontal
		}
		if err := a.mirror.Confirm(); err != nil {
			a.notifications.Showf(notify.Warning, "%v", err)
		}
		a.refresh()
	})

	return container.NewVBox(
		widget.NewLabel("Mirror"),
		axisRadio,
		apply,
	)
}

// applyFeature records a confirmed operation on the selected body
func (a *App) applyFeature(kind scene.FeatureKind, description string) {
	body, ok := a.scene.Body(a.selectedBodyID)
	if !ok {
		a.notifications.Show("No body selected", notify.Warning)
		return
	}
	body.AddFeature(kind)
	a.notifications.Show(description, notify.Info)
}

func (a *App) refresh() {
	if a.sceneTree != nil {
		a.sceneTree.Refresh()
	}
	if a.notifList != nil {
		a.notifList.Refresh()
	}
}
