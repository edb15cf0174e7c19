package app

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/gocadlabs/govcad/internal/notify"
)

// drawNotifications renders the toast stack under the view cube. The store
// is unbounded; this consumer expires old entries and shows at most the
// configured number of recent ones.
func (app *App) drawNotifications() {
	store := app.Stores.Notifications

	ttl := time.Duration(app.Settings.Notifications.TTLSeconds * float64(time.Second))
	if ttl > 0 {
		store.DismissOlderThan(time.Now().Add(-ttl))
	}

	all := store.All()
	maxVisible := app.Settings.Notifications.MaxVisible
	if len(all) > maxVisible {
		all = all[len(all)-maxVisible:]
	}
	if len(all) == 0 {
		return
	}

	toastW := float32(280)
	toastH := float32(34)
	gap := float32(6)
	x := float32(rl.GetScreenWidth()) - toastW - 16
	y := float32(130)
	mouse := app.Interaction.lastMousePos

	for _, n := range all {
		bounds := rl.Rectangle{X: x, Y: y, Width: toastW, Height: toastH}
		rl.DrawRectangleRounded(bounds, 0.25, 4, rl.NewColor(28, 32, 44, 235))
		rl.DrawRectangleRoundedLines(bounds, 0.25, 4, notificationColor(n.Kind))
		rl.DrawText(truncateText(n.Message, 42), int32(x+10), int32(y+10), 12, rl.RayWhite)

		// Click dismisses
		if rl.CheckCollisionPointRec(mouse, bounds) && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			store.Dismiss(n.ID)
		}
		y += toastH + gap
	}
}

func notificationColor(kind notify.Kind) rl.Color {
	switch kind {
	case notify.Error:
		return rl.NewColor(230, 90, 90, 255)
	case notify.Warning:
		return rl.NewColor(235, 185, 80, 255)
	default:
		return rl.NewColor(90, 160, 230, 255)
	}
}

func truncateText(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
