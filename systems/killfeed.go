package systems

import (
	"log/slog"

	"github.com/automoto/thornrun/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	dmath "github.com/yohamta/donburi/features/math"
)

// KillNotification is broadcast once per enemy death. Entry stays valid
// until the notification has been delivered.
type KillNotification struct {
	Entry    *donburi.Entry
	Type     string
	Position dmath.Vec2
}

// KillNotifications delivers kills to listeners in subscription order.
var KillNotifications = events.NewEventType[KillNotification]()

// UpdateKillFeed delivers the kills published since the last tick.
func UpdateKillFeed(w donburi.World) {
	KillNotifications.ProcessEvents(w)
}

func SubscribeKillCounter(w donburi.World) {
	KillNotifications.Subscribe(w, countKill)
}

func UnsubscribeKillCounter(w donburi.World) {
	KillNotifications.Unsubscribe(w, countKill)
}

func countKill(w donburi.World, n KillNotification) {
	e, ok := components.KillCounter.First(w)
	if !ok {
		return
	}
	kc := components.KillCounter.Get(e)
	if kc.ByType == nil {
		kc.ByType = map[string]int{}
	}
	kc.Total++
	kc.ByType[n.Type]++
	slog.Debug("kill counted", "type", n.Type, "total", kc.Total)
}

// Kills returns the number of kills counted so far.
func Kills(w donburi.World) int {
	if e, ok := components.KillCounter.First(w); ok {
		return components.KillCounter.Get(e).Total
	}
	return 0
}
