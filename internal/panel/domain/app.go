package domain

import "time"

// App is a player application clients connect through.
type App struct {
	ID             string
	Name           string
	AccessCode     string
	AndroidURL     string
	IOSURL         string
	DownloaderCode string
	NTDownCode     string
	MultipleAccess bool // false: every access point gets exactly one connection
	ServerID       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NormalizeConnections returns the connection count an access point on this
// app actually gets. Single-access apps always get 1; multi-access apps get
// at least 1. forced reports that a single-access app overrode an explicit
// count other than 1.
func (a App) NormalizeConnections(requested int) (n int, forced bool) {
	if !a.MultipleAccess {
		return 1, requested != 0 && requested != 1
	}
	return max(requested, 1), false
}
