package domain

import "time"

type Client struct {
	ID           string
	Name         string
	Phone        string
	Email        string
	DueDate      time.Time // date only
	Notified     bool
	PlanID       string
	Screens      int
	Price        float64
	AccessPoints []AccessPoint
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TotalConnections sums the connections of every access point.
func (c Client) TotalConnections() int {
	total := 0
	for _, ap := range c.AccessPoints {
		total += ap.Connections
	}
	return total
}

// AccessPoint is one credential slot of a client bound to an App.
type AccessPoint struct {
	ID          string
	ClientID    string
	AppID       string
	AppName     string // denormalised for list cards
	Username    string
	Password    string
	Connections int
}
