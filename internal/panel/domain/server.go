package domain

import "time"

type Server struct {
	ID        string
	Name      string
	Alias     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
