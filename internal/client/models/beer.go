// Package models defines client-side data models used by the beerctl CLI.
package models

import "time"

// Beer is a record as returned by the server.
type Beer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Health summarizes server reachability for the health command.
type Health struct {
	Ping    string    `json:"ping"`
	Service string    `json:"service"`
	Time    time.Time `json:"time"`
}
