// Package models defines server-side data models persisted in the database.
package models

import "time"

// Beer is a single persisted record. ID and CreatedAt are assigned by the
// store at insert time and never change afterwards.
type Beer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateBeerInput carries the caller supplied fields of a new record.
type CreateBeerInput struct {
	Name string `json:"name"`
}

// BeerCount wraps the number of stored records.
type BeerCount struct {
	Count int64 `json:"count"`
}
