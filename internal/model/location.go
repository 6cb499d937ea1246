package model

// Location represents a named physical storage site.
type Location struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
