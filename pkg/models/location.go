package models

// Location is a physical storage place for items (shelf, bin, drawer).
type Location struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
