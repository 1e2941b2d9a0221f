package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ItemStatus tracks what happened to an item.
type ItemStatus string

const (
	StatusSold    ItemStatus = "Sold"
	StatusUsed    ItemStatus = "Used"
	StatusInStock ItemStatus = "InStock"
)

// Valid reports whether s is one of the known statuses.
func (s ItemStatus) Valid() bool {
	switch s {
	case StatusSold, StatusUsed, StatusInStock:
		return true
	}
	return false
}

// Item is a single tracked part or tool. Location and Project are resolved
// on reads for presentation; only LocationID and ProjectID are persisted on
// the item row itself.
type Item struct {
	ID                 int64               `json:"id"`
	Name               string              `json:"name"`
	ManufacturerNumber *string             `json:"manufacturerNumber"`
	SKU                *string             `json:"sku"`
	InPrice            decimal.NullDecimal `json:"inPrice"`
	OutPrice           decimal.NullDecimal `json:"outPrice"`
	InDate             time.Time           `json:"inDate"`
	OutDate            *time.Time          `json:"outDate"`
	Status             ItemStatus          `json:"status"`
	Description        *string             `json:"description"`
	LocationID         int64               `json:"locationId"`
	ProjectID          int64               `json:"projectId"`

	Location *Location `json:"location,omitempty"`
	Project  *Project  `json:"project,omitempty"`
}

// FormatSKU builds the project-scoped SKU for the given counter value,
// e.g. project 7 at index 0 yields "007-00000".
func FormatSKU(projectID, index int64) string {
	return fmt.Sprintf("%03d-%05d", projectID, index)
}
