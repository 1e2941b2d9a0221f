// Package models contains domain types for garagekeep.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project groups items and owns the counter used for SKU allocation.
// LastIndex is the next sequence number to hand out; it only ever grows,
// and only inside the allocation transaction.
type Project struct {
	ID           int64               `json:"id"`
	Name         string              `json:"name"`
	CreationDate time.Time           `json:"creationDate"`
	Price        decimal.NullDecimal `json:"price"`
	LastIndex    int64               `json:"lastIndex"`
}
