// Package ident generates entity identifiers.
//
// IDs are a short entity prefix followed by a UUIDv7, so string order is
// creation order within one prefix.
package ident

import (
	"github.com/google/uuid"
)

const (
	PrefixProduct  = "prd_"
	PrefixMovement = "mov_"
	PrefixSale     = "sal_"
	PrefixSaleLine = "sln_"
	PrefixExpense  = "exp_"
)

func New(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to V4 if V7 fails (clock read error)
		return prefix + uuid.New().String()
	}
	return prefix + id.String()
}
