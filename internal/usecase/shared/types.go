package shared

import (
	"github.com/google/uuid"
)

// Write-side snapshots keep commands independent of read-side view types.
type PetSnapshot struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Name       string
}
