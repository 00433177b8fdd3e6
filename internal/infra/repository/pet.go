package repository

import (
	"context"

	"petstay/internal/infra"
	"petstay/internal/infra/db"
	"petstay/internal/usecase/shared"

	"github.com/google/uuid"
)

type PetRepository struct {
	db db.DBTX
}

func NewPetRepository(dbtx db.DBTX) *PetRepository {
	return &PetRepository{db: dbtx}
}

func (r *PetRepository) FindOwnedByIDs(ctx context.Context, customerID uuid.UUID, ids []uuid.UUID) ([]shared.PetSnapshot, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, customer_id, name FROM pets WHERE customer_id = $1 AND id = ANY($2)`,
		customerID, ids,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find pets", err)
	}
	defer rows.Close()

	var snapshots []shared.PetSnapshot
	for rows.Next() {
		var s shared.PetSnapshot
		if err := rows.Scan(&s.ID, &s.CustomerID, &s.Name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pet", err)
		}
		snapshots = append(snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pets", err)
	}
	return snapshots, nil
}
