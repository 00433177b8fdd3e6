package readstore

import (
	"context"

	"petstay/internal/infra"
	"petstay/internal/infra/db"

	"github.com/google/uuid"
)

type PetReadStore struct {
	db db.DBTX
}

func NewPetReadStore(dbtx db.DBTX) *PetReadStore {
	return &PetReadStore{db: dbtx}
}

func (s *PetReadStore) FindNamesOwnedByIDs(ctx context.Context, customerID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	rows, err := s.db.Query(ctx,
		`SELECT id, name FROM pets WHERE customer_id = $1 AND id = ANY($2)`,
		customerID, ids,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find pet names", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pet name", err)
		}
		names[id] = name
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pet names", err)
	}
	return names, nil
}
