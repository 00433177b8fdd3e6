package readstore

import (
	"context"

	"petstay/internal/infra"
	"petstay/internal/infra/db"
	"petstay/internal/pkg/pgconv"
	"petstay/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row := s.db.QueryRow(ctx,
		`SELECT id, name, email, role, is_active FROM users WHERE id = $1`,
		id,
	)

	var view queries.AuthorizedUserView
	err := row.Scan(&view.ID, &view.Name, &view.Email, &view.Role, &view.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &view, nil
}

func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row := s.db.QueryRow(ctx,
		`SELECT id, name, email, role, is_active, password_hash FROM users WHERE email = $1`,
		email,
	)

	var view queries.AuthorizedUserView
	var passwordHash string
	err := row.Scan(&view.ID, &view.Name, &view.Email, &view.Role, &view.IsActive, &passwordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &view, passwordHash, nil
}
