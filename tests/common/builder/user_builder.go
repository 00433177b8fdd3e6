//go:build unit || e2e

package builder

import (
	"petstay/internal/domain/user"
	"petstay/internal/usecase/queries"

	"github.com/google/uuid"
)

func NewCustomerActor() user.Actor {
	return user.Actor{ID: uuid.New(), Role: user.RoleCustomer}
}

func NewStaffActor() user.Actor {
	return user.Actor{ID: uuid.New(), Role: user.RoleStaff}
}

func NewAdminActor() user.Actor {
	return user.Actor{ID: uuid.New(), Role: user.RoleAdmin}
}

type UserBuilder struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Role     string
	IsActive bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       uuid.New(),
		Name:     "Test Customer",
		Email:    "customer@example.com",
		Role:     "customer",
		IsActive: true,
	}
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) Inactive() *UserBuilder {
	u.IsActive = false
	return u
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}
