package services

import (
	"context"

	"github.com/hevile/prestacao-web/internal/core/domain"
	"github.com/hevile/prestacao-web/internal/dto"
)

// UserReaderSvc defines read operations for user data.
type UserReaderSvc interface {
	// Me retrieves the authenticated user's own record, including perfil,
	// saldo and the current trip.
	Me(ctx context.Context) (*domain.User, error)

	// ListUsers retrieves every user visible to the caller.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data.
type UserWriterSvc interface {
	// CreateUser creates a new user (multipart: credentials, name, role,
	// departments, optional photo).
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// UpdateUser patches an existing user.
	UpdateUser(ctx context.Context, userID int64, req dto.UpdateUserRequest) (*domain.User, error)
}

// UserSvcFacade combines the user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}

// DepartamentoSvc exposes the read-only department reference data.
type DepartamentoSvc interface {
	ListDepartamentos(ctx context.Context) ([]domain.Departamento, error)
}
