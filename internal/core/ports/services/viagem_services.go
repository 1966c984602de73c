package services

import (
	"context"

	"github.com/hevile/prestacao-web/internal/core/domain"
	"github.com/hevile/prestacao-web/internal/dto"
)

// ViagemReaderSvc defines read operations for trips.
type ViagemReaderSvc interface {
	// ListViagens retrieves trips. filtro is "pendentes", "todos" or empty
	// for the backend's unfiltered listing.
	ListViagens(ctx context.Context, filtro string) ([]domain.Viagem, error)

	// GetViagem retrieves one trip with its participants and their saldos.
	GetViagem(ctx context.Context, viagemID int64) (*domain.Viagem, error)
}

// ViagemWriterSvc defines write operations for trips. Only title, dates and
// the participant set are client-writable; status is derived server-side.
type ViagemWriterSvc interface {
	CreateViagem(ctx context.Context, req dto.SaveViagemRequest) (*domain.Viagem, error)
	UpdateViagem(ctx context.Context, viagemID int64, req dto.SaveViagemRequest) (*domain.Viagem, error)
}

// ViagemSvcFacade combines the trip-related service interfaces.
type ViagemSvcFacade interface {
	ViagemReaderSvc
	ViagemWriterSvc
}
