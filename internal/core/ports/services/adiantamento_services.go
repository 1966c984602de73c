package services

import (
	"context"

	"github.com/hevile/prestacao-web/internal/core/domain"
	"github.com/hevile/prestacao-web/internal/dto"
)

// AdiantamentoReaderSvc lists the deposit history.
type AdiantamentoReaderSvc interface {
	ListAdiantamentos(ctx context.Context) ([]domain.Adiantamento, error)
}

// AdiantamentoWriterSvc creates deposits. Deposits are append-only from
// this application: never edited or deleted here.
type AdiantamentoWriterSvc interface {
	CreateAdiantamento(ctx context.Context, req dto.CreateAdiantamentoRequest) (*domain.Adiantamento, error)
}

// AdiantamentoSvcFacade combines the deposit-related service interfaces.
type AdiantamentoSvcFacade interface {
	AdiantamentoReaderSvc
	AdiantamentoWriterSvc
}
