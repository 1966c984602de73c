package services

import (
	"context"

	"github.com/hevile/prestacao-web/internal/core/domain"
	"github.com/hevile/prestacao-web/internal/dto"
)

// DespesaReaderSvc defines read operations for expenses.
type DespesaReaderSvc interface {
	// ListDespesas retrieves the caller's own expenses.
	ListDespesas(ctx context.Context) ([]domain.Despesa, error)

	// ListDespesasDaViagem retrieves the expenses charged to one trip.
	ListDespesasDaViagem(ctx context.Context, viagemID int64) ([]domain.Despesa, error)
}

// DespesaWriterSvc defines write operations for expenses.
type DespesaWriterSvc interface {
	// CreateDespesa submits a new expense (multipart, receipt required by
	// the backend). It is created PENDENTE.
	CreateDespesa(ctx context.Context, req dto.CreateDespesaRequest) (*domain.Despesa, error)

	// UpdateDespesa patches an expense. The backend resets its status to
	// PENDENTE on every edit.
	UpdateDespesa(ctx context.Context, despesaID int64, req dto.UpdateDespesaRequest) (*domain.Despesa, error)
}

// DespesaReviewSvc defines the approval actions on pending expenses.
type DespesaReviewSvc interface {
	AprovarDespesa(ctx context.Context, despesaID int64) error
	RejeitarDespesa(ctx context.Context, despesaID int64, observacao string) error
}

// DespesaSvcFacade combines the expense-related service interfaces.
type DespesaSvcFacade interface {
	DespesaReaderSvc
	DespesaWriterSvc
	DespesaReviewSvc
}
