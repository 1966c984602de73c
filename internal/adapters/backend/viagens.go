package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/hevile/prestacao-web/internal/core/domain"
	portssvc "github.com/hevile/prestacao-web/internal/core/ports/services"
	"github.com/hevile/prestacao-web/internal/dto"
)

var _ portssvc.ViagemSvcFacade = (*Client)(nil)

// ListViagens retrieves trips, optionally filtered ("pendentes" or "todos").
func (c *Client) ListViagens(ctx context.Context, filtro string) ([]domain.Viagem, error) {
	path := "/viagens/"
	if filtro != "" {
		path += "?filtro=" + url.QueryEscape(filtro)
	}

	var viagens []domain.Viagem
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &viagens); err != nil {
		return nil, fmt.Errorf("failed to list viagens: %w", err)
	}
	return viagens, nil
}

// GetViagem retrieves one trip with its participants and their saldos.
func (c *Client) GetViagem(ctx context.Context, viagemID int64) (*domain.Viagem, error) {
	var viagem domain.Viagem
	path := fmt.Sprintf("/viagens/%d/", viagemID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &viagem); err != nil {
		return nil, fmt.Errorf("failed to fetch viagem %d: %w", viagemID, err)
	}
	return &viagem, nil
}

// CreateViagem creates a trip.
func (c *Client) CreateViagem(ctx context.Context, req dto.SaveViagemRequest) (*domain.Viagem, error) {
	var viagem domain.Viagem
	if err := c.doJSON(ctx, http.MethodPost, "/viagens/", req, &viagem); err != nil {
		return nil, fmt.Errorf("failed to create viagem: %w", err)
	}
	return &viagem, nil
}

// UpdateViagem patches a trip's title, dates and participant set.
func (c *Client) UpdateViagem(ctx context.Context, viagemID int64, req dto.SaveViagemRequest) (*domain.Viagem, error) {
	var viagem domain.Viagem
	path := fmt.Sprintf("/viagens/%d/", viagemID)
	if err := c.doJSON(ctx, http.MethodPatch, path, req, &viagem); err != nil {
		return nil, fmt.Errorf("failed to update viagem %d: %w", viagemID, err)
	}
	return &viagem, nil
}
