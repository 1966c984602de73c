package backend

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/hevile/prestacao-web/internal/core/domain"
	portssvc "github.com/hevile/prestacao-web/internal/core/ports/services"
	"github.com/hevile/prestacao-web/internal/dto"
)

var (
	_ portssvc.UserSvcFacade   = (*Client)(nil)
	_ portssvc.DepartamentoSvc = (*Client)(nil)
)

// Me retrieves the caller's own record, including perfil, saldo and the
// current trip.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.doJSON(ctx, http.MethodGet, "/users/me/", nil, &user); err != nil {
		return nil, fmt.Errorf("failed to fetch current user: %w", err)
	}
	return &user, nil
}

// ListUsers retrieves every user visible to the caller.
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.doJSON(ctx, http.MethodGet, "/users/", nil, &users); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// CreateUser posts the new-user multipart payload.
func (c *Client) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	var user domain.User
	err := c.doMultipart(ctx, http.MethodPost, "/users/", func(mw *multipart.Writer) error {
		if err := writeField(mw, "username", req.Username); err != nil {
			return err
		}
		if err := writeField(mw, "password", req.Password); err != nil {
			return err
		}
		if err := writeField(mw, "first_name", req.FirstName); err != nil {
			return err
		}
		if err := writeField(mw, "last_name", req.LastName); err != nil {
			return err
		}
		if err := writeField(mw, "tipo", string(req.Tipo)); err != nil {
			return err
		}
		for _, deptoID := range req.Departamentos {
			if err := mw.WriteField("departamentos", strconv.FormatInt(deptoID, 10)); err != nil {
				return err
			}
		}
		return writeFile(mw, "foto_perfil", req.FotoPerfil)
	}, &user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// UpdateUser patches an existing user. The e-mail is forced equal to the
// username, which the backend treats as the login address.
func (c *Client) UpdateUser(ctx context.Context, userID int64, req dto.UpdateUserRequest) (*domain.User, error) {
	payload := map[string]any{
		"first_name": req.FirstName,
		"last_name":  req.LastName,
		"email":      req.Username,
		"username":   req.Username,
		"perfil": map[string]any{
			"tipo":          req.Tipo,
			"departamentos": req.Departamentos,
		},
	}

	var user domain.User
	path := fmt.Sprintf("/users/%d/", userID)
	if err := c.doJSON(ctx, http.MethodPatch, path, payload, &user); err != nil {
		return nil, fmt.Errorf("failed to update user %d: %w", userID, err)
	}
	return &user, nil
}

// ListDepartamentos retrieves the department reference data.
func (c *Client) ListDepartamentos(ctx context.Context) ([]domain.Departamento, error) {
	var departamentos []domain.Departamento
	if err := c.doJSON(ctx, http.MethodGet, "/departamentos/", nil, &departamentos); err != nil {
		return nil, fmt.Errorf("failed to list departamentos: %w", err)
	}
	return departamentos, nil
}
