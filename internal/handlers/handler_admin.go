package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/hevile/prestacao-web/internal/apperrors"
	"github.com/hevile/prestacao-web/internal/core/domain"
	portssvc "github.com/hevile/prestacao-web/internal/core/ports/services"
	"github.com/hevile/prestacao-web/internal/dto"
	"github.com/hevile/prestacao-web/internal/middleware"
)

// adminHandler drives the user-management screen.
type adminHandler struct {
	users         portssvc.UserSvcFacade
	departamentos portssvc.DepartamentoSvc
}

func registerAdminRoutes(rg *gin.RouterGroup, users portssvc.UserSvcFacade, departamentos portssvc.DepartamentoSvc) {
	h := &adminHandler{users: users, departamentos: departamentos}

	rg.GET("/admin", h.showAdmin)
	rg.POST("/admin/usuarios", h.createUser)
	rg.POST("/admin/usuarios/:id/editar", h.updateUser)
}

// loadAdmin fetches departments and users in parallel. Superusers are
// dropped from the listing; they are not managed from this screen.
func (h *adminHandler) loadAdmin(ctx context.Context) (dto.AdminPage, error) {
	var page dto.AdminPage

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		departamentos, err := h.departamentos.ListDepartamentos(gctx)
		if err != nil {
			return err
		}
		page.Departamentos = departamentos
		return nil
	})
	g.Go(func() error {
		usuarios, err := h.users.ListUsers(gctx)
		if err != nil {
			return err
		}
		visiveis := make([]domain.User, 0, len(usuarios))
		for _, u := range usuarios {
			if !u.IsSuperuser {
				visiveis = append(visiveis, u)
			}
		}
		page.Usuarios = visiveis
		return nil
	})
	if err := g.Wait(); err != nil {
		return dto.AdminPage{}, err
	}
	return page, nil
}

func (h *adminHandler) showAdmin(c *gin.Context) {
	page, err := h.loadAdmin(c.Request.Context())
	if err != nil {
		if redirectIfUnauthenticated(c, err) {
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to load admin page", slog.String("error", err.Error()))
		c.HTML(http.StatusBadGateway, "admin.html", dto.AdminPage{FormError: "Erro ao carregar dados."})
		return
	}
	c.HTML(http.StatusOK, "admin.html", page)
}

func (h *adminHandler) renderAdmin(c *gin.Context, status int, formError, success string) {
	page, err := h.loadAdmin(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to reload admin page", slog.String("error", err.Error()))
		page = dto.AdminPage{}
	}
	page.FormError = formError
	page.Success = success
	c.HTML(status, "admin.html", page)
}

func (h *adminHandler) createUser(c *gin.Context) {
	var req dto.CreateUserRequest
	_ = c.ShouldBind(&req)
	req.FotoPerfil, _ = c.FormFile("foto_perfil")

	if _, err := h.users.CreateUser(c.Request.Context(), req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to create user", slog.String("error", err.Error()))
		h.renderAdmin(c, http.StatusBadGateway, fmt.Sprintf("Falha ao criar usuário: %s", userCreateDetail(err)), "")
		return
	}

	h.renderAdmin(c, http.StatusOK, "", fmt.Sprintf("Usuário %q criado com sucesso!", req.Username))
}

// userCreateDetail prefers the backend's username complaint; anything else
// collapses to a generic detail.
func userCreateDetail(err error) string {
	var apiErr *apperrors.APIError
	if errors.As(err, &apiErr) {
		if msg, ok := apiErr.Field("username"); ok {
			return msg
		}
	}
	return "Erro desconhecido."
}

func (h *adminHandler) updateUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.renderAdmin(c, http.StatusNotFound, "Usuário não encontrado.", "")
		return
	}

	var req dto.UpdateUserRequest
	_ = c.ShouldBind(&req)

	if _, err := h.users.UpdateUser(c.Request.Context(), userID, req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to update user",
			slog.Int64("user_id", userID), slog.String("error", err.Error()))
		h.renderAdmin(c, http.StatusBadGateway, "Falha ao atualizar usuário.", "")
		return
	}

	h.renderAdmin(c, http.StatusOK, "", fmt.Sprintf("Usuário %q atualizado com sucesso!", req.Username))
}
