package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	portssvc "github.com/hevile/prestacao-web/internal/core/ports/services"
	"github.com/hevile/prestacao-web/internal/dto"
	"github.com/hevile/prestacao-web/internal/middleware"
)

// viagemHandler drives the trip list screen and the create/edit forms.
type viagemHandler struct {
	users   portssvc.UserReaderSvc
	viagens portssvc.ViagemSvcFacade
}

func newViagemHandler(users portssvc.UserReaderSvc, viagens portssvc.ViagemSvcFacade) *viagemHandler {
	return &viagemHandler{users: users, viagens: viagens}
}

// registerViagemRoutes registers the trip list, the trip forms and the trip
// detail screen with its approval actions.
func registerViagemRoutes(rg *gin.RouterGroup, users portssvc.UserSvcFacade, viagens portssvc.ViagemSvcFacade, despesas portssvc.DespesaSvcFacade) {
	h := newViagemHandler(users, viagens)

	rg.GET("/admin/viagens", h.showViagens)
	rg.POST("/admin/viagens", h.createViagem)
	rg.POST("/admin/viagens/:id/editar", h.updateViagem)

	registerViagemDetalhesRoutes(rg, users, viagens, despesas)
}

// loadViagens runs the page's read set. The profile decides the admin bits;
// the trip list filter follows the "show all" toggle; the user list is only
// needed for the admin's participant picker.
func (h *viagemHandler) loadViagens(ctx context.Context, mostrarTodos bool) (dto.ViagensPage, error) {
	me, err := h.users.Me(ctx)
	if err != nil {
		return dto.ViagensPage{}, err
	}

	page := dto.ViagensPage{IsAdmin: me.IsSuperuser, MostrarTodos: mostrarTodos}

	filtro := "pendentes"
	if mostrarTodos {
		filtro = "todos"
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		viagens, err := h.viagens.ListViagens(gctx, filtro)
		if err != nil {
			return err
		}
		page.Viagens = viagens
		return nil
	})
	if me.IsSuperuser {
		g.Go(func() error {
			usuarios, err := h.users.ListUsers(gctx)
			if err != nil {
				return err
			}
			page.Usuarios = usuarios
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return dto.ViagensPage{}, err
	}
	return page, nil
}

func (h *viagemHandler) showViagens(c *gin.Context) {
	page, err := h.loadViagens(c.Request.Context(), c.Query("todos") == "1")
	if err != nil {
		if redirectIfUnauthenticated(c, err) {
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to load viagens", slog.String("error", err.Error()))
		c.HTML(http.StatusBadGateway, "viagens.html", dto.ViagensPage{FormError: "Erro ao carregar viagens."})
		return
	}
	c.HTML(http.StatusOK, "viagens.html", page)
}

// renderViagens reloads the page's read set after a mutation attempt and
// renders it with the given outcome messages.
func (h *viagemHandler) renderViagens(c *gin.Context, status int, formError, success string) {
	page, err := h.loadViagens(c.Request.Context(), c.Query("todos") == "1")
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to reload viagens", slog.String("error", err.Error()))
		page = dto.ViagensPage{}
	}
	page.FormError = formError
	page.Success = success
	c.HTML(status, "viagens.html", page)
}

// validateViagemForm applies the form checks in order: text fields first,
// participant selection second.
func validateViagemForm(req dto.SaveViagemRequest) string {
	if req.Titulo == "" || req.DataInicio == "" || req.DataFim == "" {
		return "Todos os campos de texto são obrigatórios."
	}
	if len(req.Participantes) == 0 {
		return "Selecione pelo menos um participante."
	}
	return ""
}

func (h *viagemHandler) createViagem(c *gin.Context) {
	var req dto.SaveViagemRequest
	_ = c.ShouldBind(&req)

	if msg := validateViagemForm(req); msg != "" {
		h.renderViagens(c, http.StatusUnprocessableEntity, msg, "")
		return
	}

	if _, err := h.viagens.CreateViagem(c.Request.Context(), req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to create viagem", slog.String("error", err.Error()))
		h.renderViagens(c, http.StatusBadGateway, "Erro ao criar viagem. Verifique os dados.", "")
		return
	}

	h.renderViagens(c, http.StatusOK, "", "Viagem criada com sucesso!")
}

func (h *viagemHandler) updateViagem(c *gin.Context) {
	viagemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.renderViagens(c, http.StatusNotFound, "Viagem não encontrada.", "")
		return
	}

	var req dto.SaveViagemRequest
	_ = c.ShouldBind(&req)

	if msg := validateViagemForm(req); msg != "" {
		h.renderViagens(c, http.StatusUnprocessableEntity, msg, "")
		return
	}

	if _, err := h.viagens.UpdateViagem(c.Request.Context(), viagemID, req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to update viagem", slog.String("error", err.Error()))
		h.renderViagens(c, http.StatusBadGateway, "Erro ao atualizar viagem. Verifique os dados.", "")
		return
	}

	h.renderViagens(c, http.StatusOK, "", "Viagem atualizada com sucesso!")
}
