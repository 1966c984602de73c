package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hevile/prestacao-web/internal/apperrors"
	"github.com/hevile/prestacao-web/internal/core/domain"
	"github.com/hevile/prestacao-web/internal/dto"
	"github.com/hevile/prestacao-web/internal/session"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	services *testServices
	sessions *session.Manager
	router   http.Handler
}

func (suite *AdminHandlerTestSuite) SetupTest() {
	suite.services = newTestServices()
	suite.sessions = newTestSessionManager()
	suite.router = newTestRouter(suite.services, suite.sessions)
}

func (suite *AdminHandlerTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	req.AddCookie(sessionCookie(suite.sessions, session.Session{Token: "tok", IsAdmin: true}))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AdminHandlerTestSuite) stubReads() {
	suite.services.departamentos.On("ListDepartamentos", mock.Anything).Return([]domain.Departamento{
		{ID: 1, Nome: "Comercial"},
	}, nil)
	suite.services.users.On("ListUsers", mock.Anything).Return([]domain.User{
		{ID: 1, Username: "chefe", IsSuperuser: true},
		{ID: 7, Username: "ana", Perfil: &domain.Perfil{Tipo: domain.RoleColaborador}},
	}, nil)
}

func (suite *AdminHandlerTestSuite) TestShow_HidesSuperusers() {
	suite.stubReads()

	req, _ := http.NewRequest(http.MethodGet, "/admin", nil)
	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "usuarios=1")
}

func (suite *AdminHandlerTestSuite) TestCreate_Success() {
	suite.stubReads()
	suite.services.users.On("CreateUser", mock.Anything, mock.MatchedBy(func(req dto.CreateUserRequest) bool {
		return req.Username == "novo@empresa.com" &&
			req.Tipo == domain.RoleColaborador &&
			len(req.Departamentos) == 1 && req.Departamentos[0] == 1
	})).Return(&domain.User{ID: 9, Username: "novo@empresa.com"}, nil).Once()

	body, contentType := multipartForm(map[string]string{
		"username":      "novo@empresa.com",
		"password":      "s3nha",
		"first_name":    "Novo",
		"last_name":     "Colaborador",
		"tipo":          "COLABORADOR",
		"departamentos": "1",
	}, "foto_perfil")
	req, _ := http.NewRequest(http.MethodPost, "/admin/usuarios", body)
	req.Header.Set("Content-Type", contentType)
	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `Usuário &#34;novo@empresa.com&#34; criado com sucesso!`)
	suite.services.users.AssertExpectations(suite.T())
}

func (suite *AdminHandlerTestSuite) TestCreate_UsernameTakenSurfacesDetail() {
	suite.stubReads()
	apiErr := &apperrors.APIError{
		StatusCode:  http.StatusBadRequest,
		FieldErrors: map[string][]string{"username": {"Um usuário com este nome já existe."}},
	}
	suite.services.users.On("CreateUser", mock.Anything, mock.Anything).Return(nil, apiErr).Once()

	body, contentType := multipartForm(map[string]string{"username": "ana"}, "")
	req, _ := http.NewRequest(http.MethodPost, "/admin/usuarios", body)
	req.Header.Set("Content-Type", contentType)
	w := suite.serve(req)

	suite.Equal(http.StatusBadGateway, w.Code)
	suite.Contains(w.Body.String(), "Falha ao criar usuário: Um usuário com este nome já existe.")
}

func (suite *AdminHandlerTestSuite) TestCreate_GenericErrorFallsBack() {
	suite.stubReads()
	suite.services.users.On("CreateUser", mock.Anything, mock.Anything).
		Return(nil, errors.New("boom")).Once()

	body, contentType := multipartForm(map[string]string{"username": "x"}, "")
	req, _ := http.NewRequest(http.MethodPost, "/admin/usuarios", body)
	req.Header.Set("Content-Type", contentType)
	w := suite.serve(req)

	suite.Equal(http.StatusBadGateway, w.Code)
	suite.Contains(w.Body.String(), "Falha ao criar usuário: Erro desconhecido.")
}

func (suite *AdminHandlerTestSuite) TestUpdate_Success() {
	suite.stubReads()
	suite.services.users.On("UpdateUser", mock.Anything, int64(7), mock.MatchedBy(func(req dto.UpdateUserRequest) bool {
		return req.Username == "ana@empresa.com" && req.Tipo == domain.RoleGestor
	})).Return(&domain.User{ID: 7, Username: "ana@empresa.com"}, nil).Once()

	form := url.Values{
		"username":      {"ana@empresa.com"},
		"first_name":    {"Ana"},
		"last_name":     {"Silva"},
		"tipo":          {"GESTOR"},
		"departamentos": {"1"},
	}
	req, _ := http.NewRequest(http.MethodPost, "/admin/usuarios/7/editar", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `Usuário &#34;ana@empresa.com&#34; atualizado com sucesso!`)
	suite.services.users.AssertExpectations(suite.T())
}

func (suite *AdminHandlerTestSuite) TestUpdate_BackendError() {
	suite.stubReads()
	suite.services.users.On("UpdateUser", mock.Anything, int64(7), mock.Anything).
		Return(nil, errors.New("boom")).Once()

	form := url.Values{"username": {"ana@empresa.com"}}
	req, _ := http.NewRequest(http.MethodPost, "/admin/usuarios/7/editar", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := suite.serve(req)

	suite.Equal(http.StatusBadGateway, w.Code)
	suite.Contains(w.Body.String(), "Falha ao atualizar usuário.")
}

func TestAdminHandler(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}
