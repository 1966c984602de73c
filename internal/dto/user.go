package dto

import (
	"mime/multipart"

	"github.com/hevile/prestacao-web/internal/core/domain"
)

// CreateUserRequest is the admin's new-user form. It is sent to the backend
// as a multipart payload; the username doubles as the login e-mail.
type CreateUserRequest struct {
	Username      string                `form:"username"`
	Password      string                `form:"password"`
	FirstName     string                `form:"first_name"`
	LastName      string                `form:"last_name"`
	Tipo          domain.Role           `form:"tipo"`
	Departamentos []int64               `form:"departamentos"`
	FotoPerfil    *multipart.FileHeader `form:"-"`
}

// UpdateUserRequest is the admin's edit-user form. It is sent as a JSON
// patch; the e-mail field is always forced equal to the username.
type UpdateUserRequest struct {
	Username      string      `form:"username"`
	FirstName     string      `form:"first_name"`
	LastName      string      `form:"last_name"`
	Tipo          domain.Role `form:"tipo"`
	Departamentos []int64     `form:"departamentos"`
}
