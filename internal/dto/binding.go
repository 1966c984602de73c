package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/hevile/prestacao-web/internal/core/domain"
)

// RegisterValidations installs the custom binding rules used by the form
// DTOs on gin's validator engine. Call once at startup.
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("categoria", func(fl validator.FieldLevel) bool {
		value := domain.Categoria(fl.Field().String())
		for _, categoria := range domain.Categorias {
			if categoria == value {
				return true
			}
		}
		return false
	})
}
