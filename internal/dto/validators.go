package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/workforceapp/wfm_backend/internal/core/domain"
)

// RegisterCustomValidators wires domain-aware validation tags into gin's
// binding engine. Safe to call more than once.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("hiringstatus", func(fl validator.FieldLevel) bool {
		return domain.HiringStatus(fl.Field().String()).IsValid()
	})
}
