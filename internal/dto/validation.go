package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/jasonlam510/scount-currency-backend/internal/core/domain"
)

// RegisterValidations installs custom binding validators on gin's validator
// engine. Called once at startup.
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("currency_code", validCurrencyCode)
}

// validCurrencyCode accepts values that normalize to three ASCII letters.
// Normalization itself happens again in the service layer; binding only
// rejects inputs that could never be a code.
func validCurrencyCode(fl validator.FieldLevel) bool {
	code := domain.NormalizeCurrencyCode(fl.Field().String())
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
