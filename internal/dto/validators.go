package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterCustomValidators installs the monetary-amount validations on gin's
// binding engine. Amounts are decimals constrained to whole smallest-currency
// units: "intamount" requires a positive integer, "intbalance" a non-negative
// one (opening balances may be zero).
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("intamount", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		return ok && d.IsInteger() && d.IsPositive()
	})
	_ = v.RegisterValidation("intbalance", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		return ok && d.IsInteger() && !d.IsNegative()
	})
}
