package handlers

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators installs application-specific validation rules on
// gin's binding engine. Call once at startup before serving requests.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("beforetoday", beforeToday)
}

// beforeToday accepts a 2006-01-02 date string strictly in the past.
// Contact birthdays can never be in the future.
func beforeToday(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return false
	}
	return d.Before(time.Now())
}
