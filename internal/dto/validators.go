package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	alphaSpaceRegex = regexp.MustCompile(`^[a-zA-Z ]+$`)
	usernameRegex   = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]*$`)
)

// RegisterCustomValidators wires the field formats shared by name and
// category inputs into gin's binding validator. Call once at startup.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("alphaspace", func(fl validator.FieldLevel) bool {
		return alphaSpaceRegex.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("usernamefmt", func(fl validator.FieldLevel) bool {
		return usernameRegex.MatchString(fl.Field().String())
	})
}
