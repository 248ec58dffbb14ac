package api

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Gateway instance names end up in URL paths and webhook callbacks, so the
// accepted alphabet is restricted.
var instanceNamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)

func registerCustomValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("instance_name", func(fl validator.FieldLevel) bool {
			return instanceNamePattern.MatchString(fl.Field().String())
		})
	}
}
