package httpx

import (
	"regexp"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Digits with optional leading +, separators ( ) . - and spaces, and an
// optional extension such as "x12" or "ext. 12".
var phonePattern = regexp.MustCompile(`(?i)^\+?[0-9\s().-]*[0-9][0-9\s().-]*(\s*(ext\.?|x)\s*[0-9]+)?$`)

var registerOnce sync.Once

// RegisterValidations adds the custom binding rules ("phone") to gin's
// validator. Safe to call more than once.
func RegisterValidations() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
				return phonePattern.MatchString(fl.Field().String())
			})
		}
	})
}
