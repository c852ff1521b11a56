package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/truongn999/ShortLink/pkg/response"
)

var validate *validator.Validate

var aliasPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Aliases that would shadow application routes.
var reservedAliases = map[string]bool{
	"api":     true,
	"healthz": true,
	"readyz":  true,
}

func init() {
	validate = validator.New()

	validate.RegisterValidation("alias", validateAlias)
}

func Validate(data interface{}) []response.ValidationError {
	var validationErrors []response.ValidationError

	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, response.ValidationError{
				Field:   err.Field(),
				Message: getErrorMessage(err),
			})
		}
	}

	return validationErrors
}

func validateAlias(fl validator.FieldLevel) bool {
	return aliasPattern.MatchString(fl.Field().String())
}

func IsReservedAlias(alias string) bool {
	return reservedAliases[strings.ToLower(alias)]
}

func getErrorMessage(err validator.FieldError) string {
	field := err.Field()

	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "alias":
		return fmt.Sprintf("%s may only contain letters, digits, - and _", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, err.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, err.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
