package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sharkfolio/sharkgen/internal/tsgen"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	err := v.RegisterValidation("identifier", func(fl validator.FieldLevel) bool {
		return tsgen.ValidateExportName(fl.Field().String()) == nil
	})
	if err != nil {
		panic("registering identifier validation: " + err.Error())
	}

	// Report fields by their sharkgen.yaml keys.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the config and any roster override against their
// constraints. The first violation is returned.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	return describe(verrs[0])
}

func describe(fe validator.FieldError) error {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", field)
	case "oneof":
		return fmt.Errorf("%s %q is not one of: %s", field, fe.Value(), fe.Param())
	case "identifier":
		return fmt.Errorf("%s %q is not a valid identifier", field, fe.Value())
	case "url":
		return fmt.Errorf("%s %q is not a valid URL", field, fe.Value())
	default:
		return fmt.Errorf("%s failed %s validation", field, fe.Tag())
	}
}
