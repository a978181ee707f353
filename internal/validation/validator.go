package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// This file provides a centralized, singleton-based validation helper shared by
// the API request DTOs and by the checks run on structured model output.

var (
	// validate holds the single instance of the validator.
	validate *validator.Validate
	// once ensures that the validator is initialized only one time.
	once sync.Once
)

// getInstance uses sync.Once to safely initialize and return the validator singleton.
func getInstance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report JSON field names ("device1Name") rather than Go field names.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// Struct checks payload against the rules in its `validate` field tags.
// If validation fails, it returns an error wrapping kind whose message lists
// every failing field, e.g. "device2.specs.price failed on the 'required' tag".
func Struct(payload interface{}, kind error) error {
	v := getInstance()
	err := v.Struct(payload)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: an unexpected error occurred during validation: %s", kind, err.Error())
	}

	errorMessages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		errorMessages = append(errorMessages, fmt.Sprintf("%s failed on the '%s' tag", fieldPath(fieldErr.Namespace()), fieldErr.Tag()))
	}

	return fmt.Errorf("%w: %s", kind, strings.Join(errorMessages, "; "))
}

// fieldPath drops the top-level struct name from a validator namespace.
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}
