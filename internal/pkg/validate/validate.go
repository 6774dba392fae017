// Package validate exposes the shared struct validator.
package validate

import "github.com/go-playground/validator/v10"

var v = validator.New()

// Validate returns the shared validator instance.
func Validate() *validator.Validate {
	return v
}
