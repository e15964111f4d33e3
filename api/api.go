// Package api holds the OpenAPI contract for the delivery service. The
// document is embedded so a binary always ships with the contract it was
// built against, and Load fails fast on a malformed spec.
package api

import (
	"context"
	_ "embed"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yml
var openapiSpec []byte

// Load parses and validates the embedded OpenAPI document.
func Load() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapiSpec)
	if err != nil {
		return nil, err
	}

	if err := doc.Validate(context.Background()); err != nil {
		return nil, err
	}

	return doc, nil
}
