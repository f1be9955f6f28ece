package servers

import (
	"context"
	"fmt"

	"rushdrop/api"

	"github.com/getkin/kin-openapi/openapi3"
)

// GetSwagger parses and validates the embedded OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(api.OpenAPI)
	if err != nil {
		return nil, fmt.Errorf("error loading OpenAPI document: %w", err)
	}
	if err = doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("error validating OpenAPI document: %w", err)
	}
	return doc, nil
}

// SwaggerJSON returns the embedded document rendered as JSON, the form
// swagger UI consumes.
func SwaggerJSON() ([]byte, error) {
	doc, err := GetSwagger()
	if err != nil {
		return nil, err
	}
	return doc.MarshalJSON()
}
