// Package api embeds the OpenAPI document of the HTTP API.
package api

import (
	_ "embed"
)

// OpenAPI is the raw openapi.yml document.
//
//go:embed openapi.yml
var OpenAPI []byte
