package http

import (
	"sync"

	"rushdrop/internal/generated/servers"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

var registerDocOnce sync.Once

type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

// RegisterSwagger serves the swagger UI for the embedded OpenAPI document at /swagger/index.html.
func RegisterSwagger(e *echo.Echo) error {
	data, err := servers.SwaggerJSON()
	if err != nil {
		return err
	}

	// swag keeps documents in a process-wide registry that rejects duplicates.
	registerDocOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{json: string(data)})
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}
