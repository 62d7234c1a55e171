package http

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

//go:embed openapi.json
var openapiJSON []byte

// LoadSpec parses and validates the embedded OpenAPI document.
func LoadSpec(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapiJSON)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}

	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}

	return doc, nil
}

// RequestValidator rejects /api/ requests whose parameters or body do not
// match doc. Requests for unknown routes pass through to the router.
func RequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			if !strings.HasPrefix(req.URL.Path, "/api/") {
				return next(ctx)
			}

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(ctx)
			}

			if err = validate(req.Context(), route, pathParams, ctx); err != nil {
				return badRequest(ctx, err.Error())
			}

			return next(ctx)
		}
	}, nil
}

func validate(c context.Context, route *routers.Route, pathParams map[string]string, ctx echo.Context) error {
	return openapi3filter.ValidateRequest(c, &openapi3filter.RequestValidationInput{
		Request:    ctx.Request(),
		PathParams: pathParams,
		Route:      route,
		Options: &openapi3filter.Options{
			AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		},
	})
}

type swaggerDoc struct{}

func (swaggerDoc) ReadDoc() string {
	return string(openapiJSON)
}

var registerDoc sync.Once

// RegisterSwagger serves the document UI under /swagger/.
func RegisterSwagger(e *echo.Echo) {
	registerDoc.Do(func() {
		swag.Register(swag.Name, swaggerDoc{})
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
