package http

import (
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func pathID(ctx echo.Context, name string) (kernel.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return fromAPI(name, id)
}

// queryID returns nil when the parameter is absent.
func queryID(ctx echo.Context, name string) (*kernel.UUID, error) {
	var id *openapi_types.UUID
	if err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), &id); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	if id == nil {
		return nil, nil
	}

	parsed, err := fromAPI(name, *id)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func queryString(ctx echo.Context, name string) (*string, error) {
	var value *string
	if err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), &value); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return value, nil
}

func fromAPI(name string, id openapi_types.UUID) (kernel.UUID, error) {
	parsed, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return parsed, nil
}

func toAPI(id kernel.UUID) openapi_types.UUID {
	return id.Bytes()
}

// parseOptional applies parse to a present query value.
func parseOptional[T any](value *string, parse func(string) (T, error)) (*T, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := parse(*value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
