package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Eligible services for one package
	// (POST /api/v1/eligibility)
	CheckEligibility(ctx echo.Context) error
	// Eligible services for several packages, one result per package in request order
	// (POST /api/v1/eligibility/batch)
	CheckEligibilityBatch(ctx echo.Context) error
	// Replace the whole rule table with a YAML or JSON rule document
	// (PUT /api/v1/rule-table)
	ReplaceRuleTable(ctx echo.Context) error
	// Stored rules, in rule table order
	// (GET /api/v1/services)
	GetServices(ctx echo.Context, params GetServicesParams) error
	// Append one alternative; a known service id gains another OR path
	// (POST /api/v1/services)
	CreateServiceRule(ctx echo.Context) error
	// Remove every alternative of a service
	// (DELETE /api/v1/services/{serviceId})
	DeleteService(ctx echo.Context, serviceId string) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// CheckEligibility converts echo context to params.
func (w *ServerInterfaceWrapper) CheckEligibility(ctx echo.Context) error {
	return w.Handler.CheckEligibility(ctx)
}

// CheckEligibilityBatch converts echo context to params.
func (w *ServerInterfaceWrapper) CheckEligibilityBatch(ctx echo.Context) error {
	return w.Handler.CheckEligibilityBatch(ctx)
}

// ReplaceRuleTable converts echo context to params.
func (w *ServerInterfaceWrapper) ReplaceRuleTable(ctx echo.Context) error {
	return w.Handler.ReplaceRuleTable(ctx)
}

// GetServices converts echo context to params.
func (w *ServerInterfaceWrapper) GetServices(ctx echo.Context) error {
	var params GetServicesParams

	err := runtime.BindQueryParameter("form", true, false, "carrier", ctx.QueryParams(), &params.Carrier)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter carrier: %s", err))
	}

	return w.Handler.GetServices(ctx, params)
}

// CreateServiceRule converts echo context to params.
func (w *ServerInterfaceWrapper) CreateServiceRule(ctx echo.Context) error {
	return w.Handler.CreateServiceRule(ctx)
}

// DeleteService converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteService(ctx echo.Context) error {
	var serviceId string

	err := runtime.BindStyledParameterWithLocation(
		"simple", false, "serviceId", runtime.ParamLocationPath, ctx.Param("serviceId"), &serviceId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter serviceId: %s", err))
	}

	return w.Handler.DeleteService(ctx, serviceId)
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the handlers, each prefixed with baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/v1/eligibility", wrapper.CheckEligibility)
	router.POST(baseURL+"/api/v1/eligibility/batch", wrapper.CheckEligibilityBatch)
	router.PUT(baseURL+"/api/v1/rule-table", wrapper.ReplaceRuleTable)
	router.GET(baseURL+"/api/v1/services", wrapper.GetServices)
	router.POST(baseURL+"/api/v1/services", wrapper.CreateServiceRule)
	router.DELETE(baseURL+"/api/v1/services/:serviceId", wrapper.DeleteService)
}
