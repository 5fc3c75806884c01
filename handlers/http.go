// Package handlers contains http handlers for myregistry.
//
//go:generate oapi-codegen -config openapi-api.config.yaml ../api/registry.openapi.yaml
//go:generate oapi-codegen -config openapi-types.config.yaml ../api/registry.openapi.yaml
package handlers

import (
	"fmt"
	"net/http"

	"myregistry/domain"
	"myregistry/interfaces"
	"myregistry/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// HTTPServer implements ServerInterface generated from OpenAPI spec.
type HTTPServer struct {
	registry interfaces.Registry
	logger   log.Logger
}

var _ ServerInterface = (*HTTPServer)(nil)

// NewHTTPServer creates a new HTTPServer.
func NewHTTPServer(registry interfaces.Registry, logger log.Logger) *HTTPServer {
	logger = log.WithPrefix(logger, "component", "HTTPServer")
	return &HTTPServer{
		registry: registry,
		logger:   logger,
	}
}

// PutRegistration (POST /v1/registrations) stores or renews a registration. Returns 200 with the
// canonical registration, 400 on parse/validation error, 500 on Redis error.
func (h *HTTPServer) PutRegistration(ectx echo.Context) error {
	var req RegisterRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}

	reg, opts, err := fromRegisterRequest(req)
	if err != nil {
		return fmt.Errorf("putRegistration failed to convert request, err: %w", err)
	}

	ctx := ectx.Request().Context()
	if err := h.registry.Update(ctx, reg, opts); err != nil {
		return fmt.Errorf("putRegistration failed to update registry, err: %w", err)
	}

	return ectx.JSON(http.StatusOK, RegistrationResponse{Registration: toRegistration(reg)})
}

// ListRegistrations (GET /v1/registrations) returns live registrations matching name and version.
func (h *HTTPServer) ListRegistrations(ectx echo.Context, params ListRegistrationsParams) error {
	q, err := fromListRegistrationsParams(params)
	if err != nil {
		return fmt.Errorf("listRegistrations failed to convert params, err: %w", err)
	}

	ctx := ectx.Request().Context()
	regs, err := h.registry.GetRegistrations(ctx, q)
	if err != nil {
		return fmt.Errorf("listRegistrations failed to query registry, err: %w", err)
	}

	return ectx.JSON(http.StatusOK, toRegistrationsResponse(regs))
}

// DeleteRegistration (DELETE /v1/registrations/{name}/{version}/{host}/{port}) removes a registration.
// Removing a registration that does not exist still returns 204.
func (h *HTTPServer) DeleteRegistration(ectx echo.Context, name string, version string, host string, port int) error {
	reg, err := domain.NewRegistration(domain.Registration{Name: name, Version: version, Host: host, Port: port})
	if err != nil {
		return fmt.Errorf("deleteRegistration failed to build id, err: %w", err)
	}

	ctx := ectx.Request().Context()
	if err := h.registry.Del(ctx, reg.ID); err != nil {
		return fmt.Errorf("deleteRegistration failed to delete from registry, err: %w", err)
	}

	return ectx.NoContent(http.StatusNoContent)
}

// RunReaper (POST /v1/reaper) sweeps one batch of expired registrations.
func (h *HTTPServer) RunReaper(ectx echo.Context) error {
	ctx := ectx.Request().Context()
	ids, err := h.registry.RunReaper(ctx)
	if err != nil {
		return fmt.Errorf("runReaper failed, err: %w", err)
	}

	level.Debug(h.logger).Log("msg", "manual reaper run", "reaped", len(ids))
	return ectx.JSON(http.StatusOK, ReaperResponse{Reaped: ids})
}
