package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"eligibility/internal/core/application/usecases/commands"
	"eligibility/internal/core/application/usecases/queries"
	"eligibility/internal/core/domain/model/kernel"
	"eligibility/internal/core/domain/model/rule"
	"eligibility/internal/core/domain/services"
	"eligibility/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// maxRuleDocumentBytes caps PUT /rule-table bodies.
const maxRuleDocumentBytes = 8 << 20

type EligibilityChecker interface {
	Handle(ctx context.Context, query queries.CheckEligibilityQuery) (services.EligibilityResult, error)
}

type BatchEligibilityChecker interface {
	Handle(ctx context.Context, query queries.CheckEligibilityBatchQuery) ([]services.EligibilityResult, error)
}

type ServiceRuleLister interface {
	Handle(ctx context.Context, query queries.GetServiceRulesQuery) ([]queries.GetServiceRulesQueryResponse, error)
}

type ServiceRuleAdder interface {
	Handle(ctx context.Context, cmd commands.AddServiceRuleCommand) error
}

type ServiceRemover interface {
	Handle(ctx context.Context, cmd commands.RemoveServiceCommand) error
}

type RuleTableImporter interface {
	Handle(ctx context.Context, cmd commands.ImportRuleTableCommand) error
}

// RuleDocumentDecoder parses a YAML or JSON rule document into validated rules.
type RuleDocumentDecoder interface {
	Decode(data []byte) ([]rule.ServiceRule, error)
}

// Handlers groups the use cases the server delegates to.
type Handlers struct {
	// Command handlers
	AddServiceRule  ServiceRuleAdder
	RemoveService   ServiceRemover
	ImportRuleTable RuleTableImporter

	// Query handlers
	CheckEligibility      EligibilityChecker
	CheckEligibilityBatch BatchEligibilityChecker
	GetServiceRules       ServiceRuleLister
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	decoder  RuleDocumentDecoder
	metrics  *Metrics
	logger   *slog.Logger
}

// NewServer creates a new HTTP server. metrics may be nil.
func NewServer(handlers Handlers, decoder RuleDocumentDecoder, metrics *Metrics, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		decoder:  decoder,
		metrics:  metrics,
		logger:   logger.With("component", "http_server"),
	}
}

// CheckEligibility handles POST /api/v1/eligibility.
func (s *Server) CheckEligibility(ctx echo.Context) error {
	started := time.Now()

	var req servers.EligibilityRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	p, err := toParcel(req.Package)
	if err != nil {
		s.metrics.observeCheck(outcomeInvalid, time.Since(started))
		return s.errorResponse(ctx, err, "")
	}

	query, err := queries.NewCheckEligibilityQuery(p, deref(req.Explain))
	if err != nil {
		return s.errorResponse(ctx, err, "")
	}

	result, err := s.handlers.CheckEligibility.Handle(ctx.Request().Context(), query)
	if err != nil {
		s.metrics.observeCheck(outcomeError, time.Since(started))
		return s.errorResponse(ctx, err, "Failed to check eligibility")
	}

	s.metrics.observeCheck(outcomeOf(result), time.Since(started))
	return ctx.JSON(http.StatusOK, toEligibilityResult(result))
}

// CheckEligibilityBatch handles POST /api/v1/eligibility/batch.
func (s *Server) CheckEligibilityBatch(ctx echo.Context) error {
	started := time.Now()

	var req servers.BatchEligibilityRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	parcels, err := toParcels(req.Packages)
	if err != nil {
		return s.errorResponse(ctx, err, "")
	}

	query, err := queries.NewCheckEligibilityBatchQuery(parcels, deref(req.Explain))
	if err != nil {
		return s.errorResponse(ctx, err, "")
	}

	results, err := s.handlers.CheckEligibilityBatch.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to check eligibility")
	}

	response := servers.BatchEligibilityResult{
		Results: make([]servers.EligibilityResult, len(results)),
	}
	elapsed := time.Since(started) / time.Duration(max(len(results), 1))
	for i, result := range results {
		s.metrics.observeCheck(outcomeOf(result), elapsed)
		response.Results[i] = toEligibilityResult(result)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetServices handles GET /api/v1/services.
func (s *Server) GetServices(ctx echo.Context, params servers.GetServicesParams) error {
	query := queries.NewGetServiceRulesQuery(deref(params.Carrier))

	rules, err := s.handlers.GetServiceRules.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to retrieve service rules")
	}

	response := make([]servers.ServiceRule, len(rules))
	for i, r := range rules {
		response[i] = toServiceRule(r.ID, rule.ServiceRuleParams{
			ServiceID:      r.ServiceID,
			ServiceName:    r.ServiceName,
			Carrier:        r.Carrier,
			ValidationType: r.ValidationType.String(),
			Constraints:    r.Constraints,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateServiceRule handles POST /api/v1/services.
func (s *Server) CreateServiceRule(ctx echo.Context) error {
	var req servers.NewServiceRule
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	sr, err := rule.NewServiceRule(kernel.NewUUID(), fromNewServiceRule(req))
	if err != nil {
		return s.errorResponse(ctx, err, "")
	}

	cmd, err := commands.NewAddServiceRuleCommand(sr)
	if err != nil {
		return s.errorResponse(ctx, err, "")
	}

	if err := s.handlers.AddServiceRule.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err, "Failed to create service rule")
	}

	return ctx.JSON(http.StatusCreated, toServiceRule(sr.ID(), sr.Params()))
}

// DeleteService handles DELETE /api/v1/services/{serviceId}.
func (s *Server) DeleteService(ctx echo.Context, serviceID string) error {
	cmd, err := commands.NewRemoveServiceCommand(serviceID)
	if err != nil {
		return s.errorResponse(ctx, err, "")
	}

	if err := s.handlers.RemoveService.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err, "Failed to remove service")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReplaceRuleTable handles PUT /api/v1/rule-table.
func (s *Server) ReplaceRuleTable(ctx echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(ctx.Request().Body, maxRuleDocumentBytes+1))
	if err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if len(body) > maxRuleDocumentBytes {
		return ctx.JSON(http.StatusRequestEntityTooLarge, servers.Error{
			Code:    http.StatusRequestEntityTooLarge,
			Message: "Rule document is too large",
		})
	}

	rules, err := s.decoder.Decode(body)
	if err != nil {
		return s.errorResponse(ctx, err, "")
	}

	cmd, err := commands.NewImportRuleTableCommand(rules)
	if err != nil {
		return s.errorResponse(ctx, err, "")
	}

	if err := s.handlers.ImportRuleTable.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err, "Failed to replace rule table")
	}

	s.logger.InfoContext(ctx.Request().Context(), "Rule table replaced", "rules", len(rules))
	return ctx.JSON(http.StatusOK, servers.RuleTableSummary{
		Rules:    len(rules),
		Services: len(rule.NewTable(rules...).Services()),
	})
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
