package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpadapter "eligibility/internal/adapters/in/http"
	"eligibility/internal/adapters/out/memory"
	"eligibility/internal/adapters/out/postgres"
	"eligibility/internal/adapters/out/ruleconfig"
	"eligibility/internal/core/application/usecases/commands"
	"eligibility/internal/core/application/usecases/queries"
	"eligibility/internal/core/domain/model/rule"
	"eligibility/internal/core/domain/services"
	"eligibility/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	ruleTables *memory.RuleTableCache
	decoder    *ruleconfig.Decoder
	aggregator services.EligibilityAggregator
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)

	ruleTables, err := memory.NewRuleTableCache(uowFactory.Create().ServiceRuleRepository(), logger)
	if err != nil {
		return nil, err
	}

	decoder, err := ruleconfig.NewDecoder()
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: uowFactory,
		ruleTables: ruleTables,
		decoder:    decoder,
		aggregator: services.NewEligibilityAggregator(services.NewConstraintEvaluator()),
		logger:     logger,
	}, nil
}

// SeedRuleTable prepares the rule table before traffic is served. A configured RULES_FILE
// replaces the stored table; otherwise an empty store gets the built-in carrier table.
// Either way the cache ends up loaded.
func (c *CompositionRoot) SeedRuleTable(ctx context.Context) error {
	var (
		rules  []rule.ServiceRule
		source string
		err    error
	)

	switch {
	case c.configs.RulesFile != "":
		source = c.configs.RulesFile
		rules, err = c.decoder.DecodeFile(c.configs.RulesFile)
	default:
		stored, getErr := c.uowFactory.Create().ServiceRuleRepository().GetAll(ctx)
		if getErr != nil {
			return fmt.Errorf("failed to read stored rules: %w", getErr)
		}
		if len(stored) > 0 {
			return c.ruleTables.Refresh(ctx)
		}
		source = "built-in table"
		rules, err = ruleconfig.DefaultTable()
	}
	if err != nil {
		return fmt.Errorf("failed to decode rules from %s: %w", source, err)
	}

	cmd, err := commands.NewImportRuleTableCommand(rules)
	if err != nil {
		return err
	}
	if err := c.CreateImportRuleTableCommandHandler().Handle(ctx, cmd); err != nil {
		return fmt.Errorf("failed to import rules from %s: %w", source, err)
	}

	c.logger.InfoContext(ctx, "Rule table seeded", "source", source, "rules", len(rules))
	return nil
}

func (c *CompositionRoot) ruleUoWFactory() commands.RuleUoWFactory {
	return FuncRuleUoWFactory(func() commands.RuleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateImportRuleTableCommandHandler() commands.ImportRuleTableCommandHandler {
	return commands.NewImportRuleTableCommandHandler(c.ruleUoWFactory(), c.ruleTables)
}

func (c *CompositionRoot) CreateAddServiceRuleCommandHandler() commands.AddServiceRuleCommandHandler {
	return commands.NewAddServiceRuleCommandHandler(c.ruleUoWFactory(), c.ruleTables)
}

func (c *CompositionRoot) CreateRemoveServiceCommandHandler() commands.RemoveServiceCommandHandler {
	return commands.NewRemoveServiceCommandHandler(c.ruleUoWFactory(), c.ruleTables)
}

func (c *CompositionRoot) CreateCheckEligibilityQueryHandler() queries.CheckEligibilityQueryHandler {
	return queries.NewCheckEligibilityQueryHandler(c.ruleTables, c.aggregator)
}

func (c *CompositionRoot) CreateCheckEligibilityBatchQueryHandler() queries.CheckEligibilityBatchQueryHandler {
	return queries.NewCheckEligibilityBatchQueryHandler(c.ruleTables, c.aggregator)
}

func (c *CompositionRoot) CreateGetServiceRulesQueryHandler() queries.GetServiceRulesQueryHandler {
	return queries.NewGetServiceRulesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.ruleTables, c.configs.RulesRefreshSchedule, c.logger)
}

func (c *CompositionRoot) CreateMetrics() *httpadapter.Metrics {
	return httpadapter.NewMetrics(c.ruleTables)
}

func (c *CompositionRoot) CreateServer(metrics *httpadapter.Metrics) *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		AddServiceRule:        c.CreateAddServiceRuleCommandHandler(),
		RemoveService:         c.CreateRemoveServiceCommandHandler(),
		ImportRuleTable:       c.CreateImportRuleTableCommandHandler(),
		CheckEligibility:      c.CreateCheckEligibilityQueryHandler(),
		CheckEligibilityBatch: c.CreateCheckEligibilityBatchQueryHandler(),
		GetServiceRules:       c.CreateGetServiceRulesQueryHandler(),
	}, c.decoder, metrics, c.logger)
}

type FuncRuleUoWFactory func() commands.RuleUoW

func (f FuncRuleUoWFactory) Create() commands.RuleUoW {
	return f()
}
