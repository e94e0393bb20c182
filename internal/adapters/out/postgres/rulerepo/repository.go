package rulerepo

import (
	"context"

	"eligibility/internal/core/domain/model/rule"
	"eligibility/internal/pkg/errs"

	"gorm.io/gorm"
)

const insertBatchSize = 100

// GormServiceRuleRepository implements ports.ServiceRuleRepository using GORM.
type GormServiceRuleRepository struct {
	db *gorm.DB
}

func NewGormServiceRuleRepository(db *gorm.DB) *GormServiceRuleRepository {
	return &GormServiceRuleRepository{db: db}
}

// Add appends a rule after every stored one.
func (r *GormServiceRuleRepository) Add(ctx context.Context, sr rule.ServiceRule) error {
	if err := sr.Validate(); err != nil {
		return err
	}

	dto := fromDomain(sr)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ReplaceAll deletes every row and inserts rules in slice order. Positions keep growing across
// replacements; only their order matters.
// Run it inside a transaction; on its own a failed insert leaves the table empty.
func (r *GormServiceRuleRepository) ReplaceAll(ctx context.Context, rules []rule.ServiceRule) error {
	dtos := make([]ServiceRuleDTO, 0, len(rules))
	for _, sr := range rules {
		if err := sr.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(sr))
	}

	if err := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&ServiceRuleDTO{}).Error; err != nil {
		return err
	}

	if len(dtos) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(&dtos, insertBatchSize).Error
}

func (r *GormServiceRuleRepository) DeleteByServiceID(ctx context.Context, serviceID string) error {
	result := r.db.WithContext(ctx).Where("service_id = ?", serviceID).Delete(&ServiceRuleDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("serviceId", serviceID)
	}
	return nil
}

func (r *GormServiceRuleRepository) GetAll(ctx context.Context) ([]rule.ServiceRule, error) {
	var dtos []ServiceRuleDTO
	if err := r.db.WithContext(ctx).Order("position").Find(&dtos).Error; err != nil {
		return nil, err
	}

	rules := make([]rule.ServiceRule, 0, len(dtos))
	for _, dto := range dtos {
		sr, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		rules = append(rules, sr)
	}

	return rules, nil
}
