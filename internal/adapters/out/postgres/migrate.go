package postgres

import (
	"eligibility/internal/adapters/out/postgres/rulerepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the rule store schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&rulerepo.ServiceRuleDTO{})
}
