package migrations

import (
	"gorm.io/gorm"

	"github.com/orris-inc/paygate/internal/infrastructure/persistence/models"
)

func MigratePaymentTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.PaymentRequestModel{},
		&models.PaymentOutcomeModel{},
	)
}
