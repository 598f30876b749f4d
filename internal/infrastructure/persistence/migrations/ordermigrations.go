package migrations

import (
	"gorm.io/gorm"

	"github.com/orris-inc/paygate/internal/infrastructure/persistence/models"
)

func MigrateOrderTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.OrderModel{},
		&models.AddressModel{},
	)
}
