package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/paygate/internal/domain/payment"
	"github.com/orris-inc/paygate/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/paygate/internal/infrastructure/persistence/models"
	"github.com/orris-inc/paygate/internal/shared/db"
)

type PaymentOutcomeRepository struct {
	db *gorm.DB
}

func NewPaymentOutcomeRepository(db *gorm.DB) *PaymentOutcomeRepository {
	return &PaymentOutcomeRepository{db: db}
}

// Create inserts the outcome row. The unique index on reference_no makes a
// concurrent duplicate insert fail with a duplicate-key error, which callers
// detect with apperrors.IsDuplicateError.
func (r *PaymentOutcomeRepository) Create(ctx context.Context, o *payment.PaymentOutcome) error {
	model := mappers.PaymentOutcomeToModel(o)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create payment outcome: %w", err)
	}

	o.SetID(model.ID)

	return nil
}

func (r *PaymentOutcomeRepository) ExistsByReference(ctx context.Context, referenceNo string) (bool, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.PaymentOutcomeModel{}).
		Where("reference_no = ?", referenceNo).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check payment outcome: %w", err)
	}

	return count > 0, nil
}
