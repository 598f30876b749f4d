package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/paygate/internal/domain/payment"
	"github.com/orris-inc/paygate/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/paygate/internal/infrastructure/persistence/models"
	"github.com/orris-inc/paygate/internal/shared/db"
	apperrors "github.com/orris-inc/paygate/internal/shared/errors"
)

type PaymentRequestRepository struct {
	db *gorm.DB
}

func NewPaymentRequestRepository(db *gorm.DB) *PaymentRequestRepository {
	return &PaymentRequestRepository{db: db}
}

func (r *PaymentRequestRepository) Create(ctx context.Context, p *payment.PaymentRequest) error {
	model := mappers.PaymentRequestToModel(p)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create payment request: %w", err)
	}

	// Write back the auto-generated ID to the domain object
	p.SetID(model.ID)

	return nil
}

func (r *PaymentRequestRepository) Update(ctx context.Context, p *payment.PaymentRequest) error {
	model := mappers.PaymentRequestToModel(p)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.PaymentRequestModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"status":         model.Status,
			"tracking_id":    model.TrackingID,
			"failure_reason": model.FailureReason,
			"paid_at":        model.PaidAt,
			"version":        model.Version,
			"updated_at":     model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update payment request: %w", result.Error)
	}

	return nil
}

func (r *PaymentRequestRepository) GetLatestByOrderNo(ctx context.Context, orderNo string) (*payment.PaymentRequest, error) {
	var model models.PaymentRequestModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("order_no = ?", orderNo).
		Order("created_at DESC, id DESC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("payment request not found")
		}
		return nil, fmt.Errorf("failed to get payment request by order_no: %w", err)
	}

	return mappers.PaymentRequestToDomain(&model)
}
