package mappers

import (
	"fmt"

	"github.com/orris-inc/paygate/internal/domain/payment"
	vo "github.com/orris-inc/paygate/internal/domain/payment/valueobjects"
	"github.com/orris-inc/paygate/internal/infrastructure/persistence/models"
)

func PaymentRequestToModel(p *payment.PaymentRequest) *models.PaymentRequestModel {
	return &models.PaymentRequestModel{
		ID:            p.ID(),
		OrderNo:       p.OrderNo(),
		Amount:        p.Amount().AmountInCents(),
		Currency:      p.Amount().Currency(),
		AccessCode:    p.AccessCode(),
		GatewayURL:    p.GatewayURL(),
		Status:        p.Status().String(),
		TrackingID:    p.TrackingID(),
		FailureReason: p.FailureReason(),
		PaidAt:        p.PaidAt(),
		Version:       p.Version(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}

func PaymentRequestToDomain(model *models.PaymentRequestModel) (*payment.PaymentRequest, error) {
	status := vo.RequestStatus(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid payment request status: %s", model.Status)
	}

	return payment.ReconstructPaymentRequest(payment.PaymentRequestReconstructParams{
		ID:            model.ID,
		OrderNo:       model.OrderNo,
		Amount:        vo.NewMoney(model.Amount, model.Currency),
		AccessCode:    model.AccessCode,
		GatewayURL:    model.GatewayURL,
		Status:        status,
		TrackingID:    model.TrackingID,
		FailureReason: model.FailureReason,
		PaidAt:        model.PaidAt,
		Version:       model.Version,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}), nil
}

func PaymentOutcomeToModel(o *payment.PaymentOutcome) *models.PaymentOutcomeModel {
	return &models.PaymentOutcomeModel{
		ID:          o.ID(),
		ReferenceNo: o.ReferenceNo(),
		OrderNo:     o.OrderNo(),
		Amount:      o.Amount().AmountInCents(),
		Currency:    o.Amount().Currency(),
		PostingDate: o.PostingDate(),
		CreatedAt:   o.CreatedAt(),
	}
}

func PaymentOutcomeToDomain(model *models.PaymentOutcomeModel) *payment.PaymentOutcome {
	return payment.ReconstructPaymentOutcome(
		model.ID,
		model.ReferenceNo,
		model.OrderNo,
		vo.NewMoney(model.Amount, model.Currency),
		model.PostingDate,
		model.CreatedAt,
	)
}
