package mappers

import (
	"github.com/orris-inc/paygate/internal/domain/order"
	"github.com/orris-inc/paygate/internal/infrastructure/persistence/models"
)

func OrderToDomain(model *models.OrderModel) *order.Order {
	return order.ReconstructOrder(order.OrderReconstructParams{
		ID:                model.ID,
		OrderNo:           model.OrderNo,
		CustomerName:      model.CustomerName,
		ContactEmail:      model.ContactEmail,
		ContactMobile:     model.ContactMobile,
		GrandTotalCents:   model.GrandTotal,
		Currency:          model.Currency,
		Status:            order.Status(model.Status),
		BillingAddressID:  model.BillingAddressID,
		ShippingAddressID: model.ShippingAddressID,
		CreatedAt:         model.CreatedAt,
	})
}

func AddressToDomain(model *models.AddressModel) *order.Address {
	return order.ReconstructAddress(
		model.ID,
		model.Line1,
		model.City,
		model.State,
		model.Pincode,
		model.Country,
	)
}
