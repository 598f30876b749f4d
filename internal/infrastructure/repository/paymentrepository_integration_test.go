package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/orris-inc/paygate/internal/domain/payment"
	vo "github.com/orris-inc/paygate/internal/domain/payment/valueobjects"
	"github.com/orris-inc/paygate/internal/infrastructure/persistence/migrations"
	"github.com/orris-inc/paygate/internal/infrastructure/persistence/models"
	apperrors "github.com/orris-inc/paygate/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, migrations.MigrateOrderTables(db))
	require.NoError(t, migrations.MigratePaymentTables(db))

	return db
}

func createTestRequest(t *testing.T, orderNo string) *payment.PaymentRequest {
	t.Helper()
	req, err := payment.NewPaymentRequest(orderNo, vo.NewMoney(150000, "INR"),
		"AVXX00XX00", "https://test.ccavenue.com/transaction/transaction.do")
	require.NoError(t, err)
	return req
}

func TestPaymentRequestRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPaymentRequestRepository(db)
	ctx := context.Background()

	t.Run("create assigns an id", func(t *testing.T) {
		req := createTestRequest(t, "ORD-001")

		err := repo.Create(ctx, req)
		require.NoError(t, err)
		assert.NotZero(t, req.ID())
	})

	t.Run("get latest returns the most recent request for an order", func(t *testing.T) {
		first := createTestRequest(t, "ORD-MULTI")
		require.NoError(t, repo.Create(ctx, first))

		second := createTestRequest(t, "ORD-MULTI")
		require.NoError(t, repo.Create(ctx, second))

		found, err := repo.GetLatestByOrderNo(ctx, "ORD-MULTI")
		require.NoError(t, err)
		assert.Equal(t, second.ID(), found.ID())
	})

	t.Run("get latest for unknown order is not found", func(t *testing.T) {
		_, err := repo.GetLatestByOrderNo(ctx, "ORD-MISSING")
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("update persists a settlement", func(t *testing.T) {
		req := createTestRequest(t, "ORD-PAID")
		require.NoError(t, repo.Create(ctx, req))

		require.NoError(t, req.MarkAsPaid("TRK-9"))
		require.NoError(t, repo.Update(ctx, req))

		found, err := repo.GetLatestByOrderNo(ctx, "ORD-PAID")
		require.NoError(t, err)
		assert.True(t, found.Status().IsPaid())
		require.NotNil(t, found.TrackingID())
		assert.Equal(t, "TRK-9", *found.TrackingID())
		assert.NotNil(t, found.PaidAt())
		assert.Equal(t, 1, found.Version())
	})

	t.Run("update persists a failure reason", func(t *testing.T) {
		req := createTestRequest(t, "ORD-FAILED")
		require.NoError(t, repo.Create(ctx, req))

		require.NoError(t, req.MarkAsFailed("Insufficient Funds"))
		require.NoError(t, repo.Update(ctx, req))

		found, err := repo.GetLatestByOrderNo(ctx, "ORD-FAILED")
		require.NoError(t, err)
		require.NotNil(t, found.FailureReason())
		assert.Equal(t, "Insufficient Funds", *found.FailureReason())
	})
}

func TestPaymentOutcomeRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPaymentOutcomeRepository(db)
	ctx := context.Background()

	newOutcome := func(t *testing.T, referenceNo string) *payment.PaymentOutcome {
		t.Helper()
		outcome, err := payment.NewPaymentOutcome(referenceNo, "ORD-001", vo.NewMoney(150000, "INR"))
		require.NoError(t, err)
		return outcome
	}

	t.Run("create and exists", func(t *testing.T) {
		exists, err := repo.ExistsByReference(ctx, "TRK-1")
		require.NoError(t, err)
		assert.False(t, exists)

		require.NoError(t, repo.Create(ctx, newOutcome(t, "TRK-1")))

		exists, err = repo.ExistsByReference(ctx, "TRK-1")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("duplicate reference fails with a duplicate-key error", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, newOutcome(t, "TRK-DUP")))

		err := repo.Create(ctx, newOutcome(t, "TRK-DUP"))
		require.Error(t, err)
		assert.True(t, apperrors.IsDuplicateError(err))
	})

	t.Run("create persists posting date and amount", func(t *testing.T) {
		outcome := newOutcome(t, "TRK-FIELDS")
		require.NoError(t, repo.Create(ctx, outcome))

		var model models.PaymentOutcomeModel
		require.NoError(t, db.Where("reference_no = ?", "TRK-FIELDS").First(&model).Error)
		assert.Equal(t, "ORD-001", model.OrderNo)
		assert.EqualValues(t, 150000, model.Amount)
		assert.Equal(t, "INR", model.Currency)
		assert.False(t, model.PostingDate.IsZero())
	})
}

func TestOrderRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.OrderModel{
		OrderNo:         "ORD-001",
		CustomerName:    "Asha Rao",
		ContactEmail:    "asha@example.com",
		GrandTotal:      150000,
		Currency:        "INR",
		Status:          "submitted",
	}).Error)

	t.Run("get by order number", func(t *testing.T) {
		ord, err := repo.GetByOrderNo(ctx, "ORD-001")
		require.NoError(t, err)
		assert.Equal(t, "Asha Rao", ord.CustomerName())
		assert.EqualValues(t, 150000, ord.GrandTotalCents())
		assert.True(t, ord.Status().IsSubmittable())
	})

	t.Run("unknown order is not found", func(t *testing.T) {
		_, err := repo.GetByOrderNo(ctx, "ORD-MISSING")
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestAddressRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAddressRepository(db)
	ctx := context.Background()

	model := models.AddressModel{
		Line1:   "1 MG Road",
		City:    "Bengaluru",
		State:   "Karnataka",
		Pincode: "560001",
		Country: "India",
	}
	require.NoError(t, db.Create(&model).Error)

	t.Run("get by id", func(t *testing.T) {
		addr, err := repo.GetByID(ctx, model.ID)
		require.NoError(t, err)
		assert.Equal(t, "1 MG Road", addr.Line1())
		assert.Equal(t, "Bengaluru", addr.City())
	})

	t.Run("unknown address is not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 9999)
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}
