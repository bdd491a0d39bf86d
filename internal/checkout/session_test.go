package checkout

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGet(t *testing.T) {
	store := NewStore()
	unit := decimal.NewFromInt(500000)

	created := store.Create(7, 41, unit)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, int64(7), created.ProductID)
	assert.Equal(t, 41, created.Size)
	assert.True(t, created.Total.Equal(unit))
	assert.Empty(t, created.Coupon)

	got, err := store.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestGetUnknownSession(t *testing.T) {
	_, err := NewStore().Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestApplyCouponOncePerSession(t *testing.T) {
	store := NewStore()
	session := store.Create(7, 41, decimal.NewFromInt(500000))

	updated, err := store.ApplyCoupon(session.ID, "SALE10", 10, decimal.NewFromInt(450000))
	require.NoError(t, err)
	assert.Equal(t, "SALE10", updated.Coupon)
	assert.Equal(t, 10, updated.Discount)
	assert.True(t, updated.Total.Equal(decimal.NewFromInt(450000)))

	// A second code must not stack, even a valid one.
	_, err = store.ApplyCoupon(session.ID, "SALE20", 20, decimal.NewFromInt(400000))
	assert.ErrorIs(t, err, ErrCouponApplied)

	got, err := store.Get(session.ID)
	require.NoError(t, err)
	assert.Equal(t, "SALE10", got.Coupon)
}

func TestCloseRetiresSession(t *testing.T) {
	store := NewStore()
	session := store.Create(7, 41, decimal.NewFromInt(100))

	store.Close(session.ID)
	_, err := store.Get(session.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	store.Close("already-gone")
}
