package engine

import (
	"testing"

	"cafemaster-backend/internal/models"

	"github.com/stretchr/testify/require"
)

func newLoyaltyStore(t *testing.T, points int) *Store {
	t.Helper()
	s, err := NewStore(Options{Clock: newFakeClock()})
	require.NoError(t, err)
	_, err = s.PutCustomer(models.LoyaltyCustomer{ID: 1, Name: "Alice Johnson", Email: "alice.j@example.com", Points: points})
	require.NoError(t, err)
	return s
}

func TestApplyCustomerSale_EarnAndRedeemInOneUpdate(t *testing.T) {
	s := newLoyaltyStore(t, 100)

	earned, err := s.ApplyCustomerSale(1, 10.00, 20)
	require.NoError(t, err)
	require.Equal(t, 100, earned)

	c, err := s.Customer(1)
	require.NoError(t, err)
	// 100 - 20 + floor(10.00*10) = 180
	require.Equal(t, 180, c.Points)
}

func TestApplyCustomerSale_TruncatesTowardZero(t *testing.T) {
	s := newLoyaltyStore(t, 0)

	earned, err := s.ApplyCustomerSale(1, 9.99, 0)
	require.NoError(t, err)
	require.Equal(t, 99, earned)
}

func TestApplyCustomerSale_UnknownCustomer(t *testing.T) {
	s := newLoyaltyStore(t, 0)

	_, err := s.ApplyCustomerSale(42, 5.00, 0)
	require.True(t, IsNotFound(err))
}

func TestApplyCustomerSale_LedgerDoesNotRevalidateRedemption(t *testing.T) {
	// Harcama limiti checkout tarafında; defter negatif bakiyeye izin verir
	s := newLoyaltyStore(t, 10)

	_, err := s.ApplyCustomerSale(1, 0.50, 50)
	require.NoError(t, err)

	c, err := s.Customer(1)
	require.NoError(t, err)
	require.Equal(t, 10-50+5, c.Points)
}
