package engine

import (
	"testing"

	"cafemaster-backend/internal/models"

	"github.com/stretchr/testify/require"
)

func TestPickup_PendingUntilAcknowledged(t *testing.T) {
	s := newTestStore(t, newFakeClock())
	customerID := uint(3)

	sale, err := s.FinalizeSale([]models.OrderItem{lineFor(t, s, 2, 1)}, 3.50, 0, 3.50, &customerID)
	require.NoError(t, err)
	s.CompleteOrder(sale.ID)

	require.Equal(t, []int64{sale.ID}, s.Pending(customerID))

	require.True(t, s.Acknowledge(sale.ID))
	require.Empty(t, s.Pending(customerID))
}

func TestPickup_NoResurrectionAfterAcknowledge(t *testing.T) {
	s := newTestStore(t, newFakeClock())
	customerID := uint(3)

	first, err := s.FinalizeSale([]models.OrderItem{lineFor(t, s, 2, 1)}, 3.50, 0, 3.50, &customerID)
	require.NoError(t, err)
	s.CompleteOrder(first.ID)
	require.True(t, s.Acknowledge(first.ID))

	// Başka siparişlerin tamamlanması onaylanmış kimliği geri getirmez
	second, err := s.FinalizeSale([]models.OrderItem{lineFor(t, s, 2, 1)}, 3.50, 0, 3.50, &customerID)
	require.NoError(t, err)
	s.CompleteOrder(second.ID)

	require.Equal(t, []int64{second.ID}, s.Pending(customerID))
}

func TestPickup_AcknowledgeUnknownReturnsFalse(t *testing.T) {
	s := newTestStore(t, newFakeClock())
	require.False(t, s.Acknowledge(999))
}

func TestPickup_PendingIsPerCustomer(t *testing.T) {
	s := newTestStore(t, newFakeClock())
	alice, bob := uint(1), uint(2)

	sa, err := s.FinalizeSale([]models.OrderItem{lineFor(t, s, 2, 1)}, 3.50, 0, 3.50, &alice)
	require.NoError(t, err)
	sb, err := s.FinalizeSale([]models.OrderItem{lineFor(t, s, 2, 1)}, 3.50, 0, 3.50, &bob)
	require.NoError(t, err)
	s.CompleteOrder(sa.ID)
	s.CompleteOrder(sb.ID)

	require.Equal(t, []int64{sa.ID}, s.Pending(alice))
	require.Equal(t, []int64{sb.ID}, s.Pending(bob))

	owner, ok := s.PickupOwner(sb.ID)
	require.True(t, ok)
	require.Equal(t, bob, owner)
}
