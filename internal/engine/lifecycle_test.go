package engine

import (
	"testing"
	"time"

	"cafemaster-backend/internal/models"

	"github.com/stretchr/testify/require"
)

func TestFinalizeSale_CreatesSaleAndKitchenOrderTogether(t *testing.T) {
	s := newTestStore(t, newFakeClock())

	sale, err := s.FinalizeSale([]models.OrderItem{lineFor(t, s, 2, 1)}, 3.50, 0, 3.50, nil)
	require.NoError(t, err)
	require.NotZero(t, sale.ID)
	require.Nil(t, sale.PrepTimeInSeconds)

	kitchen := s.KitchenOrders()
	require.Len(t, kitchen, 1)
	require.Equal(t, sale.ID, kitchen[0].ID)
	require.Equal(t, sale.Timestamp, kitchen[0].Timestamp)
}

func TestSales_MostRecentFirst(t *testing.T) {
	clock := newFakeClock()
	s := newTestStore(t, clock)

	first, err := s.FinalizeSale([]models.OrderItem{lineFor(t, s, 9, 1)}, 6, 0, 6, nil)
	require.NoError(t, err)
	clock.Advance(time.Minute)
	second, err := s.FinalizeSale([]models.OrderItem{lineFor(t, s, 9, 1)}, 6, 0, 6, nil)
	require.NoError(t, err)

	sales := s.Sales()
	require.Equal(t, second.ID, sales[0].ID)
	require.Equal(t, first.ID, sales[1].ID)
}

func TestCompleteOrder_RecordsElapsedPrepTime(t *testing.T) {
	clock := newFakeClock()
	s := newTestStore(t, clock)

	sale, err := s.FinalizeSale([]models.OrderItem{lineFor(t, s, 2, 1)}, 3.50, 0, 3.50, nil)
	require.NoError(t, err)

	clock.Advance(4 * time.Minute)
	s.CompleteOrder(sale.ID)

	got, err := s.Sale(sale.ID)
	require.NoError(t, err)
	require.NotNil(t, got.PrepTimeInSeconds)
	require.InDelta(t, 240, *got.PrepTimeInSeconds, 1e-9)
	require.Empty(t, s.KitchenOrders())
}

func TestCompleteOrder_Idempotent(t *testing.T) {
	clock := newFakeClock()
	s := newTestStore(t, clock)

	sale, err := s.FinalizeSale([]models.OrderItem{lineFor(t, s, 2, 1)}, 3.50, 0, 3.50, nil)
	require.NoError(t, err)

	clock.Advance(2 * time.Minute)
	s.CompleteOrder(sale.ID)
	clock.Advance(10 * time.Minute)
	s.CompleteOrder(sale.ID) // ikinci çağrı etkisiz

	got, err := s.Sale(sale.ID)
	require.NoError(t, err)
	require.InDelta(t, 120, *got.PrepTimeInSeconds, 1e-9)
}

func TestCompleteOrder_UnknownIDIsNoOp(t *testing.T) {
	s := newTestStore(t, newFakeClock())
	s.CompleteOrder(123456) // panik ya da hata yok
	require.Empty(t, s.KitchenOrders())
}

func TestCompleteOrder_ClampsNegativePrepTime(t *testing.T) {
	clock := newFakeClock()
	s := newTestStore(t, clock)

	sale, err := s.FinalizeSale([]models.OrderItem{lineFor(t, s, 2, 1)}, 3.50, 0, 3.50, nil)
	require.NoError(t, err)

	// Saat geriye kaydı
	clock.Advance(-30 * time.Second)
	s.CompleteOrder(sale.ID)

	got, err := s.Sale(sale.ID)
	require.NoError(t, err)
	require.InDelta(t, 0, *got.PrepTimeInSeconds, 1e-9)
}

func TestCompleteOrder_CustomerOrderEntersPickupSet(t *testing.T) {
	clock := newFakeClock()
	s := newTestStore(t, clock)
	customerID := uint(7)

	sale, err := s.FinalizeSale([]models.OrderItem{lineFor(t, s, 2, 1)}, 3.50, 0, 3.50, &customerID)
	require.NoError(t, err)

	require.Empty(t, s.Pending(customerID))
	s.CompleteOrder(sale.ID)
	require.Equal(t, []int64{sale.ID}, s.Pending(customerID))
}

func TestCompleteOrder_StaffOrderSkipsPickupSet(t *testing.T) {
	s := newTestStore(t, newFakeClock())

	sale, err := s.FinalizeSale([]models.OrderItem{lineFor(t, s, 2, 1)}, 3.50, 0, 3.50, nil)
	require.NoError(t, err)
	s.CompleteOrder(sale.ID)

	_, ok := s.PickupOwner(sale.ID)
	require.False(t, ok)
}
