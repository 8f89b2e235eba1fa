package engine

import (
	"testing"

	"cafemaster-backend/internal/models"

	"github.com/stretchr/testify/require"
)

func TestRecordWaste_DeductsWithFloorAtZero(t *testing.T) {
	s, err := NewStore(Options{Clock: newFakeClock()})
	require.NoError(t, err)
	_, err = s.PutInventoryItem(models.InventoryItem{ID: 7, Name: "Chocolate Syrup", Category: models.InventoryDryGoods, Stock: 4, Unit: "liters"})
	require.NoError(t, err)

	rec, err := s.RecordWaste(7, 50, "depo taşkını")
	require.NoError(t, err)

	// Stok sıfıra sabitlenir ama kayıt istenen miktarı taşır
	require.InDelta(t, 0, inventoryStock(t, s, 7), 1e-9)
	require.InDelta(t, 50, rec.Quantity, 1e-9)

	records := s.WasteRecords()
	require.Len(t, records, 1)
	require.Equal(t, rec.ID, records[0].ID)
	require.NotEmpty(t, records[0].ID)
}

func TestRecordWaste_RejectsNonPositiveQuantity(t *testing.T) {
	s, err := NewStore(Options{Clock: newFakeClock()})
	require.NoError(t, err)

	_, err = s.RecordWaste(1, 0, "yanlış giriş")
	require.True(t, IsInvalidQuantity(err))
	_, err = s.RecordWaste(1, -2, "yanlış giriş")
	require.True(t, IsInvalidQuantity(err))
	require.Empty(t, s.WasteRecords())
}

func TestRecordWaste_UnknownItemStillAppendsRecord(t *testing.T) {
	s, err := NewStore(Options{Clock: newFakeClock()})
	require.NoError(t, err)

	rec, err := s.RecordWaste(999, 3, "sayım farkı")
	require.NoError(t, err)
	require.Equal(t, uint(999), rec.InventoryItemID)
	require.Len(t, s.WasteRecords(), 1)
}

func TestRecordWaste_MostRecentFirst(t *testing.T) {
	clock := newFakeClock()
	s, err := NewStore(Options{Clock: clock})
	require.NoError(t, err)
	_, err = s.PutInventoryItem(models.InventoryItem{ID: 1, Name: "Sugar", Category: models.InventoryDryGoods, Stock: 50, Unit: "kg"})
	require.NoError(t, err)

	first, err := s.RecordWaste(1, 1, "dökülme")
	require.NoError(t, err)
	second, err := s.RecordWaste(1, 2, "dökülme")
	require.NoError(t, err)

	records := s.WasteRecords()
	require.Equal(t, second.ID, records[0].ID)
	require.Equal(t, first.ID, records[1].ID)
}
