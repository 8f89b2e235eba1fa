package engine

import (
	"testing"

	"cafemaster-backend/internal/models"

	"github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/require"
)

func TestFinalizeSale_RecipeBackedDeductsIngredients(t *testing.T) {
	s := newTestStore(t, newFakeClock())

	// 2x Latte: birim başına 0.02kg çekirdek, 0.25L süt
	_, err := s.FinalizeSale([]models.OrderItem{lineFor(t, s, 2, 2)}, 7.00, 0, 7.00, nil)
	require.NoError(t, err)

	require.InDelta(t, 19.96, inventoryStock(t, s, 1), 1e-9)
	require.InDelta(t, 11.5, inventoryStock(t, s, 2), 1e-9)
}

func TestFinalizeSale_DirectStockDeductsMenuCounter(t *testing.T) {
	s := newTestStore(t, newFakeClock())

	_, err := s.FinalizeSale([]models.OrderItem{lineFor(t, s, 9, 1)}, 6.00, 0, 6.00, nil)
	require.NoError(t, err)

	require.Equal(t, 14, menuStock(t, s, 9))
	// Envanter dokunulmamış kalır
	require.InDelta(t, 20, inventoryStock(t, s, 1), 1e-9)
	require.InDelta(t, 12, inventoryStock(t, s, 2), 1e-9)
}

func TestFinalizeSale_OrderIndependent(t *testing.T) {
	// Aynı satırların iki permütasyonu aynı nihai stok seviyelerini vermeli
	run := func(lines []models.OrderItem) (float64, float64, int) {
		s := newTestStore(t, newFakeClock())
		built := make([]models.OrderItem, len(lines))
		for i, l := range lines {
			built[i] = lineFor(t, s, l.MenuItemID, l.Quantity)
		}
		_, err := s.FinalizeSale(built, 0, 0, 0, nil)
		require.NoError(t, err)
		return inventoryStock(t, s, 1), inventoryStock(t, s, 2), menuStock(t, s, 9)
	}

	forward := []models.OrderItem{
		{MenuItemID: 2, Quantity: 3},
		{MenuItemID: 9, Quantity: 2},
		{MenuItemID: 2, Quantity: 1},
	}
	backward := []models.OrderItem{
		{MenuItemID: 2, Quantity: 1},
		{MenuItemID: 9, Quantity: 2},
		{MenuItemID: 2, Quantity: 3},
	}

	b1, m1, c1 := run(forward)
	b2, m2, c2 := run(backward)
	require.Equal(t, b1, b2)
	require.Equal(t, m1, m2)
	require.Equal(t, c1, c2)
}

func TestFinalizeSale_SharedIngredientsSummedBeforeWrite(t *testing.T) {
	s := newTestStore(t, newFakeClock())

	// İkinci reçeteli ürün de süt tüketiyor
	_, err := s.PutMenuItem(models.MenuItem{ID: 3, Name: "Cappuccino", Category: models.CategoryBeverage, Price: 3.50})
	require.NoError(t, err)
	_, err = s.PutRecipe(models.Recipe{
		MenuItemID: 3,
		Name:       "Cappuccino",
		Ingredients: []models.RecipeIngredient{
			{InventoryItemID: 1, Quantity: 0.02},
			{InventoryItemID: 2, Quantity: 0.15},
		},
	})
	require.NoError(t, err)

	order := []models.OrderItem{
		lineFor(t, s, 2, 2), // 0.5L süt
		lineFor(t, s, 3, 2), // 0.3L süt
	}
	_, err = s.FinalizeSale(order, 0, 0, 0, nil)
	require.NoError(t, err)

	require.InDelta(t, 12-0.8, inventoryStock(t, s, 2), 1e-9)
	require.InDelta(t, 20-0.08, inventoryStock(t, s, 1), 1e-9)
}

func TestFinalizeSale_FloorsAtZeroAndReportsShortage(t *testing.T) {
	bus := EventBus.New()
	clock := newFakeClock()
	s, err := NewStore(Options{Clock: clock, Bus: bus})
	require.NoError(t, err)

	_, err = s.PutInventoryItem(models.InventoryItem{ID: 1, Name: "Avocados", Category: models.InventoryProduce, Stock: 3, Unit: "units"})
	require.NoError(t, err)
	_, err = s.PutMenuItem(models.MenuItem{ID: 5, Name: "Avocado Toast", Category: models.CategoryFood, Price: 8.50})
	require.NoError(t, err)
	_, err = s.PutRecipe(models.Recipe{
		MenuItemID:  5,
		Name:        "Avocado Toast",
		Ingredients: []models.RecipeIngredient{{InventoryItemID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	var shortages []StockShortageEvent
	require.NoError(t, bus.Subscribe(TopicStockShortage, func(ev StockShortageEvent) {
		shortages = append(shortages, ev)
	}))

	_, err = s.FinalizeSale([]models.OrderItem{lineFor(t, s, 5, 5)}, 0, 0, 0, nil)
	require.NoError(t, err)

	require.InDelta(t, 0, inventoryStock(t, s, 1), 1e-9)
	require.Len(t, shortages, 1)
	require.Equal(t, "inventory", shortages[0].Kind)
	require.InDelta(t, 5, shortages[0].Requested, 1e-9)
	require.InDelta(t, 3, shortages[0].Available, 1e-9)
}

func TestFinalizeSale_UnknownMenuItemSkippedRestApplies(t *testing.T) {
	s := newTestStore(t, newFakeClock())

	order := []models.OrderItem{
		{MenuItemID: 999, Name: "Ghost", Quantity: 4}, // katalogda yok
		lineFor(t, s, 9, 1),
	}
	sale, err := s.FinalizeSale(order, 0, 0, 0, nil)
	require.NoError(t, err)

	// Satış yine oluşur, kalan satırlar uygulanır
	require.Len(t, sale.Items, 2)
	require.Equal(t, 14, menuStock(t, s, 9))
}

func TestFinalizeSale_RejectsNonPositiveLineQuantity(t *testing.T) {
	s := newTestStore(t, newFakeClock())

	_, err := s.FinalizeSale([]models.OrderItem{lineFor(t, s, 9, 0)}, 0, 0, 0, nil)
	require.True(t, IsInvalidQuantity(err))

	_, err = s.FinalizeSale(nil, 0, 0, 0, nil)
	require.True(t, IsInvalidQuantity(err))

	// Reddedilen satışta stok değişmez
	require.Equal(t, 15, menuStock(t, s, 9))
}
