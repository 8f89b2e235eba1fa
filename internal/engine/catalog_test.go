package engine

import (
	"testing"
	"time"

	"cafemaster-backend/internal/models"

	"github.com/stretchr/testify/require"
)

func TestPutRecipe_FlipsFulfillmentKind(t *testing.T) {
	s, err := NewStore(Options{Clock: newFakeClock()})
	require.NoError(t, err)
	_, err = s.PutInventoryItem(models.InventoryItem{ID: 1, Name: "Coffee Beans", Category: models.InventoryBeverages, Stock: 20, Unit: "kg"})
	require.NoError(t, err)
	item, err := s.PutMenuItem(models.MenuItem{Name: "Espresso", Category: models.CategoryBeverage, Price: 2.50, Stock: 100})
	require.NoError(t, err)
	require.Equal(t, models.FulfillmentStocked, item.Fulfillment)

	_, err = s.PutRecipe(models.Recipe{
		MenuItemID:  item.ID,
		Name:        "Espresso",
		Ingredients: []models.RecipeIngredient{{InventoryItemID: 1, Quantity: 0.015}},
	})
	require.NoError(t, err)

	got, err := s.MenuItem(item.ID)
	require.NoError(t, err)
	require.Equal(t, models.FulfillmentPrepared, got.Fulfillment)

	require.NoError(t, s.DeleteRecipe(item.ID))
	got, err = s.MenuItem(item.ID)
	require.NoError(t, err)
	require.Equal(t, models.FulfillmentStocked, got.Fulfillment)
}

func TestPutRecipe_RejectsUnknownIngredient(t *testing.T) {
	s, err := NewStore(Options{Clock: newFakeClock()})
	require.NoError(t, err)
	item, err := s.PutMenuItem(models.MenuItem{Name: "Latte", Category: models.CategoryBeverage, Price: 3.50})
	require.NoError(t, err)

	_, err = s.PutRecipe(models.Recipe{
		MenuItemID:  item.ID,
		Name:        "Latte",
		Ingredients: []models.RecipeIngredient{{InventoryItemID: 42, Quantity: 0.25}},
	})
	require.True(t, IsDataIntegrity(err))
}

func TestPutRecipe_RejectsNegativeQuantity(t *testing.T) {
	s, err := NewStore(Options{Clock: newFakeClock()})
	require.NoError(t, err)
	_, err = s.PutInventoryItem(models.InventoryItem{ID: 1, Name: "Whole Milk", Category: models.InventoryDairy, Stock: 12, Unit: "liters"})
	require.NoError(t, err)
	item, err := s.PutMenuItem(models.MenuItem{Name: "Latte", Category: models.CategoryBeverage, Price: 3.50})
	require.NoError(t, err)

	_, err = s.PutRecipe(models.Recipe{
		MenuItemID:  item.ID,
		Name:        "Latte",
		Ingredients: []models.RecipeIngredient{{InventoryItemID: 1, Quantity: -0.25}},
	})
	require.True(t, IsInvalidQuantity(err))
}

func TestPutRecipe_UnknownMenuItem(t *testing.T) {
	s, err := NewStore(Options{Clock: newFakeClock()})
	require.NoError(t, err)
	_, err = s.PutRecipe(models.Recipe{MenuItemID: 77, Name: "Ghost"})
	require.True(t, IsNotFound(err))
}

func TestRestock_AppendsPurchaseHistoryAndRaisesStock(t *testing.T) {
	clock := newFakeClock()
	s, err := NewStore(Options{Clock: clock})
	require.NoError(t, err)
	_, err = s.PutInventoryItem(models.InventoryItem{ID: 4, Name: "Avocados", Category: models.InventoryProduce, Stock: 8, Unit: "units", Cost: 1.10})
	require.NoError(t, err)

	rec, err := s.Restock(4, 24, 1.05)
	require.NoError(t, err)
	require.Equal(t, clock.Now(), rec.Date)

	item, err := s.InventoryItem(4)
	require.NoError(t, err)
	require.InDelta(t, 32, item.Stock, 1e-9)
	require.Len(t, item.PurchaseHistory, 1)
	require.InDelta(t, 1.05, item.PurchaseHistory[0].CostPerUnit, 1e-9)
}

func TestRestock_Validation(t *testing.T) {
	s, err := NewStore(Options{Clock: newFakeClock()})
	require.NoError(t, err)

	_, err = s.Restock(1, 0, 1)
	require.True(t, IsInvalidQuantity(err))
	_, err = s.Restock(1, 5, 1)
	require.True(t, IsNotFound(err))
}

func TestPutInventoryItem_UpdatePreservesPurchaseHistory(t *testing.T) {
	s, err := NewStore(Options{Clock: newFakeClock()})
	require.NoError(t, err)
	item, err := s.PutInventoryItem(models.InventoryItem{Name: "Sugar", Category: models.InventoryDryGoods, Stock: 50, Unit: "kg"})
	require.NoError(t, err)
	_, err = s.Restock(item.ID, 10, 0.95)
	require.NoError(t, err)

	item.ReorderLevel = 15
	updated, err := s.PutInventoryItem(item)
	require.NoError(t, err)
	require.Len(t, updated.PurchaseHistory, 1)
}

func TestDeleteMenuItem_RemovesRecipeToo(t *testing.T) {
	s := newTestStore(t, newFakeClock())

	require.NoError(t, s.DeleteMenuItem(2))
	_, err := s.RecipeForMenuItem(2)
	require.True(t, IsNotFound(err))
	require.Error(t, s.DeleteMenuItem(2))
}

func TestEstimatePrepTime_BaselineFromRecipe(t *testing.T) {
	s := newTestStore(t, newFakeClock())

	// Latte reçetesi: 3dk hazırlık + 1dk temizlik = 240sn
	require.InDelta(t, 240, s.EstimatePrepTime([]uint{2}), 1e-9)
	// Reçetesiz ürün ve bilinmeyen ürün katkı vermez
	require.InDelta(t, 0, s.EstimatePrepTime([]uint{9, 404}), 1e-9)
	require.InDelta(t, 240, s.EstimatePrepTime([]uint{2, 9}), 1e-9)
}

func TestEstimatePrepTime_HistoryOverridesBaseline(t *testing.T) {
	clock := newFakeClock()
	s := newTestStore(t, clock)

	// Üç tamamlanmış satış birikince geçmiş ortalaması tabanın yerine geçer
	for i := 0; i < 3; i++ {
		sale, err := s.FinalizeSale([]models.OrderItem{lineFor(t, s, 2, 1)}, 3.50, 0, 3.50, nil)
		require.NoError(t, err)
		clock.Advance(100 * time.Second)
		s.CompleteOrder(sale.ID)
	}

	require.InDelta(t, 100, s.EstimatePrepTime([]uint{2}), 1e-9)
}
