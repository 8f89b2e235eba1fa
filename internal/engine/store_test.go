package engine

import (
	"testing"
	"time"

	"cafemaster-backend/internal/models"

	"github.com/stretchr/testify/require"
)

// fakeClock: testlerde gerçek beklemeye gerek bırakmayan sabit saat.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
}

// newTestStore orijinal örnek verinin çekirdeğiyle dolu bir store kurar:
// çekirdek kahve (20kg), süt (12L), reçeteli Latte, reçetesiz Cheesecake.
func newTestStore(t *testing.T, clock Clock) *Store {
	t.Helper()
	s, err := NewStore(Options{Clock: clock})
	require.NoError(t, err)

	_, err = s.PutInventoryItem(models.InventoryItem{
		ID: 1, Name: "Coffee Beans", Category: models.InventoryBeverages,
		Stock: 20, Unit: "kg", ReorderLevel: 10, Cost: 15.50,
	})
	require.NoError(t, err)
	_, err = s.PutInventoryItem(models.InventoryItem{
		ID: 2, Name: "Whole Milk", Category: models.InventoryDairy,
		Stock: 12, Unit: "liters", ReorderLevel: 5, Cost: 1.20,
	})
	require.NoError(t, err)

	_, err = s.PutMenuItem(models.MenuItem{
		ID: 2, Name: "Latte", Category: models.CategoryBeverage, Price: 3.50,
	})
	require.NoError(t, err)
	_, err = s.PutMenuItem(models.MenuItem{
		ID: 9, Name: "Cheesecake", Category: models.CategoryDessert, Price: 6.00, Stock: 15,
	})
	require.NoError(t, err)

	_, err = s.PutRecipe(models.Recipe{
		MenuItemID: 2,
		Name:       "Latte",
		PrepTime:   3,
		CleanTime:  1,
		Ingredients: []models.RecipeIngredient{
			{InventoryItemID: 1, Quantity: 0.02},
			{InventoryItemID: 2, Quantity: 0.25},
		},
	})
	require.NoError(t, err)

	return s
}

func lineFor(t *testing.T, s *Store, menuItemID uint, qty int) models.OrderItem {
	t.Helper()
	item, err := s.MenuItem(menuItemID)
	require.NoError(t, err)
	return models.OrderItem{
		MenuItemID: item.ID,
		Name:       item.Name,
		Category:   item.Category,
		UnitPrice:  item.Price,
		Quantity:   qty,
	}
}

func inventoryStock(t *testing.T, s *Store, id uint) float64 {
	t.Helper()
	item, err := s.InventoryItem(id)
	require.NoError(t, err)
	return item.Stock
}

func menuStock(t *testing.T, s *Store, id uint) int {
	t.Helper()
	item, err := s.MenuItem(id)
	require.NoError(t, err)
	return item.Stock
}

func TestLoadState_RebuildsKitchenFromOpenSales(t *testing.T) {
	s, err := NewStore(Options{Clock: newFakeClock()})
	require.NoError(t, err)

	done := 42.0
	sales := []models.Sale{
		{ID: 100, Timestamp: time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC), PrepTimeInSeconds: &done},
		{ID: 101, Timestamp: time.Date(2025, 5, 1, 11, 0, 0, 0, time.UTC)},
	}
	s.LoadState(nil, nil, nil, sales, nil, nil)

	kitchen := s.KitchenOrders()
	require.Len(t, kitchen, 1)
	require.Equal(t, int64(101), kitchen[0].ID)

	// Satışlar en yeni başta
	got := s.Sales()
	require.Equal(t, int64(101), got[0].ID)
	require.Equal(t, int64(100), got[1].ID)
}

func TestLoadState_RederivesFulfillment(t *testing.T) {
	s, err := NewStore(Options{Clock: newFakeClock()})
	require.NoError(t, err)

	// Kalıcı kopyadaki bayat fulfillment değeri reçete varlığıyla düzeltilir
	menu := []models.MenuItem{
		{ID: 1, Name: "Latte", Fulfillment: models.FulfillmentStocked},
		{ID: 2, Name: "Cheesecake", Fulfillment: models.FulfillmentPrepared},
	}
	recipes := []models.Recipe{{ID: 1, MenuItemID: 1, Name: "Latte"}}
	s.LoadState(menu, nil, recipes, nil, nil, nil)

	latte, err := s.MenuItem(1)
	require.NoError(t, err)
	require.Equal(t, models.FulfillmentPrepared, latte.Fulfillment)

	cake, err := s.MenuItem(2)
	require.NoError(t, err)
	require.Equal(t, models.FulfillmentStocked, cake.Fulfillment)
}
