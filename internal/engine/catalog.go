package engine

import (
	"sort"

	"cafemaster-backend/internal/models"

	"go.uber.org/zap"
)

// Katalog işlemleri. Menü/envanter/reçete editörleri buradan yazar;
// reçeteli-reçetesiz ayrımı (Fulfillment) reçete eklenip silinirken
// çözülür, satış anında tekrar bakılmaz.

func (s *Store) PutMenuItem(item models.MenuItem) (models.MenuItem, error) {
	if item.Stock < 0 {
		return models.MenuItem{}, newError(CodeInvalidQuantity, "stok negatif olamaz")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.ID == 0 {
		s.menuSeq++
		item.ID = s.menuSeq
	} else if item.ID > s.menuSeq {
		s.menuSeq = item.ID
	}

	if _, ok := s.recipes[item.ID]; ok {
		item.Fulfillment = models.FulfillmentPrepared
	} else {
		item.Fulfillment = models.FulfillmentStocked
	}

	s.menuItems[item.ID] = &item
	return item, nil
}

func (s *Store) DeleteMenuItem(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.menuItems[id]; !ok {
		return newError(CodeNotFound, "menü ürünü bulunamadı: %d", id)
	}
	delete(s.menuItems, id)
	delete(s.recipes, id) // varsa reçetesi de gider
	return nil
}

func (s *Store) MenuItem(id uint) (models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.menuItems[id]
	if !ok {
		return models.MenuItem{}, newError(CodeNotFound, "menü ürünü bulunamadı: %d", id)
	}
	return *item, nil
}

func (s *Store) MenuItems() []models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.MenuItem, 0, len(s.menuItems))
	for _, item := range s.menuItems {
		out = append(out, *item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) PutInventoryItem(item models.InventoryItem) (models.InventoryItem, error) {
	if item.Stock < 0 || item.ReorderLevel < 0 {
		return models.InventoryItem{}, newError(CodeInvalidQuantity, "stok ve reorder level negatif olamaz")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.ID == 0 {
		s.invSeq++
		item.ID = s.invSeq
	} else if item.ID > s.invSeq {
		s.invSeq = item.ID
	}
	if existing, ok := s.inventory[item.ID]; ok {
		// Tedarik geçmişi append-only, güncellemede korunur
		item.PurchaseHistory = existing.PurchaseHistory
	}
	s.inventory[item.ID] = &item
	return item, nil
}

func (s *Store) DeleteInventoryItem(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.inventory[id]; !ok {
		return newError(CodeNotFound, "envanter kalemi bulunamadı: %d", id)
	}
	delete(s.inventory, id)
	// Bu kaleme referans veren reçeteler sarkık kalır; satış anında
	// DataIntegrity olarak atlanıp loglanır.
	for _, r := range s.recipes {
		for _, ing := range r.Ingredients {
			if ing.InventoryItemID == id {
				s.log.Warn("silinen envanter kalemine referans veren reçete",
					zap.Uint("inventory_item_id", id),
					zap.Uint("menu_item_id", r.MenuItemID))
			}
		}
	}
	return nil
}

func (s *Store) InventoryItem(id uint) (models.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.inventory[id]
	if !ok {
		return models.InventoryItem{}, newError(CodeNotFound, "envanter kalemi bulunamadı: %d", id)
	}
	return cloneInventoryItem(item), nil
}

func (s *Store) InventoryItems() []models.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.InventoryItem, 0, len(s.inventory))
	for _, item := range s.inventory {
		out = append(out, cloneInventoryItem(item))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// PutRecipe menü ürününe reçete bağlar (ürün başına en fazla bir).
// Malzemelerin katalogda bulunması editör tarafında burada zorlanır.
func (s *Store) PutRecipe(r models.Recipe) (models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.menuItems[r.MenuItemID]
	if !ok {
		return models.Recipe{}, newError(CodeNotFound, "menü ürünü bulunamadı: %d", r.MenuItemID)
	}
	for _, ing := range r.Ingredients {
		if ing.Quantity < 0 {
			return models.Recipe{}, newError(CodeInvalidQuantity, "malzeme miktarı negatif olamaz")
		}
		if _, ok := s.inventory[ing.InventoryItemID]; !ok {
			return models.Recipe{}, newError(CodeDataIntegrity,
				"reçete katalogda olmayan envanter kalemine referans veriyor: %d", ing.InventoryItemID)
		}
	}
	if r.PrepTime < 0 || r.CleanTime < 0 {
		return models.Recipe{}, newError(CodeInvalidQuantity, "süreler negatif olamaz")
	}

	if existing, ok := s.recipes[r.MenuItemID]; ok {
		r.ID = existing.ID
	} else {
		s.recSeq++
		r.ID = s.recSeq
	}
	for i := range r.Ingredients {
		r.Ingredients[i].RecipeID = r.ID
	}
	s.recipes[r.MenuItemID] = &r
	item.Fulfillment = models.FulfillmentPrepared
	return r, nil
}

func (s *Store) DeleteRecipe(menuItemID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.recipes[menuItemID]; !ok {
		return newError(CodeNotFound, "reçete bulunamadı (menü ürünü %d)", menuItemID)
	}
	delete(s.recipes, menuItemID)
	if item, ok := s.menuItems[menuItemID]; ok {
		item.Fulfillment = models.FulfillmentStocked
	}
	return nil
}

func (s *Store) RecipeForMenuItem(menuItemID uint) (models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.recipes[menuItemID]
	if !ok {
		return models.Recipe{}, newError(CodeNotFound, "reçete bulunamadı (menü ürünü %d)", menuItemID)
	}
	return cloneRecipe(r), nil
}

func (s *Store) Recipes() []models.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Recipe, 0, len(s.recipes))
	for _, r := range s.recipes {
		out = append(out, cloneRecipe(r))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Restock tedarik kaydını ekler ve stoğu artırır (tedarik geçmişi
// append-only).
func (s *Store) Restock(itemID uint, quantity, costPerUnit float64) (models.PurchaseRecord, error) {
	if quantity <= 0 {
		return models.PurchaseRecord{}, newError(CodeInvalidQuantity, "tedarik miktarı 0'dan büyük olmalı")
	}
	s.mu.Lock()
	item, ok := s.inventory[itemID]
	if !ok {
		s.mu.Unlock()
		return models.PurchaseRecord{}, newError(CodeNotFound, "envanter kalemi bulunamadı: %d", itemID)
	}
	rec := models.PurchaseRecord{
		InventoryItemID: itemID,
		Date:            s.clock.Now(),
		Quantity:        quantity,
		CostPerUnit:     costPerUnit,
	}
	item.PurchaseHistory = append(item.PurchaseHistory, rec)
	item.Stock += quantity
	newStock := item.Stock
	s.mu.Unlock()

	s.publish([]event{{TopicRestocked, RestockedEvent{ItemID: itemID, Record: rec, NewStock: newStock}}})
	return rec, nil
}

func (s *Store) PutCustomer(c models.LoyaltyCustomer) (models.LoyaltyCustomer, error) {
	if c.Points < 0 {
		return models.LoyaltyCustomer{}, newError(CodeInvalidQuantity, "puan negatif olamaz")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == 0 {
		s.custSeq++
		c.ID = s.custSeq
	} else if c.ID > s.custSeq {
		s.custSeq = c.ID
	}
	s.customers[c.ID] = &c
	return c, nil
}

func (s *Store) Customer(id uint) (models.LoyaltyCustomer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.customers[id]
	if !ok {
		return models.LoyaltyCustomer{}, newError(CodeNotFound, "müşteri bulunamadı: %d", id)
	}
	return *c, nil
}

func (s *Store) Customers() []models.LoyaltyCustomer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.LoyaltyCustomer, 0, len(s.customers))
	for _, c := range s.customers {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func cloneInventoryItem(item *models.InventoryItem) models.InventoryItem {
	out := *item
	out.PurchaseHistory = append([]models.PurchaseRecord(nil), item.PurchaseHistory...)
	return out
}

func cloneRecipe(r *models.Recipe) models.Recipe {
	out := *r
	out.Ingredients = append([]models.RecipeIngredient(nil), r.Ingredients...)
	return out
}
