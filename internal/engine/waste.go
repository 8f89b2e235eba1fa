package engine

import (
	"cafemaster-backend/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecordWaste zayiat kaydı ekler ve stoğu satıştaki aynı floor-at-zero
// politikasıyla düşer. Tek red sebebi pozitif olmayan miktardır.
//
// Katalogda olmayan kalem için düşüm yapılmaz ama kayıt yine eklenir:
// denetim izi kaybolmaz, tutarsızlık loglanarak yukarıya raporlanır.
func (s *Store) RecordWaste(inventoryItemID uint, quantity float64, reason string) (models.WasteRecord, error) {
	if quantity <= 0 {
		return models.WasteRecord{}, newError(CodeInvalidQuantity, "zayiat miktarı 0'dan büyük olmalı")
	}

	s.mu.Lock()

	rec := models.WasteRecord{
		ID:              uuid.NewString(),
		Timestamp:       s.clock.Now(),
		InventoryItemID: inventoryItemID,
		Quantity:        quantity,
		Reason:          reason,
	}

	var events []event
	itemKnown := false
	newStock := 0.0

	if item, ok := s.inventory[inventoryItemID]; ok {
		itemKnown = true
		if quantity > item.Stock {
			events = append(events, event{TopicStockShortage, StockShortageEvent{
				Kind:      "inventory",
				ItemID:    inventoryItemID,
				Name:      item.Name,
				Requested: quantity,
				Available: item.Stock,
			}})
		}
		item.Stock -= quantity
		if item.Stock < 0 {
			item.Stock = 0
		}
		newStock = item.Stock
	} else {
		s.log.Warn("zayiat kaydı katalogda olmayan envanter kalemine yazıldı",
			zap.Uint("inventory_item_id", inventoryItemID),
			zap.String("reason", reason))
	}

	s.waste = append([]*models.WasteRecord{&rec}, s.waste...)

	events = append(events, event{TopicWasteRecorded, WasteRecordedEvent{
		Record:    rec,
		ItemKnown: itemKnown,
		NewStock:  newStock,
	}})
	s.mu.Unlock()

	s.publish(events)
	return rec, nil
}

// WasteRecords kayıtları en yeniden eskiye kopya olarak döndürür.
func (s *Store) WasteRecords() []models.WasteRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.WasteRecord, 0, len(s.waste))
	for _, w := range s.waste {
		out = append(out, *w)
	}
	return out
}
