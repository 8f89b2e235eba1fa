package engine

import (
	"cafemaster-backend/internal/models"

	"go.uber.org/zap"
)

// reconcile satış satırlarının stok düşümünü uygular. Kilit alınmış
// çağrılır.
//
// Önce tüm satırlar üzerinden kalem başına toplam düşüm biriktirilir,
// sonra her kaleme tek yazma yapılır. Aynı malzemeyi paylaşan birden çok
// reçeteli satır olduğunda ara yazmalar satır sırasına bağlı kısmi düşüm
// üretirdi; toplama-sonra-yazma bunu satır sırasından bağımsız kılar.
//
// Katalogda bulunmayan menü ürünü/malzeme veri bütünlüğü sorunudur:
// satır atlanır, loglanır, siparişin kalanı uygulanır. Stok hiçbir zaman
// negatife inmez; sıfıra sabitlenen düşümler eksik miktarıyla birlikte
// shortage olayı üretir.
func (s *Store) reconcile(order []models.OrderItem) (events []event, invLevels map[uint]float64, menuLevels map[uint]int) {
	invDeductions := make(map[uint]float64)
	menuDeductions := make(map[uint]int)

	for _, line := range order {
		item, ok := s.menuItems[line.MenuItemID]
		if !ok {
			s.log.Warn("sipariş satırı katalogda olmayan menü ürününe referans veriyor, atlanıyor",
				zap.Uint("menu_item_id", line.MenuItemID),
				zap.String("name", line.Name))
			continue
		}
		if item.Fulfillment == models.FulfillmentPrepared {
			recipe, ok := s.recipes[item.ID]
			if !ok {
				// Edit anında çözülen ayrımla tutarsız durum
				s.log.Warn("reçeteli işaretli ürünün reçetesi yok, satır atlanıyor",
					zap.Uint("menu_item_id", item.ID))
				continue
			}
			for _, ing := range recipe.Ingredients {
				invDeductions[ing.InventoryItemID] += ing.Quantity * float64(line.Quantity)
			}
			continue
		}
		menuDeductions[item.ID] += line.Quantity
	}

	invLevels = make(map[uint]float64, len(invDeductions))
	menuLevels = make(map[uint]int, len(menuDeductions))

	for id, total := range invDeductions {
		item, ok := s.inventory[id]
		if !ok {
			s.log.Warn("reçete katalogda olmayan envanter kalemine referans veriyor, atlanıyor",
				zap.Uint("inventory_item_id", id))
			continue
		}
		if total > item.Stock {
			events = append(events, event{TopicStockShortage, StockShortageEvent{
				Kind:      "inventory",
				ItemID:    id,
				Name:      item.Name,
				Requested: total,
				Available: item.Stock,
			}})
		}
		item.Stock -= total
		if item.Stock < 0 {
			item.Stock = 0
		}
		invLevels[id] = item.Stock
	}

	for id, total := range menuDeductions {
		item := s.menuItems[id] // yukarıda varlığı doğrulandı
		if total > item.Stock {
			events = append(events, event{TopicStockShortage, StockShortageEvent{
				Kind:      "menu",
				ItemID:    id,
				Name:      item.Name,
				Requested: float64(total),
				Available: float64(item.Stock),
			}})
		}
		item.Stock -= total
		if item.Stock < 0 {
			item.Stock = 0
		}
		menuLevels[id] = item.Stock
	}

	return events, invLevels, menuLevels
}
