package engine

import "cafemaster-backend/internal/models"

// Motor olay konuları. Abonelikler (kalıcılık, uyarı) EventBus üzerinden
// bağlanır; motorun doğruluğu hiçbir aboneye bağlı değildir. Olaylar kilit
// bırakıldıktan sonra yayınlanır, abone geri çağrıları store'a tekrar
// girebilir.
const (
	TopicSaleFinalized   = "sale.finalized"
	TopicOrderCompleted  = "order.completed"
	TopicWasteRecorded   = "waste.recorded"
	TopicStockShortage   = "stock.shortage"
	TopicLoyaltyAdjusted = "loyalty.adjusted"
	TopicRestocked       = "inventory.restocked"
)

type SaleFinalizedEvent struct {
	Sale models.Sale
	// Düşüm sonrası stok seviyeleri (sadece etkilenen kayıtlar)
	InventoryLevels map[uint]float64
	MenuLevels      map[uint]int
}

type OrderCompletedEvent struct {
	SaleID            int64
	CustomerID        *uint
	PrepTimeInSeconds float64
}

type WasteRecordedEvent struct {
	Record models.WasteRecord
	// Kalem katalogda bulunamadıysa ItemKnown=false, NewStock anlamsızdır
	ItemKnown bool
	NewStock  float64
}

// StockShortageEvent: Floor-at-zero politikası gerçek tüketimi gizler;
// eksik kalan miktar operatör uyarısı için buradan raporlanır.
type StockShortageEvent struct {
	Kind      string // "inventory" | "menu"
	ItemID    uint
	Name      string
	Requested float64
	Available float64
}

type LoyaltyAdjustedEvent struct {
	CustomerID     uint
	PointsEarned   int
	PointsRedeemed int
	NewBalance     int
}

type RestockedEvent struct {
	ItemID   uint
	Record   models.PurchaseRecord
	NewStock float64
}

type event struct {
	topic   string
	payload any
}

func (s *Store) publish(events []event) {
	if s.bus == nil {
		return
	}
	for _, e := range events {
		s.bus.Publish(e.topic, e.payload)
	}
}
