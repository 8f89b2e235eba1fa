package engine

import (
	"cafemaster-backend/internal/models"

	"go.uber.org/zap"
)

// FinalizeSale satışı kaydeder, mutfak siparişini açar ve stok düşümünü
// uygular. Üçü aynı kilit altında tek adımda gerçekleşir: düşümü
// uygulanmamış satış ya da satışı olmayan düşüm oluşamaz.
//
// Subtotal/discount/total tutarlılığı ve puan harcama limiti çağıran
// tarafın (checkout) sorumluluğudur; motor yalnızca satır miktarlarını
// doğrular.
func (s *Store) FinalizeSale(order []models.OrderItem, subtotal, discount, total float64, customerID *uint) (models.Sale, error) {
	if len(order) == 0 {
		return models.Sale{}, newError(CodeInvalidQuantity, "sipariş en az bir satır içermeli")
	}
	for _, line := range order {
		if line.Quantity <= 0 {
			return models.Sale{}, newError(CodeInvalidQuantity, "sipariş satırı miktarı 0'dan büyük olmalı")
		}
	}

	s.mu.Lock()

	id := s.node.Generate().Int64()
	now := s.clock.Now()

	items := make([]models.OrderItem, len(order))
	copy(items, order)
	for i := range items {
		items[i].SaleID = id
	}

	sale := &models.Sale{
		ID:        id,
		Timestamp: now,
		Subtotal:  subtotal,
		Discount:  discount,
		Total:     total,
		Items:     items,
	}
	if customerID != nil {
		v := *customerID
		sale.CustomerID = &v
	}

	s.sales = append([]*models.Sale{sale}, s.sales...)
	s.salesByID[id] = sale
	s.kitchen[id] = &KitchenOrder{
		ID:         id,
		Timestamp:  now,
		Items:      append([]models.OrderItem(nil), items...),
		CustomerID: sale.CustomerID,
	}

	events, invLevels, menuLevels := s.reconcile(items)
	out := cloneSale(sale)
	events = append(events, event{TopicSaleFinalized, SaleFinalizedEvent{
		Sale:            out,
		InventoryLevels: invLevels,
		MenuLevels:      menuLevels,
	}})
	s.mu.Unlock()

	s.publish(events)
	return out, nil
}

// CompleteOrder mutfak siparişini kapatır. Bilinmeyen ya da zaten
// tamamlanmış sipariş sessizce geçilir; mutfak ekranından gelen çift
// tıklamalar ve bayat istekler beklenen durumdur.
func (s *Store) CompleteOrder(orderID int64) {
	s.mu.Lock()

	ko, ok := s.kitchen[orderID]
	if !ok {
		s.mu.Unlock()
		s.log.Debug("aktif olmayan sipariş için tamamlama isteği, yoksayıldı",
			zap.Int64("order_id", orderID))
		return
	}

	secs := s.clock.Now().Sub(ko.Timestamp).Seconds()
	if secs < 0 {
		// Saat kayması negatif süre üretebilir
		secs = 0
	}

	if sale, ok := s.salesByID[orderID]; ok && sale.PrepTimeInSeconds == nil {
		v := secs
		sale.PrepTimeInSeconds = &v
	}

	delete(s.kitchen, orderID)

	var customerID *uint
	if ko.CustomerID != nil {
		v := *ko.CustomerID
		customerID = &v
		s.pickup[orderID] = v
	}
	s.mu.Unlock()

	s.publish([]event{{TopicOrderCompleted, OrderCompletedEvent{
		SaleID:            orderID,
		CustomerID:        customerID,
		PrepTimeInSeconds: secs,
	}}})
}
