package engine

import "math"

// ApplyCustomerSale müşteri siparişinin puan hareketini işler ve kazanılan
// puanı döndürür. Kazanç: para birimi başına 10 puan, aşağı yuvarlanır.
//
// Yeni bakiye tek yazmada hesaplanır (önce düş sonra ekle yapılmaz),
// araya negatif bakiye görünmez. pointsRedeemed'in bakiyeyi aşmaması
// checkout tarafında doğrulanır; defter burada tekrar kontrol etmez,
// bilinçli olarak negatif bakiyeye izin verir.
func (s *Store) ApplyCustomerSale(customerID uint, total float64, pointsRedeemed int) (int, error) {
	earned := int(math.Floor(total * 10))

	s.mu.Lock()
	c, ok := s.customers[customerID]
	if !ok {
		s.mu.Unlock()
		return 0, newError(CodeNotFound, "müşteri bulunamadı: %d", customerID)
	}
	c.Points = c.Points - pointsRedeemed + earned
	newBalance := c.Points
	s.mu.Unlock()

	s.publish([]event{{TopicLoyaltyAdjusted, LoyaltyAdjustedEvent{
		CustomerID:     customerID,
		PointsEarned:   earned,
		PointsRedeemed: pointsRedeemed,
		NewBalance:     newBalance,
	}}})
	return earned, nil
}
