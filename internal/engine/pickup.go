package engine

import "sort"

// Teslim kümesi: mutfakta tamamlanmış, müşterisi tarafından henüz
// onaylanmamış siparişler. Salt küme üyeliği; sıra ya da öncelik yok.
// Sahiplik kontrolü bu bileşenin işi değildir, dış auth katmanı yapar.

// Pending müşterinin onay bekleyen sipariş kimliklerini döndürür.
func (s *Store) Pending(customerID uint) []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []int64
	for saleID, cid := range s.pickup {
		if cid == customerID {
			out = append(out, saleID)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Acknowledge siparişi kümeden çıkarır. Kümede yoksa false döner;
// onaylanan kimlik sonraki tamamlanmalarla geri gelmez.
func (s *Store) Acknowledge(orderID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pickup[orderID]; !ok {
		return false
	}
	delete(s.pickup, orderID)
	return true
}

// PickupOwner kimliğin kümede kayıtlı müşterisini döndürür (auth katmanı
// sahiplik kontrolü için kullanır).
func (s *Store) PickupOwner(orderID int64) (uint, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cid, ok := s.pickup[orderID]
	return cid, ok
}
