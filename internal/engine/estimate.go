package engine

// Hazırlık süresi tahmini. Reçetenin (prepTime+cleanTime) değeri saniyeye
// çevrilip taban alınır; üründen yeterli geçmiş ölçüm birikmişse
// (tamamlanmış satışlardaki prepTimeInSeconds) tabanın yerine geçmiş
// ortalaması kullanılır. Sadece müşteri sipariş-durumu ekranını besler,
// motor hiçbir kararında bu değeri kullanmaz.

// Bir ürün için geçmiş ortalamaya güvenmeden önce istenen asgari örnek
// sayısı.
const minPrepSamples = 3

// EstimatePrepTime verilen menü ürünleri için beklenen hazırlık süresini
// saniye cinsinden döndürür. Sipariş paralel hazırlanır varsayılır: sonuç
// ürün tahminlerinin en büyüğüdür. Tanınmayan ürünler katkı vermez.
func (s *Store) EstimatePrepTime(menuItemIDs []uint) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	best := 0.0
	for _, id := range menuItemIDs {
		est := s.estimateForItem(id)
		if est > best {
			best = est
		}
	}
	return best
}

func (s *Store) estimateForItem(menuItemID uint) float64 {
	baseline := 0.0
	if r, ok := s.recipes[menuItemID]; ok {
		baseline = float64(r.PrepTime+r.CleanTime) * 60
	}

	sum := 0.0
	samples := 0
	for _, sale := range s.sales {
		if sale.PrepTimeInSeconds == nil {
			continue
		}
		for _, line := range sale.Items {
			if line.MenuItemID == menuItemID {
				sum += *sale.PrepTimeInSeconds
				samples++
				break
			}
		}
	}

	if samples >= minPrepSamples {
		return sum / float64(samples)
	}
	return baseline
}
