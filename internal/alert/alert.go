// Package alert stok uyarılarını toplar: satış/zayiat sırasında oluşan
// anlık eksik stok olaylarını dinler ve periyodik taramayla yeniden
// sipariş eşiğinin altına düşen kalemleri raporlar. Uyarılar log'a yazılır,
// motorun işleyişini hiçbir şekilde etkilemez.
package alert

import (
	"cafemaster-backend/internal/engine"
	"cafemaster-backend/internal/inventory"

	"github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type Service struct {
	store *engine.Store
	cron  *cron.Cron
	log   *zap.SugaredLogger
}

func NewService(store *engine.Store) *Service {
	return &Service{
		store: store,
		cron:  cron.New(),
		log:   zap.S().Named("alert"),
	}
}

// Register olay aboneliklerini bağlar ve düşük stok taramasını zamanlar.
func (s *Service) Register(bus EventBus.Bus, spec string) error {
	if err := bus.Subscribe(engine.TopicStockShortage, s.onShortage); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc(spec, s.sweepLowStock); err != nil {
		return err
	}
	return nil
}

func (s *Service) Start() {
	s.cron.Start()
}

func (s *Service) Stop() {
	s.cron.Stop()
}

func (s *Service) onShortage(ev engine.StockShortageEvent) {
	s.log.Warnw("Stok yetersiz kaldı",
		"kind", ev.Kind,
		"item_id", ev.ItemID,
		"name", ev.Name,
		"requested", ev.Requested,
		"available", ev.Available,
	)
}

func (s *Service) sweepLowStock() {
	for _, item := range inventory.LowStock(s.store) {
		s.log.Warnw("Stok yeniden sipariş eşiğinin altında",
			"item_id", item.ID,
			"name", item.Name,
			"stock", item.Stock,
			"unit", item.Unit,
			"reorder_level", item.ReorderLevel,
			"supplier", item.Supplier,
		)
	}
}
