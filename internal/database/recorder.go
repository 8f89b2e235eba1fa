package database

import (
	"cafemaster-backend/internal/engine"
	"cafemaster-backend/internal/models"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"
)

// RegisterRecorder motor olaylarını kalıcı kopyaya yazan aboneleri bağlar.
// Yazma hataları loglanır ama isteği düşürmez; doğruluk bellekteki
// kopyadadır, veritabanı yazımı art-yazım (write-through) kopyasıdır.
func RegisterRecorder(bus EventBus.Bus) error {
	if err := bus.Subscribe(engine.TopicSaleFinalized, onSaleFinalized); err != nil {
		return err
	}
	if err := bus.Subscribe(engine.TopicOrderCompleted, onOrderCompleted); err != nil {
		return err
	}
	if err := bus.Subscribe(engine.TopicWasteRecorded, onWasteRecorded); err != nil {
		return err
	}
	if err := bus.Subscribe(engine.TopicLoyaltyAdjusted, onLoyaltyAdjusted); err != nil {
		return err
	}
	return bus.Subscribe(engine.TopicRestocked, onRestocked)
}

func onSaleFinalized(ev engine.SaleFinalizedEvent) {
	sale := ev.Sale
	if err := DB.Create(&sale).Error; err != nil {
		zap.S().Errorw("Satış kaydedilemedi", "sale_id", sale.ID, "error", err)
	}
	for id, stock := range ev.InventoryLevels {
		if err := DB.Model(&models.InventoryItem{}).Where("id = ?", id).Update("stock", stock).Error; err != nil {
			zap.S().Errorw("Envanter stoğu güncellenemedi", "inventory_item_id", id, "error", err)
		}
	}
	for id, stock := range ev.MenuLevels {
		if err := DB.Model(&models.MenuItem{}).Where("id = ?", id).Update("stock", stock).Error; err != nil {
			zap.S().Errorw("Menü stoğu güncellenemedi", "menu_item_id", id, "error", err)
		}
	}
}

func onOrderCompleted(ev engine.OrderCompletedEvent) {
	err := DB.Model(&models.Sale{}).Where("id = ?", ev.SaleID).
		Update("prep_time_in_seconds", ev.PrepTimeInSeconds).Error
	if err != nil {
		zap.S().Errorw("Hazırlık süresi yazılamadı", "sale_id", ev.SaleID, "error", err)
	}
}

func onWasteRecorded(ev engine.WasteRecordedEvent) {
	rec := ev.Record
	if err := DB.Create(&rec).Error; err != nil {
		zap.S().Errorw("Zayiat kaydı yazılamadı", "waste_id", rec.ID, "error", err)
	}
	if ev.ItemKnown {
		if err := DB.Model(&models.InventoryItem{}).Where("id = ?", rec.InventoryItemID).
			Update("stock", ev.NewStock).Error; err != nil {
			zap.S().Errorw("Envanter stoğu güncellenemedi", "inventory_item_id", rec.InventoryItemID, "error", err)
		}
	}
}

func onLoyaltyAdjusted(ev engine.LoyaltyAdjustedEvent) {
	err := DB.Model(&models.LoyaltyCustomer{}).Where("id = ?", ev.CustomerID).
		Update("points", ev.NewBalance).Error
	if err != nil {
		zap.S().Errorw("Puan bakiyesi güncellenemedi", "customer_id", ev.CustomerID, "error", err)
	}
}

func onRestocked(ev engine.RestockedEvent) {
	rec := ev.Record
	if err := DB.Create(&rec).Error; err != nil {
		zap.S().Errorw("Tedarik kaydı yazılamadı", "inventory_item_id", ev.ItemID, "error", err)
	}
	if err := DB.Model(&models.InventoryItem{}).Where("id = ?", ev.ItemID).
		Update("stock", ev.NewStock).Error; err != nil {
		zap.S().Errorw("Envanter stoğu güncellenemedi", "inventory_item_id", ev.ItemID, "error", err)
	}
}
