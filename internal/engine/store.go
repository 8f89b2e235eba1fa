package engine

import (
	"sort"
	"sync"
	"time"

	"cafemaster-backend/internal/models"

	"github.com/asaskevich/EventBus"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
)

// KitchenOrder: Satışın mutfaktaki izdüşümü. Satışla birlikte oluşur,
// tamamlanınca aktif kümeden çıkar. Kalıcı tutulmaz; yeniden başlatmada
// PrepTimeInSeconds'ı boş olan satışlardan türetilir.
type KitchenOrder struct {
	ID         int64
	Timestamp  time.Time
	Items      []models.OrderItem
	CustomerID *uint
}

// Store: Tüm değişken durumun tek sahibi. Katalog, reçeteler, satışlar,
// mutfak siparişleri, sadakat bakiyeleri, zayiat kayıtları ve teslim kümesi
// yalnızca bu yapının metodları üzerinden değişir; her işlem tek mutex
// altında bölünmez çalışır (accumulate/write fazları iç içe geçemez).
type Store struct {
	mu    sync.Mutex
	clock Clock
	node  *snowflake.Node
	bus   EventBus.Bus
	log   *zap.Logger

	menuItems map[uint]*models.MenuItem
	inventory map[uint]*models.InventoryItem
	recipes   map[uint]*models.Recipe // menuItemID -> aktif reçete
	customers map[uint]*models.LoyaltyCustomer

	sales     []*models.Sale // en yeni başta
	salesByID map[int64]*models.Sale
	kitchen   map[int64]*KitchenOrder
	waste     []*models.WasteRecord
	pickup    map[int64]uint // saleID -> customerID, onay bekleyenler

	menuSeq uint
	invSeq  uint
	custSeq uint
	recSeq  uint
}

type Options struct {
	Clock  Clock
	Bus    EventBus.Bus
	Logger *zap.Logger
	// Snowflake düğüm numarası (tek süreçte 0 yeterli)
	NodeID int64
}

func NewStore(opts Options) (*Store, error) {
	node, err := snowflake.NewNode(opts.NodeID)
	if err != nil {
		return nil, err
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Store{
		clock:     opts.Clock,
		node:      node,
		bus:       opts.Bus,
		log:       opts.Logger,
		menuItems: make(map[uint]*models.MenuItem),
		inventory: make(map[uint]*models.InventoryItem),
		recipes:   make(map[uint]*models.Recipe),
		customers: make(map[uint]*models.LoyaltyCustomer),
		salesByID: make(map[int64]*models.Sale),
		kitchen:   make(map[int64]*KitchenOrder),
		pickup:    make(map[int64]uint),
	}, nil
}

// LoadState store'u kalıcı kopyadan doldurur. Mutfak siparişleri,
// hazırlık süresi henüz yazılmamış satışlardan yeniden kurulur; teslim
// kümesi oturuma özgüdür, boş başlar.
func (s *Store) LoadState(
	menu []models.MenuItem,
	inventory []models.InventoryItem,
	recipes []models.Recipe,
	sales []models.Sale,
	customers []models.LoyaltyCustomer,
	waste []models.WasteRecord,
) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range menu {
		m := menu[i]
		s.menuItems[m.ID] = &m
		if m.ID > s.menuSeq {
			s.menuSeq = m.ID
		}
	}
	for i := range inventory {
		it := inventory[i]
		s.inventory[it.ID] = &it
		if it.ID > s.invSeq {
			s.invSeq = it.ID
		}
	}
	for i := range recipes {
		r := recipes[i]
		s.recipes[r.MenuItemID] = &r
		if r.ID > s.recSeq {
			s.recSeq = r.ID
		}
	}
	for i := range customers {
		c := customers[i]
		s.customers[c.ID] = &c
		if c.ID > s.custSeq {
			s.custSeq = c.ID
		}
	}

	// Bayat fulfillment alanlarına karşı reçete varlığından yeniden türet
	for _, m := range s.menuItems {
		if _, ok := s.recipes[m.ID]; ok {
			m.Fulfillment = models.FulfillmentPrepared
		} else {
			m.Fulfillment = models.FulfillmentStocked
		}
	}

	sorted := make([]models.Sale, len(sales))
	copy(sorted, sales)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})
	for i := range sorted {
		sale := sorted[i]
		s.sales = append(s.sales, &sale)
		s.salesByID[sale.ID] = &sale
		if sale.PrepTimeInSeconds == nil {
			s.kitchen[sale.ID] = &KitchenOrder{
				ID:         sale.ID,
				Timestamp:  sale.Timestamp,
				Items:      append([]models.OrderItem(nil), sale.Items...),
				CustomerID: sale.CustomerID,
			}
		}
	}

	for i := range waste {
		w := waste[i]
		s.waste = append(s.waste, &w)
	}
}

// Sales satışları en yeniden eskiye kopya olarak döndürür.
func (s *Store) Sales() []models.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Sale, 0, len(s.sales))
	for _, sale := range s.sales {
		out = append(out, cloneSale(sale))
	}
	return out
}

func (s *Store) Sale(id int64) (models.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sale, ok := s.salesByID[id]
	if !ok {
		return models.Sale{}, newError(CodeNotFound, "satış bulunamadı: %d", id)
	}
	return cloneSale(sale), nil
}

// KitchenOrders aktif mutfak siparişlerini zaman sırasıyla döndürür.
// Spesifik bir sıra garanti edilmez; görüntüleme için sıralıyoruz.
func (s *Store) KitchenOrders() []KitchenOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]KitchenOrder, 0, len(s.kitchen))
	for _, ko := range s.kitchen {
		out = append(out, KitchenOrder{
			ID:         ko.ID,
			Timestamp:  ko.Timestamp,
			Items:      append([]models.OrderItem(nil), ko.Items...),
			CustomerID: ko.CustomerID,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out
}

func cloneSale(sale *models.Sale) models.Sale {
	out := *sale
	out.Items = append([]models.OrderItem(nil), sale.Items...)
	if sale.PrepTimeInSeconds != nil {
		v := *sale.PrepTimeInSeconds
		out.PrepTimeInSeconds = &v
	}
	if sale.CustomerID != nil {
		v := *sale.CustomerID
		out.CustomerID = &v
	}
	return out
}
