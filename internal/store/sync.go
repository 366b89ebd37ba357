package store

import (
	"context"
	"log"

	"shoespot_dev_v1_202608/internal/localcache"
	"shoespot_dev_v1_202608/internal/model"
	"shoespot_dev_v1_202608/internal/remote"
)

// ==================== 同步引擎 ====================
// 每个会话恰好做一次远端加载：
//   未配置客户端      -> 维持构造时的本地缓存态
//   加载成功          -> 全量采纳远端行，并把快照镜像进本地缓存
//   加载失败(任何原因) -> 视为首次运行，用内置默认数据播种远端，
//                        不等确认立刻采纳默认数据
// 不轮询、不订阅。

// Sync 初始加载
// 阻塞到内存态就绪为止；远端播种写入本身是尽力而为
func (s *Store) Sync(ctx context.Context) {
	s.mu.Lock()
	if s.synced {
		s.loading = false
		s.mu.Unlock()
		return
	}
	s.synced = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	client := s.defaultClient
	if client == nil {
		log.Println("[sync] 远端未配置，维持本地缓存态")
		return
	}

	row, err := client.LoadStoreRow(ctx)
	if err != nil {
		// 行不存在 / 表不存在 / 网络异常：同一口径，播种
		log.Printf("[sync] 远端加载未命中: %v，执行首次播种", err)
		s.seed(ctx, client)
		return
	}

	s.adoptRow(row)
	log.Println("[sync] 远端数据加载完成")
}

// adoptRow 全量采纳远端行并镜像到本地缓存
// 远端可达之后，缓存只是镜像，不再是事实来源
func (s *Store) adoptRow(row *remote.StoreRow) {
	s.mu.Lock()
	s.products = orEmptyProducts(row.Products)
	s.categories = migrateCategories(row.Categories)
	if s.categories == nil {
		s.categories = []model.Category{}
	}
	if row.Settings != nil {
		s.settings = *row.Settings
	} else {
		s.settings = model.DefaultSettings()
	}
	s.zones = orEmptyZones(row.Zones)
	s.banners = orEmptyBanners(row.Banners)
	s.coupons = orEmptyCoupons(row.Coupons)
	s.orders = orEmptyOrders(row.Orders)
	s.mu.Unlock()

	s.mirrorToCache()
}

// seed 首次运行播种
// 先让内存态立即可用，再尽力写远端；写失败只记日志
func (s *Store) seed(ctx context.Context, client *remote.Client) {
	s.mu.Lock()
	s.products = model.InitialProducts()
	s.categories = model.InitialCategories()
	s.settings = model.DefaultSettings()
	s.zones = model.InitialZones()
	s.banners = model.InitialBanners()
	s.coupons = model.InitialCoupons()
	s.orders = []model.Order{}
	s.mu.Unlock()

	s.mirrorToCache()

	err := client.UpsertStoreRow(ctx, map[string]interface{}{
		"products":   model.InitialProducts(),
		"categories": model.InitialCategories(),
		"settings":   model.DefaultSettings(),
		"zones":      model.InitialZones(),
		"banners":    model.InitialBanners(),
		"coupons":    model.InitialCoupons(),
		"orders":     []model.Order{},
	})
	if err != nil {
		log.Printf("[sync] 播种写入失败(忽略): %v", err)
	}
}

// mirrorToCache 把当前七个集合整体写进本地缓存
func (s *Store) mirrorToCache() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.cache.PutJSON(localcache.KeyProducts, s.products)
	s.cache.PutJSON(localcache.KeyCategories, s.categories)
	s.cache.PutJSON(localcache.KeySettings, s.settings)
	s.cache.PutJSON(localcache.KeyZones, s.zones)
	s.cache.PutJSON(localcache.KeyBanners, s.banners)
	s.cache.PutJSON(localcache.KeyCoupons, s.coupons)
	s.cache.PutJSON(localcache.KeyOrders, s.orders)
}

// 缺字段统一落到空集合，避免 nil 往外漏

func orEmptyProducts(v []model.Product) []model.Product {
	if v == nil {
		return []model.Product{}
	}
	return v
}

func orEmptyZones(v []model.DeliveryZone) []model.DeliveryZone {
	if v == nil {
		return []model.DeliveryZone{}
	}
	return v
}

func orEmptyBanners(v []model.Banner) []model.Banner {
	if v == nil {
		return []model.Banner{}
	}
	return v
}

func orEmptyCoupons(v []model.Coupon) []model.Coupon {
	if v == nil {
		return []model.Coupon{}
	}
	return v
}

func orEmptyOrders(v []model.Order) []model.Order {
	if v == nil {
		return []model.Order{}
	}
	return v
}
