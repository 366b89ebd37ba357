package store

import (
	"encoding/json"
	"strconv"
	"sync"

	"shoespot_dev_v1_202608/internal/localcache"
	"shoespot_dev_v1_202608/internal/model"
	"shoespot_dev_v1_202608/internal/remote"
)

// ==================== Store 应用状态 ====================
// 全量集合的内存态 + 本地缓存写穿 + 远端尽力同步。
// 由组合根显式持有并注入，不做包级单例。

// Store 应用状态容器
type Store struct {
	mu sync.RWMutex

	cache         *localcache.Cache
	defaultClient *remote.Client // 内置凭证对应的客户端，可能为 nil（未配置）

	// 八大集合
	products   []model.Product
	categories []model.Category
	settings   model.StoreSettings
	zones      []model.DeliveryZone
	banners    []model.Banner
	coupons    []model.Coupon
	orders     []model.Order

	// 设备本地态，永不上云
	cart      []model.CartItem
	favorites []int64

	// 会话身份
	session *Session

	// 初始同步门闩：UI 唯一需要等待的操作
	loading bool
	synced  bool

	outbox *outbox
	notify func(msg string)
}

// NewStore 创建状态容器
// 构造时各集合读本地缓存，读不到回退空集合；settings 回退内置默认。
// 远端状态由之后唯一一次 Sync 决定。
func NewStore(cache *localcache.Cache, client *remote.Client) *Store {
	s := &Store{
		cache:         cache,
		defaultClient: client,
		loading:       true,
	}

	cache.GetJSON(localcache.KeyProducts, &s.products)
	s.categories = loadCachedCategories(cache)
	if !cache.GetJSON(localcache.KeySettings, &s.settings) {
		s.settings = model.DefaultSettings()
	}
	cache.GetJSON(localcache.KeyZones, &s.zones)
	cache.GetJSON(localcache.KeyBanners, &s.banners)
	cache.GetJSON(localcache.KeyCoupons, &s.coupons)
	cache.GetJSON(localcache.KeyOrders, &s.orders)
	cache.GetJSON(localcache.KeyCart, &s.cart)
	cache.GetJSON(localcache.KeyFavs, &s.favorites)

	s.outbox = newOutbox(s.resolveClient)
	return s
}

// loadCachedCategories 读缓存分类并兼容旧版裸字符串格式
func loadCachedCategories(cache *localcache.Cache) []model.Category {
	raw, ok := cache.GetRaw(localcache.KeyCategories)
	if !ok {
		return nil
	}
	return migrateCategories(raw)
}

// migrateCategories 分类格式迁移
// 旧版把分类存成 ["Nike","Adidas",...]，这里合成结构化记录：
// 下标作代理主键，补统一图标
func migrateCategories(raw json.RawMessage) []model.Category {
	var cats []model.Category
	if err := json.Unmarshal(raw, &cats); err == nil {
		return cats
	}
	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		return nil
	}
	cats = make([]model.Category, 0, len(names))
	for i, name := range names {
		cats = append(cats, model.Category{
			ID:   strconv.Itoa(i),
			Name: name,
			Icon: model.MigratedCategoryIcon,
		})
	}
	return cats
}

// resolveClient 解析当前会话应使用的远端客户端
// Settings 里的自定义 URL/Key 同时有值且不同于内置默认时优先；
// 否则回落内置客户端（可能为 nil）
func (s *Store) resolveClient() *remote.Client {
	s.mu.RLock()
	customURL := remote.CleanURL(s.settings.RemoteURL)
	customKey := s.settings.RemoteKey
	s.mu.RUnlock()

	defaultURL := remote.CleanURL(model.DefaultRemoteURL)
	if customURL != "" && customKey != "" &&
		(customURL != defaultURL || customKey != model.DefaultRemoteKey) {
		if c := remote.NewClient(customURL, customKey); c != nil {
			return c
		}
	}
	return s.defaultClient
}

// ==================== 通知钩子 ====================

// SetNotifier 安装用户可见的瞬时通知回调（toast）
func (s *Store) SetNotifier(fn func(msg string)) {
	s.mu.Lock()
	s.notify = fn
	s.mu.Unlock()
}

// Notify 面向用户的瞬时提示，外层服务也可直接触发
func (s *Store) Notify(msg string) {
	s.toast(msg)
}

func (s *Store) toast(msg string) {
	s.mu.RLock()
	fn := s.notify
	s.mu.RUnlock()
	if fn != nil {
		fn(msg)
	}
}

// ==================== 读取接口 ====================
// 全部返回拷贝，调用方可自由持有

// Products 商品集合
func (s *Store) Products() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Categories 分类集合
func (s *Store) Categories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Settings 店铺配置
func (s *Store) Settings() model.StoreSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Zones 配送区域
func (s *Store) Zones() []model.DeliveryZone {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.DeliveryZone, len(s.zones))
	copy(out, s.zones)
	return out
}

// Banners 横幅
func (s *Store) Banners() []model.Banner {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Banner, len(s.banners))
	copy(out, s.banners)
	return out
}

// Coupons 优惠券
func (s *Store) Coupons() []model.Coupon {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Coupon, len(s.coupons))
	copy(out, s.coupons)
	return out
}

// Orders 订单
func (s *Store) Orders() []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Cart 购物车
func (s *Store) Cart() []model.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.CartItem, len(s.cart))
	copy(out, s.cart)
	return out
}

// Favorites 收藏的商品 id 集合
func (s *Store) Favorites() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]int64, len(s.favorites))
	copy(out, s.favorites)
	return out
}

// IsLoading 初始同步是否仍在进行
func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// LastSyncError 最近一次远端写入的终态失败，nil 表示健康
func (s *Store) LastSyncError() error {
	return s.outbox.LastError()
}

// Flush 等待出箱队列排空，测试与优雅退出用
func (s *Store) Flush() {
	s.outbox.Wait()
}

// Close 停止后台写入
func (s *Store) Close() {
	s.outbox.Stop()
}
