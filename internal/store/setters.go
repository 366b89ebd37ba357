package store

import (
	"context"

	"shoespot_dev_v1_202608/internal/localcache"
	"shoespot_dev_v1_202608/internal/model"
)

// ==================== 集合写入 ====================
// 每个集合一个 setter，整集合替换语义（不合并）：
//   1. 替换内存态（调用方视角是同步完成）
//   2. 同步写穿本地缓存（尽力而为，失败只记日志）
//   3. 远端可解析时，入队一笔只触及该字段 + updated_at 的 upsert
// 远端失败不回滚内存态与缓存。本层不做校验，校验在管理端入口完成。

// SetProducts 替换商品集合
func (s *Store) SetProducts(v []model.Product) {
	snapshot := append([]model.Product(nil), v...)
	s.mu.Lock()
	s.products = snapshot
	s.mu.Unlock()
	s.cache.PutJSON(localcache.KeyProducts, snapshot)
	s.outbox.Enqueue("products", snapshot)
}

// SetCategories 替换分类集合
// 删除分类不级联：引用它的商品/横幅保持原样，读取侧按未匹配处理
func (s *Store) SetCategories(v []model.Category) {
	snapshot := append([]model.Category(nil), v...)
	s.mu.Lock()
	s.categories = snapshot
	s.mu.Unlock()
	s.cache.PutJSON(localcache.KeyCategories, snapshot)
	s.outbox.Enqueue("categories", snapshot)
}

// SetSettings 替换店铺配置
// 之后的远端写入会按新配置重新解析客户端
func (s *Store) SetSettings(v model.StoreSettings) {
	s.mu.Lock()
	s.settings = v
	s.mu.Unlock()
	s.cache.PutJSON(localcache.KeySettings, v)
	s.outbox.Enqueue("settings", v)
}

// SetZones 替换配送区域
func (s *Store) SetZones(v []model.DeliveryZone) {
	snapshot := append([]model.DeliveryZone(nil), v...)
	s.mu.Lock()
	s.zones = snapshot
	s.mu.Unlock()
	s.cache.PutJSON(localcache.KeyZones, snapshot)
	s.outbox.Enqueue("zones", snapshot)
}

// SetBanners 替换横幅集合
func (s *Store) SetBanners(v []model.Banner) {
	snapshot := append([]model.Banner(nil), v...)
	s.mu.Lock()
	s.banners = snapshot
	s.mu.Unlock()
	s.cache.PutJSON(localcache.KeyBanners, snapshot)
	s.outbox.Enqueue("banners", snapshot)
}

// SetCoupons 替换优惠券集合
func (s *Store) SetCoupons(v []model.Coupon) {
	snapshot := append([]model.Coupon(nil), v...)
	s.mu.Lock()
	s.coupons = snapshot
	s.mu.Unlock()
	s.cache.PutJSON(localcache.KeyCoupons, snapshot)
	s.outbox.Enqueue("coupons", snapshot)
}

// SetOrders 替换订单集合
func (s *Store) SetOrders(v []model.Order) {
	snapshot := append([]model.Order(nil), v...)
	s.mu.Lock()
	s.orders = snapshot
	s.mu.Unlock()
	s.cache.PutJSON(localcache.KeyOrders, snapshot)
	s.outbox.Enqueue("orders", snapshot)
}

// ==================== 出箱观测 ====================

// FlushParked 补投滞留的远端写入，由定时任务驱动
func (s *Store) FlushParked(ctx context.Context) {
	s.outbox.FlushParked(ctx)
}

// ParkedWrites 滞留写入笔数
func (s *Store) ParkedWrites() int {
	return s.outbox.ParkedCount()
}
