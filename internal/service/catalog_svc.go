package service

import (
	"errors"
	"strings"

	"shoespot_dev_v1_202608/internal/model"
	"shoespot_dev_v1_202608/internal/store"
)

// ==================== 商品目录查询 ====================
// 店面侧的只读查询：搜索、详情、收藏列表。
// 分类筛选走 Store 的显式引用解析，不在这里做字符串扫描。

// ErrProductNotFound 商品不存在
var ErrProductNotFound = errors.New("商品不存在")

// CatalogService 目录查询服务
type CatalogService struct {
	store *store.Store
}

// NewCatalogService 创建目录查询服务
func NewCatalogService(s *store.Store) *CatalogService {
	return &CatalogService{store: s}
}

// SearchProducts 按关键字/分类筛选商品
// keyword 对名称、品牌、分类做不区分大小写的包含匹配；
// category 为空表示不过滤
func (svc *CatalogService) SearchProducts(keyword, category string) []model.Product {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	result := make([]model.Product, 0)
	for _, p := range svc.store.Products() {
		if category != "" && p.Category != category {
			continue
		}
		if keyword != "" && !matchKeyword(p, keyword) {
			continue
		}
		result = append(result, p)
	}
	return result
}

func matchKeyword(p model.Product, keyword string) bool {
	return strings.Contains(strings.ToLower(p.Name), keyword) ||
		strings.Contains(strings.ToLower(p.Brand), keyword) ||
		strings.Contains(strings.ToLower(p.Category), keyword)
}

// GetProduct 商品详情
func (svc *CatalogService) GetProduct(id int64) (*model.Product, error) {
	for _, p := range svc.store.Products() {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

// FavoriteProducts 收藏列表
// 收藏集合里可能残留已被删除的商品 id，静默跳过
func (svc *CatalogService) FavoriteProducts() []model.Product {
	favs := svc.store.Favorites()
	favSet := make(map[int64]bool, len(favs))
	for _, id := range favs {
		favSet[id] = true
	}
	result := make([]model.Product, 0, len(favs))
	for _, p := range svc.store.Products() {
		if favSet[p.ID] {
			result = append(result, p)
		}
	}
	return result
}

// ActiveCoupons 当前可用的优惠券
func (svc *CatalogService) ActiveCoupons() []model.Coupon {
	result := make([]model.Coupon, 0)
	for _, c := range svc.store.Coupons() {
		if c.IsActive {
			result = append(result, c)
		}
	}
	return result
}
