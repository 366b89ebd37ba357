package service

import (
	"testing"

	"shoespot_dev_v1_202608/internal/model"
)

// TestSearchProducts 关键字与分类筛选
func TestSearchProducts(t *testing.T) {
	s := newTestStore(t)
	s.SetProducts(model.InitialProducts())
	svc := NewCatalogService(s)

	if got := len(svc.SearchProducts("", "")); got != 8 {
		t.Fatalf("无条件搜索应返回全部, got %d", got)
	}

	// 关键字不区分大小写，命中名称/品牌/分类任一
	byName := svc.SearchProducts("air max", "")
	if len(byName) != 1 || byName[0].ID != 4 {
		t.Fatalf("按名称搜索异常: %+v", byName)
	}
	if got := len(svc.SearchProducts("NIKE", "")); got != 2 {
		t.Fatalf("按品牌搜索 = %d, 期望 2", got)
	}

	// 分类筛选是精确匹配
	if got := len(svc.SearchProducts("", "Nike")); got != 2 {
		t.Fatalf("按分类筛选 = %d, 期望 2", got)
	}
	if got := len(svc.SearchProducts("force", "Nike")); got != 1 {
		t.Fatalf("组合筛选 = %d, 期望 1", got)
	}
	if got := len(svc.SearchProducts("force", "Adidas")); got != 0 {
		t.Fatalf("不相交的条件应为空, got %d", got)
	}
}

// TestGetProduct 详情查询
func TestGetProduct(t *testing.T) {
	s := newTestStore(t)
	s.SetProducts(model.InitialProducts())
	svc := NewCatalogService(s)

	p, err := svc.GetProduct(4)
	if err != nil || p.Name != "Air Max 270" {
		t.Fatalf("详情查询异常: p=%+v err=%v", p, err)
	}
	if _, err := svc.GetProduct(999); err != ErrProductNotFound {
		t.Fatalf("err = %v, 期望 ErrProductNotFound", err)
	}
}

// TestFavoriteProductsSkipsDangling 收藏残留已删商品 id 时静默跳过
func TestFavoriteProductsSkipsDangling(t *testing.T) {
	s := newTestStore(t)
	s.SetProducts(model.InitialProducts())
	svc := NewCatalogService(s)

	s.ToggleFavorite(4)
	s.ToggleFavorite(8)
	s.ToggleFavorite(999) // 不存在的商品

	favs := svc.FavoriteProducts()
	if len(favs) != 2 {
		t.Fatalf("收藏列表 = %d 条, 期望 2", len(favs))
	}
	for _, p := range favs {
		if p.ID != 4 && p.ID != 8 {
			t.Fatalf("意外的收藏商品: %+v", p)
		}
	}
}

// TestActiveCoupons 只返回激活的券
func TestActiveCoupons(t *testing.T) {
	s := newTestStore(t)
	s.SetCoupons(model.InitialCoupons())
	svc := NewCatalogService(s)

	active := svc.ActiveCoupons()
	if len(active) != 2 {
		t.Fatalf("激活券数 = %d, 期望 2", len(active))
	}
	for _, c := range active {
		if !c.IsActive {
			t.Fatalf("停用券混入: %+v", c)
		}
	}
}
