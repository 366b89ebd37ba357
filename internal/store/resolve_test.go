package store

import (
	"testing"

	"shoespot_dev_v1_202608/internal/model"
)

// TestResolveCategoryDangling 删除分类后商品引用悬空但不报错
func TestResolveCategoryDangling(t *testing.T) {
	s := NewStore(newTestCache(t), nil)
	defer s.Close()

	s.SetCategories([]model.Category{{ID: "1", Name: "Nike", Icon: "Zap"}})
	s.SetProducts([]model.Product{{ID: 1, Name: "AF1", Category: "Nike"}})

	if ref := s.ResolveCategory("Nike"); !ref.Resolved || ref.Category.Icon != "Zap" {
		t.Fatalf("命中解析异常: %+v", ref)
	}

	// 分类被删掉，商品保持原样，引用解析为未匹配
	s.SetCategories([]model.Category{})

	products := s.Products()
	if len(products) != 1 || products[0].Category != "Nike" {
		t.Fatalf("删除分类不应级联改商品: %+v", products)
	}
	if ref := s.ResolveCategory("Nike"); ref.Resolved {
		t.Fatalf("悬空引用应解析为未匹配: %+v", ref)
	}
}

// TestResolveBannerTargets 横幅跳转目标解析
func TestResolveBannerTargets(t *testing.T) {
	s := NewStore(newTestCache(t), nil)
	defer s.Close()

	s.SetCategories([]model.Category{{ID: "1", Name: "Nike", Icon: "Zap"}})
	s.SetProducts([]model.Product{{ID: 4, Name: "Air Max 270"}})

	cases := []struct {
		name     string
		banner   model.Banner
		resolved bool
	}{
		{"分类命中", model.Banner{ActionType: model.BannerActionCategory, ActionValue: "Nike"}, true},
		{"分类悬空", model.Banner{ActionType: model.BannerActionCategory, ActionValue: "Fila"}, false},
		{"商品命中", model.Banner{ActionType: model.BannerActionProduct, ActionValue: "4"}, true},
		{"商品悬空", model.Banner{ActionType: model.BannerActionProduct, ActionValue: "99"}, false},
		{"商品ID非数字", model.Banner{ActionType: model.BannerActionProduct, ActionValue: "abc"}, false},
		{"未知类型", model.Banner{ActionType: "video", ActionValue: "x"}, false},
	}
	for _, tc := range cases {
		got := s.ResolveBannerTarget(tc.banner)
		if got.Resolved != tc.resolved {
			t.Errorf("%s: Resolved = %v, 期望 %v", tc.name, got.Resolved, tc.resolved)
		}
	}

	target := s.ResolveBannerTarget(model.Banner{ActionType: model.BannerActionProduct, ActionValue: "4"})
	if target.Product == nil || target.Product.Name != "Air Max 270" {
		t.Fatalf("商品目标异常: %+v", target)
	}
}
