package store

import (
	"strconv"

	"shoespot_dev_v1_202608/internal/model"
)

// ==================== 松散引用解析 ====================
// Product.Category 和 Banner.ActionValue 按名称松散关联分类，
// 不是外键。删除分类不级联，悬空引用在这里显式解析为未匹配，
// 读取侧不做字符串扫描。

// CategoryRef 分类引用解析结果
type CategoryRef struct {
	Category model.Category
	Resolved bool // false 表示引用悬空
}

// BannerTarget 横幅跳转目标解析结果
type BannerTarget struct {
	Category *model.Category // ActionType=category 且命中时有值
	Product  *model.Product  // ActionType=product 且命中时有值
	Resolved bool
}

// ResolveCategory 按名称解析分类引用
func (s *Store) ResolveCategory(name string) CategoryRef {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.Name == name {
			return CategoryRef{Category: c, Resolved: true}
		}
	}
	return CategoryRef{}
}

// ResolveBannerTarget 解析横幅跳转目标
// 未匹配不报错，返回 Resolved=false 由展示层决定兜底行为
func (s *Store) ResolveBannerTarget(b model.Banner) BannerTarget {
	switch b.ActionType {
	case model.BannerActionCategory:
		if ref := s.ResolveCategory(b.ActionValue); ref.Resolved {
			c := ref.Category
			return BannerTarget{Category: &c, Resolved: true}
		}
	case model.BannerActionProduct:
		id, err := strconv.ParseInt(b.ActionValue, 10, 64)
		if err != nil {
			return BannerTarget{}
		}
		s.mu.RLock()
		defer s.mu.RUnlock()
		for _, p := range s.products {
			if p.ID == id {
				cp := p
				return BannerTarget{Product: &cp, Resolved: true}
			}
		}
	}
	return BannerTarget{}
}
