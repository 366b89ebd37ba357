package store

import (
	"shoespot_dev_v1_202608/internal/localcache"
	"shoespot_dev_v1_202608/internal/model"
)

// ==================== 购物车引擎 ====================
// 购物车与收藏是设备本地的会话态：每次变更写穿本地缓存，
// 永不上云。条目唯一键是 (商品ID, 规格)。

// AddToCart 加购
// 已有同 (id, size) 条目则数量 +1，否则按值快照商品追加新条目
func (s *Store) AddToCart(product model.Product, size string) {
	s.mu.Lock()
	found := false
	for i := range s.cart {
		if s.cart[i].ID == product.ID && s.cart[i].SelectedSize == size {
			s.cart[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		s.cart = append(s.cart, model.CartItem{
			Product:      snapshotProduct(product),
			SelectedSize: size,
			Quantity:     1,
		})
	}
	s.persistCartLocked()
	s.mu.Unlock()

	s.toast("Añadido a la bolsa")
}

// RemoveFromCart 删除条目，不存在则无事发生
func (s *Store) RemoveFromCart(id int64, size string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.cart[:0]
	for _, item := range s.cart {
		if item.ID == id && item.SelectedSize == size {
			continue
		}
		kept = append(kept, item)
	}
	s.cart = kept
	s.persistCartLocked()
}

// UpdateQuantity 调整数量，下限钳在 1
// 数量为 1 的条目做减量是无操作，不会顺带删除
func (s *Store) UpdateQuantity(id int64, size string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].ID == id && s.cart[i].SelectedSize == size {
			q := s.cart[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			s.cart[i].Quantity = q
			break
		}
	}
	s.persistCartLocked()
}

// ClearCart 清空购物车，结账成功后调用
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
	s.persistCartLocked()
}

// ToggleFavorite 收藏开关：有则删、无则加
func (s *Store) ToggleFavorite(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, fav := range s.favorites {
		if fav == id {
			s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
			s.persistFavsLocked()
			return
		}
	}
	s.favorites = append(s.favorites, id)
	s.persistFavsLocked()
}

// IsFavorite 是否已收藏
func (s *Store) IsFavorite(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, fav := range s.favorites {
		if fav == id {
			return true
		}
	}
	return false
}

// CartCount 购物车内商品总件数
func (s *Store) CartCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, item := range s.cart {
		total += item.Quantity
	}
	return total
}

// persistCartLocked 购物车写穿缓存，调用方需持锁
func (s *Store) persistCartLocked() {
	s.cache.PutJSON(localcache.KeyCart, s.cart)
}

func (s *Store) persistFavsLocked() {
	s.cache.PutJSON(localcache.KeyFavs, s.favorites)
}

// snapshotProduct 按值快照商品，切片字段也拷贝一份
func snapshotProduct(p model.Product) model.Product {
	p.Sizes = append([]string(nil), p.Sizes...)
	p.Images = append([]string(nil), p.Images...)
	return p
}
