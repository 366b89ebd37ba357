package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"shoespot_dev_v1_202608/internal/localcache"
	"shoespot_dev_v1_202608/internal/model"
	"shoespot_dev_v1_202608/internal/remote"
	"shoespot_dev_v1_202608/internal/store"
	"shoespot_dev_v1_202608/pkg/database"
)

// newTestStore 内存缓存 + 无远端的状态容器
func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	cache := localcache.NewCache(database.InitTestDB(localcache.Models()...))
	s := store.NewStore(cache, nil)
	t.Cleanup(s.Close)
	return s
}

// seedCheckoutStore 预置结账所需的最小状态
func seedCheckoutStore(t *testing.T) *store.Store {
	t.Helper()
	s := newTestStore(t)
	s.SetProducts(model.InitialProducts())
	s.SetZones(model.InitialZones())
	s.SetCoupons(model.InitialCoupons())
	s.SetSettings(model.DefaultSettings())
	return s
}

func productByID(t *testing.T, s *store.Store, id int64) model.Product {
	t.Helper()
	for _, p := range s.Products() {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("商品 %d 不存在", id)
	return model.Product{}
}

// TestFirstRunPurchaseFlow 首次启动到下单的完整链路
// 远端不可达触发播种，随后加购两次同款同码并结账
func TestFirstRunPurchaseFlow(t *testing.T) {
	// 一律 500 的远端：加载未命中走播种，播种写入失败只记日志
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"unavailable"}`, http.StatusInternalServerError)
	}))
	defer broken.Close()

	cache := localcache.NewCache(database.InitTestDB(localcache.Models()...))
	s := store.NewStore(cache, remote.NewClient(broken.URL, "key"))
	defer s.Close()
	s.Sync(context.Background())

	if got := len(s.Products()); got != 8 {
		t.Fatalf("播种后商品数 = %d, 期望 8", got)
	}
	if got := len(s.Categories()); got != 8 {
		t.Fatalf("播种后分类数 = %d, 期望 8", got)
	}

	airMax := productByID(t, s, 4)
	if airMax.Name != "Air Max 270" {
		t.Fatalf("商品 4 应是 Air Max 270, got %q", airMax.Name)
	}
	s.AddToCart(airMax, "41")
	s.AddToCart(airMax, "41")

	cart := s.Cart()
	if len(cart) != 1 || cart[0].Quantity != 2 {
		t.Fatalf("购物车应是单条目数量 2: %+v", cart)
	}

	svc := NewCheckoutService(s)
	order, err := svc.PlaceOrder(CheckoutRequest{
		Customer:       model.OrderCustomer{Name: "Ana", Phone: "5355555555", Address: "Calle 23"},
		DeliveryMethod: model.DeliveryMethodDelivery,
		ZoneID:         1,
	})
	if err != nil {
		t.Fatalf("下单失败: %v", err)
	}

	if order.Status != model.OrderStatusPending {
		t.Fatalf("新订单状态 = %q, 期望 pending", order.Status)
	}
	if got := len(s.Orders()); got != 1 {
		t.Fatalf("订单数 = %d, 期望 1", got)
	}
	if got := len(s.Cart()); got != 0 {
		t.Fatalf("结账后购物车应清空, got %d 条", got)
	}
	// Air Max 270 单价 150 * 2 + Vedado 运费 5
	if order.Total != 305 {
		t.Fatalf("总额 = %v, 期望 305", order.Total)
	}
}

// TestPlaceOrderEmptyCart 空购物车拒单
func TestPlaceOrderEmptyCart(t *testing.T) {
	s := seedCheckoutStore(t)
	svc := NewCheckoutService(s)

	_, err := svc.PlaceOrder(CheckoutRequest{DeliveryMethod: model.DeliveryMethodPickup})
	if err != ErrEmptyCart {
		t.Fatalf("err = %v, 期望 ErrEmptyCart", err)
	}
}

// TestPlaceOrderCouponDiscount 激活券生效，券码不区分大小写
func TestPlaceOrderCouponDiscount(t *testing.T) {
	s := seedCheckoutStore(t)
	s.AddToCart(productByID(t, s, 1), "40") // Air Force 1, 120

	svc := NewCheckoutService(s)
	order, err := svc.PlaceOrder(CheckoutRequest{
		Customer:       model.OrderCustomer{Name: "Ana", Phone: "1"},
		DeliveryMethod: model.DeliveryMethodPickup,
		CouponCode:     "hola50",
	})
	if err != nil {
		t.Fatalf("下单失败: %v", err)
	}
	if order.Subtotal != 120 || order.Discount != 60 || order.Total != 60 {
		t.Fatalf("金额明细异常: subtotal=%v discount=%v total=%v", order.Subtotal, order.Discount, order.Total)
	}
}

// TestPlaceOrderInactiveCouponIgnored 停用券不抵扣
func TestPlaceOrderInactiveCouponIgnored(t *testing.T) {
	s := seedCheckoutStore(t)
	s.AddToCart(productByID(t, s, 1), "40")

	svc := NewCheckoutService(s)
	order, err := svc.PlaceOrder(CheckoutRequest{
		Customer:       model.OrderCustomer{Name: "Ana", Phone: "1"},
		DeliveryMethod: model.DeliveryMethodPickup,
		CouponCode:     "VIP20", // IsActive=false
	})
	if err != nil {
		t.Fatalf("下单失败: %v", err)
	}
	if order.Discount != 0 {
		t.Fatalf("停用券不应抵扣, discount=%v", order.Discount)
	}
}

// TestPlaceOrderDeliveryValidation 配送方式校验
func TestPlaceOrderDeliveryValidation(t *testing.T) {
	s := seedCheckoutStore(t)
	s.AddToCart(productByID(t, s, 1), "40")
	svc := NewCheckoutService(s)

	if _, err := svc.PlaceOrder(CheckoutRequest{
		DeliveryMethod: model.DeliveryMethodDelivery,
		ZoneID:         999,
	}); err != ErrZoneNotFound {
		t.Fatalf("err = %v, 期望 ErrZoneNotFound", err)
	}

	if _, err := svc.PlaceOrder(CheckoutRequest{
		DeliveryMethod: "drone",
	}); err != ErrUnknownDelivery {
		t.Fatalf("err = %v, 期望 ErrUnknownDelivery", err)
	}

	settings := s.Settings()
	settings.EnablePickup = false
	s.SetSettings(settings)
	if _, err := svc.PlaceOrder(CheckoutRequest{
		DeliveryMethod: model.DeliveryMethodPickup,
	}); err != ErrMethodDisabled {
		t.Fatalf("err = %v, 期望 ErrMethodDisabled", err)
	}
}

// TestOrdersNewestFirst 新订单插头部
func TestOrdersNewestFirst(t *testing.T) {
	s := seedCheckoutStore(t)
	svc := NewCheckoutService(s)

	s.AddToCart(productByID(t, s, 1), "40")
	first, err := svc.PlaceOrder(CheckoutRequest{DeliveryMethod: model.DeliveryMethodPickup})
	if err != nil {
		t.Fatalf("下单失败: %v", err)
	}
	s.AddToCart(productByID(t, s, 2), "M")
	second, err := svc.PlaceOrder(CheckoutRequest{DeliveryMethod: model.DeliveryMethodPickup})
	if err != nil {
		t.Fatalf("下单失败: %v", err)
	}

	orders := s.Orders()
	if len(orders) != 2 || orders[0].ID != second.ID || orders[1].ID != first.ID {
		t.Fatalf("订单顺序异常: %+v", orders)
	}
}

// TestUpdateOrderStatus 状态流转与非法值拒绝
func TestUpdateOrderStatus(t *testing.T) {
	s := seedCheckoutStore(t)
	svc := NewCheckoutService(s)

	s.AddToCart(productByID(t, s, 1), "40")
	order, err := svc.PlaceOrder(CheckoutRequest{DeliveryMethod: model.DeliveryMethodPickup})
	if err != nil {
		t.Fatalf("下单失败: %v", err)
	}

	if err := svc.UpdateOrderStatus(order.ID, model.OrderStatusCompleted); err != nil {
		t.Fatalf("状态流转失败: %v", err)
	}
	if got := s.Orders()[0].Status; got != model.OrderStatusCompleted {
		t.Fatalf("状态 = %q, 期望 completed", got)
	}

	if err := svc.UpdateOrderStatus(order.ID, "shipped"); err == nil {
		t.Fatal("非法状态应报错")
	}
	if err := svc.UpdateOrderStatus("no-such-id", model.OrderStatusCancelled); err == nil {
		t.Fatal("不存在的订单应报错")
	}
}
