package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"shoespot_dev_v1_202608/internal/model"
	"shoespot_dev_v1_202608/internal/store"
)

// ==================== 结账服务 ====================
// 把当前购物车固化成订单：客户快照 + 条目拷贝 + 金额明细。
// 订单以 pending 状态插到订单集合头部，随后清空购物车。

var (
	ErrEmptyCart       = errors.New("购物车为空")
	ErrZoneNotFound    = errors.New("配送区域不存在")
	ErrMethodDisabled  = errors.New("该配送方式未启用")
	ErrUnknownDelivery = errors.New("未知的配送方式")
)

// CheckoutService 结账服务
type CheckoutService struct {
	store *store.Store
}

// NewCheckoutService 创建结账服务
func NewCheckoutService(s *store.Store) *CheckoutService {
	return &CheckoutService{store: s}
}

// CheckoutRequest 结账请求
type CheckoutRequest struct {
	Customer       model.OrderCustomer `json:"customer"`
	DeliveryMethod string              `json:"deliveryMethod"` // delivery | pickup
	ZoneID         int64               `json:"zoneId"`         // delivery 时必填
	CouponCode     string              `json:"couponCode"`
}

// PlaceOrder 下单
func (svc *CheckoutService) PlaceOrder(req CheckoutRequest) (*model.Order, error) {
	cart := svc.store.Cart()
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}

	settings := svc.store.Settings()

	// 1. 小计
	subtotal := 0.0
	for _, item := range cart {
		subtotal += item.Price * float64(item.Quantity)
	}

	// 2. 优惠券：只认激活的券码，折扣是 [0,1] 比例
	discount := 0.0
	if code := strings.TrimSpace(req.CouponCode); code != "" {
		for _, c := range svc.store.Coupons() {
			if c.IsActive && strings.EqualFold(c.Code, code) {
				discount = subtotal * c.DiscountPercentage
				break
			}
		}
	}

	// 3. 运费
	shipping := 0.0
	switch req.DeliveryMethod {
	case model.DeliveryMethodDelivery:
		if !settings.EnableDelivery {
			return nil, ErrMethodDisabled
		}
		zone, ok := svc.findZone(req.ZoneID)
		if !ok {
			return nil, ErrZoneNotFound
		}
		shipping = zone.Price
	case model.DeliveryMethodPickup:
		if !settings.EnablePickup {
			return nil, ErrMethodDisabled
		}
	default:
		return nil, ErrUnknownDelivery
	}

	order := model.Order{
		ID:             uuid.NewString(),
		Date:           time.Now().UTC().Format(time.RFC3339),
		Status:         model.OrderStatusPending,
		Customer:       req.Customer,
		Items:          cart,
		Subtotal:       subtotal,
		Discount:       discount,
		Shipping:       shipping,
		Total:          subtotal - discount + shipping,
		DeliveryMethod: req.DeliveryMethod,
	}

	// 新订单插头部，保持最近优先
	orders := svc.store.Orders()
	svc.store.SetOrders(append([]model.Order{order}, orders...))
	svc.store.ClearCart()
	svc.store.Notify("¡Pedido realizado con éxito!")

	return &order, nil
}

// UpdateOrderStatus 管理端订单状态流转
// pending -> completed | cancelled，目标状态不合法时报错
func (svc *CheckoutService) UpdateOrderStatus(orderID, status string) error {
	switch status {
	case model.OrderStatusPending, model.OrderStatusCompleted, model.OrderStatusCancelled:
	default:
		return errors.New("无效的订单状态: " + status)
	}

	orders := svc.store.Orders()
	for i := range orders {
		if orders[i].ID == orderID {
			orders[i].Status = status
			svc.store.SetOrders(orders)
			return nil
		}
	}
	return errors.New("订单不存在: " + orderID)
}

func (svc *CheckoutService) findZone(id int64) (model.DeliveryZone, bool) {
	for _, z := range svc.store.Zones() {
		if z.ID == id {
			return z, true
		}
	}
	return model.DeliveryZone{}, false
}
