package model

// ==================== 订单状态常量 ====================

// OrderStatus 订单状态
const (
	OrderStatusPending   = "pending"   // 待处理
	OrderStatusCompleted = "completed" // 已完成
	OrderStatusCancelled = "cancelled" // 已取消
)

// DeliveryMethod 配送方式
const (
	DeliveryMethodDelivery = "delivery" // 送货上门
	DeliveryMethodPickup   = "pickup"   // 到店自提
)

// BannerAction Banner 跳转类型
const (
	BannerActionCategory = "category" // 跳转分类
	BannerActionProduct  = "product"  // 跳转商品
)

// ==================== Product 商品 ====================

// Product 商品快照记录
// 所有集合实体都是纯 JSON 记录，整集合序列化后落本地缓存 / 远端单行
type Product struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Brand         string   `json:"brand"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice,omitempty"` // 划线价，促销展示用
	Image         string   `json:"image"`
	Description   string   `json:"description"`
	Sizes         []string `json:"sizes"` // 规格标签列表，可能是鞋码也可能被挪用为颜色/材质
	HasSizes      bool     `json:"hasSizes"`
	Category      string   `json:"category"` // 按名称松散关联 Category.Name，不做外键约束
	Images        []string `json:"images"`
	IsOnSale      bool     `json:"isOnSale,omitempty"`
	IsOutOfStock  bool     `json:"isOutOfStock,omitempty"`
}

// ==================== Category 分类 ====================

// Category 分类
// 删除分类不级联，悬空引用在读取侧解析为"未匹配"
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"` // 固定图标词表中的符号名
}

// ==================== CartItem 购物车条目 ====================

// CartItem 购物车条目
// 加购时按值快照商品字段，不持有活引用
// 唯一键：(ID, SelectedSize)
type CartItem struct {
	Product
	SelectedSize string `json:"selectedSize"`
	Quantity     int    `json:"quantity"` // 恒 >= 1
}

// ==================== Order 订单 ====================

// OrderCustomer 下单时的客户快照
type OrderCustomer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// Order 订单
// 结账时由购物车拷贝生成；只有管理端能改状态，买家侧不可删除
type Order struct {
	ID             string        `json:"id"`
	Date           string        `json:"date"`
	Status         string        `json:"status"`
	Customer       OrderCustomer `json:"customer"`
	Items          []CartItem    `json:"items"`
	Subtotal       float64       `json:"subtotal"`
	Discount       float64       `json:"discount"`
	Shipping       float64       `json:"shipping"`
	Total          float64       `json:"total"`
	DeliveryMethod string        `json:"deliveryMethod"`
}

// ==================== 配置类集合 ====================

// Banner 首页横幅
type Banner struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	Tag             string `json:"tag"`
	Image           string `json:"image"`
	ActionType      string `json:"actionType"`  // category | product
	ActionValue     string `json:"actionValue"` // 分类名或商品 ID，按名称松散关联
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
}

// Coupon 优惠券
type Coupon struct {
	ID                 string  `json:"id"`
	Code               string  `json:"code"`
	DiscountPercentage float64 `json:"discountPercentage"` // [0,1] 区间的折扣比例
	IsActive           bool    `json:"isActive"`
	Description        string  `json:"description,omitempty"`
}

// DeliveryZone 配送区域
type DeliveryZone struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// StoreSettings 店铺配置
type StoreSettings struct {
	Name           string   `json:"name"`
	Slogan         string   `json:"slogan"`
	Logo           string   `json:"logo"`
	Address        string   `json:"address"`
	Phones         []string `json:"phones"`
	Email          string   `json:"email"`
	WhatsappNumber string   `json:"whatsappNumber,omitempty"`
	PrimaryColor   string   `json:"primaryColor"`
	SecondaryColor string   `json:"secondaryColor"`
	Currency       string   `json:"currency"`
	EnableDelivery bool     `json:"enableDelivery"`
	EnablePickup   bool     `json:"enablePickup"`

	// 远端存储覆盖配置：URL 和 Key 同时有值且不同于内置默认时，
	// 本会话改用独立客户端
	RemoteURL string `json:"remoteUrl,omitempty"`
	RemoteKey string `json:"remoteKey,omitempty"`
}
