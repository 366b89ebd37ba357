package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shoespot_dev_v1_202608/internal/service"
	"shoespot_dev_v1_202608/internal/store"
)

// ==================== CartController 购物车与结账 ====================

type CartController struct {
	store    *store.Store
	catalog  *service.CatalogService
	checkout *service.CheckoutService
}

func NewCartController(s *store.Store, catalog *service.CatalogService, checkout *service.CheckoutService) *CartController {
	return &CartController{store: s, catalog: catalog, checkout: checkout}
}

// GetCart 购物车内容
// @Summary 当前购物车
// @Tags Cart
// @Router /api/cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code": 0, "message": "success",
		"data": ctrl.store.Cart(), "count": ctrl.store.CartCount(),
	})
}

// addItemReq 加购请求体
type addItemReq struct {
	ProductID int64  `json:"productId" binding:"required"`
	Size      string `json:"size"`
}

// AddItem 加购
// @Summary 加入购物车，同 (商品, 规格) 合并数量
// @Tags Cart
// @Router /api/cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "productId 必填"})
		return
	}

	product, err := ctrl.catalog.GetProduct(req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 404, "message": "商品不存在"})
		return
	}
	if product.IsOutOfStock {
		c.JSON(http.StatusConflict, gin.H{"code": 409, "message": "商品已售罄"})
		return
	}
	if product.HasSizes && req.Size == "" {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "该商品需要选择规格"})
		return
	}

	ctrl.store.AddToCart(*product, req.Size)
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": ctrl.store.Cart()})
}

// updateItemReq 数量调整请求体
type updateItemReq struct {
	ProductID int64  `json:"productId" binding:"required"`
	Size      string `json:"size"`
	Delta     int    `json:"delta" binding:"required"`
}

// UpdateItem 调整数量
// @Summary 条目数量增减，下限 1
// @Tags Cart
// @Router /api/cart/items [put]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	var req updateItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "productId 和 delta 必填"})
		return
	}
	ctrl.store.UpdateQuantity(req.ProductID, req.Size, req.Delta)
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": ctrl.store.Cart()})
}

// RemoveItem 删除条目
// @Summary 按 (商品ID, 规格) 删除购物车条目
// @Tags Cart
// @Param id query int true "商品ID"
// @Param size query string false "规格"
// @Router /api/cart/items [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "无效的商品ID"})
		return
	}
	ctrl.store.RemoveFromCart(id, c.Query("size"))
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": ctrl.store.Cart()})
}

// ClearCart 清空购物车
// @Summary 清空购物车
// @Tags Cart
// @Router /api/cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	ctrl.store.ClearCart()
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success"})
}

// Checkout 结账
// @Summary 把购物车固化为 pending 订单并清空购物车
// @Tags Cart
// @Router /api/cart/checkout [post]
func (ctrl *CartController) Checkout(c *gin.Context) {
	var req service.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "无效的结账请求"})
		return
	}
	if req.Customer.Name == "" || req.Customer.Phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "客户姓名和电话必填"})
		return
	}

	order, err := ctrl.checkout.PlaceOrder(req)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrEmptyCart) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"code": status, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": order})
}

// MyOrders 当前用户订单
// @Summary 按手机号过滤的订单列表
// @Tags Cart
// @Param phone query string true "下单手机号"
// @Router /api/orders [get]
func (ctrl *CartController) MyOrders(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "phone 必填"})
		return
	}
	orders := ctrl.store.Orders()
	mine := orders[:0:0]
	for _, o := range orders {
		if o.Customer.Phone == phone {
			mine = append(mine, o)
		}
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": mine})
}
