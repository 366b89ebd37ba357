package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shoespot_dev_v1_202608/internal/model"
	"shoespot_dev_v1_202608/internal/service"
	"shoespot_dev_v1_202608/internal/store"
)

// ==================== AdminController 后台管理 ====================
// 集合 setter 的 HTTP 入口。校验在这里做完再调 Store，
// Store 层本身不校验（契约如此）。

type AdminController struct {
	store    *store.Store
	checkout *service.CheckoutService
	export   *service.ExportService
}

func NewAdminController(s *store.Store, checkout *service.CheckoutService, export *service.ExportService) *AdminController {
	return &AdminController{store: s, checkout: checkout, export: export}
}

// ==================== 集合替换 ====================

// SetProducts 整体替换商品集合
// @Summary 替换商品集合
// @Tags Admin
// @Security BearerAuth
// @Router /api/admin/products [put]
func (ctrl *AdminController) SetProducts(c *gin.Context) {
	var products []model.Product
	if err := c.ShouldBindJSON(&products); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "无效的商品列表"})
		return
	}
	for _, p := range products {
		if p.Name == "" || p.Price <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "商品必须有名称和正价格"})
			return
		}
	}
	ctrl.store.SetProducts(products)
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success"})
}

// SetCategories 整体替换分类集合
// @Summary 替换分类集合（删除分类不级联商品）
// @Tags Admin
// @Security BearerAuth
// @Router /api/admin/categories [put]
func (ctrl *AdminController) SetCategories(c *gin.Context) {
	var categories []model.Category
	if err := c.ShouldBindJSON(&categories); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "无效的分类列表"})
		return
	}
	for _, cat := range categories {
		if cat.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "分类名称必填"})
			return
		}
	}
	ctrl.store.SetCategories(categories)
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success"})
}

// SetSettings 替换店铺配置
// @Summary 替换店铺配置（含远端存储覆盖凭证）
// @Tags Admin
// @Security BearerAuth
// @Router /api/admin/settings [put]
func (ctrl *AdminController) SetSettings(c *gin.Context) {
	var settings model.StoreSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "无效的配置"})
		return
	}
	if settings.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "店铺名称必填"})
		return
	}
	ctrl.store.SetSettings(settings)
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success"})
}

// SetZones 替换配送区域
// @Summary 替换配送区域集合
// @Tags Admin
// @Security BearerAuth
// @Router /api/admin/zones [put]
func (ctrl *AdminController) SetZones(c *gin.Context) {
	var zones []model.DeliveryZone
	if err := c.ShouldBindJSON(&zones); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "无效的区域列表"})
		return
	}
	for _, z := range zones {
		if z.Name == "" || z.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "区域必须有名称且运费非负"})
			return
		}
	}
	ctrl.store.SetZones(zones)
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success"})
}

// SetBanners 替换横幅
// @Summary 替换横幅集合，跳转目标必须可解析
// @Tags Admin
// @Security BearerAuth
// @Router /api/admin/banners [put]
func (ctrl *AdminController) SetBanners(c *gin.Context) {
	var banners []model.Banner
	if err := c.ShouldBindJSON(&banners); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "无效的横幅列表"})
		return
	}
	for _, b := range banners {
		if b.Title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "横幅标题必填"})
			return
		}
		if target := ctrl.store.ResolveBannerTarget(b); !target.Resolved {
			c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "横幅跳转目标无法解析: " + b.ActionValue})
			return
		}
	}
	ctrl.store.SetBanners(banners)
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success"})
}

// SetCoupons 替换优惠券
// @Summary 替换优惠券集合，折扣限定 [0,1]
// @Tags Admin
// @Security BearerAuth
// @Router /api/admin/coupons [put]
func (ctrl *AdminController) SetCoupons(c *gin.Context) {
	var coupons []model.Coupon
	if err := c.ShouldBindJSON(&coupons); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "无效的优惠券列表"})
		return
	}
	for _, cp := range coupons {
		if cp.Code == "" || cp.DiscountPercentage < 0 || cp.DiscountPercentage > 1 {
			c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "券码必填且折扣在 [0,1] 区间"})
			return
		}
	}
	ctrl.store.SetCoupons(coupons)
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success"})
}

// ==================== 订单管理 ====================

// GetOrders 全量订单
// @Summary 订单列表（最近在前）
// @Tags Admin
// @Security BearerAuth
// @Router /api/admin/orders [get]
func (ctrl *AdminController) GetOrders(c *gin.Context) {
	orders := ctrl.store.Orders()
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": orders, "total": len(orders)})
}

// statusReq 状态流转请求体
type statusReq struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus 订单状态流转
// @Summary 修改订单状态 pending|completed|cancelled
// @Tags Admin
// @Security BearerAuth
// @Param id path string true "订单ID"
// @Router /api/admin/orders/{id}/status [put]
func (ctrl *AdminController) UpdateOrderStatus(c *gin.Context) {
	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "status 必填"})
		return
	}
	if err := ctrl.checkout.UpdateOrderStatus(c.Param("id"), req.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success"})
}

// ==================== 导出与观测 ====================

// Export 导出当前数据包
// @Summary 导出全部集合为 ZIP；upload=1 时推到对象存储并返回 URL
// @Tags Admin
// @Security BearerAuth
// @Router /api/admin/export [get]
func (ctrl *AdminController) Export(c *gin.Context) {
	if c.Query("upload") == "1" {
		filename, _, url, err := ctrl.export.ExportAndUpload(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": gin.H{"filename": filename, "url": url}})
		return
	}

	filename, data, err := ctrl.export.BuildBundle()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": err.Error()})
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/zip", data)
}

// SyncStatus 同步健康观测
// @Summary 初始加载状态 + 最近远端写入失败 + 滞留写入数
// @Tags Admin
// @Security BearerAuth
// @Router /api/admin/sync-status [get]
func (ctrl *AdminController) SyncStatus(c *gin.Context) {
	var lastErr string
	if err := ctrl.store.LastSyncError(); err != nil {
		lastErr = err.Error()
	}
	c.JSON(http.StatusOK, gin.H{
		"code": 0, "message": "success",
		"data": gin.H{
			"loading":       ctrl.store.IsLoading(),
			"lastSyncError": lastErr,
			"parkedWrites":  ctrl.store.ParkedWrites(),
		},
	})
}
