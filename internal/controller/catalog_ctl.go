package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shoespot_dev_v1_202608/internal/service"
	"shoespot_dev_v1_202608/internal/store"
)

// ==================== CatalogController 店面目录 ====================

type CatalogController struct {
	store   *store.Store
	catalog *service.CatalogService
}

func NewCatalogController(s *store.Store, catalog *service.CatalogService) *CatalogController {
	return &CatalogController{store: s, catalog: catalog}
}

// GetProducts 商品列表
// @Summary 商品列表，支持关键字与分类筛选
// @Tags Catalog
// @Param keyword query string false "名称/品牌/分类模糊匹配"
// @Param category query string false "分类名精确筛选"
// @Router /api/products [get]
func (ctrl *CatalogController) GetProducts(c *gin.Context) {
	products := ctrl.catalog.SearchProducts(c.Query("keyword"), c.Query("category"))
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": products, "total": len(products)})
}

// GetProduct 商品详情
// @Summary 商品详情，附带分类引用解析结果
// @Tags Catalog
// @Param id path int true "商品ID"
// @Router /api/products/{id} [get]
func (ctrl *CatalogController) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "无效的商品ID"})
		return
	}

	product, err := ctrl.catalog.GetProduct(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 404, "message": "商品不存在"})
		return
	}

	// 分类是按名称的松散引用，悬空时明确告知未匹配
	ref := ctrl.store.ResolveCategory(product.Category)
	c.JSON(http.StatusOK, gin.H{
		"code": 0, "message": "success",
		"data": gin.H{
			"product":          product,
			"categoryResolved": ref.Resolved,
		},
	})
}

// GetCategories 分类列表
// @Summary 分类列表
// @Tags Catalog
// @Router /api/categories [get]
func (ctrl *CatalogController) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": ctrl.store.Categories()})
}

// GetBanners 横幅列表
// @Summary 横幅列表，附带跳转目标解析结果
// @Tags Catalog
// @Router /api/banners [get]
func (ctrl *CatalogController) GetBanners(c *gin.Context) {
	banners := ctrl.store.Banners()
	type bannerView struct {
		Banner   interface{} `json:"banner"`
		Resolved bool        `json:"resolved"`
	}
	views := make([]bannerView, 0, len(banners))
	for _, b := range banners {
		target := ctrl.store.ResolveBannerTarget(b)
		views = append(views, bannerView{Banner: b, Resolved: target.Resolved})
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": views})
}

// GetSettings 店铺公开配置
// @Summary 店铺配置（远端凭证脱敏）
// @Tags Catalog
// @Router /api/settings [get]
func (ctrl *CatalogController) GetSettings(c *gin.Context) {
	settings := ctrl.store.Settings()
	settings.RemoteURL = ""
	settings.RemoteKey = ""
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": settings})
}

// GetZones 配送区域
// @Summary 配送区域列表
// @Tags Catalog
// @Router /api/zones [get]
func (ctrl *CatalogController) GetZones(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": ctrl.store.Zones()})
}

// GetCoupons 可用优惠券
// @Summary 当前激活的优惠券
// @Tags Catalog
// @Router /api/coupons [get]
func (ctrl *CatalogController) GetCoupons(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": ctrl.catalog.ActiveCoupons()})
}

// GetFavorites 收藏列表
// @Summary 收藏的商品列表
// @Tags Catalog
// @Router /api/favorites [get]
func (ctrl *CatalogController) GetFavorites(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": ctrl.catalog.FavoriteProducts()})
}

// ToggleFavorite 收藏开关
// @Summary 收藏/取消收藏商品
// @Tags Catalog
// @Param id path int true "商品ID"
// @Router /api/favorites/{id} [post]
func (ctrl *CatalogController) ToggleFavorite(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "无效的商品ID"})
		return
	}
	ctrl.store.ToggleFavorite(id)
	c.JSON(http.StatusOK, gin.H{
		"code": 0, "message": "success",
		"data": gin.H{"id": id, "favorite": ctrl.store.IsFavorite(id)},
	})
}
