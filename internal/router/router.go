package router

import (
	"github.com/gin-gonic/gin"

	"shoespot_dev_v1_202608/internal/controller"
	"shoespot_dev_v1_202608/internal/middleware"
)

// Controllers 路由需要的控制器集合
type Controllers struct {
	Auth    *controller.AuthController
	Catalog *controller.CatalogController
	Cart    *controller.CartController
	Admin   *controller.AdminController
}

// SetupRouter 注册全部路由
func SetupRouter(ctls *Controllers) *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")
	{
		// auth 认证组
		auth := api.Group("/auth")
		{
			auth.POST("/login", ctls.Auth.Login)
			auth.POST("/register", ctls.Auth.Register)
			auth.POST("/logout", ctls.Auth.Logout)
			auth.PUT("/profile", middleware.JWTAuth(), ctls.Auth.UpdateProfile)
		}

		// 店面目录，公开只读
		api.GET("/products", ctls.Catalog.GetProducts)
		api.GET("/products/:id", ctls.Catalog.GetProduct)
		api.GET("/categories", ctls.Catalog.GetCategories)
		api.GET("/banners", ctls.Catalog.GetBanners)
		api.GET("/settings", ctls.Catalog.GetSettings)
		api.GET("/zones", ctls.Catalog.GetZones)
		api.GET("/coupons", ctls.Catalog.GetCoupons)

		// 收藏
		api.GET("/favorites", ctls.Catalog.GetFavorites)
		api.POST("/favorites/:id", ctls.Catalog.ToggleFavorite)

		// 购物车与结账
		cart := api.Group("/cart")
		{
			cart.GET("", ctls.Cart.GetCart)
			cart.DELETE("", ctls.Cart.ClearCart)
			cart.POST("/items", ctls.Cart.AddItem)
			cart.PUT("/items", ctls.Cart.UpdateItem)
			cart.DELETE("/items", ctls.Cart.RemoveItem)
			cart.POST("/checkout", ctls.Cart.Checkout)
		}
		api.GET("/orders", ctls.Cart.MyOrders)

		// admin 后台，JWT + 管理员角色双重门
		admin := api.Group("/admin", middleware.JWTAuth(), middleware.AdminOnly())
		{
			admin.PUT("/products", ctls.Admin.SetProducts)
			admin.PUT("/categories", ctls.Admin.SetCategories)
			admin.PUT("/settings", ctls.Admin.SetSettings)
			admin.PUT("/zones", ctls.Admin.SetZones)
			admin.PUT("/banners", ctls.Admin.SetBanners)
			admin.PUT("/coupons", ctls.Admin.SetCoupons)
			admin.GET("/orders", ctls.Admin.GetOrders)
			admin.PUT("/orders/:id/status", ctls.Admin.UpdateOrderStatus)
			admin.GET("/export", ctls.Admin.Export)
			admin.GET("/sync-status", ctls.Admin.SyncStatus)
		}
	}

	return r
}
