package model

// ==================== 内置默认数据 ====================
// 首次运行时用于远端播种；远端不可用且本地缓存为空时作为兜底状态

// DataVersion 静态数据版本号
const DataVersion = 13

// AdminSentinelEmail / AdminSentinelPassword 管理员直通凭证
// 合成身份，不落任何用户表
const (
	AdminSentinelEmail    = "admin"
	AdminSentinelPassword = "admin"
)

// DefaultRemoteURL / DefaultRemoteKey 内置远端存储凭证
// 留空表示未配置，应用进入纯本地模式
var (
	DefaultRemoteURL = ""
	DefaultRemoteKey = ""
)

// DefaultSettings 店铺默认配置
func DefaultSettings() StoreSettings {
	return StoreSettings{
		Name:           "SHOESPOT",
		Slogan:         "Calzado Premium",
		Logo:           "",
		Address:        "Calle 23 e/ L y M, Vedado, La Habana",
		Phones:         []string{"+53 5555 5555"},
		WhatsappNumber: "5355555555",
		Email:          "contacto@shoespot.cu",
		PrimaryColor:   "#F97316",
		SecondaryColor: "#FFFFFF",
		Currency:       "$",
		EnableDelivery: true,
		EnablePickup:   true,
		RemoteURL:      DefaultRemoteURL,
		RemoteKey:      DefaultRemoteKey,
	}
}

// DefaultAdminUser 管理员合成身份
func DefaultAdminUser() AppUser {
	return AppUser{
		ID:       "admin",
		Name:     "Administrador",
		Email:    "admin@shoespot.com",
		Role:     RoleAdmin,
		Avatar:   "https://cdn-icons-png.flaticon.com/512/2942/2942813.png",
		Location: "Admin HQ",
	}
}

// DefaultUserAvatar 新注册用户默认头像
const DefaultUserAvatar = "https://cdn-icons-png.flaticon.com/512/149/149071.png"

// DefaultUserLocation 新注册用户默认地区
const DefaultUserLocation = "La Habana"

// MigratedCategoryIcon 旧版字符串分类迁移时统一补的图标
const MigratedCategoryIcon = "Tag"

// InitialCategories 默认分类集合
func InitialCategories() []Category {
	return []Category{
		{ID: "1", Name: "Nike", Icon: "Zap"},
		{ID: "2", Name: "Adidas", Icon: "Star"},
		{ID: "3", Name: "Puma", Icon: "Tag"},
		{ID: "4", Name: "Jordan", Icon: "ShoppingBag"},
		{ID: "5", Name: "Reebok", Icon: "CheckCircle"},
		{ID: "6", Name: "Converse", Icon: "Moon"},
		{ID: "7", Name: "Vans", Icon: "Truck"},
		{ID: "8", Name: "NB", Icon: "Map"},
	}
}

// InitialZones 默认配送区域
func InitialZones() []DeliveryZone {
	return []DeliveryZone{
		{ID: 1, Name: "Vedado", Price: 5},
		{ID: 2, Name: "Centro Habana", Price: 7},
		{ID: 3, Name: "La Habana Vieja", Price: 8},
		{ID: 4, Name: "Miramar", Price: 10},
		{ID: 5, Name: "Playa", Price: 12},
	}
}

// InitialCoupons 默认优惠券
func InitialCoupons() []Coupon {
	return []Coupon{
		{ID: "1", Code: "HOLA50", DiscountPercentage: 0.50, IsActive: true, Description: "50% dto. en tu primer pedido"},
		{ID: "2", Code: "ZAPAS10", DiscountPercentage: 0.10, IsActive: true, Description: "10% descuento de temporada"},
		{ID: "3", Code: "VIP20", DiscountPercentage: 0.20, IsActive: false, Description: "Exclusivo VIP"},
	}
}

// InitialBanners 默认横幅
func InitialBanners() []Banner {
	return []Banner{
		{
			ID:              1,
			Title:           "Super Oferta\nDescuento\nHasta 50%",
			Subtitle:        "En tu primera compra",
			Tag:             "Limitado",
			Image:           "https://images.unsplash.com/photo-1552346154-21d32810aba3?auto=format&fit=crop&w=600&q=80",
			ActionType:      BannerActionCategory,
			ActionValue:     "Nike",
			BackgroundColor: "#F3F4F6",
			TextColor:       "#000000",
		},
		{
			ID:              2,
			Title:           "Nueva\nColección",
			Subtitle:        "Temporada 2024",
			Tag:             "Nuevo",
			Image:           "https://images.unsplash.com/photo-1608231387042-66d1773070a5?auto=format&fit=crop&w=600&q=80",
			ActionType:      BannerActionCategory,
			ActionValue:     "Adidas",
			BackgroundColor: "#FFF7ED",
			TextColor:       "#000000",
		},
	}
}

// InitialProducts 默认商品集合，与默认分类一一对应
func InitialProducts() []Product {
	return []Product{
		{
			ID: 1, Name: "Air Force 1", Brand: "Nike", Price: 120, OriginalPrice: 150,
			Category: "Nike",
			Image:    "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?auto=format&fit=crop&w=800&q=80",
			Description: "Clásico de cuero con amortiguación Air encapsulada.",
			Sizes:    []string{"39", "40", "41", "42", "43"},
			HasSizes: true,
			Images:   []string{"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?auto=format&fit=crop&w=800&q=80"},
			IsOnSale: true,
		},
		{
			ID: 2, Name: "Ultraboost 22", Brand: "Adidas", Price: 70,
			Category: "Adidas",
			Image:    "https://images.unsplash.com/photo-1576566588028-4147f3842f27?auto=format&fit=crop&w=800&q=80",
			Description: "Retorno de energía en cada zancada.",
			Sizes:    []string{"S", "M", "L"},
			HasSizes: true,
			Images:   []string{"https://images.unsplash.com/photo-1576566588028-4147f3842f27?auto=format&fit=crop&w=800&q=80"},
		},
		{
			ID: 3, Name: "RS-X Reinvention", Brand: "Puma", Price: 55,
			Category: "Puma",
			Image:    "https://images.unsplash.com/photo-1523275335684-37898b6baf30?auto=format&fit=crop&w=800&q=80",
			Description: "Silueta retro running con mezcla de materiales.",
			Sizes:    []string{"40mm", "44mm"},
			HasSizes: true,
			Images:   []string{},
		},
		{
			ID: 4, Name: "Air Max 270", Brand: "Nike", Price: 150, OriginalPrice: 180,
			Category: "Nike",
			Image:    "https://images.unsplash.com/photo-1542291026-7eec264c27ff?auto=format&fit=crop&w=800&q=80",
			Description: "Las Nike Air Max 270 ofrecen aire visible en cada paso.",
			Sizes:    []string{"39", "40", "41", "42", "43", "44"},
			HasSizes: true,
			Images: []string{
				"https://images.unsplash.com/photo-1542291026-7eec264c27ff?auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1515955656352-a1fa3ffcd111?auto=format&fit=crop&w=800&q=80",
			},
			IsOnSale: true,
		},
		{
			ID: 5, Name: "Jordan 1 Mid", Brand: "Jordan", Price: 175,
			Category: "Jordan",
			Image:    "https://images.unsplash.com/photo-1556906781-9a412961c28c?auto=format&fit=crop&w=800&q=80",
			Description: "Inspiración directa del original de 1985.",
			Sizes:    []string{"40", "41", "42", "43"},
			HasSizes: true,
			Images:   []string{"https://images.unsplash.com/photo-1556906781-9a412961c28c?auto=format&fit=crop&w=800&q=80"},
		},
		{
			ID: 6, Name: "Classic Leather", Brand: "Reebok", Price: 65, OriginalPrice: 80,
			Category: "Reebok",
			Image:    "https://images.unsplash.com/photo-1595950653106-6c9ebd614d3a?auto=format&fit=crop&w=800&q=80",
			Description: "Piel suave y entresuela EVA de amortiguación ligera.",
			Sizes:    []string{"38", "39", "40", "41"},
			HasSizes: true,
			Images:   []string{"https://images.unsplash.com/photo-1595950653106-6c9ebd614d3a?auto=format&fit=crop&w=800&q=80"},
			IsOnSale: true,
		},
		{
			ID: 7, Name: "Chuck Taylor All Star", Brand: "Converse", Price: 50,
			Category: "Converse",
			Image:    "https://images.unsplash.com/photo-1607522370275-f14206abe5d3?auto=format&fit=crop&w=800&q=80",
			Description: "La lona de caña alta que nunca pasa de moda.",
			Sizes:    []string{"Única"},
			HasSizes: false,
			Images:   []string{"https://images.unsplash.com/photo-1607522370275-f14206abe5d3?auto=format&fit=crop&w=800&q=80"},
		},
		{
			ID: 8, Name: "Old Skool", Brand: "Vans", Price: 60,
			Category: "Vans",
			Image:    "https://images.unsplash.com/photo-1525966222134-fcfa99b8ae77?auto=format&fit=crop&w=800&q=80",
			Description: "El sidestripe clásico de skate desde 1977.",
			Sizes:    []string{"39", "40", "41", "42"},
			HasSizes: true,
			Images:   []string{"https://images.unsplash.com/photo-1525966222134-fcfa99b8ae77?auto=format&fit=crop&w=800&q=80"},
			IsOutOfStock: true,
		},
	}
}
