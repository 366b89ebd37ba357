package localcache

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ==================== 本地缓存适配器 ====================
// 包装本地持久化键值存储：每个集合一个命名空间键，值为序列化快照。
// 写失败只记日志不上抛，内存态永远先行。

// 集合键名
const (
	KeyProducts   = "products"
	KeyCategories = "categories"
	KeySettings   = "settings"
	KeyZones      = "zones"
	KeyBanners    = "banners"
	KeyCoupons    = "coupons"
	KeyOrders     = "orders"
	KeyCart       = "cart"
	KeyFavs       = "favs"
	KeyUsersDB    = "users_db" // 本地用户表，扁平列表
)

// keyPrefix 命名空间前缀，与旧版 localStorage 键保持一致
const keyPrefix = "shoespots_"

// Snapshot 快照行
type Snapshot struct {
	Key       string         `gorm:"primaryKey;size:64"`
	Value     datatypes.JSON `gorm:"type:json"`
	UpdatedAt time.Time
}

func (Snapshot) TableName() string { return "cache_snapshots" }

// Models 本包需要迁移的表
func Models() []interface{} {
	return []interface{}{&Snapshot{}}
}

// ==================== Cache ====================

// Cache 本地缓存适配器
type Cache struct {
	db *gorm.DB
}

// NewCache 创建缓存适配器
func NewCache(db *gorm.DB) *Cache {
	return &Cache{db: db}
}

// PutJSON 序列化并写入快照，尽力而为
// 任何失败（序列化、磁盘满、库被禁用）都吞掉，只留一条日志
func (c *Cache) PutJSON(key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("[localcache] 序列化失败 key=%s: %v", key, err)
		return
	}
	row := Snapshot{Key: keyPrefix + key, Value: data, UpdatedAt: time.Now()}
	err = c.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(&row).Error
	if err != nil {
		log.Printf("[localcache] 写入失败 key=%s: %v", key, err)
	}
}

// GetRaw 读取原始快照字节
// 第二个返回值表示键是否存在
func (c *Cache) GetRaw(key string) ([]byte, bool) {
	var row Snapshot
	err := c.db.First(&row, "key = ?", keyPrefix+key).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[localcache] 读取失败 key=%s: %v", key, err)
		}
		return nil, false
	}
	return []byte(row.Value), true
}

// GetJSON 读取并反序列化到 dest
// 键不存在或内容损坏都返回 false，由调用方回退默认值
func (c *Cache) GetJSON(key string, dest interface{}) bool {
	raw, ok := c.GetRaw(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Printf("[localcache] 快照损坏 key=%s: %v", key, err)
		return false
	}
	return true
}

// Delete 删除快照，测试和登出清理用
func (c *Cache) Delete(key string) {
	if err := c.db.Delete(&Snapshot{}, "key = ?", keyPrefix+key).Error; err != nil {
		log.Printf("[localcache] 删除失败 key=%s: %v", key, err)
	}
}
