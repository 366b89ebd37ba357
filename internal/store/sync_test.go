package store

import (
	"context"
	"encoding/json"
	"testing"

	"shoespot_dev_v1_202608/internal/localcache"
	"shoespot_dev_v1_202608/internal/model"
)

// TestSyncSeedsEmptyRemote 远端无行时播种默认数据
func TestSyncSeedsEmptyRemote(t *testing.T) {
	fake := newFakeRemote(t)
	cache := newTestCache(t)

	s := NewStore(cache, fake.Client())
	defer s.Close()
	s.Sync(context.Background())

	if s.IsLoading() {
		t.Fatal("同步结束后 loading 应为 false")
	}
	if got := len(s.Products()); got != 8 {
		t.Fatalf("播种后商品数 = %d, 期望 8", got)
	}
	if got := len(s.Categories()); got != 8 {
		t.Fatalf("播种后分类数 = %d, 期望 8", got)
	}
	if s.Settings().Name != "SHOESPOT" {
		t.Fatalf("播种后店名 = %q", s.Settings().Name)
	}
	if got := len(s.Orders()); got != 0 {
		t.Fatalf("播种后订单数 = %d, 期望 0", got)
	}

	// 远端被写入了完整快照
	if fake.UpsertCount() == 0 {
		t.Fatal("播种应写远端")
	}
	var remoteProducts []model.Product
	if !fake.RowField(t, "products", &remoteProducts) {
		t.Fatal("远端行缺 products 字段")
	}
	if len(remoteProducts) != 8 {
		t.Fatalf("远端商品数 = %d, 期望 8", len(remoteProducts))
	}

	// 缓存镜像就位
	var cachedProducts []model.Product
	if !cache.GetJSON(localcache.KeyProducts, &cachedProducts) {
		t.Fatal("缓存缺 products 快照")
	}
	if len(cachedProducts) != 8 {
		t.Fatalf("缓存商品数 = %d, 期望 8", len(cachedProducts))
	}
}

// TestSyncSeedIdempotent 先播种后加载，两次启动状态一致
func TestSyncSeedIdempotent(t *testing.T) {
	fake := newFakeRemote(t)

	s1 := NewStore(newTestCache(t), fake.Client())
	s1.Sync(context.Background())
	first := s1.Products()
	s1.Close()

	writesAfterSeed := fake.UpsertCount()

	// 第二次启动走采纳路径，不再播种
	s2 := NewStore(newTestCache(t), fake.Client())
	defer s2.Close()
	s2.Sync(context.Background())

	second := s2.Products()
	if len(first) != len(second) {
		t.Fatalf("两次启动商品数不同: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID || first[i].Name != second[i].Name {
			t.Fatalf("商品 %d 不一致: %+v vs %+v", i, first[i], second[i])
		}
	}
	if fake.UpsertCount() != writesAfterSeed {
		t.Fatal("第二次启动不应再写远端")
	}
}

// TestSyncAdoptsRemoteRow 远端有行时全量采纳
func TestSyncAdoptsRemoteRow(t *testing.T) {
	fake := newFakeRemote(t)
	custom := model.DefaultSettings()
	custom.Name = "TIENDA PROPIA"
	fake.SetRow(t, map[string]interface{}{
		"products": []model.Product{
			{ID: 99, Name: "Zapato remoto", Category: "Nike"},
		},
		"categories": []model.Category{
			{ID: "1", Name: "Nike", Icon: "Zap"},
		},
		"settings": custom,
	})

	cache := newTestCache(t)
	s := NewStore(cache, fake.Client())
	defer s.Close()
	s.Sync(context.Background())

	products := s.Products()
	if len(products) != 1 || products[0].ID != 99 {
		t.Fatalf("应采纳远端商品, got %+v", products)
	}
	if s.Settings().Name != "TIENDA PROPIA" {
		t.Fatalf("应采纳远端配置, got %q", s.Settings().Name)
	}
	// 行里缺的字段落到空集合而不是 nil 外漏
	if s.Zones() == nil || len(s.Zones()) != 0 {
		t.Fatalf("缺失字段应为空集合, got %v", s.Zones())
	}
	// 不触发播种写入
	if fake.UpsertCount() != 0 {
		t.Fatal("采纳路径不应写远端")
	}
	// 镜像进缓存
	var cached []model.Product
	if !cache.GetJSON(localcache.KeyProducts, &cached) || len(cached) != 1 {
		t.Fatalf("缓存镜像缺失, got %v", cached)
	}
}

// TestSyncWithoutClient 远端未配置时维持本地缓存态
func TestSyncWithoutClient(t *testing.T) {
	cache := newTestCache(t)
	cache.PutJSON(localcache.KeyProducts, []model.Product{{ID: 7, Name: "Local"}})

	s := NewStore(cache, nil)
	defer s.Close()
	s.Sync(context.Background())

	products := s.Products()
	if len(products) != 1 || products[0].ID != 7 {
		t.Fatalf("应维持缓存态, got %+v", products)
	}
	if s.IsLoading() {
		t.Fatal("无远端也要解除 loading")
	}
	// 空缓存键回退默认配置
	if s.Settings().Name != "SHOESPOT" {
		t.Fatalf("settings 应回退默认, got %q", s.Settings().Name)
	}
}

// TestSyncOnlyOnce 同一会话内重复 Sync 是无操作
func TestSyncOnlyOnce(t *testing.T) {
	fake := newFakeRemote(t)
	s := NewStore(newTestCache(t), fake.Client())
	defer s.Close()

	s.Sync(context.Background())
	writes := fake.UpsertCount()

	s.SetProducts([]model.Product{{ID: 1, Name: "Solo uno"}})
	s.Flush()
	s.Sync(context.Background())

	// 第二次 Sync 不应覆盖手工写入的状态
	products := s.Products()
	if len(products) != 1 || products[0].Name != "Solo uno" {
		t.Fatalf("重复 Sync 覆盖了状态: %+v", products)
	}
	if fake.UpsertCount() != writes+1 {
		t.Fatalf("期望仅 setter 的一笔写入, upserts=%d", fake.UpsertCount())
	}
}

// TestMigrateCategoriesFromStrings 旧版裸字符串分类迁移
func TestMigrateCategoriesFromStrings(t *testing.T) {
	raw, _ := json.Marshal([]string{"Nike", "Adidas", "Puma"})
	cats := migrateCategories(raw)

	if len(cats) != 3 {
		t.Fatalf("迁移后分类数 = %d, 期望 3", len(cats))
	}
	want := []model.Category{
		{ID: "0", Name: "Nike", Icon: model.MigratedCategoryIcon},
		{ID: "1", Name: "Adidas", Icon: model.MigratedCategoryIcon},
		{ID: "2", Name: "Puma", Icon: model.MigratedCategoryIcon},
	}
	for i := range want {
		if cats[i] != want[i] {
			t.Fatalf("分类 %d = %+v, 期望 %+v", i, cats[i], want[i])
		}
	}

	// 已结构化的数据原样通过
	structured, _ := json.Marshal(want)
	again := migrateCategories(structured)
	for i := range want {
		if again[i] != want[i] {
			t.Fatalf("结构化分类不应被改写: %+v", again[i])
		}
	}
}

// TestSyncMigratesRemoteStringCategories 远端行里的旧格式分类同样被迁移
func TestSyncMigratesRemoteStringCategories(t *testing.T) {
	fake := newFakeRemote(t)
	fake.SetRow(t, map[string]interface{}{
		"products":   []model.Product{},
		"categories": []string{"Nike", "Adidas"},
	})

	s := NewStore(newTestCache(t), fake.Client())
	defer s.Close()
	s.Sync(context.Background())

	cats := s.Categories()
	if len(cats) != 2 {
		t.Fatalf("分类数 = %d, 期望 2", len(cats))
	}
	if cats[0].ID != "0" || cats[0].Icon != model.MigratedCategoryIcon {
		t.Fatalf("迁移结果异常: %+v", cats[0])
	}
}
