package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"shoespot_dev_v1_202608/internal/controller"
	"shoespot_dev_v1_202608/internal/localcache"
	"shoespot_dev_v1_202608/internal/middleware"
	"shoespot_dev_v1_202608/internal/model"
	"shoespot_dev_v1_202608/internal/remote"
	"shoespot_dev_v1_202608/internal/router"
	"shoespot_dev_v1_202608/internal/service"
	"shoespot_dev_v1_202608/internal/store"
	"shoespot_dev_v1_202608/internal/task"
	"shoespot_dev_v1_202608/pkg/database"
)

func main() {
	// 0. 环境变量（.env 不存在时静默跳过）
	if err := godotenv.Load(); err != nil {
		log.Println("未找到 .env 文件，使用进程环境变量")
	}

	// 1. 初始化应用状态
	deps := initDependencies()
	defer deps.Store.Close()

	// 2. 初始同步：UI 唯一需要等待的操作
	syncCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	deps.Store.Sync(syncCtx)
	cancel()

	// 3. 启动定时任务
	initTasks(deps)

	// 4. 初始化路由
	r := router.SetupRouter(deps.Controllers)

	// 5. 启动服务
	startServer(r)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	Store       *store.Store
	Controllers *router.Controllers
	OutboxTask  *task.OutboxFlushTask
}

// initDependencies 初始化所有依赖
func initDependencies() *Dependencies {
	// -------- 远端凭证 --------
	// 内置默认允许环境变量注入；留空即纯本地模式
	model.DefaultRemoteURL = getEnv("REMOTE_STORE_URL", model.DefaultRemoteURL)
	model.DefaultRemoteKey = getEnv("REMOTE_STORE_KEY", model.DefaultRemoteKey)

	if secret := getEnv("JWT_SECRET", ""); secret != "" {
		cfg := middleware.DefaultJWTConfig()
		cfg.SecretKey = secret
		middleware.SetJWTConfig(cfg)
	}

	// -------- 本地缓存 --------
	db := database.InitDB(getEnv("CACHE_DB_PATH", "shoespot.db"), localcache.Models()...)
	cache := localcache.NewCache(db)

	// -------- 远端客户端 --------
	client := remote.NewClient(model.DefaultRemoteURL, model.DefaultRemoteKey)
	if client == nil {
		log.Println("远端存储未配置，进入纯本地模式")
	}

	// -------- 应用状态 --------
	st := store.NewStore(cache, client)
	st.SetNotifier(func(msg string) { log.Printf("[toast] %s", msg) })

	// -------- 服务层 --------
	catalogSvc := service.NewCatalogService(st)
	checkoutSvc := service.NewCheckoutService(st)
	exportSvc := service.NewExportService(st, initStorageProvider())

	// -------- Controller 层 --------
	controllers := &router.Controllers{
		Auth:    controller.NewAuthController(st),
		Catalog: controller.NewCatalogController(st, catalogSvc),
		Cart:    controller.NewCartController(st, catalogSvc, checkoutSvc),
		Admin:   controller.NewAdminController(st, checkoutSvc, exportSvc),
	}

	return &Dependencies{
		Store:       st,
		Controllers: controllers,
		OutboxTask:  task.NewOutboxFlushTask(st, getEnv("OUTBOX_FLUSH_SPEC", "")),
	}
}

// initStorageProvider 初始化导出包的对象存储出口
// 未配置时返回 nil，导出仅提供下载
func initStorageProvider() service.StorageProvider {
	provider := getEnv("STORAGE_PROVIDER", "")
	if provider == "" {
		return nil
	}
	storage, err := service.NewStorageProvider(&service.StorageConfig{
		Provider:      provider,
		Bucket:        getEnv("AWS_BUCKET", ""),
		Region:        getEnv("AWS_REGION", ""),
		AccessKey:     getEnv("AWS_ACCESS_KEY_ID", ""),
		SecretKey:     getEnv("AWS_SECRET_ACCESS_KEY", ""),
		CDNDomain:     getEnv("AWS_CDN_DOMAIN", ""),
		BasePath:      getEnv("STORAGE_BASE_PATH", "shoespot"),
		CloudinaryURL: getEnv("CLOUDINARY_URL", ""),
		LocalDir:      getEnv("STORAGE_LOCAL_DIR", "exports"),
	})
	if err != nil {
		log.Printf("警告: 存储服务初始化失败: %v", err)
		return nil
	}
	return storage
}

// ==================== 定时任务 ====================

// initTasks 初始化定时任务
func initTasks(deps *Dependencies) {
	if err := deps.OutboxTask.Start(); err != nil {
		log.Printf("警告: 出箱补投任务启动失败: %v", err)
		return
	}
	log.Println("定时任务已启动")
}

// ==================== 服务启动 ====================

// startServer 启动服务
func startServer(r *gin.Engine) {
	port := getEnv("SERVER_PORT", "8080")

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// 异步启动服务
	go func() {
		log.Printf("服务启动在 :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务...")

	// 优雅关闭，最多等待 10 秒
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务强制关闭: %v", err)
	}

	log.Println("服务已退出")
}

// ==================== 工具函数 ====================

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
