package service

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shoespot_dev_v1_202608/internal/model"
	"shoespot_dev_v1_202608/internal/store"
)

// ==================== 导出服务 ====================
// 管理端的按需导出：把当前全部集合打成一个 ZIP 包
// （每个集合一个 JSON 文档 + 清单），可选推到对象存储。
// 纯便利功能，不参与同步契约。

// ExportService 导出服务
type ExportService struct {
	store   *store.Store
	storage StorageProvider // 可为 nil，仅下载不落对象存储
}

// NewExportService 创建导出服务
func NewExportService(s *store.Store, storage StorageProvider) *ExportService {
	return &ExportService{store: s, storage: storage}
}

// exportManifest 包内清单
type exportManifest struct {
	Store       string `json:"store"`
	DataVersion int    `json:"dataVersion"`
	ExportedAt  string `json:"exportedAt"`
	Collections int    `json:"collections"`
}

// BuildBundle 生成导出包
// 返回建议文件名与 ZIP 字节
func (svc *ExportService) BuildBundle() (string, []byte, error) {
	settings := svc.store.Settings()

	docs := map[string]interface{}{
		"data/products.json":   svc.store.Products(),
		"data/categories.json": svc.store.Categories(),
		"data/settings.json":   settings,
		"data/zones.json":      svc.store.Zones(),
		"data/banners.json":    svc.store.Banners(),
		"data/coupons.json":    svc.store.Coupons(),
		"data/orders.json":     svc.store.Orders(),
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	manifest := exportManifest{
		Store:       settings.Name,
		DataVersion: model.DataVersion,
		ExportedAt:  time.Now().UTC().Format(time.RFC3339),
		Collections: len(docs),
	}
	if err := writeJSONEntry(zw, "manifest.json", manifest); err != nil {
		return "", nil, err
	}

	// 固定顺序写入，导出产物可复现
	for _, name := range []string{
		"data/products.json", "data/categories.json", "data/settings.json",
		"data/zones.json", "data/banners.json", "data/coupons.json", "data/orders.json",
	} {
		if err := writeJSONEntry(zw, name, docs[name]); err != nil {
			return "", nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return "", nil, fmt.Errorf("打包失败: %v", err)
	}

	filename := fmt.Sprintf("shoespot-export-%s.zip", time.Now().Format("20060102-150405"))
	return filename, buf.Bytes(), nil
}

// ExportAndUpload 生成导出包并推到对象存储
// 未配置存储时只返回包本身，URL 为空
func (svc *ExportService) ExportAndUpload(ctx context.Context) (filename string, data []byte, url string, err error) {
	filename, data, err = svc.BuildBundle()
	if err != nil {
		return "", nil, "", err
	}
	if svc.storage == nil {
		return filename, data, "", nil
	}
	url, err = svc.storage.Upload(ctx, data, filename, "application/zip")
	if err != nil {
		return "", nil, "", fmt.Errorf("导出包上传失败: %v", err)
	}
	return filename, data, url, nil
}

func writeJSONEntry(zw *zip.Writer, name string, v interface{}) error {
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("创建包内条目 %s 失败: %v", name, err)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("写入包内条目 %s 失败: %v", name, err)
	}
	return nil
}
