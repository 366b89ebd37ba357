package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"shoespot_dev_v1_202608/internal/model"
)

// ==================== 远端文档存储客户端 ====================
// 托管的行式文档存储，REST 访问：
//   store_data 单例行（id=1）承载全部集合快照，点查 + upsert
//   app_users  用户表，按 email/password 精确匹配登录，按 id 更新

// StoreRowID 单例行固定主键
const StoreRowID = 1

// ErrRowNotFound 单例行不存在（首次运行，触发播种）
var ErrRowNotFound = errors.New("remote: store row not found")

// StoreRow 单例行结构
// categories 保留原始字节：旧版数据可能是裸字符串数组，由同步层做迁移
type StoreRow struct {
	ID         int64                `json:"id"`
	Products   []model.Product      `json:"products"`
	Categories json.RawMessage      `json:"categories"`
	Settings   *model.StoreSettings `json:"settings"`
	Zones      []model.DeliveryZone `json:"zones"`
	Banners    []model.Banner       `json:"banners"`
	Coupons    []model.Coupon       `json:"coupons"`
	Orders     []model.Order        `json:"orders"`
	UpdatedAt  string               `json:"updated_at"`
}

// ==================== Client ====================

// Client 远端存储客户端
type Client struct {
	http    *resty.Client
	baseURL string
	apiKey  string
}

// CleanURL 规范化远端地址：去空白、去末尾斜杠
func CleanURL(raw string) string {
	cleaned := strings.TrimSpace(raw)
	return strings.TrimSuffix(cleaned, "/")
}

// NewClient 创建客户端
// URL 或 Key 为空视为未配置，返回 nil，应用进入纯本地模式
func NewClient(rawURL, apiKey string) *Client {
	baseURL := CleanURL(rawURL)
	apiKey = strings.TrimSpace(apiKey)
	if baseURL == "" || apiKey == "" {
		return nil
	}

	http := resty.New().
		SetBaseURL(baseURL+"/rest/v1").
		SetTimeout(10*time.Second).
		SetHeader("apikey", apiKey).
		SetHeader("Authorization", "Bearer "+apiKey).
		SetHeader("Content-Type", "application/json")

	return &Client{http: http, baseURL: baseURL, apiKey: apiKey}
}

// BaseURL 连接的远端地址（比对自定义配置用）
func (c *Client) BaseURL() string { return c.baseURL }

// APIKey 连接的凭证
func (c *Client) APIKey() string { return c.apiKey }

// ==================== store_data 单例行 ====================

// LoadStoreRow 点查单例行
// 行不存在返回 ErrRowNotFound；表不存在、网络异常等同样返回错误，
// 初始加载对二者的处理是一致的（回退播种）
func (c *Client) LoadStoreRow(ctx context.Context) (*StoreRow, error) {
	var rows []StoreRow
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("id", fmt.Sprintf("eq.%d", StoreRowID)).
		SetResult(&rows).
		Get("/store_data")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("remote: load store row status %d: %s", resp.StatusCode(), resp.String())
	}
	if len(rows) == 0 {
		return nil, ErrRowNotFound
	}
	return &rows[0], nil
}

// UpsertStoreRow 合并式写入单例行
// patch 只携带变化字段 + updated_at，行级 last-write-wins
func (c *Client) UpsertStoreRow(ctx context.Context, patch map[string]interface{}) error {
	body := map[string]interface{}{"id": StoreRowID}
	for k, v := range patch {
		body[k] = v
	}
	body["updated_at"] = time.Now().UTC().Format(time.RFC3339)

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Prefer", "resolution=merge-duplicates").
		SetBody(body).
		Post("/store_data")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("remote: upsert store row status %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}

// ==================== app_users 用户表 ====================

// FindUserByLogin 按 (email, password) 精确匹配查询
// 未命中返回 (nil, nil)，只有传输层故障才返回 error
func (c *Client) FindUserByLogin(ctx context.Context, email, password string) (*model.AppUser, error) {
	var users []model.AppUser
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("email", "eq."+email).
		SetQueryParam("password", "eq."+password).
		SetQueryParam("limit", "1").
		SetResult(&users).
		Get("/app_users")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("remote: find user status %d", resp.StatusCode())
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

// UserExistsByEmail 注册查重
func (c *Client) UserExistsByEmail(ctx context.Context, email string) (bool, error) {
	var rows []struct {
		ID string `json:"id"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("email", "eq."+email).
		SetQueryParam("select", "id").
		SetResult(&rows).
		Get("/app_users")
	if err != nil {
		return false, err
	}
	if resp.IsError() {
		return false, fmt.Errorf("remote: check email status %d", resp.StatusCode())
	}
	return len(rows) > 0, nil
}

// InsertUser 新增用户行
func (c *Client) InsertUser(ctx context.Context, user *model.AppUser) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(user).
		Post("/app_users")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("remote: insert user status %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}

// UpdateUserByID 按 id 更新用户行
func (c *Client) UpdateUserByID(ctx context.Context, user *model.AppUser) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("id", "eq."+user.ID).
		SetBody(user).
		Patch("/app_users")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("remote: update user status %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}
