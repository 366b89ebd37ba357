package model

// ==================== 用户角色常量 ====================

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ==================== AppUser 店铺用户 ====================

// AppUser 店铺注册用户
// 远端 app_users 表按 id 主键存储，email 作为唯一业务键；
// 本地用户表是缓存里的一份扁平列表
// 密码明文精确比对，沿用远端表的既有口径（见 DESIGN.md）
type AppUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Avatar   string `json:"avatar"`
	Role     string `json:"role,omitempty"`
	Location string `json:"location,omitempty"`
}

// IsAdmin 是否管理员身份
func (u *AppUser) IsAdmin() bool {
	return u.Role == RoleAdmin
}
