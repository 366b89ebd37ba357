package store

import (
	"context"
	"log"

	"github.com/google/uuid"

	"shoespot_dev_v1_202608/internal/localcache"
	"shoespot_dev_v1_202608/internal/model"
)

// ==================== 认证引擎 ====================
// 会话状态机：ANONYMOUS -> AUTHENTICATED -> ANONYMOUS。
// 登录顺序固定：管理员直通 -> 远端用户表 -> 本地用户表。
// 会话类型在本层一次性定型，下游不再重新推断。

// SessionKind 会话类型
type SessionKind int

const (
	SessionKindUser  SessionKind = iota // 普通用户会话
	SessionKindAdmin                    // 管理员会话
)

// Session 已认证会话
type Session struct {
	Kind SessionKind
	User model.AppUser
}

// sessionFor 按用户记录定型会话
func sessionFor(u model.AppUser) *Session {
	kind := SessionKindUser
	if u.IsAdmin() {
		kind = SessionKindAdmin
	}
	return &Session{Kind: kind, User: u}
}

// Session 当前会话，匿名时返回 nil
func (s *Store) Session() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil
	}
	cp := *s.session
	return &cp
}

// ==================== 登录 ====================

// Login 登录
// 返回 (会话, 是否成功)；失败不区分原因，只给布尔结果
func (s *Store) Login(ctx context.Context, email, password string) (*Session, bool) {
	// 1. 管理员直通：即使远端/本地存在同凭证的行，直通也优先
	if email == model.AdminSentinelEmail && password == model.AdminSentinelPassword {
		admin := model.DefaultAdminUser()
		sess := &Session{Kind: SessionKindAdmin, User: admin}
		s.setSession(sess)
		s.toast("Bienvenido Admin")
		return sess, true
	}

	// 2. 远端用户表精确匹配
	if client := s.resolveClient(); client != nil {
		user, err := client.FindUserByLogin(ctx, email, password)
		if err != nil {
			log.Printf("[auth] 远端登录查询失败(转本地): %v", err)
		} else if user != nil {
			sess := sessionFor(*user)
			s.setSession(sess)
			s.toast("Bienvenido " + user.Name)
			return sess, true
		}
	}

	// 3. 本地用户表兜底
	users := s.localUsers()
	for _, u := range users {
		if u.Email == email && u.Password == password {
			sess := sessionFor(u)
			s.setSession(sess)
			s.toast("Bienvenido " + u.Name)
			return sess, true
		}
	}

	return nil, false
}

// ==================== 注册 ====================

// Register 注册
// email 唯一性对可达的后端校验；无论云端是否成功，
// 新用户都追加进本地表以保证本会话立即可用
func (s *Store) Register(ctx context.Context, name, email, password string) (*Session, bool) {
	newUser := model.AppUser{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: password,
		Role:     model.RoleUser,
		Avatar:   model.DefaultUserAvatar,
		Location: model.DefaultUserLocation,
	}

	savedToCloud := false
	if client := s.resolveClient(); client != nil {
		exists, err := client.UserExistsByEmail(ctx, email)
		if err != nil {
			log.Printf("[auth] 远端查重失败(转本地): %v", err)
		} else if exists {
			return nil, false
		} else {
			if err := client.InsertUser(ctx, &newUser); err != nil {
				log.Printf("[auth] 远端注册写入失败(转本地): %v", err)
			} else {
				savedToCloud = true
			}
		}
	}

	users := s.localUsers()
	if !savedToCloud {
		for _, u := range users {
			if u.Email == email {
				return nil, false
			}
		}
	}

	users = append(users, newUser)
	s.saveLocalUsers(users)

	sess := sessionFor(newUser)
	s.setSession(sess)
	s.toast("Cuenta creada con éxito")
	return sess, true
}

// ==================== 资料更新 ====================

// UpdateUser 更新当前用户资料
// 会话态立即替换（乐观更新）；远端按 id 尽力更新，失败只记日志，
// 不回滚；本地表按 email 匹配同步替换。合成管理员不写任何后端。
func (s *Store) UpdateUser(ctx context.Context, updated model.AppUser) {
	sess := sessionFor(updated)
	s.setSession(sess)

	if !updated.IsAdmin() {
		if client := s.resolveClient(); client != nil {
			if err := client.UpdateUserByID(ctx, &updated); err != nil {
				log.Printf("[auth] 远端资料更新失败(忽略): %v", err)
			}
		}
	}

	users := s.localUsers()
	changed := false
	for i := range users {
		if users[i].Email == updated.Email {
			users[i] = updated
			changed = true
		}
	}
	if changed {
		s.saveLocalUsers(users)
	}

	s.toast("Perfil actualizado")
}

// Logout 登出：只清会话，购物车与收藏保留
func (s *Store) Logout() {
	s.setSession(nil)
	s.toast("Sesión cerrada")
}

// ==================== 内部辅助 ====================

func (s *Store) setSession(sess *Session) {
	s.mu.Lock()
	s.session = sess
	s.mu.Unlock()
}

// localUsers 读本地用户表（缓存里的扁平列表）
func (s *Store) localUsers() []model.AppUser {
	var users []model.AppUser
	s.cache.GetJSON(localcache.KeyUsersDB, &users)
	return users
}

func (s *Store) saveLocalUsers(users []model.AppUser) {
	s.cache.PutJSON(localcache.KeyUsersDB, users)
}
