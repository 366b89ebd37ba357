package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shoespot_dev_v1_202608/internal/middleware"
	"shoespot_dev_v1_202608/internal/model"
	"shoespot_dev_v1_202608/internal/store"
)

// ==================== AuthController 认证入口 ====================

type AuthController struct {
	store *store.Store
}

func NewAuthController(s *store.Store) *AuthController {
	return &AuthController{store: s}
}

// loginReq 登录请求体
type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// registerReq 注册请求体
type registerReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// sessionResp 会话响应：脱敏用户 + 角色 + Token
func sessionResp(sess *store.Session, token string) gin.H {
	u := sess.User
	u.Password = ""
	role := model.RoleUser
	if sess.Kind == store.SessionKindAdmin {
		role = model.RoleAdmin
	}
	return gin.H{"user": u, "role": role, "token": token}
}

// Login 登录
// @Summary 登录（管理员直通 -> 远端用户表 -> 本地用户表）
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{} "凭证无效"
// @Router /api/auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "email 和 password 必填"})
		return
	}

	sess, ok := ctrl.store.Login(c.Request.Context(), req.Email, req.Password)
	if !ok {
		// 不区分失败原因，只给布尔结果
		c.JSON(http.StatusUnauthorized, gin.H{"code": 401, "message": "邮箱或密码不正确"})
		return
	}

	token, err := middleware.GenerateAccessToken(sess.User.ID, sess.User.Email, roleOf(sess))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": "签发 Token 失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": sessionResp(sess, token)})
}

// Register 注册
// @Summary 注册新用户，email 对可达后端查重
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{} "邮箱已被占用"
// @Router /api/auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "name、email、password 必填"})
		return
	}

	sess, ok := ctrl.store.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"code": 409, "message": "该邮箱已注册"})
		return
	}

	token, err := middleware.GenerateAccessToken(sess.User.ID, sess.User.Email, roleOf(sess))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": "签发 Token 失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": sessionResp(sess, token)})
}

// UpdateProfile 更新资料
// @Summary 乐观更新当前用户资料，远端尽力同步
// @Tags Auth
// @Security BearerAuth
// @Router /api/auth/profile [put]
func (ctrl *AuthController) UpdateProfile(c *gin.Context) {
	var user model.AppUser
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "无效的用户数据"})
		return
	}

	// 身份以 Token 为准，防止改到别人头上
	user.ID = c.GetString("user_id")
	user.Email = c.GetString("email")
	user.Role = c.GetString("role")

	ctrl.store.UpdateUser(c.Request.Context(), user)
	user.Password = ""
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": user})
}

// Logout 登出
// @Summary 清会话身份，购物车与收藏保留
// @Tags Auth
// @Router /api/auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	ctrl.store.Logout()
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success"})
}

func roleOf(sess *store.Session) string {
	if sess.Kind == store.SessionKindAdmin {
		return model.RoleAdmin
	}
	return model.RoleUser
}
