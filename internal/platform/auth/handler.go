package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc    *Service
	secure bool // release時のみSecure属性を付ける
}

func RegisterRoutes(r gin.IRoutes, svc *Service, secure bool) {
	h := &Handler{svc: svc, secure: secure}
	r.POST("/auth/login", h.Login)
	r.POST("/auth/logout", h.Logout)
	r.GET("/auth/check", h.Check)
}

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "パスワードが入力されていません"})
		return
	}

	token, err := h.svc.Login(req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "パスワードが正しくありません"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, int(sessionTTL.Seconds()), "/", "", h.secure, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", h.secure, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) Check(c *gin.Context) {
	token, err := c.Cookie(SessionCookie)
	authenticated := err == nil && h.svc.Verify(token)
	c.JSON(http.StatusOK, gin.H{"authenticated": authenticated})
}
