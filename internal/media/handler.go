package media

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}
	r.GET("/media/images", h.ListImages)
}

func (h *Handler) ListImages(c *gin.Context) {
	paths, err := h.svc.ListImages()
	if err != nil {
		log.Printf("[ERROR] media: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "画像リストの取得に失敗しました"})
		return
	}
	c.JSON(http.StatusOK, paths)
}
