package attendance

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

// RegisterRoutes: 打刻・参照・エクスポート
func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.POST("/attendance", h.Punch)
	r.GET("/attendance", h.List)
	r.GET("/attendance/today", h.Today)
	r.GET("/attendance/export", h.Export)
	r.GET("/attendance/export/csv", h.ExportCSV)
}

// RegisterAdminRoutes: 管理操作。認証ミドルウェアの内側に置くこと。
func RegisterAdminRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.DELETE("/attendance/:id", h.Delete)
}

func (h *Handler) Punch(c *gin.Context) {
	var req PunchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newErrDTO(ErrInvalid("打刻タイプが指定されていません")))
		return
	}
	res, err := h.svc.Punch(c.Request.Context(), req)
	if err != nil {
		c.JSON(toHTTPStatus(err), newErrDTO(err))
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *Handler) List(c *gin.Context) {
	records, err := h.svc.List(c.Request.Context(), c.Query("date"))
	if err != nil {
		c.JSON(toHTTPStatus(err), newErrDTO(err))
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *Handler) Today(c *gin.Context) {
	records, err := h.svc.Today(c.Request.Context())
	if err != nil {
		c.JSON(toHTTPStatus(err), newErrDTO(err))
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *Handler) Export(c *gin.Context) {
	res, err := h.svc.Export(c.Request.Context())
	if err != nil {
		c.JSON(toHTTPStatus(err), newErrDTO(err))
		return
	}
	writeDownload(c, res)
}

func (h *Handler) ExportCSV(c *gin.Context) {
	res, err := h.svc.ExportCSV(c.Request.Context())
	if err != nil {
		c.JSON(toHTTPStatus(err), newErrDTO(err))
		return
	}
	writeDownload(c, res)
}

func (h *Handler) Delete(c *gin.Context) {
	res, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(toHTTPStatus(err), newErrDTO(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// writeDownload: 日本語ファイル名なのでRFC 5987形式で渡す
func writeDownload(c *gin.Context, res ExportResult) {
	disposition := fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(res.Filename))
	c.Header("Content-Disposition", disposition)
	c.Data(http.StatusOK, res.ContentType, res.Content)
}

// ===== helpers =====
type errDTO struct {
	Error *APIError `json:"error"`
}

func newErrDTO(err error) errDTO {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return errDTO{Error: apiErr}
	}
	return errDTO{Error: ErrInternal(err.Error())}
}
