package recipe

import (
	"bytes"
	"errors"
	"net/http"

	"soup-catalog/internal/core/presenter"
	"soup-catalog/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListResponse 食譜列表響應
type ListResponse struct {
	Recipes []presenter.Card `json:"recipes"`
	Count   int              `json:"count"`
}

// Handler 食譜處理程序
type Handler struct {
	presenter *presenter.Presenter
	debug     bool
}

// NewHandler 創建新的食譜處理程序
func NewHandler(p *presenter.Presenter, debug bool) *Handler {
	return &Handler{
		presenter: p,
		debug:     debug,
	}
}

// HandleIndex 渲染卡片頁面，?recipe= 開啟詳情
func (h *Handler) HandleIndex(c *gin.Context) {
	requestID := common.RequestID(c)
	var sel presenter.Selection
	if name := selectedName(c); name != "" {
		if err := h.presenter.Select(&sel, name); err != nil {
			common.LogWarn("無法開啟食譜詳情",
				zap.String("request_id", requestID),
				zap.String("name", name),
			)
		}
	}

	var buf bytes.Buffer
	if err := h.presenter.RenderPage(&buf, sel); err != nil {
		common.LogError("頁面渲染失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// HandleDetailFragment 只渲染詳情片段
func (h *Handler) HandleDetailFragment(c *gin.Context) {
	requestID := common.RequestID(c)
	name := recipeName(c)

	var buf bytes.Buffer
	if err := h.presenter.RenderDetail(c.Request.Context(), &buf, name); err != nil {
		if errors.Is(err, common.ErrRecipeNotFound) {
			common.LogWarn("Recipe not found",
				zap.String("request_id", requestID),
				zap.String("name", name),
			)
			c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte(`<p class="recipe-message">Recipe not found.</p>`))
			return
		}
		common.LogError("詳情渲染失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
			zap.String("name", name),
		)
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// HandleListRecipes 以 JSON 回傳所有卡片
func (h *Handler) HandleListRecipes(c *gin.Context) {
	requestID := common.RequestID(c)

	if err := h.presenter.LoadError(); err != nil {
		common.LogWarn("目錄不可用",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		common.WriteError(c, common.ErrCatalogUnavailable.Wrap(err), h.debug)
		return
	}

	cards := h.presenter.Cards()
	c.JSON(http.StatusOK, ListResponse{
		Recipes: cards,
		Count:   len(cards),
	})
}

// HandleGetRecipe 以 JSON 回傳單一食譜詳情
func (h *Handler) HandleGetRecipe(c *gin.Context) {
	requestID := common.RequestID(c)
	name := recipeName(c)

	if err := h.presenter.LoadError(); err != nil {
		common.WriteError(c, common.ErrCatalogUnavailable.Wrap(err), h.debug)
		return
	}

	detail, err := h.presenter.Detail(name)
	if err != nil {
		common.LogWarn("Recipe not found",
			zap.String("request_id", requestID),
			zap.String("name", name),
		)
		common.WriteError(c, err, h.debug)
		return
	}

	c.JSON(http.StatusOK, detail)
}
