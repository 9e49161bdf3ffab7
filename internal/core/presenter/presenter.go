// Package presenter 將食譜目錄轉成卡片與詳情視圖並渲染 HTML。
package presenter

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"

	"soup-catalog/internal/core/cache"
	"soup-catalog/internal/core/catalog"
	"soup-catalog/internal/pkg/common"

	"go.uber.org/zap"
)

const (
	// UnknownCookTime 時間無法格式化時顯示的文字
	UnknownCookTime = "Unknown time"

	detailNamespace = "detail"
)

// Card 食譜卡片
type Card struct {
	Name        string `json:"soup_name"`
	Image       string `json:"image"`
	Description string `json:"description"`
	CookTime    string `json:"cook_time"`
	Difficulty  string `json:"difficulty"`
}

// Detail 食譜詳情
type Detail struct {
	Card
	DifficultyLabel   string   `json:"difficulty_label"`
	CookTimeMinutes   int      `json:"cook_time_minutes"`
	Ingredients       []string `json:"ingredients"`
	Instructions      []string `json:"instructions"`
	InstructionFormat string   `json:"instruction_format"`
	Source            string   `json:"source"`
}

// PageData 頁面渲染資料
type PageData struct {
	Title      string
	Cards      []Card
	Detail     *Detail
	LoadFailed bool
}

// Presenter 目錄視圖
type Presenter struct {
	store    *catalog.Store
	cache    cache.Store
	loadErr  error
	renderer *Renderer
}

// New 創建視圖；loadErr 為目錄載入時的錯誤，非 nil 時頁面顯示錯誤訊息
func New(store *catalog.Store, cacheStore cache.Store, loadErr error) *Presenter {
	return &Presenter{
		store:    store,
		cache:    cacheStore,
		loadErr:  loadErr,
		renderer: NewRenderer(),
	}
}

// LoadError 回傳目錄載入錯誤
func (p *Presenter) LoadError() error {
	return p.loadErr
}

// CacheStats 回傳快取統計；未啟用快取或快取不提供統計時回傳 nil
func (p *Presenter) CacheStats() map[string]interface{} {
	if st, ok := p.cache.(interface{ GetStats() map[string]interface{} }); ok {
		return st.GetStats()
	}
	return nil
}

// Cards 依目錄順序建立所有卡片
func (p *Presenter) Cards() []Card {
	records := p.store.All()
	cards := make([]Card, 0, len(records))
	for _, r := range records {
		cards = append(cards, newCard(r))
	}
	return cards
}

// Detail 以名稱查詢詳情，找不到時回傳 ErrRecipeNotFound
func (p *Presenter) Detail(name string) (*Detail, error) {
	r, ok := p.store.Lookup(name)
	if !ok {
		return nil, common.ErrRecipeNotFound
	}

	cookTime := -1
	if r.CookTime.Valid() {
		cookTime = int(r.CookTime)
	}

	return &Detail{
		Card:              newCard(r),
		DifficultyLabel:   r.Difficulty,
		CookTimeMinutes:   cookTime,
		Ingredients:       catalog.SplitIngredients(r.Ingredients),
		Instructions:      catalog.SplitInstructions(r.Instructions),
		InstructionFormat: catalog.ClassifyInstructions(r.Instructions).String(),
		Source:            r.Source,
	}, nil
}

// Select 查詢名稱並更新選取狀態；找不到時不變更並回傳錯誤
func (p *Presenter) Select(sel *Selection, name string) error {
	if _, ok := p.store.Lookup(name); !ok {
		return common.ErrRecipeNotFound
	}
	sel.Select(name)
	return nil
}

// Page 建立頁面資料
func (p *Presenter) Page(sel Selection) PageData {
	data := PageData{
		Title:      "Soup Recipes",
		LoadFailed: p.loadErr != nil,
	}
	if data.LoadFailed {
		return data
	}

	data.Cards = p.Cards()
	if name, open := sel.Current(); open {
		detail, err := p.Detail(name)
		if err != nil {
			common.LogWarn("Recipe not found", zap.String("name", name))
		} else {
			data.Detail = detail
		}
	}
	return data
}

// RenderPage 渲染完整頁面
func (p *Presenter) RenderPage(w io.Writer, sel Selection) error {
	return p.renderer.Page(w, p.Page(sel))
}

// RenderDetail 渲染詳情片段，有快取時優先使用
func (p *Presenter) RenderDetail(ctx context.Context, w io.Writer, name string) error {
	if p.cache != nil {
		html, err := p.cache.Get(ctx, detailNamespace, name)
		if err == nil {
			_, err = io.WriteString(w, html)
			return err
		}
		if !errors.Is(err, common.ErrCacheMiss) {
			common.LogWarn("讀取快取失敗", zap.Error(err))
		}
	}

	detail, err := p.Detail(name)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := p.renderer.Detail(&buf, detail); err != nil {
		return err
	}

	if p.cache != nil {
		if err := p.cache.Set(ctx, detailNamespace, name, buf.String()); err != nil {
			common.LogWarn("寫入快取失敗", zap.Error(err))
		}
	}

	_, err = w.Write(buf.Bytes())
	return err
}

func newCard(r catalog.Record) Card {
	return Card{
		Name:        r.Name,
		Image:       catalog.Image(r.Name),
		Description: catalog.Description(r.Name),
		CookTime:    cookTimeLabel(r),
		Difficulty:  strings.ToUpper(r.Difficulty),
	}
}

// cookTimeLabel 格式化失敗時記錄警告並顯示 UnknownCookTime
func cookTimeLabel(r catalog.Record) string {
	label, err := catalog.FormatCookTime(r.CookTime)
	if err != nil {
		common.LogWarn("Invalid cook time",
			zap.String("name", r.Name),
			zap.Error(err),
		)
		return UnknownCookTime
	}
	return label
}
