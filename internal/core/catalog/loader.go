package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"soup-catalog/internal/infrastructure/config"
	"soup-catalog/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ErrUnsupportedSource 無法讀取的來源格式
var ErrUnsupportedSource = errors.New("unsupported catalog source")

// Loader 讀取目錄來源：http(s) URL、.xlsx 或純文字檔
type Loader struct {
	cfg    config.CatalogConfig
	client *resty.Client
}

// NewLoader 創建目錄載入器
func NewLoader(cfg config.CatalogConfig) *Loader {
	client := resty.New().
		SetTimeout(cfg.FetchTimeout).
		SetHeader("Accept", "text/csv, text/plain;q=0.9, */*;q=0.1")

	return &Loader{
		cfg:    cfg,
		client: client,
	}
}

// Source 回傳設定的來源
func (l *Loader) Source() string {
	return l.cfg.Source
}

// Load 讀取並建立目錄，只嘗試一次
func (l *Loader) Load(ctx context.Context) ([]Record, error) {
	start := time.Now()
	records, err := l.load(ctx)
	common.LogCatalogLoad(l.cfg.Source, len(records), time.Since(start), err)
	return records, err
}

func (l *Loader) load(ctx context.Context) ([]Record, error) {
	if l.cfg.IsRemote() {
		text, err := l.fetch(ctx)
		if err != nil {
			return nil, err
		}
		return Build(text), nil
	}

	switch strings.ToLower(filepath.Ext(l.cfg.Source)) {
	case ".xlsx", ".xlsm":
		rows, err := l.readSheet()
		if err != nil {
			return nil, err
		}
		return BuildRows(rows), nil
	case ".xls":
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, l.cfg.Source)
	}

	data, err := os.ReadFile(l.cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Build(string(data)), nil
}

// fetch 以 resty 取得遠端資源
func (l *Loader) fetch(ctx context.Context) (string, error) {
	common.LogDebug("Fetching catalog", zap.String("url", l.cfg.Source))

	resp, err := l.client.R().SetContext(ctx).Get(l.cfg.Source)
	if err != nil {
		return "", fmt.Errorf("failed to fetch catalog: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("failed to fetch catalog: status %d", resp.StatusCode())
	}
	return resp.String(), nil
}

// readSheet 以 excelize 讀取工作表
func (l *Loader) readSheet() ([][]string, error) {
	f, err := excelize.OpenFile(l.cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := l.cfg.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	width := minColumns
	if len(rows) > 0 {
		width = max(width, len(rows[0]))
	}

	// GetRows 會省略列尾的空白儲存格，補齊後與 CSV 來源一致
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		padded := make([]string, max(width, len(row)))
		for j, cell := range row {
			padded[j] = strings.TrimSpace(cell)
		}
		rows[i] = padded
	}
	return rows, nil
}
