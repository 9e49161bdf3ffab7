package catalog

import (
	"cmp"
	"slices"
	"strings"

	"soup-catalog/internal/pkg/common"

	"go.uber.org/zap"
)

// Build 解析整份文字資源，第一行為標題列
func Build(text string) []Record {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, ParseLine(line))
	}
	return BuildRows(rows)
}

// BuildRows 將已切分的資料列轉為目錄：略過標題列與欄位不足的列，
// 只保留允許清單中的湯品，並依允許清單順序穩定排序。重複名稱全部保留。
func BuildRows(rows [][]string) []Record {
	var records []Record
	skipped, dropped := 0, 0

	for i := 1; i < len(rows); i++ {
		rec, ok := recordFromFields(rows[i])
		if !ok {
			skipped++
			continue
		}
		if !IsSupported(rec.Name) {
			dropped++
			continue
		}
		records = append(records, rec)
	}

	slices.SortStableFunc(records, func(a, b Record) int {
		ia, _ := SoupIndex(a.Name)
		ib, _ := SoupIndex(b.Name)
		return cmp.Compare(ia, ib)
	})

	common.LogDebug("目錄建立完成",
		zap.Int("rows", max(len(rows)-1, 0)),
		zap.Int("kept", len(records)),
		zap.Int("malformed", skipped),
		zap.Int("unsupported", dropped),
	)

	return records
}
