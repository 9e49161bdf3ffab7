// Package catalog 載入、過濾並排序湯品食譜目錄。
package catalog

import (
	"math"
	"regexp"
	"strconv"
)

// Minutes 烹調時間（分鐘）
type Minutes int

// MinutesNaN 表示來源資料中無法解析的時間
const MinutesNaN Minutes = math.MinInt

// Valid 回報時間是否可格式化
func (m Minutes) Valid() bool {
	return m != MinutesNaN && m >= 0
}

// Record 食譜目錄中的一筆資料
type Record struct {
	Name         string  `json:"soup_name"`
	Difficulty   string  `json:"difficulty"`
	Ingredients  string  `json:"ingredients"`
	CookTime     Minutes `json:"cook_time_minutes"`
	Instructions string  `json:"instructions"`
	Source       string  `json:"source"`
}

// 欄位順序固定，標題列不做驗證
const (
	colName = iota
	colDifficulty
	colIngredients
	colCookTime
	colInstructions
	colSource

	minColumns
)

var leadingInt = regexp.MustCompile(`^[+-]?\d+`)

// ParseMinutes 解析開頭的整數（"90 min" 視為 90），失敗時回傳 MinutesNaN
func ParseMinutes(raw string) Minutes {
	digits := leadingInt.FindString(raw)
	if digits == "" {
		return MinutesNaN
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n == int(MinutesNaN) {
		return MinutesNaN
	}
	return Minutes(n)
}

// recordFromFields 依欄位位置建立 Record，欄位不足時回傳 false
func recordFromFields(fields []string) (Record, bool) {
	if len(fields) < minColumns {
		return Record{}, false
	}
	return Record{
		Name:         fields[colName],
		Difficulty:   fields[colDifficulty],
		Ingredients:  fields[colIngredients],
		CookTime:     ParseMinutes(fields[colCookTime]),
		Instructions: fields[colInstructions],
		Source:       fields[colSource],
	}, true
}
