package catalog

// SupportedSoups 支援的湯品，同時決定顯示順序
var SupportedSoups = []string{
	"Lotus Root with Peanut Soup",
	"ABC Soup",
	"Watercress Soup",
	"Old Cucumber Soup",
	"Herbal Chicken Soup",
}

var soupIndex = func() map[string]int {
	idx := make(map[string]int, len(SupportedSoups))
	for i, name := range SupportedSoups {
		idx[name] = i
	}
	return idx
}()

// SoupIndex 回傳名稱在允許清單中的位置
func SoupIndex(name string) (int, bool) {
	i, ok := soupIndex[name]
	return i, ok
}

// IsSupported 判斷名稱是否在允許清單中
func IsSupported(name string) bool {
	_, ok := soupIndex[name]
	return ok
}
