package catalog

const (
	// DefaultDescription 未登錄湯品的描述
	DefaultDescription = "Delicious traditional Chinese soup recipe."
	// DefaultImage 未登錄湯品的圖片
	DefaultImage = "Pictures/AbcSoup.jpg"
)

var descriptions = map[string]string{
	"ABC Soup":                    "Classic comfort soup with corn, carrots, tomatoes, and potatoes in a naturally sweet broth.",
	"Watercress Soup":             "Refreshing and nutritious soup with tender watercress and flavorful pork ribs.",
	"Lotus Root with Peanut Soup": "Hearty and nourishing soup with lotus root and peanuts in a rich, fragrant broth.",
	"Old Cucumber Soup":           "Light and clear soup with softened old cucumber, perfect for hot weather.",
	"Herbal Chicken Soup":         "Traditional Chinese herbal soup with chicken, promoting wellness and vitality.",
}

var images = map[string]string{
	"ABC Soup":                    "Pictures/AbcSoup.jpg",
	"Watercress Soup":             "Pictures/watercress.jpg",
	"Lotus Root with Peanut Soup": "Pictures/lotus.jpg",
	"Old Cucumber Soup":           "Pictures/oldcucumbersoup.jpg",
	"Herbal Chicken Soup":         "Pictures/chinesechickenherbalsoup.jpg",
}

// Description 取得湯品描述
func Description(name string) string {
	if d, ok := descriptions[name]; ok {
		return d
	}
	return DefaultDescription
}

// Image 取得湯品圖片的相對路徑
func Image(name string) string {
	if img, ok := images[name]; ok {
		return img
	}
	return DefaultImage
}
