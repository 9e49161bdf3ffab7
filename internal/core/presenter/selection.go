package presenter

// Selection 目前開啟的食譜，零值代表沒有開啟
type Selection struct {
	name string
	open bool
}

// SelectionOf 以名稱建立選取狀態，空字串代表未選取
func SelectionOf(name string) Selection {
	var s Selection
	if name != "" {
		s.Select(name)
	}
	return s
}

// Select 開啟指定食譜
func (s *Selection) Select(name string) {
	s.name, s.open = name, true
}

// Clear 關閉詳情
func (s *Selection) Clear() {
	s.name, s.open = "", false
}

// Current 回傳目前開啟的名稱
func (s Selection) Current() (string, bool) {
	return s.name, s.open
}
