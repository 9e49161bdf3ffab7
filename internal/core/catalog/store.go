package catalog

import "sync"

// Store 食譜目錄，只有 Replace 一種寫入方式
type Store struct {
	mu      sync.RWMutex
	records []Record
}

// NewStore 創建空的目錄
func NewStore() *Store {
	return &Store{}
}

// Replace 整批替換目錄內容
func (s *Store) Replace(records []Record) {
	cp := make([]Record, len(records))
	copy(cp, records)

	s.mu.Lock()
	s.records = cp
	s.mu.Unlock()
}

// All 回傳目錄副本
func (s *Store) All() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Lookup 以名稱查詢，重複名稱時回傳第一筆
func (s *Store) Lookup(name string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.records {
		if r.Name == name {
			return r, true
		}
	}
	return Record{}, false
}

// Len 目錄筆數
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
