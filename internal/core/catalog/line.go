package catalog

import "strings"

// ParseLine 以逗號切分一行，雙引號內的逗號視為內容。
// 雙引號只切換模式並會被移除，不支援 "" 跳脫。
func ParseLine(line string) []string {
	var (
		fields  []string
		current strings.Builder
		quoted  bool
	)

	// 分隔符號皆為 ASCII，逐位元組處理可保留非 UTF-8 內容
	for i := 0; i < len(line); i++ {
		b := line[i]
		switch {
		case b == '"':
			quoted = !quoted
		case b == ',' && !quoted:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(b)
		}
	}

	return append(fields, strings.TrimSpace(current.String()))
}
