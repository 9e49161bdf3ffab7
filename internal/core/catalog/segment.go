package catalog

import (
	"regexp"
	"strings"
)

// InstructionFormat 步驟文字的切分方式
type InstructionFormat int

const (
	// FormatSentences 以句點分隔
	FormatSentences InstructionFormat = iota
	// FormatNumbered 以 "1) 2)" 編號分隔
	FormatNumbered
)

func (f InstructionFormat) String() string {
	if f == FormatNumbered {
		return "numbered"
	}
	return "sentences"
}

var stepNumber = regexp.MustCompile(`\d+\)\s*`)

// ClassifyInstructions 只要出現 ')' 就視為編號格式，句中的括號也會觸發
func ClassifyInstructions(raw string) InstructionFormat {
	if strings.Contains(raw, ")") {
		return FormatNumbered
	}
	return FormatSentences
}

// SplitIngredients 以逗號切分食材並去除空白項目
func SplitIngredients(raw string) []string {
	return compact(strings.Split(raw, ","))
}

// SplitInstructions 切分步驟，每一步以單一句點結尾
func SplitInstructions(raw string) []string {
	var pieces []string
	switch ClassifyInstructions(raw) {
	case FormatNumbered:
		pieces = stepNumber.Split(raw, -1)
	default:
		pieces = strings.Split(raw, ".")
	}

	steps := compact(pieces)
	for i, step := range steps {
		steps[i] = strings.TrimSuffix(step, ".") + "."
	}
	return steps
}

// compact 去除前後空白並丟棄空字串，保留順序
func compact(pieces []string) []string {
	out := make([]string, 0, len(pieces))
	for _, p := range pieces {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
