package catalog

import (
	"errors"
	"fmt"
)

// ErrInvalidDuration 無法格式化的烹調時間
var ErrInvalidDuration = errors.New("invalid cook time")

// FormatCookTime 將分鐘數格式化為 "1 hour 30 minutes" 形式
func FormatCookTime(m Minutes) (string, error) {
	if m == MinutesNaN {
		return "", fmt.Errorf("%w: not a number", ErrInvalidDuration)
	}
	if m < 0 {
		return "", fmt.Errorf("%w: %d minutes", ErrInvalidDuration, int(m))
	}

	if m < 60 {
		return fmt.Sprintf("%d minutes", int(m)), nil
	}

	hours, mins := int(m)/60, int(m)%60
	unit := "hour"
	if hours > 1 {
		unit = "hours"
	}
	if mins == 0 {
		return fmt.Sprintf("%d %s", hours, unit), nil
	}
	return fmt.Sprintf("%d %s %d minutes", hours, unit, mins), nil
}
