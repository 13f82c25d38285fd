package pointrace

import (
	"strconv"
	"strings"
)

// TenThousandSuffix marks a combat power shown in units of 10,000 ("23万").
const TenThousandSuffix = "万"

// Reading is the outcome of reading one metric. It is either a full value
// (OK == true) or unreadable; there is no partial state.
type Reading struct {
	Value int64
	OK    bool
}

// Unreadable is the zero Reading.
var Unreadable = Reading{}

func readingOf(v int64) Reading {
	return Reading{Value: v, OK: true}
}

// ParseMetric converts OCR text such as "12345" or "23万" into an exact value.
// Signs, decimals and separators are not supported and yield Unreadable.
func ParseMetric(text string) Reading {
	digits := text
	if strings.HasSuffix(text, TenThousandSuffix) {
		digits = strings.TrimSuffix(text, TenThousandSuffix)
		if digits == "" {
			return Unreadable
		}
		digits += "0000"
	}

	if !isDecimal(digits) {
		return Unreadable
	}

	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		// overflow
		return Unreadable
	}
	return readingOf(v)
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// inWan formats a value in units of 10,000 for log lines.
func inWan(v int64) string {
	return strconv.FormatInt(v/10000, 10) + TenThousandSuffix
}
