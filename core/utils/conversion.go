package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToInt converts a scanned column value to int. NULL and unparseable values
// yield 0. Numeric strings may carry a fractional part, which is truncated.
func ToInt(val any) int {
	switch v := val.(type) {
	case nil:
		return 0
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case uint64:
		return int(v)
	case uint32:
		return int(v)
	case uint8:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		return parseInt(v)
	case []byte:
		return parseInt(string(v))
	default:
		return parseInt(fmt.Sprint(v))
	}
}

func parseInt(s string) int {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

// ToString converts a scanned column value to string. NULL yields "".
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

// SplitList splits a delimited column value, trimming parts and dropping
// empty ones. It returns nil when nothing remains.
func SplitList(val any, sep string) []string {
	s := ToString(val)
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for part := range strings.SplitSeq(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
