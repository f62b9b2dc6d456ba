package utils

import (
	"net/url"
	"strconv"
)

const (
	DefaultSkip  = 0
	DefaultLimit = 100
	MaxLimit     = 1000
)

// ParseSkipLimit разбирает параметры skip/limit из строки запроса.
// Значения по умолчанию: skip=0, limit=100.
func ParseSkipLimit(values url.Values) (skip uint64, limit uint64) {
	skip = DefaultSkip
	limit = DefaultLimit

	if skipStr := values.Get("skip"); skipStr != "" {
		if s, err := strconv.ParseUint(skipStr, 10, 64); err == nil {
			skip = s
		}
	}
	if limitStr := values.Get("limit"); limitStr != "" {
		if l, err := strconv.ParseUint(limitStr, 10, 64); err == nil && l > 0 {
			if l > MaxLimit {
				limit = MaxLimit
			} else {
				limit = l
			}
		}
	}
	return skip, limit
}
