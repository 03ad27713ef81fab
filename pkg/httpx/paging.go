package httpx

import "strconv"

const DefaultPageSize = 10

// ParseIntDefault returns def when s is empty or not an integer.
func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

// PageWindow turns 1-based page/size parameters into an offset/limit pair.
func PageWindow(page, size int) (offset int, limit int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}

	offset = (page - 1) * size
	limit = size
	return offset, limit
}
