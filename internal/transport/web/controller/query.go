package controller

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const defaultListLimit = 20

// limitFromQuery parses the limit parameter, falling back to the default
// when absent.
func limitFromQuery(q url.Values) (int, error) {
	raw := q.Get("limit")
	if raw == "" {
		return defaultListLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parsing limit [%s]: %w", raw, err)
	}
	if limit < 1 {
		return 0, fmt.Errorf("limit must be positive, got [%d]", limit)
	}
	return limit, nil
}

// candidatesFromQuery parses the optional comma-separated candidates
// parameter. A nil result means the caller should rank the whole catalog.
func candidatesFromQuery(q url.Values) []string {
	raw := q.Get("candidates")
	if raw == "" {
		return nil
	}

	var ids []string
	for _, id := range strings.Split(raw, ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
