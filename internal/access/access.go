// Package access implements the chat allow-list gate.
package access

import (
	"strconv"
	"strings"
)

// AllowList is an immutable set of permitted chat identifiers.
// An empty list permits everyone.
type AllowList struct {
	ids map[int64]struct{}
}

// ParseAllowList builds an AllowList from a comma-separated id string.
// Blank entries and non-numeric entries are skipped.
func ParseAllowList(raw string) AllowList {
	ids := make(map[int64]struct{})
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		ids[id] = struct{}{}
	}
	return AllowList{ids: ids}
}

// Allowed reports whether id may interact with the bot.
func (a AllowList) Allowed(id int64) bool {
	if len(a.ids) == 0 {
		return true
	}
	_, ok := a.ids[id]
	return ok
}

// Len returns the number of configured identifiers.
func (a AllowList) Len() int { return len(a.ids) }
