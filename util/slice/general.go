package slice

import (
	"strings"

	"github.com/samber/lo"
)

// HasAnyPrefix returns true if <inp> has any prefix from <prefixes>
func HasAnyPrefix(inp string, prefixes ...string) bool {
	return lo.SomeBy(prefixes, func(prefix string) bool {
		return strings.HasPrefix(inp, prefix)
	})
}
