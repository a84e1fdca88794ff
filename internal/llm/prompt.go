package llm

import (
	"strconv"
	"strings"
)

// OneOf renders an enumeration for a prompt, e.g. one of ["a", "b"].
func OneOf(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = strconv.Quote(v)
	}
	return "one of [" + strings.Join(quoted, ", ") + "]"
}
