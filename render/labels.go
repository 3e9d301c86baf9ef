package render

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-logr/logr"
	"github.com/hashicorp/hcl/v2/hclsyntax"
)

// labeler hands out unique resource labels within one resource type.
type labeler struct {
	taken map[string]bool
	log   logr.Logger
}

func newLabeler(log logr.Logger) *labeler {
	return &labeler{taken: make(map[string]bool), log: log}
}

func (l *labeler) label(name string) string {
	base := name
	if !hclsyntax.ValidIdentifier(base) {
		base = toIdentifier(name)
		l.log.V(1).Info("Rewrote resource label", "name", name, "label", base)
	}

	label := base
	for i := 2; l.taken[label]; i++ {
		label = fmt.Sprintf("%s_%d", base, i)
	}
	l.taken[label] = true
	return label
}

// toIdentifier replaces everything outside [A-Za-z0-9_-] with '_' and makes
// sure the result starts with a letter or underscore.
func toIdentifier(name string) string {
	var builder strings.Builder
	for _, r := range name {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-') {
			builder.WriteRune(r)
		} else {
			builder.WriteRune('_')
		}
	}
	id := builder.String()
	if id == "" || !(unicode.IsLetter(rune(id[0])) || id[0] == '_') {
		id = "_" + id
	}
	return id
}
