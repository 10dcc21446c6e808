package parser

import (
	"strings"

	"github.com/genricoloni/cmustify/internal/domain"
)

// breakTag marks the end of the token stream so the last field is
// flushed by the same code path as every other field. It is appended
// after classification and therefore never matches input text.
const breakTag domain.Tag = "!break!"

type token struct {
	text  string
	tag   domain.Tag
	isTag bool
}

// Parse converts a cmus status line into Metadata.
//
// The line is a sequence of space separated "tag value..." segments.
// Tokens up to the next recognized tag form the value and are joined
// back with single spaces. Empty tokens produced by repeated spaces are
// kept as part of the value. Tags without a value are omitted, a
// repeated tag keeps its last value and anything before the first tag
// is dropped. Parse never fails.
func Parse(input string) domain.Metadata {
	parts := strings.Split(input, " ")

	tokens := make([]token, 0, len(parts)+1)
	for _, part := range parts {
		tag, ok := domain.LookupTag(part)
		tokens = append(tokens, token{text: part, tag: tag, isTag: ok})
	}
	tokens = append(tokens, token{tag: breakTag, isTag: true})

	result := make(domain.Metadata)
	var current domain.Tag
	var values []string

	for _, tok := range tokens {
		if !tok.isTag {
			values = append(values, tok.text)
			continue
		}

		if len(values) > 0 && current != "" {
			result[current] = strings.Join(values, " ")
		}
		values = values[:0]
		current = tok.tag
	}

	return result
}
