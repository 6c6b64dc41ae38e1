package storage

import (
	"fmt"
	"regexp"
	"strings"
)

const globEscape = '\\'

// globToRegexp translates a glob pattern into an unanchored regular expression.
// Supported: * (any run), ? (one character), {a,b} alternation groups, and \ to
// take the next character literally
func globToRegexp(pattern string) string {
	pattern = strings.Trim(pattern, " \t\n\r\x00\x0B*")

	var (
		re       strings.Builder
		escaping bool
		groups   int
	)

	re.WriteString("(?s)")

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]

		switch c {
		case '*':
			if escaping {
				re.WriteString(`\*`)
			} else {
				re.WriteString(".*")
			}

		case '?':
			if escaping {
				re.WriteString(`\?`)
			} else {
				re.WriteByte('.')
			}

		case '.', '(', ')', '+', '|', '^', '$', '@', '%':
			re.WriteByte('\\')
			re.WriteByte(c)

		case globEscape:
			// a pair of escapes is one literal backslash
			if escaping {
				re.WriteString(`\\`)
			}
			escaping = !escaping
			continue

		case '{':
			if escaping {
				re.WriteString(`\{`)
			} else {
				re.WriteByte('(')
				groups++
			}

		case '}':
			if groups > 0 && !escaping {
				re.WriteByte(')')
				groups--
			} else {
				re.WriteString(`\}`)
			}

		case ',':
			if groups > 0 && !escaping {
				re.WriteByte('|')
			} else {
				re.WriteByte(',')
			}

		default:
			if escaping {
				re.WriteString(regexp.QuoteMeta(pattern[i : i+1]))
			} else {
				re.WriteByte(c)
			}
		}

		escaping = false
	}

	return re.String()
}

// compileGlob returns the matcher for a KEYS pattern
func compileGlob(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(globToRegexp(pattern))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
	}
	return re, nil
}
