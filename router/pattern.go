package router

import (
	"regexp"
	"strings"
)

// placeholderRegexp matches a $name placeholder inside a path template:
// a dollar sign followed by a letter or underscore and any number of
// letters, digits or underscores.
var placeholderRegexp = regexp.MustCompile(`\$[a-zA-Z_][a-zA-Z0-9_]*`)

// pattern is a compiled path template.
type pattern struct {
	// template is the original template string.
	template string
	// regexp is the compiled matching expression, anchored at both ends.
	regexp *regexp.Regexp
	// names are the placeholder names in declaration order.
	names []string
}

// compilePattern translates a path template into an anchored regexp
// matcher. Each $name placeholder becomes a capturing group matching
// one or more characters excluding "/". Literal template text is
// embedded in the expression verbatim: regexp metacharacters in a
// template keep their regexp meaning.
func compilePattern(tpl string) (*pattern, error) {
	var (
		expr  strings.Builder
		names []string
		end   int
	)

	expr.WriteByte('^')

	for _, loc := range placeholderRegexp.FindAllStringIndex(tpl, -1) {
		expr.WriteString(tpl[end:loc[0]])
		expr.WriteString("([^/]+)")
		names = append(names, tpl[loc[0]+1:loc[1]])
		end = loc[1]
	}

	expr.WriteString(tpl[end:])
	expr.WriteByte('$')

	re, err := compileRegexp(expr.String())
	if err != nil {
		return nil, err
	}

	return &pattern{
		template: tpl,
		regexp:   re,
		names:    names,
	}, nil
}

// match reports whether path satisfies the template structurally.
// The whole path must match; templates are never treated as prefixes.
func (p *pattern) match(path string) bool {
	return p.regexp.MatchString(path)
}

// extract returns the placeholder values captured from path, keyed by
// placeholder name. Returns nil when the path does not match. Names are
// expected to be unique within one template; when a name repeats, the
// last occurrence wins.
func (p *pattern) extract(path string) map[string]string {
	matches := p.regexp.FindStringSubmatch(path)
	if matches == nil {
		return nil
	}

	vars := make(map[string]string, len(p.names))
	for i, name := range p.names {
		if i+1 < len(matches) {
			vars[name] = matches[i+1]
		}
	}

	return vars
}
