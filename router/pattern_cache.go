package router

import (
	"regexp"
	"sync"
)

// regexpCache caches compiled regular expressions by expression string.
// The number of unique expressions is bounded by the number of
// registered route templates, so the cache grows to a fixed size and
// stays there.
var regexpCache sync.Map

// compileRegexp returns a cached *regexp.Regexp for the given
// expression, compiling and caching it on first use.
func compileRegexp(expr string) (*regexp.Regexp, error) {
	if v, ok := regexpCache.Load(expr); ok {
		return v.(*regexp.Regexp), nil
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}

	actual, _ := regexpCache.LoadOrStore(expr, re)

	return actual.(*regexp.Regexp), nil
}
