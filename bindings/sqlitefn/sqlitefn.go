// Package sqlitefn exposes the extraction pipeline as SQL scalar
// functions on the modernc.org/sqlite driver, so HTML stored in a
// database can be queried in place:
//
//	SELECT html_query(body, 'h1', '@text') FROM pages;
//	SELECT html_extract_json(body, 'script', 'window.__DATA__') FROM pages;
//
// Call [Register] once before opening connections. The functions follow
// SQL NULL semantics: NULL input, no match, or a failed parse all yield
// NULL rather than an error.
package sqlitefn

import (
	"database/sql/driver"
	"fmt"
	"sync"

	"modernc.org/sqlite"

	"github.com/leofalp/htmlsift/core/extract"
	"github.com/leofalp/htmlsift/core/htmlquery"
	"github.com/leofalp/htmlsift/internal/jsonutil"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// Register installs the html_query, html_query_all and html_extract_json
// scalar functions on the "sqlite" driver. It is safe to call from
// multiple goroutines; registration happens once and later calls return
// the first outcome.
func Register() error {
	registerOnce.Do(func() {
		registerErr = register()
	})
	return registerErr
}

func register() error {
	fns := map[string]func(args []driver.Value) (driver.Value, error){
		"html_query":        htmlQuery,
		"html_query_all":    htmlQueryAll,
		"html_extract_json": htmlExtractJSON,
	}
	for name, fn := range fns {
		impl := fn
		err := sqlite.RegisterDeterministicScalarFunction(name, -1,
			func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
				return impl(args)
			})
		if err != nil {
			return fmt.Errorf("htmlsift: register %s: %w", name, err)
		}
	}
	return nil
}

// html_query(html[, selector[, extract]]) returns the first match, or
// NULL when nothing matches.
func htmlQuery(args []driver.Value) (driver.Value, error) {
	rawHTML, selector, mode, null, err := queryArgs("html_query", args)
	if err != nil || null {
		return nil, err
	}
	results, err := htmlquery.Extract(rawHTML, selector, mode)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

// html_query_all(html[, selector[, extract]]) returns every match as a
// JSON array string, or NULL when nothing matches.
func htmlQueryAll(args []driver.Value) (driver.Value, error) {
	rawHTML, selector, mode, null, err := queryArgs("html_query_all", args)
	if err != nil || null {
		return nil, err
	}
	results, err := htmlquery.Extract(rawHTML, selector, mode)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	items := make([]any, len(results))
	for i, r := range results {
		items[i] = r
	}
	return jsonutil.MarshalCompact(items), nil
}

// html_extract_json(html, selector[, pattern]) extracts embedded JSON as
// a JSON array string, or NULL when nothing is found.
func htmlExtractJSON(args []driver.Value) (driver.Value, error) {
	if len(args) < 2 || len(args) > 3 {
		return nil, fmt.Errorf("html_extract_json: expected 2 or 3 arguments, got %d", len(args))
	}
	rawHTML, ok := textArg(args[0])
	if !ok {
		return nil, nil
	}
	selector, ok := textArg(args[1])
	if !ok {
		return nil, nil
	}
	pattern := ""
	if len(args) == 3 {
		if pattern, ok = textArg(args[2]); !ok {
			return nil, nil
		}
	}

	out, found := extract.JSON(rawHTML, selector, pattern)
	if !found {
		return nil, nil
	}
	return out, nil
}

// queryArgs unpacks the shared (html[, selector[, extract]]) argument
// list. null reports that some input was NULL and the function should
// return NULL without doing any work.
func queryArgs(name string, args []driver.Value) (rawHTML, selector string, mode htmlquery.Mode, null bool, err error) {
	if len(args) < 1 || len(args) > 3 {
		return "", "", htmlquery.Mode{}, false, fmt.Errorf("%s: expected 1 to 3 arguments, got %d", name, len(args))
	}
	rawHTML, ok := textArg(args[0])
	if !ok {
		return "", "", htmlquery.Mode{}, true, nil
	}
	if len(args) > 1 {
		if selector, ok = textArg(args[1]); !ok {
			return "", "", htmlquery.Mode{}, true, nil
		}
	}
	attr := ""
	if len(args) > 2 {
		if attr, ok = textArg(args[2]); !ok {
			return "", "", htmlquery.Mode{}, true, nil
		}
	}
	return rawHTML, selector, htmlquery.ModeFromAttr(attr), false, nil
}

// textArg coerces a SQL value to a string; NULL and non-text values
// report false.
func textArg(v driver.Value) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case []byte:
		return string(val), true
	default:
		return "", false
	}
}
