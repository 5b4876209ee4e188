package gotemplate

import (
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-enumerator/pkg/values"
)

// pongo2 keeps filters and the autoescape switch process wide without
// locking.
var (
	globalsMu     sync.Mutex
	autoescapeSet bool
)

// setAutoescape records an explicit choice that later engines keep.
func setAutoescape(enabled bool) {
	globalsMu.Lock()
	defer globalsMu.Unlock()
	pongo2.SetAutoescape(enabled)
	autoescapeSet = true
}

// defaultAutoescape turns escaping off unless an engine already chose.
func defaultAutoescape() {
	globalsMu.Lock()
	defer globalsMu.Unlock()
	if !autoescapeSet {
		pongo2.SetAutoescape(false)
	}
}

// registerDefaultFilters installs the attribute filters:
//
//	{{ cases|resolve:"count" }}
//	{{ case|path:"parameters.names.joined" }}
//
// path issues one resolve per dotted segment.
func registerDefaultFilters() {
	globalsMu.Lock()
	defer globalsMu.Unlock()

	defaults := map[string]pongo2.FilterFunction{
		"resolve": filterResolve,
		"path":    filterPath,
		"trim":    filterTrim,
	}
	for name, fn := range defaults {
		if !pongo2.FilterExists(name) {
			_ = pongo2.RegisterFilter(name, fn)
		}
	}
}

func filterResolve(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	pass, value := unbind(in.Interface())
	result, ok := values.Resolve(pass, value, strings.TrimSpace(param.String()))
	if !ok {
		return pongo2.AsValue(nil), nil
	}
	return pongo2.AsValue(Bind(pass, result)), nil
}

func filterPath(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	pass, value := unbind(in.Interface())
	result, ok := values.ResolvePath(pass, value, param.String())
	if !ok {
		return pongo2.AsValue(nil), nil
	}
	return pongo2.AsValue(Bind(pass, result)), nil
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.IsNil() {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}
