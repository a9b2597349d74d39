package server

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/getmockd/shapemock/pkg/generator"
)

// Route binds an HTTP method and path to a named schema.
type Route struct {
	Method string
	Path   string
	Schema string
	Status int
	Delay  time.Duration
}

// Pattern returns the http.ServeMux pattern for the route.
func (r Route) Pattern() string {
	return r.Method + " " + r.Path
}

var errRouteSyntax = errors.New(`route must look like "[METHOD ]/path=schema[:status]"`)

// ParseRoute parses a route flag such as "GET /users=user" or
// "POST /users=user:201". The method defaults to GET and the status to 200.
func ParseRoute(spec string) (Route, error) {
	target, schemaPart, ok := strings.Cut(strings.TrimSpace(spec), "=")
	if !ok || schemaPart == "" {
		return Route{}, fmt.Errorf("%w: %q", errRouteSyntax, spec)
	}

	r := Route{Method: http.MethodGet, Status: http.StatusOK}

	fields := strings.Fields(target)
	switch len(fields) {
	case 1:
		r.Path = fields[0]
	case 2:
		r.Method = strings.ToUpper(fields[0])
		r.Path = fields[1]
	default:
		return Route{}, fmt.Errorf("%w: %q", errRouteSyntax, spec)
	}
	if !strings.HasPrefix(r.Path, "/") {
		return Route{}, fmt.Errorf("route path must start with /: %q", spec)
	}

	name, status, hasStatus := strings.Cut(schemaPart, ":")
	r.Schema = name
	if hasStatus {
		code, err := strconv.Atoi(status)
		if err != nil || code < 100 || code > 599 {
			return Route{}, fmt.Errorf("invalid status in route %q", spec)
		}
		r.Status = code
	}
	return r, nil
}

// parseOptions reads generation options from the query string.
// excludeOptional takes any strconv.ParseBool value; delay takes a Go
// duration ("250ms") or a bare number of milliseconds.
func parseOptions(q url.Values, fallbackDelay time.Duration) (generator.Options, error) {
	opts := generator.Options{Delay: fallbackDelay}

	if v := q.Get("excludeOptional"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, fmt.Errorf("excludeOptional: %w", err)
		}
		opts.ExcludeOptional = b
	}

	if v := q.Get("delay"); v != "" {
		d, err := ParseDelay(v)
		if err != nil {
			return opts, err
		}
		opts.Delay = d
	}
	return opts, nil
}

// ParseDelay accepts a Go duration or a number of milliseconds.
func ParseDelay(v string) (time.Duration, error) {
	if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
		if ms < 0 {
			return 0, fmt.Errorf("delay must not be negative: %q", v)
		}
		return time.Duration(ms) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("delay: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("delay must not be negative: %q", v)
	}
	return d, nil
}
