// Package route is the catalog of Bungie.net endpoints. It is pure data plus
// the substitution logic that turns an operation and its parameters into a
// request binding.
package route

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/kofuk/bungie/apierror"
)

const (
	BaseURL  = "https://www.bungie.net/Platform"
	StatsURL = "https://stats.bungie.net/Platform"

	// TokenURL is the OAuth2 token endpoint. It does not use the envelope.
	TokenURL = "https://www.bungie.net/Platform/App/OAuth/token/"

	AuthorizeURL = "https://www.bungie.net/en/OAuth/Authorize"
)

// Op names an endpoint. The values match the Bungie.net operation names.
type Op string

type Auth int

const (
	AuthNone Auth = iota
	// AuthOptional endpoints return more data when a token is sent.
	AuthOptional
	AuthRequired
)

// Endpoint describes one upstream operation.
type Endpoint struct {
	Op     Op
	Method string
	// Path is relative to Base and may contain {name} placeholders.
	Path  string
	Auth  Auth
	Scope string
	// Form endpoints send url-encoded bodies instead of JSON.
	Form bool
	// Base overrides BaseURL.
	Base string
	// Validate rejects parameter combinations the server would refuse.
	Validate func(Params) error
}

func (e Endpoint) base() string {
	if e.Base != "" {
		return e.Base
	}
	return BaseURL
}

// Params is the per-call parameter bag.
type Params struct {
	Path  map[string]string
	Query url.Values
	Body  any
	Form  url.Values
}

// Binding is a compiled request, built per call.
type Binding struct {
	Op     Op
	Method string
	URL    string
	// Route is the substituted path without base or query, for logs.
	Route  string
	Header http.Header
	Body   []byte
	Auth   Auth
	Scope  string
}

func Lookup(op Op) (Endpoint, bool) {
	e, ok := catalog[op]
	return e, ok
}

// Compile substitutes the path parameters of op and serializes its body.
func Compile(op Op, p Params) (*Binding, error) {
	e, ok := catalog[op]
	if !ok {
		return nil, apierror.InvalidArgument("unknown operation %q", op)
	}
	if e.Validate != nil {
		if err := e.Validate(p); err != nil {
			return nil, err
		}
	}

	path, err := substitute(e.Path, p.Path)
	if err != nil {
		return nil, err
	}

	b := &Binding{
		Op:     op,
		Method: e.Method,
		URL:    e.base() + path + encodeQuery(p.Query),
		Route:  path,
		Header: make(http.Header),
		Auth:   e.Auth,
		Scope:  e.Scope,
	}
	b.Header.Set("Accept", "application/json")

	switch {
	case e.Form:
		b.Body = []byte(p.Form.Encode())
		b.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	case p.Body != nil:
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(p.Body); err != nil {
			return nil, apierror.InvalidArgument("%s: encode body: %v", op, err)
		}
		b.Body = bytes.TrimRight(buf.Bytes(), "\n")
		b.Header.Set("Content-Type", "application/json")
	case e.Method == http.MethodPost:
		b.Body = []byte("{}")
		b.Header.Set("Content-Type", "application/json")
	}
	return b, nil
}

func substitute(template string, values map[string]string) (string, error) {
	var sb strings.Builder
	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			sb.WriteString(rest)
			return sb.String(), nil
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return "", apierror.InvalidArgument("unterminated placeholder in %q", template)
		}
		name := rest[open+1 : open+end]
		v, ok := values[name]
		if !ok || v == "" {
			return "", apierror.InvalidArgument("missing path parameter %q", name)
		}
		sb.WriteString(rest[:open])
		sb.WriteString(url.PathEscape(v))
		rest = rest[open+end+1:]
	}
}

// encodeQuery keeps commas literal, which is how list parameters such as
// components are written.
func encodeQuery(q url.Values) string {
	if len(q) == 0 {
		return ""
	}
	return "?" + strings.ReplaceAll(q.Encode(), "%2C", ",")
}

// Placeholders lists the path parameters of op in order.
func Placeholders(op Op) []string {
	e, ok := catalog[op]
	if !ok {
		return nil
	}
	var names []string
	rest := e.Path
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			return names
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return names
		}
		names = append(names, rest[open+1:open+end])
		rest = rest[open+end+1:]
	}
}

// All returns every known operation.
func All() []Op {
	ops := make([]Op, 0, len(catalog))
	for op := range catalog {
		ops = append(ops, op)
	}
	return ops
}
