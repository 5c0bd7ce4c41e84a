// Package factory turns Bungie.net response payloads into entity values.
//
// Every Deserialize function accepts the "Response" member of an envelope.
// Unknown keys are ignored and missing keys leave optional fields nil.
// Numeric identifiers may arrive as strings and are parsed; a value that does
// not parse fails the whole call with apierror.KindInvalidPayload.
package factory

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/kofuk/bungie/apierror"
	"github.com/kofuk/bungie/entity"
)

// object is a decoded JSON object. Numbers are kept as json.Number.
type object map[string]any

func decode(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, apierror.InvalidPayload(err, "malformed json")
	}
	return v, nil
}

func parseObject(raw json.RawMessage) (object, error) {
	v, err := decode(raw)
	if err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, apierror.InvalidPayload(nil, "expected object, got %T", v)
	}
	return m, nil
}

func parseArray(raw json.RawMessage) ([]any, error) {
	v, err := decode(raw)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	a, ok := v.([]any)
	if !ok {
		return nil, apierror.InvalidPayload(nil, "expected array, got %T", v)
	}
	return a, nil
}

// reader keeps the first conversion error so deserializers can read fields
// without checking after every one.
type reader struct {
	err error
}

func (r *reader) fail(key string, err error) {
	if r.err == nil {
		r.err = apierror.InvalidPayload(err, "field %q", key)
	}
}

func decodeWith[T any](raw json.RawMessage, f func(*reader, object) T) (T, error) {
	var zero T
	o, err := parseObject(raw)
	if err != nil {
		return zero, err
	}
	r := &reader{}
	v := f(r, o)
	if r.err != nil {
		return zero, r.err
	}
	return v, nil
}

func decodeList[T any](raw json.RawMessage, f func(*reader, object) T) ([]T, error) {
	a, err := parseArray(raw)
	if err != nil {
		return nil, err
	}
	r := &reader{}
	out := listOf(r, a, f)
	if r.err != nil {
		return nil, r.err
	}
	return out, nil
}

func listOf[T any](r *reader, a []any, f func(*reader, object) T) []T {
	out := make([]T, 0, len(a))
	for _, v := range a {
		m, ok := v.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, f(r, m))
	}
	return out
}

func (o object) has(key string) bool {
	v, ok := o[key]
	return ok && v != nil
}

func (o object) obj(key string) object {
	m, _ := o[key].(map[string]any)
	return m
}

func (o object) arr(key string) []any {
	a, _ := o[key].([]any)
	return a
}

func (o object) str(key string) string {
	switch v := o[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	}
	return ""
}

func (o object) strPtr(key string) *string {
	s, ok := o[key].(string)
	if !ok {
		return nil
	}
	return &s
}

// undefined maps an empty or missing string to entity.Undefined.
func (o object) undefined(key string) entity.UndefinedOr[string] {
	return entity.UndefinedIfEmpty(o.str(key))
}

func (o object) bool(key string) bool {
	b, _ := o[key].(bool)
	return b
}

func (o object) boolPtr(key string) *bool {
	b, ok := o[key].(bool)
	if !ok {
		return nil
	}
	return &b
}

func (o object) float(key string) float64 {
	f, _ := toFloat(o[key])
	return f
}

func (o object) image(key string) entity.Image {
	return entity.NewImage(o.str(key))
}

func (o object) imagePtr(key string) *entity.Image {
	if o.str(key) == "" {
		return nil
	}
	img := o.image(key)
	return &img
}

func (o object) strings(key string) []string {
	a := o.arr(key)
	if a == nil {
		return nil
	}
	out := make([]string, 0, len(a))
	for _, v := range a {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func (o object) bools(key string) []bool {
	a := o.arr(key)
	if a == nil {
		return nil
	}
	out := make([]bool, 0, len(a))
	for _, v := range a {
		b, _ := v.(bool)
		out = append(out, b)
	}
	return out
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

var errNotNumber = errors.New("not a number")

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
		// Hashes above math.MaxInt64 do not occur; uint32 hashes and
		// fractional numbers land here.
		f, err := n.Float64()
		if err != nil {
			return 0, err
		}
		return int64(f), nil
	case string:
		return strconv.ParseInt(n, 10, 64)
	}
	return 0, fmt.Errorf("%w: %T", errNotNumber, v)
}

// int reads a plain integer. Garbage is treated as missing since these fields
// are never identifiers.
func (o object) int(key string) int {
	v, ok := o[key]
	if !ok || v == nil {
		return 0
	}
	i, err := toInt64(v)
	if err != nil {
		return 0
	}
	return int(i)
}

func (o object) intPtr(key string) *int {
	v, ok := o[key]
	if !ok || v == nil {
		return nil
	}
	i, err := toInt64(v)
	if err != nil {
		return nil
	}
	n := int(i)
	return &n
}

func (o object) ints(key string) []int {
	a := o.arr(key)
	if a == nil {
		return nil
	}
	out := make([]int, 0, len(a))
	for _, v := range a {
		if i, err := toInt64(v); err == nil {
			out = append(out, int(i))
		}
	}
	return out
}

// id reads a 64-bit identifier which may be sent as a string.
func (r *reader) id(o object, key string) int64 {
	v, ok := o[key]
	if !ok || v == nil {
		return 0
	}
	i, err := toInt64(v)
	if err != nil {
		r.fail(key, err)
		return 0
	}
	return i
}

func (r *reader) idPtr(o object, key string) *int64 {
	if !o.has(key) {
		return nil
	}
	i := r.id(o, key)
	return &i
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

func parseTime(s string) (time.Time, error) {
	var err error
	for _, layout := range timeLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, err
}

// time reads an ISO 8601 timestamp normalized to UTC. Missing or empty
// values yield the zero time.
func (r *reader) time(o object, key string) time.Time {
	s := o.str(key)
	if s == "" {
		return time.Time{}
	}
	t, err := parseTime(s)
	if err != nil {
		r.fail(key, err)
	}
	return t
}

func (r *reader) timePtr(o object, key string) *time.Time {
	if o.str(key) == "" {
		return nil
	}
	t := r.time(o, key)
	return &t
}

// keyedObjects walks a JSON object whose keys are integers, as used by the
// hash- and id-keyed maps of the profile payload.
func keyedObjects[K ~int | ~int64, V any](r *reader, o object, f func(*reader, object) V) map[K]V {
	if o == nil {
		return nil
	}
	out := make(map[K]V, len(o))
	for k, v := range o {
		m, ok := v.(map[string]any)
		if !ok {
			continue
		}
		key, err := strconv.ParseInt(k, 10, 64)
		if err != nil {
			r.fail(k, err)
			continue
		}
		out[K(key)] = f(r, m)
	}
	return out
}

// keyedInts reads an integer-keyed object of integers.
func keyedInts[K ~int | ~int64](r *reader, o object) map[K]int {
	if o == nil {
		return nil
	}
	out := make(map[K]int, len(o))
	for k, v := range o {
		key, err := strconv.ParseInt(k, 10, 64)
		if err != nil {
			r.fail(k, err)
			continue
		}
		n, err := toInt64(v)
		if err != nil {
			continue
		}
		out[K(key)] = int(n)
	}
	return out
}

// keyedLists reads an integer-keyed object whose values are arrays of objects.
func keyedLists[K ~int | ~int64, V any](r *reader, o object, f func(*reader, object) V) map[K][]V {
	if o == nil {
		return nil
	}
	out := make(map[K][]V, len(o))
	for k, v := range o {
		a, ok := v.([]any)
		if !ok {
			continue
		}
		key, err := strconv.ParseInt(k, 10, 64)
		if err != nil {
			r.fail(k, err)
			continue
		}
		out[K(key)] = listOf(r, a, f)
	}
	return out
}

// encodeRaw re-encodes a decoded value, for pass-through fields.
func encodeRaw(v any) json.RawMessage {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}

// Page is one page of a paginated search.
type Page[T any] struct {
	Results      []T
	HasMore      bool
	TotalResults int
}

func page[T any](r *reader, o object, key string, f func(*reader, object) T) Page[T] {
	return Page[T]{
		Results:      listOf(r, o.arr(key), f),
		HasMore:      o.bool("hasMore"),
		TotalResults: o.int("totalResults"),
	}
}
