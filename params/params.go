// Package params builds the parameter sets sent to the e621 API.
//
// The API expects most form and search fields nested under a wrapper key,
// for example post[tag_string] or search[name_matches], while a few fields
// such as limit and page stay flat. A Set records every key in insertion
// order so that encoded bodies and query strings are stable.
//
//	p := params.New("search")
//	p.Add("name_matches", opts.NameMatches)  // search[name_matches]=... when present
//	p.AddUnwrapped("limit", optional.Some(75)) // limit=75
//
// Absent values are omitted. Present zero values (0, false, "") are kept.
package params

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Param is an optional scalar. optional.Value satisfies it.
type Param interface {
	IsNone() bool
	UnwrapAny() any
}

// Valuer is implemented by types with a wire form that differs from their
// String method, such as enumerations sent by numeric code.
type Valuer interface {
	ParamValue() string
}

// Set is an ordered mapping of parameter keys to encoded values.
type Set struct {
	wrapper string
	keys    []string
	values  map[string]string
}

// New returns an empty Set. An empty wrapper yields flat keys.
func New(wrapper string) *Set {
	return &Set{
		wrapper: wrapper,
		values:  make(map[string]string),
	}
}

// Wrapper returns the wrapper key, if any.
func (s *Set) Wrapper() string {
	return s.wrapper
}

// Key returns the key name is stored under.
func (s *Set) Key(name string) string {
	if s.wrapper == "" {
		return name
	}
	return s.wrapper + "[" + name + "]"
}

// Add stores v under the wrapped key for name. Absent values are skipped.
func (s *Set) Add(name string, v Param) {
	if v == nil || v.IsNone() {
		return
	}
	s.store(s.Key(name), Format(v.UnwrapAny()))
}

// AddUnwrapped is Add but always uses name as the key.
func (s *Set) AddUnwrapped(name string, v Param) {
	if v == nil || v.IsNone() {
		return
	}
	s.store(name, Format(v.UnwrapAny()))
}

// Put stores a literal value under the wrapped key for name.
func (s *Set) Put(name, value string) {
	s.store(s.Key(name), value)
}

// PutUnwrapped stores a literal value under name.
func (s *Set) PutUnwrapped(name, value string) {
	s.store(name, value)
}

func (s *Set) store(key, value string) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Get returns the value stored under key.
func (s *Set) Get(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	v, ok := s.values[key]
	return v, ok
}

// Len returns the number of stored keys.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// Keys returns the stored keys in insertion order.
func (s *Set) Keys() []string {
	if s == nil {
		return nil
	}
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Map returns a copy of the set as a plain map.
func (s *Set) Map() map[string]string {
	out := make(map[string]string, s.Len())
	if s == nil {
		return out
	}
	for _, k := range s.keys {
		out[k] = s.values[k]
	}
	return out
}

// Values returns a copy of the set as url.Values.
func (s *Set) Values() url.Values {
	out := make(url.Values, s.Len())
	if s == nil {
		return out
	}
	for _, k := range s.keys {
		out.Set(k, s.values[k])
	}
	return out
}

// Encode returns the set in URL-encoded form, keys in insertion order.
// url.Values.Encode sorts keys; the order here is the order of Add calls.
func (s *Set) Encode() string {
	if s.Len() == 0 {
		return ""
	}
	var sb strings.Builder
	for i, k := range s.keys {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(k))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(s.values[k]))
	}
	return sb.String()
}

// Format encodes a scalar the way the API expects it.
func Format(v any) string {
	if pv, ok := v.(Valuer); ok {
		return pv.ParamValue()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64)
	}

	if sv, ok := v.(fmt.Stringer); ok {
		return sv.String()
	}
	return fmt.Sprint(v)
}
