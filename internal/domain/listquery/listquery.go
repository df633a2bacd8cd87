// Package listquery implements the declarative filtering, sorting, and
// pagination engine shared by every listing endpoint. Parsing never fails:
// unusable input falls back to defaults so a sloppy query string degrades to
// a sane listing instead of an error. The engine performs no I/O.
package listquery

import (
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// SortOrder is the direction of an explicit or default sort.
type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

const (
	defaultLimit = 25
	maxLimit     = 100
)

// Options is the per-resource configuration: which fields may be filtered or
// sorted on, and the defaults applied when the query names none.
type Options struct {
	Filterable       []string
	Sortable         []string
	DefaultSort      string
	DefaultSortOrder SortOrder
	DefaultLimit     int
	MaxLimit         int
}

// Sort is a resolved sort instruction.
type Sort struct {
	Field string
	Order SortOrder
}

// Pagination is the resolved page window.
type Pagination struct {
	Page   int
	Limit  int
	Offset int
}

// Query is a normalized list query produced by Parse.
type Query struct {
	Filters    map[string][]string
	Sort       *Sort
	Pagination Pagination
}

// Meta describes the result window relative to the filtered total.
type Meta struct {
	Total       int  `json:"total"`
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	HasNextPage bool `json:"hasNextPage"`
}

// Result is one page of records plus pagination metadata.
type Result[T any] struct {
	Items []T  `json:"items"`
	Meta  Meta `json:"meta"`
}

// Parse normalizes raw query parameters against the resource options.
//
// page defaults to 1 on any non-positive or non-numeric input. limit falls
// back to the default on non-numeric or zero input and is clamped to
// [1, MaxLimit]. Filter values are collected only for configured fields that
// are actually present. A sort parameter of the form "field" or "field:desc"
// is honored only when the field is configured sortable; otherwise the
// default sort (if any) applies.
func Parse(raw url.Values, opts Options) Query {
	defLimit := opts.DefaultLimit
	if defLimit <= 0 {
		defLimit = defaultLimit
	}
	capLimit := opts.MaxLimit
	if capLimit <= 0 {
		capLimit = maxLimit
	}

	page, err := strconv.Atoi(raw.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(raw.Get("limit"))
	if err != nil || limit == 0 {
		limit = defLimit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > capLimit {
		limit = capLimit
	}

	filters := make(map[string][]string)
	for _, field := range opts.Filterable {
		if values, ok := raw[field]; ok && len(values) > 0 {
			filters[field] = values
		}
	}

	var sortSpec *Sort
	if rawSort := raw.Get("sort"); rawSort != "" {
		field, orderPart, _ := strings.Cut(rawSort, ":")
		order := Asc
		if strings.EqualFold(orderPart, string(Desc)) {
			order = Desc
		}
		if contains(opts.Sortable, field) {
			sortSpec = &Sort{Field: field, Order: order}
		}
	}
	if sortSpec == nil && opts.DefaultSort != "" && contains(opts.Sortable, opts.DefaultSort) {
		order := opts.DefaultSortOrder
		if order != Desc {
			order = Asc
		}
		sortSpec = &Sort{Field: opts.DefaultSort, Order: order}
	}

	return Query{
		Filters: filters,
		Sort:    sortSpec,
		Pagination: Pagination{
			Page:   page,
			Limit:  limit,
			Offset: (page - 1) * limit,
		},
	}
}

// Apply runs the query against an in-memory sequence: filter, then stable
// sort, then paginate. The input slice is never mutated.
func Apply[T any](items []T, q Query) Result[T] {
	filtered := items
	for field, expected := range q.Filters {
		kept := make([]T, 0, len(filtered))
		for _, item := range filtered {
			value, _ := fieldValue(item, field)
			if matchesFilter(value, expected) {
				kept = append(kept, item)
			}
		}
		filtered = kept
	}

	if q.Sort != nil {
		sorted := make([]T, len(filtered))
		copy(sorted, filtered)
		field, desc := q.Sort.Field, q.Sort.Order == Desc
		sort.SliceStable(sorted, func(i, j int) bool {
			a, aOK := fieldValue(sorted[i], field)
			b, bOK := fieldValue(sorted[j], field)
			// Missing values sort after defined ones regardless of direction.
			if !aOK || !bOK {
				return aOK && !bOK
			}
			cmp := compareValues(a, b)
			if desc {
				return cmp > 0
			}
			return cmp < 0
		})
		filtered = sorted
	}

	total := len(filtered)
	start := q.Pagination.Offset
	if start > total {
		start = total
	}
	end := start + q.Pagination.Limit
	if end > total {
		end = total
	}

	page := make([]T, end-start)
	copy(page, filtered[start:end])

	return Result[T]{
		Items: page,
		Meta: Meta{
			Total:       total,
			Page:        q.Pagination.Page,
			Limit:       q.Pagination.Limit,
			HasNextPage: q.Pagination.Offset+q.Pagination.Limit < total,
		},
	}
}

func contains(list []string, value string) bool {
	for _, entry := range list {
		if entry == value {
			return true
		}
	}
	return false
}

// matchesFilter reports whether a record value intersects the expected set
// under string-coerced comparison. Absent values never match.
func matchesFilter(value any, expected []string) bool {
	if value == nil {
		return false
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice {
		for i := 0; i < rv.Len(); i++ {
			if contains(expected, coerceString(rv.Index(i).Interface())) {
				return true
			}
		}
		return false
	}

	return contains(expected, coerceString(value))
}

func coerceString(v any) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	default:
		return ""
	}
}

// compareValues totally orders two defined values: numerically when both are
// numeric, false before true for booleans, string-coerced otherwise.
func compareValues(a, b any) int {
	af, aNum := numericValue(a)
	bf, bNum := numericValue(b)
	if aNum && bNum {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}

	return strings.Compare(coerceString(a), coerceString(b))
}

func numericValue(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Bool:
		if rv.Bool() {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// fieldValue resolves a record field by its json tag name. Nil pointers and
// nil slices report as undefined; pointers are dereferenced.
func fieldValue(item any, name string) (any, bool) {
	rv := reflect.ValueOf(item)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, false
	}

	idx, ok := fieldIndex(rv.Type())[name]
	if !ok {
		return nil, false
	}

	fv := rv.Field(idx)
	switch fv.Kind() {
	case reflect.Pointer:
		if fv.IsNil() {
			return nil, false
		}
		return fv.Elem().Interface(), true
	case reflect.Slice:
		if fv.IsNil() {
			return nil, false
		}
	}

	return fv.Interface(), true
}

var fieldIndexCache sync.Map // reflect.Type -> map[string]int

func fieldIndex(t reflect.Type) map[string]int {
	if cached, ok := fieldIndexCache.Load(t); ok {
		return cached.(map[string]int)
	}

	index := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			name = field.Name
		}
		index[name] = i
	}

	fieldIndexCache.Store(t, index)

	return index
}
