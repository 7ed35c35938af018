package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

const (
	DefaultPage  = 1
	DefaultLimit = 100
	maxLimit     = 1000
)

// reservedParams never become filters.
var reservedParams = map[string]struct{}{
	"page":   {},
	"sort":   {},
	"limit":  {},
	"fields": {},
}

// operators maps the query-string comparison suffixes to SQL.
var operators = map[string]string{
	"gte": ">=",
	"gt":  ">",
	"lte": "<=",
	"lt":  "<",
}

// Filter is a single field comparison parsed from the query string.
type Filter struct {
	Field    string
	Operator string // SQL operator: =, >=, >, <=, <
	Value    string
}

// Sort is one ordering term.
type Sort struct {
	Field string
	Desc  bool
}

// Spec is the parsed, validated form of a list query string. It is built
// once by Parse and never mutated afterwards.
type Spec struct {
	Filters []Filter
	Sorts   []Sort
	Fields  []string
	Page    int
	Limit   int
}

// Parse reads filters, sorting, projection and pagination from the query
// string. Only fields present in allowed may be filtered, sorted on or
// projected; anything else is silently dropped so that unknown parameters
// never reach SQL.
func Parse(values url.Values, allowed []string) *Spec {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, field := range allowed {
		allowedSet[field] = struct{}{}
	}

	spec := &Spec{
		Page:  DefaultPage,
		Limit: DefaultLimit,
	}

	for key, vals := range values {
		if len(vals) == 0 || vals[0] == "" {
			continue
		}
		if _, reserved := reservedParams[key]; reserved {
			continue
		}

		field, op := key, "="
		if open := strings.IndexByte(key, '['); open >= 0 && strings.HasSuffix(key, "]") {
			suffix := key[open+1 : len(key)-1]
			if sqlOp, ok := operators[suffix]; ok {
				field, op = key[:open], sqlOp
			}
		}

		if _, ok := allowedSet[field]; !ok {
			continue
		}

		spec.Filters = append(spec.Filters, Filter{Field: field, Operator: op, Value: vals[0]})
	}

	if raw := values.Get("sort"); raw != "" {
		for _, term := range strings.Split(raw, ",") {
			term = strings.TrimSpace(term)
			desc := strings.HasPrefix(term, "-")
			field := strings.TrimPrefix(term, "-")
			if _, ok := allowedSet[field]; !ok {
				continue
			}
			spec.Sorts = append(spec.Sorts, Sort{Field: field, Desc: desc})
		}
	}
	if len(spec.Sorts) == 0 {
		// Newest first when the caller does not ask otherwise.
		spec.Sorts = []Sort{{Field: "created_at", Desc: true}}
	}

	if raw := values.Get("fields"); raw != "" {
		for _, field := range strings.Split(raw, ",") {
			field = strings.TrimSpace(field)
			if _, ok := allowedSet[field]; !ok {
				continue
			}
			spec.Fields = append(spec.Fields, field)
		}
	}

	if page, err := strconv.Atoi(values.Get("page")); err == nil && page > 0 {
		spec.Page = page
	}
	if limit, err := strconv.Atoi(values.Get("limit")); err == nil && limit > 0 {
		if limit > maxLimit {
			limit = maxLimit
		}
		spec.Limit = limit
	}

	return spec
}

// Apply layers the spec onto a gorm query. Field names were validated against
// the allow-list during Parse, so interpolating them here is safe.
func (s *Spec) Apply(tx *gorm.DB) *gorm.DB {
	for _, f := range s.Filters {
		tx = tx.Where(fmt.Sprintf("%s %s ?", f.Field, f.Operator), f.Value)
	}

	for _, sort := range s.Sorts {
		direction := "ASC"
		if sort.Desc {
			direction = "DESC"
		}
		tx = tx.Order(fmt.Sprintf("%s %s", sort.Field, direction))
	}

	if len(s.Fields) > 0 {
		tx = tx.Select(s.Fields)
	}

	offset := (s.Page - 1) * s.Limit
	return tx.Offset(offset).Limit(s.Limit)
}
