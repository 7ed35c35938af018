package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allowed = []string{"name", "city", "price", "created_at"}

func TestParseDefaults(t *testing.T) {
	spec := Parse(url.Values{}, allowed)

	assert.Empty(t, spec.Filters)
	assert.Empty(t, spec.Fields)
	assert.Equal(t, DefaultPage, spec.Page)
	assert.Equal(t, DefaultLimit, spec.Limit)

	require.Len(t, spec.Sorts, 1)
	assert.Equal(t, Sort{Field: "created_at", Desc: true}, spec.Sorts[0])
}

func TestParseEqualityFilter(t *testing.T) {
	values, err := url.ParseQuery("city=lagos")
	require.NoError(t, err)

	spec := Parse(values, allowed)

	require.Len(t, spec.Filters, 1)
	assert.Equal(t, Filter{Field: "city", Operator: "=", Value: "lagos"}, spec.Filters[0])
}

func TestParseComparisonFilters(t *testing.T) {
	values, err := url.ParseQuery("price[gte]=10&price[lt]=50")
	require.NoError(t, err)

	spec := Parse(values, allowed)

	require.Len(t, spec.Filters, 2)
	ops := map[string]string{}
	for _, f := range spec.Filters {
		assert.Equal(t, "price", f.Field)
		ops[f.Operator] = f.Value
	}
	assert.Equal(t, map[string]string{">=": "10", "<": "50"}, ops)
}

func TestParseDropsUnknownFields(t *testing.T) {
	values, err := url.ParseQuery("role=odogwu&password[gte]=x&city=lagos")
	require.NoError(t, err)

	spec := Parse(values, allowed)

	require.Len(t, spec.Filters, 1)
	assert.Equal(t, "city", spec.Filters[0].Field)
}

func TestParseUnknownOperatorTreatedAsField(t *testing.T) {
	// name[like] is not a supported operator, and "name[like]" is not an
	// allowed column, so the parameter disappears.
	values, err := url.ParseQuery("name[like]=abc")
	require.NoError(t, err)

	spec := Parse(values, allowed)
	assert.Empty(t, spec.Filters)
}

func TestParseSort(t *testing.T) {
	values, err := url.ParseQuery("sort=-price,name,secret")
	require.NoError(t, err)

	spec := Parse(values, allowed)

	require.Len(t, spec.Sorts, 2)
	assert.Equal(t, Sort{Field: "price", Desc: true}, spec.Sorts[0])
	assert.Equal(t, Sort{Field: "name", Desc: false}, spec.Sorts[1])
}

func TestParseFieldsProjection(t *testing.T) {
	values, err := url.ParseQuery("fields=name,city,password_hashed")
	require.NoError(t, err)

	spec := Parse(values, allowed)

	assert.Equal(t, []string{"name", "city"}, spec.Fields)
}

func TestParsePagination(t *testing.T) {
	values, err := url.ParseQuery("page=3&limit=25")
	require.NoError(t, err)

	spec := Parse(values, allowed)
	assert.Equal(t, 3, spec.Page)
	assert.Equal(t, 25, spec.Limit)
}

func TestParsePaginationBounds(t *testing.T) {
	values, err := url.ParseQuery("page=-1&limit=0")
	require.NoError(t, err)

	spec := Parse(values, allowed)
	assert.Equal(t, DefaultPage, spec.Page)
	assert.Equal(t, DefaultLimit, spec.Limit)

	values, err = url.ParseQuery("limit=100000")
	require.NoError(t, err)

	spec = Parse(values, allowed)
	assert.Equal(t, 1000, spec.Limit)
}
