package catalog

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/MdSaifulIslamMSI/Flipkart-Clone/shared/apperr"
)

const DefaultPageSize = 8

// Query keys that control pagination and ordering. They are stripped before
// filters are built so they can never act as predicates.
var controlKeys = map[string]bool{
	"keyword": true,
	"page":    true,
	"limit":   true,
	"sort":    true,
}

var rangeOps = map[string]string{
	"gte": "$gte",
	"gt":  "$gt",
	"lte": "$lte",
	"lt":  "$lt",
}

// Fields that accept range operators. Anything else with an operator suffix
// is silently dropped.
var rangeFields = map[string]bool{
	"price":   true,
	"ratings": true,
}

// ListQuery is a fully resolved product listing request: a filter document,
// a deterministic sort order, and 1-indexed pagination.
type ListQuery struct {
	Filter   bson.M
	Sort     bson.D
	Page     int
	PageSize int
}

// ParseListQuery translates raw URL query parameters into a ListQuery.
// Keyword matches are case-insensitive substring matches on the product
// name; range filters arrive as field[op] keys (price[gte]=100). Keys
// outside the recognized set are ignored.
func ParseListQuery(values url.Values) (*ListQuery, error) {
	filter := bson.M{}

	if keyword := strings.TrimSpace(values.Get("keyword")); keyword != "" {
		filter["name"] = bson.M{"$regex": keyword, "$options": "i"}
	}
	if category := values.Get("category"); category != "" {
		filter["category"] = category
	}

	for key := range values {
		if controlKeys[key] || key == "category" {
			continue
		}

		field, op, ok := splitRangeKey(key)
		if !ok || !rangeFields[field] {
			continue
		}
		mongoOp, ok := rangeOps[op]
		if !ok {
			continue
		}

		raw := values.Get(key)
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, apperr.Validation("invalid value %q for filter %s", raw, key)
		}

		bounds, ok := filter[field].(bson.M)
		if !ok {
			bounds = bson.M{}
			filter[field] = bounds
		}
		bounds[mongoOp] = value
	}

	page := 1
	if raw := values.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, apperr.Validation("page must be a positive integer, got %q", raw)
		}
		page = n
	}

	return &ListQuery{
		Filter:   filter,
		Sort:     sortOrder(values.Get("sort")),
		Page:     page,
		PageSize: DefaultPageSize,
	}, nil
}

// splitRangeKey decomposes "price[gte]" into ("price", "gte", true).
func splitRangeKey(key string) (field, op string, ok bool) {
	open := strings.IndexByte(key, '[')
	if open <= 0 || !strings.HasSuffix(key, "]") {
		return "", "", false
	}
	return key[:open], key[open+1 : len(key)-1], true
}

// sortOrder maps the sort parameter to a Mongo sort document. Every order
// ends with an ascending _id tie-break so pagination is stable.
func sortOrder(sort string) bson.D {
	var primary bson.E
	switch sort {
	case "lowest":
		primary = bson.E{Key: "price", Value: 1}
	case "highest":
		primary = bson.E{Key: "price", Value: -1}
	case "ratings", "popular":
		primary = bson.E{Key: "ratings", Value: -1}
	default: // "newest" and anything unrecognized
		primary = bson.E{Key: "createdAt", Value: -1}
	}
	return bson.D{primary, {Key: "_id", Value: 1}}
}

// Offset is the number of documents skipped before the requested page.
func (q *ListQuery) Offset() int64 {
	return int64(q.PageSize) * int64(q.Page-1)
}

func (q *ListQuery) String() string {
	return fmt.Sprintf("page=%d size=%d filter=%v", q.Page, q.PageSize, q.Filter)
}
