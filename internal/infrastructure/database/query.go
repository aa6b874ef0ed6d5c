package database

import (
	"fmt"
	"regexp"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"

	"storefront/internal/domain/dto"
	"storefront/internal/domain/repository/database"
)

const defaultSortField = "created_at"

// buildFilter translates q into a mongo filter for schema.
func buildFilter(schema Schema, q dto.ListQuery) (bson.M, error) {
	filter := bson.M{}

	if q.Search != "" && len(schema.SearchFields) > 0 {
		pattern := bson.M{"$regex": regexp.QuoteMeta(q.Search), "$options": "i"}
		or := make(bson.A, 0, len(schema.SearchFields))
		for _, field := range schema.SearchFields {
			or = append(or, bson.M{field: pattern})
		}
		filter["$or"] = or
	}

	if len(q.Tags) > 0 {
		filter["tags"] = bson.M{"$in": q.Tags}
	}

	if q.CreatedBy != "" {
		filter["created_by"] = q.CreatedBy
	}

	for key, raw := range q.Filters {
		f, ok := schema.Filters[key]
		if !ok || raw == "" {
			continue
		}

		if !f.Bool {
			filter[f.Field] = raw

			continue
		}

		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be true or false", database.ErrInvalidFilter, key)
		}
		filter[f.Field] = v
	}

	return filter, nil
}

// buildSort resolves the requested sort against the schema whitelist,
// falling back to creation time.
func buildSort(schema Schema, q dto.ListQuery) bson.D {
	field, ok := schema.SortFields[q.SortBy]
	if !ok {
		field = defaultSortField
	}

	direction := -1
	if q.SortOrder == dto.SortAsc {
		direction = 1
	}

	return bson.D{{Key: field, Value: direction}, {Key: "_id", Value: direction}}
}
