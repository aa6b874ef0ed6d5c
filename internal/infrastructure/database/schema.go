package database

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	ProductCollection = "products"
	OrderCollection   = "orders"
	UserCollection    = "users"
	NewsCollection    = "news"
	ExpenseCollection = "expenses"
	WelcomeCollection = "welcome"
	ImageCollection   = "images"
	VideoCollection   = "videos"
)

// Filter maps a query parameter to a stored field.
type Filter struct {
	Field string
	Bool  bool
}

// Schema describes how one collection is created, searched, filtered and sorted.
type Schema struct {
	Collection   string
	SearchFields []string
	Filters      map[string]Filter
	SortFields   map[string]string
	Validator    bson.M
	Indexes      []mongo.IndexModel
}

var commonSort = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

func sortFields(extra map[string]string) map[string]string {
	fields := make(map[string]string, len(commonSort)+len(extra))
	for k, v := range commonSort {
		fields[k] = v
	}
	for k, v := range extra {
		fields[k] = v
	}

	return fields
}

func index(field string) mongo.IndexModel {
	return mongo.IndexModel{Keys: bson.D{{Key: field, Value: 1}}}
}

func uniqueIndex(field string) mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetUnique(true),
	}
}

var (
	ProductSchema = Schema{
		Collection:   ProductCollection,
		SearchFields: []string{"name", "description", "category"},
		Filters: map[string]Filter{
			"category": {Field: "category"},
			"status":   {Field: "status"},
		},
		SortFields: sortFields(map[string]string{"name": "name", "price": "price", "stock": "stock"}),
		Validator: bson.M{
			"$jsonSchema": bson.M{
				"bsonType": "object",
				"required": []string{"_id", "name", "price", "status"},
				"properties": bson.M{
					"name":   bson.M{"bsonType": "string", "minLength": 1},
					"price":  bson.M{"bsonType": []string{"double", "int", "long"}, "minimum": 0},
					"stock":  bson.M{"bsonType": []string{"int", "long"}, "minimum": 0},
					"status": bson.M{"enum": []string{"available", "out_of_stock", "discontinued"}},
				},
			},
		},
		Indexes: []mongo.IndexModel{index("category"), index("tags"), index("created_by"), index("created_at")},
	}

	OrderSchema = Schema{
		Collection:   OrderCollection,
		SearchFields: []string{"shipping_address", "notes", "items.name"},
		Filters: map[string]Filter{
			"userId":        {Field: "user_id"},
			"status":        {Field: "status"},
			"paymentStatus": {Field: "payment_status"},
		},
		SortFields: sortFields(map[string]string{"totalAmount": "total_amount", "status": "status"}),
		Validator: bson.M{
			"$jsonSchema": bson.M{
				"bsonType": "object",
				"required": []string{"_id", "user_id", "items", "status"},
				"properties": bson.M{
					"items": bson.M{"bsonType": "array", "minItems": 1},
					"status": bson.M{"enum": []string{
						"pending", "processing", "shipped", "delivered", "cancelled",
					}},
					"payment_status": bson.M{"enum": []string{"pending", "paid", "failed", "refunded"}},
					"payment_method": bson.M{"enum": []string{"cash", "card", "bank_transfer", "online"}},
				},
			},
		},
		Indexes: []mongo.IndexModel{index("user_id"), index("status"), index("created_at")},
	}

	UserSchema = Schema{
		Collection:   UserCollection,
		SearchFields: []string{"name", "email", "phone"},
		Filters: map[string]Filter{
			"role":       {Field: "role"},
			"telegramId": {Field: "telegram_id"},
		},
		SortFields: sortFields(map[string]string{"name": "name", "email": "email"}),
		Indexes:    []mongo.IndexModel{uniqueIndex("email"), index("telegram_id")},
	}

	NewsSchema = Schema{
		Collection:   NewsCollection,
		SearchFields: []string{"title", "content", "author"},
		Filters: map[string]Filter{
			"author":    {Field: "author"},
			"published": {Field: "published", Bool: true},
		},
		SortFields: sortFields(map[string]string{"title": "title", "views": "views"}),
		Indexes:    []mongo.IndexModel{index("tags"), index("created_by"), index("created_at")},
	}

	ExpenseSchema = Schema{
		Collection:   ExpenseCollection,
		SearchFields: []string{"title", "description", "category"},
		Filters: map[string]Filter{
			"category": {Field: "category"},
		},
		SortFields: sortFields(map[string]string{"amount": "amount", "date": "date", "title": "title"}),
		Indexes:    []mongo.IndexModel{index("category"), index("date"), index("created_by")},
	}

	WelcomeSchema = Schema{
		Collection:   WelcomeCollection,
		SearchFields: []string{"title", "subtitle"},
		Filters: map[string]Filter{
			"active": {Field: "active", Bool: true},
		},
		SortFields: sortFields(map[string]string{"position": "position", "title": "title"}),
		Indexes:    []mongo.IndexModel{index("position")},
	}

	ImageSchema = assetSchema(ImageCollection)
	VideoSchema = assetSchema(VideoCollection)
)

func assetSchema(collection string) Schema {
	return Schema{
		Collection:   collection,
		SearchFields: []string{"title", "description", "original_name"},
		Filters: map[string]Filter{
			"contentType": {Field: "content_type"},
			"storage":     {Field: "storage"},
		},
		SortFields: sortFields(map[string]string{"title": "title", "sizeBytes": "size_bytes"}),
		Indexes: []mongo.IndexModel{
			uniqueIndex("filename"), index("tags"), index("created_by"), index("created_at"),
		},
	}
}

func Schemas() []Schema {
	return []Schema{
		ProductSchema, OrderSchema, UserSchema, NewsSchema,
		ExpenseSchema, WelcomeSchema, ImageSchema, VideoSchema,
	}
}
