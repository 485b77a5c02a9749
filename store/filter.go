package store

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FilterQuery builds the product filter predicate. It starts from the
// match-all query and conjuncts a clause per supplied filter, so no
// combination of empty filters can narrow the result set.
func FilterQuery(categories []primitive.ObjectID, priceRange []float64) bson.M {
	query := bson.M{}
	if len(categories) > 0 {
		query["category"] = bson.M{"$in": categories}
	}
	if len(priceRange) == 2 {
		query["price"] = bson.M{"$gte": priceRange[0], "$lte": priceRange[1]}
	}
	return query
}
