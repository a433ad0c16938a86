// Package mongo persists orders in a MongoDB collection, the alternate
// backend to postgres.
package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"cartflow/pkg/order"
)

type itemDoc struct {
	Name      string  `bson:"name"`
	UnitPrice float64 `bson:"unit_price"`
	Quantity  int     `bson:"quantity"`
}

type orderDoc struct {
	ID        string    `bson:"_id"`
	Items     []itemDoc `bson:"items"`
	CreatedAt time.Time `bson:"created_at"`
}

// Repository persists orders in the "orders" collection.
type Repository struct {
	col *mongo.Collection
}

// New creates a MongoDB repository on the given database.
func New(db *mongo.Database) *Repository {
	return &Repository{col: db.Collection("orders")}
}

// Create inserts the order document.
func (r *Repository) Create(ctx context.Context, o order.Order) error {
	_, err := r.col.InsertOne(ctx, toDoc(o))
	return err
}

// Get retrieves an order by ID.
func (r *Repository) Get(ctx context.Context, id string) (order.Order, error) {
	var doc orderDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return order.Order{}, order.ErrNotFound
	}
	if err != nil {
		return order.Order{}, err
	}
	return fromDoc(doc), nil
}

// List fetches all orders.
func (r *Repository) List(ctx context.Context) ([]order.Order, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var docs []orderDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	orders := make([]order.Order, 0, len(docs))
	for _, doc := range docs {
		orders = append(orders, fromDoc(doc))
	}
	return orders, nil
}

// Delete removes an order by ID.
func (r *Repository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return order.ErrNotFound
	}
	return nil
}

func toDoc(o order.Order) orderDoc {
	doc := orderDoc{ID: o.ID, CreatedAt: o.CreatedAt}
	for _, it := range o.Items {
		doc.Items = append(doc.Items, itemDoc(it))
	}
	return doc
}

func fromDoc(doc orderDoc) order.Order {
	o := order.Order{ID: doc.ID, CreatedAt: doc.CreatedAt}
	for _, it := range doc.Items {
		o.Items = append(o.Items, order.Item(it))
	}
	return o
}
