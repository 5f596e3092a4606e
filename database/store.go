package database

import (
	"context"
	"fmt"
	"reflect"

	"foodapp/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// menuDocument is the stored shape of a menu item
type menuDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
	Emoji       string             `bson:"emoji"`
}

// orderDocument is the stored shape of an order. Absent customer fields are
// stored as null.
type orderDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	CustomerName    *string            `bson:"customerName"`
	CustomerPhone   *string            `bson:"customerPhone"`
	CustomerAddress *string            `bson:"customerAddress"`
	DeliveryTime    *string            `bson:"deliveryTime"`
	Items           []any              `bson:"items"`
	Total           float64            `bson:"total"`
	Status          string             `bson:"status"`
	CreatedAt       string             `bson:"createdAt"`
}

// MongoStore serves the menu and orders collections
type MongoStore struct {
	Menu   *mongo.Collection
	Orders *mongo.Collection
}

// NewMongoStore opens the menu and orders collections of dbName.
// Embedded documents inside opaque fields (order items) decode as bson.M
// so they render as JSON objects.
func NewMongoStore(client *mongo.Client, dbName string) *MongoStore {
	reg := bson.NewRegistry()
	reg.RegisterTypeMapEntry(bsontype.EmbeddedDocument, reflect.TypeOf(bson.M{}))

	db := client.Database(dbName, options.Database().SetRegistry(reg))
	return &MongoStore{
		Menu:   db.Collection(MenuCollection),
		Orders: db.Collection(OrdersCollection),
	}
}

// ListMenu returns every menu item in insertion order
func (s *MongoStore) ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetProjection(bson.M{"_id": 1, "name": 1, "description": 1, "price": 1, "emoji": 1})

	cursor, err := s.Menu.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find menu: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []menuDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode menu: %w", err)
	}

	items := make([]models.MenuItem, 0, len(docs))
	for _, doc := range docs {
		items = append(items, models.MenuItem{
			ID:          doc.ID.Hex(),
			Name:        doc.Name,
			Description: doc.Description,
			Price:       doc.Price,
			Emoji:       doc.Emoji,
		})
	}
	return items, nil
}

// CountMenu returns the number of menu documents
func (s *MongoStore) CountMenu(ctx context.Context) (int64, error) {
	count, err := s.Menu.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count menu: %w", err)
	}
	return count, nil
}

// InsertMenu inserts items in the given order
func (s *MongoStore) InsertMenu(ctx context.Context, items []models.MenuItem) error {
	docs := make([]interface{}, 0, len(items))
	for _, item := range items {
		docs = append(docs, menuDocument{
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			Emoji:       item.Emoji,
		})
	}

	opts := options.InsertMany().SetOrdered(true)
	if _, err := s.Menu.InsertMany(ctx, docs, opts); err != nil {
		return fmt.Errorf("insert menu: %w", err)
	}
	return nil
}

// InsertOrder stores order and returns its new identity
func (s *MongoStore) InsertOrder(ctx context.Context, order models.Order) (string, error) {
	result, err := s.Orders.InsertOne(ctx, orderDocument{
		CustomerName:    order.CustomerName,
		CustomerPhone:   order.CustomerPhone,
		CustomerAddress: order.CustomerAddress,
		DeliveryTime:    order.DeliveryTime,
		Items:           order.Items,
		Total:           order.Total,
		Status:          order.Status,
		CreatedAt:       order.CreatedAt,
	})
	if err != nil {
		return "", fmt.Errorf("insert order: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(result.InsertedID), nil
}

// ListOrders returns up to limit orders, newest first
func (s *MongoStore) ListOrders(ctx context.Context, limit int64) ([]models.Order, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.Orders.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	for cursor.Next(ctx) {
		var doc orderDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		orders = append(orders, doc.toModel())
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("read orders: %w", err)
	}
	return orders, nil
}

func (doc orderDocument) toModel() models.Order {
	items := doc.Items
	if items == nil {
		items = []any{}
	}
	return models.Order{
		ID:              doc.ID.Hex(),
		CustomerName:    doc.CustomerName,
		CustomerPhone:   doc.CustomerPhone,
		CustomerAddress: doc.CustomerAddress,
		DeliveryTime:    doc.DeliveryTime,
		Items:           items,
		Total:           doc.Total,
		Status:          doc.Status,
		CreatedAt:       doc.CreatedAt,
	}
}
