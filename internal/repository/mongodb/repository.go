package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cmpinhao/empenho-api/internal/domain/models"
)

const (
	databaseName        = "CMP"
	empenhoCollection   = "EMPENHOS_DETALHADOS_STAGE"
	linkAuditCollection = "LINK_AUDITS"

	// listLimit caps how many documents a listing returns.
	listLimit = 1000
)

// ErrNotFound is returned when no empenho matches the requested identifier.
var ErrNotFound = errors.New("empenho not found")

// Repository defines the interface for empenho and audit report storage.
type Repository interface {
	Create(ctx context.Context, empenho models.Empenho) (models.Empenho, error)
	List(ctx context.Context) ([]models.Empenho, error)
	Get(ctx context.Context, id primitive.ObjectID) (models.Empenho, error)
	Update(ctx context.Context, id primitive.ObjectID, update models.EmpenhoUpdate) (models.Empenho, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	SaveLinkAuditReport(ctx context.Context, report models.LinkAuditReport) error
}

// MongoDBRepository implements the Repository interface for MongoDB.
type MongoDBRepository struct {
	client *mongo.Client
	dbName string
}

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client: client,
		dbName: databaseName,
	}, nil
}

func (r *MongoDBRepository) collection(name string) *mongo.Collection {
	return r.client.Database(r.dbName).Collection(name)
}

// Create inserts a new empenho and returns the stored document with its
// assigned identifier. Any identifier supplied by the caller is discarded.
func (r *MongoDBRepository) Create(ctx context.Context, empenho models.Empenho) (models.Empenho, error) {
	empenho.ID = primitive.NilObjectID

	res, err := r.collection(empenhoCollection).InsertOne(ctx, empenho)
	if err != nil {
		return models.Empenho{}, fmt.Errorf("failed to insert empenho: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return models.Empenho{}, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	return r.Get(ctx, id)
}

// List returns the stored empenhos, capped at listLimit documents.
func (r *MongoDBRepository) List(ctx context.Context) ([]models.Empenho, error) {
	findOptions := options.Find().SetLimit(listLimit)
	cursor, err := r.collection(empenhoCollection).Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to list empenhos: %w", err)
	}

	empenhos := make([]models.Empenho, 0)
	if err := cursor.All(ctx, &empenhos); err != nil {
		return nil, fmt.Errorf("failed to decode empenhos: %w", err)
	}
	return empenhos, nil
}

// Get returns the empenho with the given identifier, or ErrNotFound.
func (r *MongoDBRepository) Get(ctx context.Context, id primitive.ObjectID) (models.Empenho, error) {
	var empenho models.Empenho
	err := r.collection(empenhoCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&empenho)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Empenho{}, ErrNotFound
	}
	if err != nil {
		return models.Empenho{}, fmt.Errorf("failed to find empenho: %w", err)
	}
	return empenho, nil
}

// Update applies the supplied fields atomically and returns the updated
// document. An update with no fields returns the current document unchanged.
func (r *MongoDBRepository) Update(ctx context.Context, id primitive.ObjectID, update models.EmpenhoUpdate) (models.Empenho, error) {
	set := update.SetDocument()
	if len(set) == 0 {
		return r.Get(ctx, id)
	}

	updateOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var empenho models.Empenho
	err := r.collection(empenhoCollection).
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, updateOptions).
		Decode(&empenho)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Empenho{}, ErrNotFound
	}
	if err != nil {
		return models.Empenho{}, fmt.Errorf("failed to update empenho: %w", err)
	}
	return empenho, nil
}

// Delete removes the empenho with the given identifier, or returns
// ErrNotFound when nothing was deleted.
func (r *MongoDBRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection(empenhoCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete empenho: %w", err)
	}
	if res.DeletedCount != 1 {
		return ErrNotFound
	}
	return nil
}

// SaveLinkAuditReport saves a link audit report to the database.
func (r *MongoDBRepository) SaveLinkAuditReport(ctx context.Context, report models.LinkAuditReport) error {
	_, err := r.collection(linkAuditCollection).InsertOne(ctx, report)
	if err != nil {
		return fmt.Errorf("failed to insert link audit report: %w", err)
	}
	return nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
