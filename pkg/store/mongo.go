package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/evoviz/evoviz/pkg/graph"
)

const (
	defaultDatabase   = "evoviz"
	defaultCollection = "layouts"
)

// MongoStore implements [Store] on a MongoDB collection. Documents are
// keyed by "<runID>/<kind>" so one run can hold both a strategy and a
// lineage layout.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// layoutDoc is the stored document shape.
type layoutDoc struct {
	ID        string           `bson:"_id"`
	RunID     string           `bson:"run_id"`
	Kind      string           `bson:"kind"`
	Layout    graph.Renderable `bson:"layout"`
	UpdatedAt time.Time        `bson:"updated_at"`
}

// NewMongoStore connects to MongoDB at the given URI and verifies the
// connection with a ping. An empty database selects "evoviz".
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	if database == "" {
		database = defaultDatabase
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(defaultCollection),
	}, nil
}

// Save upserts the layout for a run.
func (s *MongoStore) Save(ctx context.Context, runID, kind string, r graph.Renderable) error {
	doc := layoutDoc{
		ID:        docID(runID, kind),
		RunID:     runID,
		Kind:      kind,
		Layout:    r,
		UpdatedAt: time.Now().UTC(),
	}
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": doc.ID},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("save layout %s: %w", doc.ID, err)
	}
	return nil
}

// Load returns the stored layout, or ErrNotFound.
func (s *MongoStore) Load(ctx context.Context, runID, kind string) (graph.Renderable, error) {
	var doc layoutDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": docID(runID, kind)}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return graph.Renderable{}, ErrNotFound
	}
	if err != nil {
		return graph.Renderable{}, fmt.Errorf("load layout %s/%s: %w", runID, kind, err)
	}
	return doc.Layout, nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func docID(runID, kind string) string { return runID + "/" + kind }

var _ Store = (*MongoStore)(nil)
