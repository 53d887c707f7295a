package recordstore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/desparches/backend/internal/domain/contract"
)

// MongoStore keeps one document per record in a single collection, with the
// record name as the document id and the serialized payload as raw bytes.
type MongoStore struct {
	collection *mongo.Collection
}

func NewMongoStore(collection *mongo.Collection) *MongoStore {
	return &MongoStore{collection: collection}
}

var _ contract.IRecordStore = (*MongoStore)(nil)

type recordDoc struct {
	Key  string `bson:"_id"`
	Data []byte `bson:"data"`
}

func (s *MongoStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var doc recordDoc
	err := s.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return doc.Data, true, nil
}

func (s *MongoStore) Put(ctx context.Context, key string, value []byte) error {
	opts := options.Replace().SetUpsert(true)
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": key}, recordDoc{Key: key, Data: value}, opts)
	return err
}

func (s *MongoStore) Delete(ctx context.Context, key string) error {
	_, err := s.collection.DeleteOne(ctx, bson.M{"_id": key})
	return err
}
