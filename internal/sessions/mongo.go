package sessions

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/kvlasov/raspbot/pkg/errors"
	"github.com/kvlasov/raspbot/pkg/logger"
)

func newMongo(ctx context.Context, log logger.Logger, cfg MongoConfig) (*mongoStore, error) {
	opts := options.Client().
		ApplyURI(cfg.URL).
		SetTimeout(cfg.Timeout)

	if cfg.Auth.Username != "" {
		opts = opts.SetAuth(options.Credential{
			Username: cfg.Auth.Username,
			Password: cfg.Auth.Password,
		})
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.WrapFail(err, "connect to mongo")
	}

	err = client.Ping(ctx, readpref.Primary())
	if err != nil {
		return nil, errors.WrapFail(err, "ping mongo")
	}

	log.Infof("using mongo session store (%s/%s)", cfg.Database, cfg.Collection)

	return &mongoStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
		log:    log,
	}, nil
}

type mongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
	log    logger.Logger
}

type sessionDoc struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

func (m *mongoStore) Get(ctx context.Context, key string) (string, error) {
	var doc sessionDoc

	err := m.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", errors.WrapFail(err, "find session doc")
	}

	return doc.Value, nil
}

func (m *mongoStore) Set(ctx context.Context, key, value string) error {
	_, err := m.coll.UpdateOne(
		ctx,
		bson.M{"_id": key},
		bson.M{"$set": bson.M{"value": value}},
		options.Update().SetUpsert(true),
	)
	return errors.WrapFail(err, "upsert session doc")
}

func (m *mongoStore) SetMany(ctx context.Context, kv map[string]string) error {
	if len(kv) == 0 {
		return nil
	}

	models := make([]mongo.WriteModel, 0, len(kv))
	for key, value := range kv {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": key}).
			SetUpdate(bson.M{"$set": bson.M{"value": value}}).
			SetUpsert(true))
	}

	_, err := m.coll.BulkWrite(ctx, models)
	return errors.WrapFail(err, "bulk upsert session docs")
}

func (m *mongoStore) Delete(ctx context.Context, key string) error {
	_, err := m.coll.DeleteOne(ctx, bson.M{"_id": key})
	return errors.WrapFail(err, "delete session doc")
}

func (m *mongoStore) DeleteMany(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	_, err := m.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": keys}})
	return errors.WrapFail(err, "delete session docs")
}

func (m *mongoStore) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *mongoStore) Close(ctx context.Context) error {
	return errors.WrapFail(m.client.Disconnect(ctx), "disconnect mongo client")
}
