package repository

import (
	"context"
	"errors"
	"time"

	logrus "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo is the Store implementation backed by a MongoDB database. It is
// constructed once at process start and passed into every component that
// needs storage; there is no package-level handle.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens a client for the given URI, verifies the deployment is
// reachable and returns the Store.
func Connect(ctx context.Context, uri, dbName string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	return &Mongo{client: client, db: client.Database(dbName)}, nil
}

// Disconnect releases the underlying client.
func (m *Mongo) Disconnect(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// query translates a Filter into a bson document. Values under "_id" are
// parsed into ObjectIDs; a value that does not parse fails the whole call
// with ErrInvalidID before anything reaches the database.
func (m *Mongo) query(filter Filter) (bson.M, error) {
	q := bson.M{}
	for field, cond := range filter {
		switch v := cond.(type) {
		case In:
			if field == "_id" {
				ids := make([]primitive.ObjectID, 0, len(v))
				for _, raw := range v {
					oid, err := primitive.ObjectIDFromHex(raw)
					if err != nil {
						return nil, ErrInvalidID
					}
					ids = append(ids, oid)
				}
				q[field] = bson.M{"$in": ids}
			} else {
				q[field] = bson.M{"$in": []string(v)}
			}
		default:
			if field == "_id" {
				raw, ok := cond.(string)
				if !ok {
					return nil, ErrInvalidID
				}
				oid, err := primitive.ObjectIDFromHex(raw)
				if err != nil {
					return nil, ErrInvalidID
				}
				q[field] = oid
			} else {
				q[field] = cond
			}
		}
	}
	return q, nil
}

func (m *Mongo) Find(ctx context.Context, collection string, filter Filter, out any) error {
	q, err := m.query(filter)
	if err != nil {
		return err
	}
	cur, err := m.db.Collection(collection).Find(ctx, q)
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

func (m *Mongo) FindOne(ctx context.Context, collection string, filter Filter, out any) error {
	q, err := m.query(filter)
	if err != nil {
		return err
	}
	err = m.db.Collection(collection).FindOne(ctx, q).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

func (m *Mongo) Insert(ctx context.Context, collection string, doc any) (string, error) {
	res, err := m.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return "", errors.New("inserted id is not an object id")
}

func (m *Mongo) Update(ctx context.Context, collection string, filter Filter, set map[string]any, upsert bool) (UpdateResult, error) {
	q, err := m.query(filter)
	if err != nil {
		return UpdateResult{}, err
	}
	opts := options.Update().SetUpsert(upsert)
	res, err := m.db.Collection(collection).UpdateOne(ctx, q, bson.M{"$set": set}, opts)
	if err != nil {
		return UpdateResult{}, err
	}
	out := UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}
	if oid, ok := res.UpsertedID.(primitive.ObjectID); ok {
		out.UpsertedID = oid.Hex()
	}
	return out, nil
}

func (m *Mongo) Delete(ctx context.Context, collection string, filter Filter) (DeleteResult, error) {
	q, err := m.query(filter)
	if err != nil {
		return DeleteResult{}, err
	}
	res, err := m.db.Collection(collection).DeleteOne(ctx, q)
	if err != nil {
		return DeleteResult{}, err
	}
	return DeleteResult{DeletedCount: res.DeletedCount}, nil
}

func (m *Mongo) DeleteMany(ctx context.Context, collection string, filter Filter) (DeleteResult, error) {
	q, err := m.query(filter)
	if err != nil {
		return DeleteResult{}, err
	}
	res, err := m.db.Collection(collection).DeleteMany(ctx, q)
	if err != nil {
		return DeleteResult{}, err
	}
	return DeleteResult{DeletedCount: res.DeletedCount}, nil
}

// WithTransaction runs fn inside a session transaction. Standalone
// deployments reject transactions; in that case the steps run sequentially
// without atomicity, which is logged rather than hidden.
func (m *Mongo) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := m.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, fn(sc)
	})
	if err != nil && transactionsUnsupported(err) {
		logrus.WithError(err).Warn("transactions unavailable on this deployment; running steps without atomicity")
		return fn(ctx)
	}
	return err
}

// transactionsUnsupported recognizes the server error a standalone mongod
// raises for transaction commands (IllegalOperation, code 20).
func transactionsUnsupported(err error) bool {
	var cmdErr mongo.CommandError
	return errors.As(err, &cmdErr) && cmdErr.Code == 20
}
