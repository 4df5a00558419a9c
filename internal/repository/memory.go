package repository

import (
	"context"
	"encoding/json"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const zeroID = "000000000000000000000000"

// Memory is an in-process Store used by the tests. Documents live as
// decoded JSON maps keyed by collection; ids are ObjectID hex strings so
// that id validation behaves exactly like the Mongo store.
type Memory struct {
	mu    sync.Mutex
	txMu  sync.Mutex
	colls map[string][]map[string]any
}

func NewMemory() *Memory {
	return &Memory{colls: make(map[string][]map[string]any)}
}

// toDoc converts an arbitrary document into its JSON-map form.
func toDoc(doc any) (map[string]any, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	m := map[string]any{}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// normalize round-trips a value through JSON so that typed filter values
// compare equal to stored document values.
func normalize(v any) any {
	b, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return v
	}
	return out
}

// checkFilter rejects malformed _id values up front, before any matching,
// mirroring the Mongo store's translation step.
func checkFilter(filter Filter) error {
	for field, cond := range filter {
		if field != "_id" {
			continue
		}
		switch v := cond.(type) {
		case In:
			for _, raw := range v {
				if _, err := primitive.ObjectIDFromHex(raw); err != nil {
					return ErrInvalidID
				}
			}
		case string:
			if _, err := primitive.ObjectIDFromHex(v); err != nil {
				return ErrInvalidID
			}
		default:
			return ErrInvalidID
		}
	}
	return nil
}

func matches(doc map[string]any, filter Filter) bool {
	for field, cond := range filter {
		switch v := cond.(type) {
		case In:
			got, _ := doc[field].(string)
			found := false
			for _, want := range v {
				if got == want {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		default:
			if !reflect.DeepEqual(normalize(doc[field]), normalize(cond)) {
				return false
			}
		}
	}
	return true
}

func decodeInto(docs any, out any) error {
	b, err := json.Marshal(docs)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

func (m *Memory) Find(ctx context.Context, collection string, filter Filter, out any) error {
	if err := checkFilter(filter); err != nil {
		return err
	}
	m.mu.Lock()
	hits := []map[string]any{}
	for _, doc := range m.colls[collection] {
		if matches(doc, filter) {
			hits = append(hits, doc)
		}
	}
	m.mu.Unlock()
	return decodeInto(hits, out)
}

func (m *Memory) FindOne(ctx context.Context, collection string, filter Filter, out any) error {
	if err := checkFilter(filter); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, doc := range m.colls[collection] {
		if matches(doc, filter) {
			return decodeInto(doc, out)
		}
	}
	return ErrNotFound
}

func (m *Memory) Insert(ctx context.Context, collection string, doc any) (string, error) {
	d, err := toDoc(doc)
	if err != nil {
		return "", err
	}
	id, _ := d["_id"].(string)
	if id == "" || id == zeroID {
		id = primitive.NewObjectID().Hex()
	}
	d["_id"] = id

	m.mu.Lock()
	m.colls[collection] = append(m.colls[collection], d)
	m.mu.Unlock()
	return id, nil
}

func (m *Memory) Update(ctx context.Context, collection string, filter Filter, set map[string]any, upsert bool) (UpdateResult, error) {
	if err := checkFilter(filter); err != nil {
		return UpdateResult{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, doc := range m.colls[collection] {
		if !matches(doc, filter) {
			continue
		}
		res := UpdateResult{MatchedCount: 1}
		for k, v := range set {
			nv := normalize(v)
			if !reflect.DeepEqual(doc[k], nv) {
				doc[k] = nv
				res.ModifiedCount = 1
			}
		}
		return res, nil
	}

	if !upsert {
		return UpdateResult{}, nil
	}

	// Upsert: seed the new document from the filter's equality fields, then
	// apply the set, as Mongo does.
	d := map[string]any{}
	for field, cond := range filter {
		if _, isIn := cond.(In); !isIn {
			d[field] = normalize(cond)
		}
	}
	for k, v := range set {
		d[k] = normalize(v)
	}
	id, _ := d["_id"].(string)
	if id == "" {
		id = primitive.NewObjectID().Hex()
		d["_id"] = id
	}
	m.colls[collection] = append(m.colls[collection], d)
	return UpdateResult{UpsertedID: id}, nil
}

func (m *Memory) Delete(ctx context.Context, collection string, filter Filter) (DeleteResult, error) {
	if err := checkFilter(filter); err != nil {
		return DeleteResult{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	docs := m.colls[collection]
	for i, doc := range docs {
		if matches(doc, filter) {
			m.colls[collection] = append(docs[:i:i], docs[i+1:]...)
			return DeleteResult{DeletedCount: 1}, nil
		}
	}
	return DeleteResult{}, nil
}

func (m *Memory) DeleteMany(ctx context.Context, collection string, filter Filter) (DeleteResult, error) {
	if err := checkFilter(filter); err != nil {
		return DeleteResult{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.colls[collection][:0]
	var deleted int64
	for _, doc := range m.colls[collection] {
		if matches(doc, filter) {
			deleted++
		} else {
			kept = append(kept, doc)
		}
	}
	m.colls[collection] = kept
	return DeleteResult{DeletedCount: deleted}, nil
}

// WithTransaction serializes transactional sections against each other.
// There is no rollback; the memory store only exists for tests.
func (m *Memory) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()
	return fn(ctx)
}
