package store

import (
	"context"
	"errors"
	"fmt"
)

var errRemoto = errors.New("firestore caído")

// fakeCollection is an in-memory RemoteCollection preserving insertion order,
// with a switch to simulate a backend outage.
type fakeCollection struct {
	ids   []string
	docs  map[string]map[string]interface{}
	caida bool

	sets    []string
	updates []string
	deletes []string
}

func newFakeCollection() *fakeCollection {
	return &fakeCollection{docs: map[string]map[string]interface{}{}}
}

func (f *fakeCollection) seed(id string, data map[string]interface{}) {
	if _, ok := f.docs[id]; !ok {
		f.ids = append(f.ids, id)
	}
	f.docs[id] = data
}

func (f *fakeCollection) Get(ctx context.Context, id string) (map[string]interface{}, error) {
	if f.caida {
		return nil, errRemoto
	}
	data, ok := f.docs[id]
	if !ok {
		// Wrapped on purpose: not-found checks must go through errors.Is.
		return nil, fmt.Errorf("documento %s: %w", id, ErrNotFound)
	}
	return data, nil
}

func (f *fakeCollection) Set(ctx context.Context, id string, data map[string]interface{}) error {
	if f.caida {
		return errRemoto
	}
	f.seed(id, data)
	f.sets = append(f.sets, id)
	return nil
}

func (f *fakeCollection) Update(ctx context.Context, id string, data map[string]interface{}) error {
	if f.caida {
		return errRemoto
	}
	doc, ok := f.docs[id]
	if !ok {
		doc = map[string]interface{}{}
		f.ids = append(f.ids, id)
	}
	for k, v := range data {
		doc[k] = v
	}
	f.docs[id] = doc
	f.updates = append(f.updates, id)
	return nil
}

func (f *fakeCollection) Delete(ctx context.Context, id string) error {
	if f.caida {
		return errRemoto
	}
	delete(f.docs, id)
	for i, existing := range f.ids {
		if existing == id {
			f.ids = append(f.ids[:i], f.ids[i+1:]...)
			break
		}
	}
	f.deletes = append(f.deletes, id)
	return nil
}

func (f *fakeCollection) All(ctx context.Context) ([]Documento, error) {
	if f.caida {
		return nil, errRemoto
	}
	docs := make([]Documento, 0, len(f.ids))
	for _, id := range f.ids {
		docs = append(docs, Documento{ID: id, Data: f.docs[id]})
	}
	return docs, nil
}
