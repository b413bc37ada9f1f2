package store

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrNotFound reports that no document exists under the requested id.
var ErrNotFound = errors.New("documento no encontrado")

// Documento is one remote record with its document id. All preserves the
// backend's stream order, which the reconciler's output ordering depends on.
type Documento struct {
	ID   string
	Data map[string]interface{}
}

// RemoteCollection is a document collection keyed by string ids. The Firestore
// client is the real implementation; tests plug in fakes. Any method may fail
// with a network error — callers catch and degrade per call site.
type RemoteCollection interface {
	Get(ctx context.Context, id string) (map[string]interface{}, error)
	Set(ctx context.Context, id string, data map[string]interface{}) error
	Update(ctx context.Context, id string, data map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	All(ctx context.Context) ([]Documento, error)
}

// FirestoreCollection implements RemoteCollection over one Firestore collection.
type FirestoreCollection struct {
	client *firestore.Client
	name   string
}

func NewFirestoreCollection(client *firestore.Client, name string) *FirestoreCollection {
	return &FirestoreCollection{client: client, name: name}
}

func (f *FirestoreCollection) Get(ctx context.Context, id string) (map[string]interface{}, error) {
	snap, err := f.client.Collection(f.name).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", f.name, id, err)
	}
	return snap.Data(), nil
}

func (f *FirestoreCollection) Set(ctx context.Context, id string, data map[string]interface{}) error {
	if _, err := f.client.Collection(f.name).Doc(id).Set(ctx, data); err != nil {
		return fmt.Errorf("set %s/%s: %w", f.name, id, err)
	}
	return nil
}

// Update merges the given fields into the existing document.
func (f *FirestoreCollection) Update(ctx context.Context, id string, data map[string]interface{}) error {
	if _, err := f.client.Collection(f.name).Doc(id).Set(ctx, data, firestore.MergeAll); err != nil {
		return fmt.Errorf("update %s/%s: %w", f.name, id, err)
	}
	return nil
}

func (f *FirestoreCollection) Delete(ctx context.Context, id string) error {
	if _, err := f.client.Collection(f.name).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete %s/%s: %w", f.name, id, err)
	}
	return nil
}

func (f *FirestoreCollection) All(ctx context.Context) ([]Documento, error) {
	iter := f.client.Collection(f.name).Documents(ctx)
	defer iter.Stop()

	var docs []Documento
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			return docs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("stream %s: %w", f.name, err)
		}
		docs = append(docs, Documento{ID: snap.Ref.ID, Data: snap.Data()})
	}
}
