package store

import (
	"context"
	"errors"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"google.golang.org/api/option"
)

// Firestore collection names, shared by the server and the sync utility.
const (
	ColeccionProductos = "productos"
	ColeccionUsuarios  = "usuarios"
)

// NewFirestoreClient builds the Firestore client from the credentials blob in
// the environment. Callers decide what an error means: the web server keeps
// running without a remote store, the sync utility gives up.
func NewFirestoreClient(ctx context.Context) (*firestore.Client, error) {
	credsJSON := os.Getenv("FIREBASE_CREDENTIALS_JSON")
	if credsJSON == "" {
		return nil, errors.New("FIREBASE_CREDENTIALS_JSON no está definido")
	}
	projectID := os.Getenv("FIREBASE_PROJECT_ID")
	if projectID == "" {
		return nil, errors.New("FIREBASE_PROJECT_ID no está definido")
	}

	opt := option.WithCredentialsJSON([]byte(credsJSON))
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opt)
	if err != nil {
		return nil, err
	}
	return app.Firestore(ctx)
}

// Ping reports whether Firestore answers at all, reading the throwaway "ping"
// collection the way the original deployment checks connectivity at boot.
func Ping(ctx context.Context, client *firestore.Client) bool {
	if client == nil {
		return false
	}
	_, err := client.Collection("ping").Limit(1).Documents(ctx).GetAll()
	return err == nil
}
