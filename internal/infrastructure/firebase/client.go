package firebase

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// Client bundles the Firebase app and its Firestore handle.
type Client struct {
	App       *fbapp.App
	Firestore *firestore.Client
}

// NewClient initializes the Firebase app and opens Firestore. Credentials
// come from FIREBASE_SERVICE_ACCOUNT_JSON when set, otherwise from the
// file named by FIREBASE_SERVICE_ACCOUNT_PATH.
func NewClient(ctx context.Context, projectID string) (*Client, error) {
	var opts []option.ClientOption

	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("service account file does not exist: %s", serviceAccountPath)
		}
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	app, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("open firestore: %w", err)
	}

	return &Client{
		App:       app,
		Firestore: fsClient,
	}, nil
}

// TestConnection issues a cheap read to verify Firestore is reachable.
func (c *Client) TestConnection(ctx context.Context) error {
	iter := c.Firestore.Collections(ctx)
	if _, err := iter.Next(); err != nil && err != iterator.Done {
		return err
	}
	return nil
}

// Close releases the Firestore connection.
func (c *Client) Close() error {
	return c.Firestore.Close()
}
