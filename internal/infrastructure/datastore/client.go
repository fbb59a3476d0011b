package datastore

import (
	"fmt"

	supabase "github.com/supabase-community/supabase-go"
)

// NewClient constructs the managed data store client. The client is built
// once at startup and injected into the repositories that need it; nothing in
// this package runs at import time.
func NewClient(url, key string) (*supabase.Client, error) {
	if url == "" || key == "" {
		return nil, fmt.Errorf("SUPABASE_URL and SUPABASE_KEY must be defined in the environment")
	}

	client, err := supabase.NewClient(url, key, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create data store client: %w", err)
	}
	return client, nil
}
