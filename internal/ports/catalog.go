package ports

import "context"

// CatalogSource fetches the raw schedule document
type CatalogSource interface {
	// Describe returns the location of the document for messages and logs
	Describe() string
	Fetch(ctx context.Context) ([]byte, error)
}

// CatalogCache keeps the last successfully fetched document
type CatalogCache interface {
	Read() ([]byte, error)
	Write(data []byte) error
}
