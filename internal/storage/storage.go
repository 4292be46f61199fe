// Package storage defines the gateway to the object store. The service never
// proxies image bytes itself; clients upload and download directly against
// time-limited signed URLs issued here. The MinIO implementation works with
// any S3-compatible provider (MinIO, AWS S3).
package storage

import "context"

// Storage issues signed URLs for direct client access to stored objects.
type Storage interface {
	// PresignPut returns a short-lived URL granting a single PUT of the
	// object at key. The content type is signed into the URL: the client
	// must send the exact same Content-Type header on upload or the
	// storage layer rejects the request.
	PresignPut(ctx context.Context, key, contentType string) (string, error)
	// PresignGet returns a URL granting a GET of the object at key, valid
	// long enough for a page render plus some client-side delay.
	PresignGet(ctx context.Context, key string) (string, error)
	// PublicURL constructs a stable browser-accessible URL for key when a
	// CDN/public base is configured, or "" when the bucket is private.
	PublicURL(key string) string
}
