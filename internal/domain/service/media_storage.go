// Package service defines contracts for external collaborators of the domain.
package service

import "context"

// Upload is a single uploaded binary image, not yet placed anywhere.
type Upload struct {
	Filename string
	Content  []byte
}

// MediaStorage is the media placement collaborator: it persists a batch of
// uploaded images under a category tag and returns stable relative paths.
//
// Implementations must preserve input order, must not mutate the inputs, and
// must surface failures as a media-storage error kind. Physical cleanup of
// stored media is owned by this boundary, not by the catalog.
type MediaStorage interface {
	SaveImages(ctx context.Context, files []Upload, category string) ([]string, error)
}
