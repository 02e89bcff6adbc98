package store

import "context"

// GuideIndex is the persistence-collaborator boundary. The resolution chain
// only needs to know whether a guide was previously generated for a name:
// an existing guide implies the place is real, so an AI classification for
// it can be trusted more.
type GuideIndex interface {
	// ExistsGuide reports whether a guide exists for the normalized name.
	ExistsGuide(ctx context.Context, normalizedName string) (bool, error)

	// AddGuide records that a guide was generated for the normalized name.
	AddGuide(ctx context.Context, normalizedName string) error
}

// NullGuideIndex is a GuideIndex that knows nothing. Used when no database
// is configured; the chain simply skips the guide-aware boost.
type NullGuideIndex struct{}

func (NullGuideIndex) ExistsGuide(context.Context, string) (bool, error) { return false, nil }
func (NullGuideIndex) AddGuide(context.Context, string) error            { return nil }
