package domain

import "time"

// ViewSubject distinguishes what kind of record a view event counts against.
type ViewSubject string

const (
	ViewSubjectArtwork ViewSubject = "artwork"
	ViewSubjectProfile ViewSubject = "profile"
)

// ViewEvent represents one sighting of an artwork or profile by a viewer.
// ViewerKey identifies the viewer well enough for deduplication: the
// authenticated user id, or a client address for anonymous traffic.
type ViewEvent struct {
	Subject   ViewSubject
	SubjectID string
	ViewerKey string
	Timestamp time.Time
}
