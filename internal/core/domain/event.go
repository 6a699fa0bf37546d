package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// SourceHash is a one-way hash of a caller-supplied source identifier (for
// example an IP address). Tracking inputs carry this type instead of the raw
// string, so a raw identifier can never reach the persistence layer. Build
// one with HashSource.
type SourceHash string

// HashSource irreversibly hashes a raw source identifier. An empty input
// yields an empty hash, which is persisted as NULL.
func HashSource(raw string) SourceHash {
	if raw == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(raw))
	return SourceHash(hex.EncodeToString(sum[:]))
}

// ImpressionEvent is an append-only record of a variation being included in
// a newsletter send.
type ImpressionEvent struct {
	ID               int64
	OfferID          int64
	VariationID      int64
	NewsletterSendID string
	SourceHash       SourceHash
	SubscriberCount  int
	TrackedAt        time.Time
}

// ClickEvent is an append-only record of a recipient activating a
// variation's link. OfferID may be zero on ingest; it is then resolved from
// the variation's parent offer before the row is stored.
type ClickEvent struct {
	ID          int64
	OfferID     int64
	VariationID int64
	SourceHash  SourceHash
	UserAgent   string
	Referrer    string
	UTMSource   string
	ClickedAt   time.Time
}
