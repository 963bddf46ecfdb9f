package firestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mercellinas/mia-bot/internal/domain"
)

// ErrHistoryNotFound is returned when no history was exported for a user.
var ErrHistoryNotFound = errors.New("history not found")

const historyCollection = "chat_history"

// Store exports the session log to Firestore at shutdown and reads it back
// for the history command.
type Store struct {
	client *firestore.Client
}

// NewStore creates a Firestore store.
// Uses the project passed (MIA_GCP_PROJECT).
func NewStore(ctx context.Context, projectID string) (*Store, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID is required for Firestore store")
	}

	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}

	return &Store{client: client}, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

// ─────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────

func (s *Store) historyCol() *firestore.CollectionRef {
	return s.client.Collection(historyCollection)
}

func (s *Store) historyDoc(id domain.UserID) *firestore.DocumentRef {
	return s.historyCol().Doc(string(id))
}

// ─────────────────────────────────────────
// Firestore Types
// ─────────────────────────────────────────

type entryDoc struct {
	Timestamp time.Time `firestore:"timestamp"`
	Text      string    `firestore:"text"`
}

type historyDoc struct {
	UserID     string     `firestore:"user_id"`
	Entries    []entryDoc `firestore:"entries"`
	ExportedAt time.Time  `firestore:"exported_at"`
}

func toHistoryDoc(ul domain.UserLog, exportedAt time.Time) historyDoc {
	doc := historyDoc{
		UserID:     string(ul.UserID),
		Entries:    make([]entryDoc, 0, len(ul.Entries)),
		ExportedAt: exportedAt,
	}
	for _, e := range ul.Entries {
		doc.Entries = append(doc.Entries, entryDoc{Timestamp: e.Timestamp, Text: e.Text})
	}
	return doc
}

func fromHistoryDoc(doc historyDoc) domain.UserLog {
	ul := domain.UserLog{
		UserID:  domain.UserID(doc.UserID),
		Entries: make([]domain.LogEntry, 0, len(doc.Entries)),
	}
	for _, e := range doc.Entries {
		ul.Entries = append(ul.Entries, domain.LogEntry{Timestamp: e.Timestamp, Text: e.Text})
	}
	return ul
}

// ─────────────────────────────────────────
// History export
// ─────────────────────────────────────────

// Export writes one document per user, replacing whatever a previous run
// exported for that user.
func (s *Store) Export(ctx context.Context, logs []domain.UserLog) error {
	now := time.Now()
	for _, ul := range logs {
		if _, err := s.historyDoc(ul.UserID).Set(ctx, toHistoryDoc(ul, now)); err != nil {
			return fmt.Errorf("firestore Export user %s: %w", ul.UserID, err)
		}
	}
	return nil
}

func (s *Store) GetHistory(ctx context.Context, userID domain.UserID) (domain.UserLog, error) {
	snap, err := s.historyDoc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.UserLog{}, ErrHistoryNotFound
		}
		return domain.UserLog{}, fmt.Errorf("firestore GetHistory: %w", err)
	}

	var doc historyDoc
	if err := snap.DataTo(&doc); err != nil {
		return domain.UserLog{}, fmt.Errorf("firestore GetHistory decode: %w", err)
	}
	return fromHistoryDoc(doc), nil
}

// ListHistories returns up to limit exported histories. If limit <= 0, returns all.
func (s *Store) ListHistories(ctx context.Context, limit int) ([]domain.UserLog, error) {
	q := s.historyCol().OrderBy("user_id", firestore.Asc)
	if limit > 0 {
		q = q.Limit(limit)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var out []domain.UserLog
	for {
		snap, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			return nil, fmt.Errorf("firestore ListHistories: %w", err)
		}

		var doc historyDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("decode historyDoc: %w", err)
		}
		out = append(out, fromHistoryDoc(doc))
	}
	return out, nil
}
