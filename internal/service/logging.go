package service

import (
	"context"
	"time"

	"github.com/packlane/box-picker/internal/domain/model"
	"github.com/packlane/box-picker/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoggingService persists and queries request and audit log entries.
type LoggingService interface {
	// CreateLog persists one entry.
	CreateLog(ctx context.Context, entry *model.LogEntry) error

	// CreateLogs persists a batch in one bulk write.
	CreateLogs(ctx context.Context, entries []*model.LogEntry) error

	// QueryLogs returns entries matching opts, newest first.
	QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error)

	// CountLogs counts entries matching opts.
	CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}

// LoggingServiceImpl translates between the domain log model and the
// repository's document representation. model.LogEntry and
// repository.LogEntryDocument are structurally identical, so the
// translation is a type conversion after stamping defaults.
type LoggingServiceImpl struct {
	repo repository.LogsRepositoryInterface
}

// NewLoggingService creates a logging service backed by the given repository.
func NewLoggingService(repo repository.LogsRepositoryInterface) LoggingService {
	return &LoggingServiceImpl{repo: repo}
}

// CreateLog persists one entry.
func (s *LoggingServiceImpl) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	return s.repo.Create(ctx, s.modelToDocument(entry))
}

// CreateLogs stores multiple log entries in bulk. An empty batch is a no-op.
func (s *LoggingServiceImpl) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	docs := make([]*repository.LogEntryDocument, len(entries))
	for i, entry := range entries {
		docs[i] = s.modelToDocument(entry)
	}
	return s.repo.CreateMany(ctx, docs)
}

// QueryLogs returns entries matching opts, newest first.
func (s *LoggingServiceImpl) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	docs, err := s.repo.Query(ctx, repository.LogQueryOptions(opts))
	if err != nil {
		return nil, err
	}

	entries := make([]model.LogEntry, len(docs))
	for i, doc := range docs {
		entries[i] = s.documentToModel(doc)
	}
	return entries, nil
}

// CountLogs counts entries matching opts.
func (s *LoggingServiceImpl) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	return s.repo.Count(ctx, repository.LogQueryOptions(opts))
}

// modelToDocument converts a log entry to its stored form, assigning an ID
// and timestamp when the caller left them zero.
func (s *LoggingServiceImpl) modelToDocument(entry *model.LogEntry) *repository.LogEntryDocument {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	doc := repository.LogEntryDocument(*entry)
	return &doc
}

func (s *LoggingServiceImpl) documentToModel(doc *repository.LogEntryDocument) model.LogEntry {
	return model.LogEntry(*doc)
}
