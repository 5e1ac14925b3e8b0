// Package postgres implements the running event QueryStore against PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/runningevents/pkg/database"
	"github.com/ghuser/runningevents/pkg/events"
	rdomain "github.com/ghuser/runningevents/services/runningevent/domain"
	domainevents "github.com/ghuser/runningevents/services/runningevent/domain/events"
	"github.com/ghuser/runningevents/services/runningevent/domain/models"
	"github.com/ghuser/runningevents/services/runningevent/infrastructure/persistence"
	"github.com/ghuser/runningevents/services/runningevent/infrastructure/persistence/postgres/db"
)

// ErrUnsupportedSortField is returned when a page request sorts by a field
// that has no column. It matches rdomain.ErrInvalidQuery under errors.Is.
var ErrUnsupportedSortField = fmt.Errorf("%w: unsupported sort field", rdomain.ErrInvalidQuery)

// ErrPageOutOfRange is returned when a page starts beyond the largest offset
// PostgreSQL accepts through the query layer. It matches rdomain.ErrInvalidQuery.
var ErrPageOutOfRange = fmt.Errorf("%w: page out of range", rdomain.ErrInvalidQuery)

var sortColumns = map[string]db.Column{
	"id":       db.ColumnID,
	"name":     db.ColumnName,
	"dateTime": db.ColumnDateTime,
	"location": db.ColumnLocation,
}

var tracer = otel.Tracer("runningevent/postgres")

// Store implements persistence.QueryStore against PostgreSQL.
type Store struct {
	db  *database.Database
	bus *events.EventBus
}

// NewStore returns a Store backed by the given pool. When bus is non-nil,
// creations and deletions publish domain events in the same transaction.
func NewStore(database *database.Database, bus *events.EventBus) *Store {
	return &Store{db: database, bus: bus}
}

// FindByID returns the row for id, or found=false when there is none.
func (s *Store) FindByID(ctx context.Context, id int64) (*persistence.RunningEventEntity, bool, error) {
	ctx, span := startSpan(ctx, "FindByID", attribute.Int64("running_event.id", id))
	defer span.End()

	row, err := db.New(s.db.DB()).GetRunningEventByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, recordErr(span, fmt.Errorf("query running event: %w", err))
	}
	return rowToEntity(row), true, nil
}

// ExistsByID reports whether a row with id exists.
func (s *Store) ExistsByID(ctx context.Context, id int64) (bool, error) {
	ctx, span := startSpan(ctx, "ExistsByID", attribute.Int64("running_event.id", id))
	defer span.End()

	exists, err := db.New(s.db.DB()).RunningEventExists(ctx, id)
	if err != nil {
		return false, recordErr(span, fmt.Errorf("check running event exists: %w", err))
	}
	return exists, nil
}

// DeleteByID removes the row and publishes a RunningEventDeletedEvent within
// the same transaction. Deleting a missing id is a no-op.
func (s *Store) DeleteByID(ctx context.Context, id int64) error {
	ctx, span := startSpan(ctx, "DeleteByID", attribute.Int64("running_event.id", id))
	defer span.End()

	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		if err := db.New(tx).DeleteRunningEvent(ctx, id); err != nil {
			return fmt.Errorf("delete running event: %w", err)
		}
		if s.bus != nil {
			evt := domainevents.RunningEventDeletedEvent{
				EventID:        uuid.New(),
				Version:        1,
				RunningEventID: id,
				OccurredAt:     time.Now().UTC(),
			}
			if err := s.publish(ctx, tx, domainevents.TopicRunningEventDeleted, evt.EventID, evt); err != nil {
				return fmt.Errorf("publish running event deleted: %w", err)
			}
		}
		return nil
	})
	return recordErr(span, err)
}

// Save inserts entities without an ID and updates the rest. New rows publish
// a RunningEventCreatedEvent within the same transaction.
// Returns ErrRunningEventAlreadyExists on unique constraint violations.
func (s *Store) Save(ctx context.Context, entity *persistence.RunningEventEntity) (*persistence.RunningEventEntity, error) {
	ctx, span := startSpan(ctx, "Save", attribute.Int64("running_event.id", entity.ID))
	defer span.End()

	saved := *entity
	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		if saved.ID != 0 {
			n, err := q.UpdateRunningEvent(ctx, db.UpdateRunningEventParams{
				ID:       saved.ID,
				Name:     saved.Name,
				DateTime: saved.DateTime,
				Location: saved.Location,
			})
			if err != nil {
				return mapWriteErr("update running event", err)
			}
			if n == 0 {
				return rdomain.ErrRunningEventNotFound
			}
			return nil
		}

		id, err := q.InsertRunningEvent(ctx, db.InsertRunningEventParams{
			Name:     saved.Name,
			DateTime: saved.DateTime,
			Location: saved.Location,
		})
		if err != nil {
			return mapWriteErr("insert running event", err)
		}
		saved.ID = id

		if s.bus != nil {
			evt := domainevents.RunningEventCreatedEvent{
				EventID:        uuid.New(),
				Version:        1,
				RunningEventID: saved.ID,
				Name:           saved.Name,
				DateTime:       saved.DateTime,
				Location:       saved.Location,
				OccurredAt:     time.Now().UTC(),
			}
			if err := s.publish(ctx, tx, domainevents.TopicRunningEventCreated, evt.EventID, evt); err != nil {
				return fmt.Errorf("publish running event created: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, recordErr(span, err)
	}
	return &saved, nil
}

// FindAll returns one page of all rows plus the total row count.
func (s *Store) FindAll(ctx context.Context, page persistence.PageRequest) (persistence.Page[*persistence.RunningEventEntity], error) {
	ctx, span := startSpan(ctx, "FindAll", pageAttrs(page)...)
	defer span.End()

	var out persistence.Page[*persistence.RunningEventEntity]
	order, err := orderBy(page.Sort)
	if err != nil {
		return out, recordErr(span, err)
	}
	limit, offset, err := pageWindow(page)
	if err != nil {
		return out, recordErr(span, err)
	}

	q := db.New(s.db.DB())
	rows, err := q.ListRunningEvents(ctx, db.ListRunningEventsParams{
		OrderBy: order,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		return out, recordErr(span, fmt.Errorf("query running events: %w", err))
	}

	total, err := q.CountRunningEvents(ctx)
	if err != nil {
		return out, recordErr(span, fmt.Errorf("count running events: %w", err))
	}

	out.Items = rowsToEntities(rows)
	out.Total = total
	return out, nil
}

// FindByDateTimeBetween returns one page of rows whose date_time lies in
// [from, to] plus the number of such rows.
func (s *Store) FindByDateTimeBetween(ctx context.Context, from, to int64, page persistence.PageRequest) (persistence.Page[*persistence.RunningEventEntity], error) {
	attrs := append(pageAttrs(page), attribute.Int64("range.from", from), attribute.Int64("range.to", to))
	ctx, span := startSpan(ctx, "FindByDateTimeBetween", attrs...)
	defer span.End()

	var out persistence.Page[*persistence.RunningEventEntity]
	order, err := orderBy(page.Sort)
	if err != nil {
		return out, recordErr(span, err)
	}
	limit, offset, err := pageWindow(page)
	if err != nil {
		return out, recordErr(span, err)
	}

	q := db.New(s.db.DB())
	rows, err := q.ListRunningEventsBetween(ctx, db.ListRunningEventsBetweenParams{
		From:    from,
		To:      to,
		OrderBy: order,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		return out, recordErr(span, fmt.Errorf("query running events between: %w", err))
	}

	total, err := q.CountRunningEventsBetween(ctx, from, to)
	if err != nil {
		return out, recordErr(span, fmt.Errorf("count running events between: %w", err))
	}

	out.Items = rowsToEntities(rows)
	out.Total = total
	return out, nil
}

func (s *Store) publish(ctx context.Context, tx *sql.Tx, topic string, eventID uuid.UUID, payload any) error {
	msg, err := events.NewJSONMessage(ctx, eventID.String(), 1, payload)
	if err != nil {
		return err
	}
	p, err := s.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(topic, msg)
}

// orderBy translates a domain sort into a whitelisted column.
func orderBy(sort persistence.Sort) (db.OrderBy, error) {
	col, ok := sortColumns[sort.Field]
	if !ok {
		return db.OrderBy{}, fmt.Errorf("%w: %q", ErrUnsupportedSortField, sort.Field)
	}
	return db.OrderBy{Column: col, Desc: sort.Direction == models.SortDesc}, nil
}

// pageWindow converts a page request to LIMIT and OFFSET, rejecting pages
// whose offset does not fit in an int32.
func pageWindow(page persistence.PageRequest) (limit, offset int32, err error) {
	if page.Size < 1 || page.Size > math.MaxInt32 {
		return 0, 0, fmt.Errorf("%w: size %d", ErrPageOutOfRange, page.Size)
	}
	if page.Page > math.MaxInt32/page.Size {
		return 0, 0, fmt.Errorf("%w: page %d of size %d", ErrPageOutOfRange, page.Page, page.Size)
	}
	return int32(page.Size), int32(page.Offset()), nil
}

func mapWriteErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return rdomain.ErrRunningEventAlreadyExists
	}
	return fmt.Errorf("%s: %w", op, err)
}

func startSpan(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, "RunningEventStore."+op, trace.WithAttributes(attrs...))
}

func pageAttrs(page persistence.PageRequest) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int("page.index", page.Page),
		attribute.Int("page.size", page.Size),
		attribute.String("page.sort", page.Sort.Field+" "+string(page.Sort.Direction)),
	}
}

func recordErr(span trace.Span, err error) error {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func rowToEntity(row db.RunningEventRow) *persistence.RunningEventEntity {
	return &persistence.RunningEventEntity{
		ID:       row.ID,
		Name:     row.Name,
		DateTime: row.DateTime,
		Location: row.Location,
	}
}

func rowsToEntities(rows []db.RunningEventRow) []*persistence.RunningEventEntity {
	items := make([]*persistence.RunningEventEntity, len(rows))
	for i, row := range rows {
		items[i] = rowToEntity(row)
	}
	return items
}
