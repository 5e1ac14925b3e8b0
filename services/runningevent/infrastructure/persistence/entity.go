// Package persistence implements the RunningEventRepository facade on top of a
// pluggable QueryStore, translating between domain objects and stored records.
package persistence

// RunningEventEntity is the storage-layer shape of a running event.
type RunningEventEntity struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	DateTime int64  `db:"date_time"`
	Location string `db:"location"`
}
