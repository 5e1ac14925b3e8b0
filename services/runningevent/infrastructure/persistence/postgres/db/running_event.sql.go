package db

import (
	"context"
	"fmt"
)

// Column is a sortable running_event column.
type Column string

const (
	ColumnID       Column = "id"
	ColumnName     Column = "name"
	ColumnDateTime Column = "date_time"
	ColumnLocation Column = "location"
)

// OrderBy is an ORDER BY clause over a whitelisted column.
type OrderBy struct {
	Column Column
	Desc   bool
}

func (o OrderBy) clause() (string, error) {
	switch o.Column {
	case ColumnID, ColumnName, ColumnDateTime, ColumnLocation:
	default:
		return "", fmt.Errorf("unsortable column %q", o.Column)
	}
	dir := "ASC"
	if o.Desc {
		dir = "DESC"
	}
	// id breaks ties so pages stay stable across requests.
	return fmt.Sprintf("ORDER BY %s %s, id %s", o.Column, dir, dir), nil
}

const insertRunningEvent = `
INSERT INTO running_event (name, date_time, location)
VALUES ($1, $2, $3)
RETURNING id`

type InsertRunningEventParams struct {
	Name     string
	DateTime int64
	Location string
}

func (q *Queries) InsertRunningEvent(ctx context.Context, arg InsertRunningEventParams) (int64, error) {
	var id int64
	err := q.db.QueryRowContext(ctx, insertRunningEvent, arg.Name, arg.DateTime, arg.Location).Scan(&id)
	return id, err
}

const updateRunningEvent = `
UPDATE running_event
SET name = $2, date_time = $3, location = $4
WHERE id = $1`

type UpdateRunningEventParams struct {
	ID       int64
	Name     string
	DateTime int64
	Location string
}

// UpdateRunningEvent returns the number of rows touched.
func (q *Queries) UpdateRunningEvent(ctx context.Context, arg UpdateRunningEventParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateRunningEvent, arg.ID, arg.Name, arg.DateTime, arg.Location)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const getRunningEventByID = `
SELECT id, name, date_time, location
FROM running_event
WHERE id = $1`

func (q *Queries) GetRunningEventByID(ctx context.Context, id int64) (RunningEventRow, error) {
	var row RunningEventRow
	err := q.db.QueryRowContext(ctx, getRunningEventByID, id).Scan(&row.ID, &row.Name, &row.DateTime, &row.Location)
	return row, err
}

const runningEventExists = `SELECT EXISTS (SELECT 1 FROM running_event WHERE id = $1)`

func (q *Queries) RunningEventExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := q.db.QueryRowContext(ctx, runningEventExists, id).Scan(&exists)
	return exists, err
}

const deleteRunningEvent = `DELETE FROM running_event WHERE id = $1`

func (q *Queries) DeleteRunningEvent(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteRunningEvent, id)
	return err
}

const listRunningEvents = `
SELECT id, name, date_time, location
FROM running_event
%s
LIMIT $1 OFFSET $2`

type ListRunningEventsParams struct {
	OrderBy OrderBy
	Limit   int32
	Offset  int32
}

func (q *Queries) ListRunningEvents(ctx context.Context, arg ListRunningEventsParams) ([]RunningEventRow, error) {
	order, err := arg.OrderBy.clause()
	if err != nil {
		return nil, err
	}
	return q.list(ctx, fmt.Sprintf(listRunningEvents, order), arg.Limit, arg.Offset)
}

const countRunningEvents = `SELECT count(*) FROM running_event`

func (q *Queries) CountRunningEvents(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, countRunningEvents).Scan(&n)
	return n, err
}

const listRunningEventsBetween = `
SELECT id, name, date_time, location
FROM running_event
WHERE date_time BETWEEN $1 AND $2
%s
LIMIT $3 OFFSET $4`

type ListRunningEventsBetweenParams struct {
	From    int64
	To      int64
	OrderBy OrderBy
	Limit   int32
	Offset  int32
}

func (q *Queries) ListRunningEventsBetween(ctx context.Context, arg ListRunningEventsBetweenParams) ([]RunningEventRow, error) {
	order, err := arg.OrderBy.clause()
	if err != nil {
		return nil, err
	}
	return q.list(ctx, fmt.Sprintf(listRunningEventsBetween, order), arg.From, arg.To, arg.Limit, arg.Offset)
}

const countRunningEventsBetween = `SELECT count(*) FROM running_event WHERE date_time BETWEEN $1 AND $2`

func (q *Queries) CountRunningEventsBetween(ctx context.Context, from, to int64) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, countRunningEventsBetween, from, to).Scan(&n)
	return n, err
}

func (q *Queries) list(ctx context.Context, query string, args ...interface{}) ([]RunningEventRow, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []RunningEventRow
	for rows.Next() {
		var r RunningEventRow
		if err := rows.Scan(&r.ID, &r.Name, &r.DateTime, &r.Location); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
