// Package workflows holds the Temporal workflows and activities of the running
// event bounded context.
package workflows

import (
	"context"
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/ghuser/runningevents/pkg/logger"
	"github.com/ghuser/runningevents/pkg/telemetry"
	pkgworkflows "github.com/ghuser/runningevents/pkg/workflows"
	"github.com/ghuser/runningevents/services/runningevent/domain/models"
	"github.com/ghuser/runningevents/services/runningevent/domain/repositories"
)

const (
	// PurgeScheduleID identifies the recurring purge schedule in Temporal.
	PurgeScheduleID = "purge-past-running-events"

	defaultPurgeBatchSize = 100
	// maxPurgeBatches bounds a single run's history; the next run continues.
	maxPurgeBatches = 50
)

// PurgeInput configures one purge run. Events whose DateTime lies more than
// Retention before the workflow's start time are deleted.
type PurgeInput struct {
	Retention time.Duration
	BatchSize int
}

// PurgeResult reports what a purge run removed.
type PurgeResult struct {
	CutoffMillis int64
	Deleted      int
	Batches      int
}

// PurgePastRunningEventsWorkflow deletes past running events batch by batch.
func PurgePastRunningEventsWorkflow(ctx workflow.Context, in PurgeInput) (PurgeResult, error) {
	batchSize := in.BatchSize
	if batchSize <= 0 {
		batchSize = defaultPurgeBatchSize
	}

	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2,
			MaximumAttempts:    5,
		},
	})

	res := PurgeResult{CutoffMillis: workflow.Now(ctx).Add(-in.Retention).UnixMilli()}
	log := workflow.GetLogger(ctx)

	var a *PurgeActivities
	for res.Batches < maxPurgeBatches {
		var ids []int64
		if err := workflow.ExecuteActivity(ctx, a.ListPastRunningEventIDs, res.CutoffMillis, batchSize).Get(ctx, &ids); err != nil {
			return res, fmt.Errorf("list past running events: %w", err)
		}
		if len(ids) == 0 {
			break
		}

		var deleted int
		if err := workflow.ExecuteActivity(ctx, a.DeleteRunningEvents, ids).Get(ctx, &deleted); err != nil {
			return res, fmt.Errorf("delete past running events: %w", err)
		}
		res.Deleted += deleted
		res.Batches++

		if len(ids) < batchSize {
			break
		}
	}

	log.Info("purge finished", "cutoff", res.CutoffMillis, "deleted", res.Deleted, "batches", res.Batches)
	return res, nil
}

// PurgeActivities runs the purge against the repository facade.
type PurgeActivities struct {
	repo    repositories.RunningEventRepository
	metrics *telemetry.Metrics
	log     logger.Logger
}

func NewPurgeActivities(repo repositories.RunningEventRepository, metrics *telemetry.Metrics, log logger.Logger) *PurgeActivities {
	return &PurgeActivities{repo: repo, metrics: metrics, log: log}
}

// ListPastRunningEventIDs returns up to limit IDs of events scheduled before
// cutoff (epoch ms), oldest first.
func (a *PurgeActivities) ListPastRunningEventIDs(ctx context.Context, cutoff int64, limit int) ([]int64, error) {
	from, to := int64(0), cutoff-1
	page, err := a.repo.FindAll(ctx, &models.RunningEventQuery{
		FromDate:      &from,
		ToDate:        &to,
		Page:          0,
		PageSize:      limit,
		SortBy:        models.DefaultSortField,
		SortDirection: models.SortAsc,
	})
	if err != nil {
		return nil, err
	}

	ids := make([]int64, len(page.Items))
	for i, e := range page.Items {
		ids[i] = e.ID
	}
	return ids, nil
}

// DeleteRunningEvents deletes every id and returns how many were removed.
// IDs already gone are skipped, so a retried batch is harmless.
func (a *PurgeActivities) DeleteRunningEvents(ctx context.Context, ids []int64) (int, error) {
	deleted := 0
	for _, id := range ids {
		ok, err := a.repo.DeleteByID(ctx, id)
		if err != nil {
			return deleted, err
		}
		if ok {
			deleted++
			a.metrics.RecordDeleted(ctx, "purge")
		}
	}
	a.log.InfoContext(ctx, "purged running events", "requested", len(ids), "deleted", deleted)
	return deleted, nil
}

// Register adds the purge workflow and its activities to w.
func Register(w worker.Worker, acts *PurgeActivities) {
	w.RegisterWorkflow(PurgePastRunningEventsWorkflow)
	w.RegisterActivity(acts)
}

// PurgeSchedule runs the purge every interval with the given retention.
func PurgeSchedule(every, retention time.Duration) pkgworkflows.Schedule {
	return pkgworkflows.Schedule{
		ID:       PurgeScheduleID,
		Workflow: PurgePastRunningEventsWorkflow,
		Args:     []any{PurgeInput{Retention: retention, BatchSize: defaultPurgeBatchSize}},
		Every:    every,
	}
}
