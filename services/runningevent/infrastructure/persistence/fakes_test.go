package persistence

import (
	"context"

	"github.com/ghuser/runningevents/pkg/logger"
	"github.com/ghuser/runningevents/services/runningevent/domain/models"
)

// recordingStore is a QueryStore that returns canned results and counts calls.
type recordingStore struct {
	saveResult *RunningEventEntity
	findResult *RunningEventEntity
	exists     bool
	page       Page[*RunningEventEntity]
	err        error

	saveCalls     []*RunningEventEntity
	findCalls     []int64
	existsCalls   []int64
	deleteCalls   []int64
	findAllCalls  []PageRequest
	betweenCalls  []PageRequest
	betweenBounds [][2]int64
}

func (s *recordingStore) FindByID(_ context.Context, id int64) (*RunningEventEntity, bool, error) {
	s.findCalls = append(s.findCalls, id)
	if s.err != nil {
		return nil, false, s.err
	}
	return s.findResult, s.findResult != nil, nil
}

func (s *recordingStore) ExistsByID(_ context.Context, id int64) (bool, error) {
	s.existsCalls = append(s.existsCalls, id)
	return s.exists, s.err
}

func (s *recordingStore) DeleteByID(_ context.Context, id int64) error {
	s.deleteCalls = append(s.deleteCalls, id)
	return nil
}

func (s *recordingStore) Save(_ context.Context, entity *RunningEventEntity) (*RunningEventEntity, error) {
	s.saveCalls = append(s.saveCalls, entity)
	if s.err != nil {
		return nil, s.err
	}
	return s.saveResult, nil
}

func (s *recordingStore) FindAll(_ context.Context, page PageRequest) (Page[*RunningEventEntity], error) {
	s.findAllCalls = append(s.findAllCalls, page)
	return s.page, s.err
}

func (s *recordingStore) FindByDateTimeBetween(_ context.Context, from, to int64, page PageRequest) (Page[*RunningEventEntity], error) {
	s.betweenCalls = append(s.betweenCalls, page)
	s.betweenBounds = append(s.betweenBounds, [2]int64{from, to})
	return s.page, s.err
}

func (s *recordingStore) calls() int {
	return len(s.saveCalls) + len(s.findCalls) + len(s.existsCalls) +
		len(s.deleteCalls) + len(s.findAllCalls) + len(s.betweenCalls)
}

// countingMapper wraps RunningEventMapper and counts invocations.
type countingMapper struct {
	RunningEventMapper
	toEntityCalls int
	toDomainCalls int
}

func (m *countingMapper) ToEntity(event *models.RunningEvent) *RunningEventEntity {
	m.toEntityCalls++
	return m.RunningEventMapper.ToEntity(event)
}

func (m *countingMapper) ToDomain(entity *RunningEventEntity) *models.RunningEvent {
	m.toDomainCalls++
	return m.RunningEventMapper.ToDomain(entity)
}

func nopLogger() logger.Logger {
	return logger.Discard()
}

func newTestRepository() (*RunningEventRepository, *recordingStore, *countingMapper) {
	store := &recordingStore{}
	mapper := &countingMapper{}
	return NewRunningEventRepository(store, mapper, nopLogger()), store, mapper
}
