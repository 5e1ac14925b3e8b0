package persistence

import "github.com/ghuser/runningevents/services/runningevent/domain/models"

// Mapper converts between the domain and storage representations.
type Mapper interface {
	ToEntity(event *models.RunningEvent) *RunningEventEntity
	ToDomain(entity *RunningEventEntity) *models.RunningEvent
}

// RunningEventMapper copies fields one-for-one.
type RunningEventMapper struct{}

// NewRunningEventMapper returns the field-for-field Mapper.
func NewRunningEventMapper() *RunningEventMapper {
	return &RunningEventMapper{}
}

// ToEntity returns nil for a nil event.
func (RunningEventMapper) ToEntity(event *models.RunningEvent) *RunningEventEntity {
	if event == nil {
		return nil
	}
	return &RunningEventEntity{
		ID:       event.ID,
		Name:     event.Name,
		DateTime: event.DateTime,
		Location: event.Location,
	}
}

// ToDomain returns nil for a nil entity.
func (RunningEventMapper) ToDomain(entity *RunningEventEntity) *models.RunningEvent {
	if entity == nil {
		return nil
	}
	return &models.RunningEvent{
		ID:       entity.ID,
		Name:     entity.Name,
		DateTime: entity.DateTime,
		Location: entity.Location,
	}
}
