package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"

	"github.com/rs/zerolog/log"

	"hims/config"
	"hims/infras/kafka"
	"hims/infras/otel"
	"hims/shared/constant"
	"hims/shared/timezone"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// RecordChange is the audit payload published for every write that goes
// through a service layer.
type RecordChange struct {
	Entity     string `json:"entity"`
	EntityID   string `json:"entity_id"`
	Action     string `json:"action"`
	OccurredAt string `json:"occurred_at"`
}

// Publisher notifies downstream consumers about record changes. Publishing
// is fire and forget; a broker outage never fails the originating request.
type Publisher interface {
	RecordChange(ctx context.Context, entity, entityID, action string)
}

type kafkaPublisher struct {
	client kafka.Client
	config *config.Config
	otel   otel.Otel
}

func NewPublisher(cfg *config.Config, client kafka.Client, otl otel.Otel) Publisher {
	if !cfg.Event.Kafka.Enable {
		log.Info().Msg("Record change publishing disabled")

		return &noopPublisher{}
	}

	return &kafkaPublisher{
		client: client,
		config: cfg,
		otel:   otl,
	}
}

func (p *kafkaPublisher) RecordChange(ctx context.Context, entity, entityID, action string) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".RecordChange")
	defer scope.End()

	change := RecordChange{
		Entity:     entity,
		EntityID:   entityID,
		Action:     action,
		OccurredAt: timezone.Format(timezone.Now(), constant.DateFormat),
	}

	err := p.client.SendMessages(ctx, p.config.Event.Kafka.Topic, kafka.Message{
		Key:   entity + ":" + entityID,
		Value: change,
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().
			Err(err).
			Str("entity", entity).
			Str("entity_id", entityID).
			Str("action", action).
			Msg("Failed to publish record change")
	}
}

type noopPublisher struct{}

func (p *noopPublisher) RecordChange(_ context.Context, _, _, _ string) {}
