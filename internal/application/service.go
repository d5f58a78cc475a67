package application

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/ayyan656/Real-estate-SaaS-CRM/internal/ports"
)

type Service struct {
	cfg        Config
	leads      ports.LeadRepository
	properties ports.PropertyRepository
	sessions   ports.SessionSlotStore
	publisher  ports.EventPublisher
	hasher     ports.PasswordHasher
	signer     ports.TokenSigner
	generator  ports.DescriptionGenerator
	nowFn      func() time.Time
	idFn       func() string

	loginGeneration generation
}

type Dependencies struct {
	Config     Config
	Leads      ports.LeadRepository
	Properties ports.PropertyRepository
	Sessions   ports.SessionSlotStore
	Publisher  ports.EventPublisher
	Hasher     ports.PasswordHasher
	Signer     ports.TokenSigner
	Generator  ports.DescriptionGenerator
}

func NewService(deps Dependencies) *Service {
	return &Service{
		cfg:        deps.Config,
		leads:      deps.Leads,
		properties: deps.Properties,
		sessions:   deps.Sessions,
		publisher:  deps.Publisher,
		hasher:     deps.Hasher,
		signer:     deps.Signer,
		generator:  deps.Generator,
		nowFn:      func() time.Time { return time.Now().UTC() },
		idFn:       uuid.NewString,
	}
}

func (s *Service) publish(ctx context.Context, eventType, partitionKey string, fields map[string]any) {
	if s.publisher == nil {
		return
	}
	fields["occurred_at"] = s.nowFn()
	payload, _ := json.Marshal(fields)
	_ = s.publisher.Publish(ctx, eventType, payload, partitionKey)
}

func avatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=random&color=fff"
}
