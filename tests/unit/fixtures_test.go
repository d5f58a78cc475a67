package unit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ayyan656/Real-estate-SaaS-CRM/internal/adapters/memory"
	"github.com/ayyan656/Real-estate-SaaS-CRM/internal/application"
	"github.com/ayyan656/Real-estate-SaaS-CRM/internal/domain"
	"github.com/ayyan656/Real-estate-SaaS-CRM/internal/ports"
)

type fixture struct {
	service   *application.Service
	board     *application.Board
	desk      *application.ListingDesk
	leads     *memory.LeadRepository
	props     *memory.PropertyRepository
	sessions  *memory.SessionSlotStore
	publisher *recordingPublisher
	generator *scriptedGenerator
}

func newFixture() *fixture {
	return newFixtureWithSeed(nil, nil)
}

func newSeededFixture() *fixture {
	now := time.Now().UTC()
	return newFixtureWithSeed(memory.SeedLeads(now), memory.SeedProperties())
}

func newFixtureWithSeed(leads []domain.Lead, properties []domain.Property) *fixture {
	leadRepo := memory.NewLeadRepository(leads)
	propertyRepo := memory.NewPropertyRepository(properties)
	sessions := memory.NewSessionSlotStore()
	publisher := &recordingPublisher{}
	generator := &scriptedGenerator{}

	svc := application.NewService(application.Dependencies{
		Config: application.Config{
			AppName:     "estateflow_user",
			TokenTTL:    time.Hour,
			MockLatency: 0,
		},
		Leads:      leadRepo,
		Properties: propertyRepo,
		Sessions:   sessions,
		Publisher:  publisher,
		Hasher:     &fakeHasher{},
		Signer:     &fakeSigner{tokens: map[string]ports.AuthClaims{}},
		Generator:  generator,
	})

	return &fixture{
		service:   svc,
		board:     application.NewBoard(svc),
		desk:      application.NewListingDesk(svc),
		leads:     leadRepo,
		props:     propertyRepo,
		sessions:  sessions,
		publisher: publisher,
		generator: generator,
	}
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *recordingPublisher) Publish(_ context.Context, eventType string, _ []byte, _ string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, eventType)
	return nil
}

func (p *recordingPublisher) eventTypes() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	copy(out, p.events)
	return out
}

type scriptedGenerator struct {
	mu     sync.Mutex
	result string
	err    error
	hook   func()
	calls  int
}

func (g *scriptedGenerator) set(result string, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.result = result
	g.err = err
}

func (g *scriptedGenerator) Generate(_ context.Context, title, _, _ string) (string, error) {
	g.mu.Lock()
	result, err, hook := g.result, g.err, g.hook
	g.calls++
	first := g.calls == 1
	g.mu.Unlock()

	if hook != nil && first {
		hook()
	}
	if err != nil {
		return "", err
	}
	if result == "" {
		return "Generated copy for " + title, nil
	}
	return result, nil
}

type fakeHasher struct{}

func (h *fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (h *fakeHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("hash mismatch")
	}
	return nil
}

type fakeSigner struct {
	mu     sync.Mutex
	seq    int
	tokens map[string]ports.AuthClaims
}

func (s *fakeSigner) Sign(claims ports.AuthClaims) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	token := fmt.Sprintf("token-%d", s.seq)
	s.tokens[token] = claims
	return token, nil
}

func (s *fakeSigner) ParseAndValidate(raw string) (ports.AuthClaims, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	claims, ok := s.tokens[raw]
	if !ok {
		return ports.AuthClaims{}, fmt.Errorf("unknown token")
	}
	return claims, nil
}
