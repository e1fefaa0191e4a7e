package api

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/domain"
	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/mq"
	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/repo"
)

// memStore — хранилище в памяти для тестов обработчиков.
type memStore[T any, C any] struct {
	mu    sync.Mutex
	items []T
	calls int

	// err возвращается любой операцией.
	err error
	// noRow имитирует INSERT ... RETURNING без строки.
	noRow bool

	idOf  func(T) uuid.UUID
	build func(C) T
}

func (s *memStore[T, C]) List(ctx context.Context) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++

	if s.err != nil {
		return nil, s.err
	}
	return append([]T(nil), s.items...), nil
}

func (s *memStore[T, C]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++

	if s.err != nil {
		return nil, s.err
	}
	for i := range s.items {
		if s.idOf(s.items[i]) == id {
			item := s.items[i]
			return &item, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (s *memStore[T, C]) Create(ctx context.Context, in C) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++

	if s.err != nil {
		return nil, s.err
	}
	if s.noRow {
		return nil, repo.ErrNotFound
	}
	item := s.build(in)
	s.items = append(s.items, item)
	return &item, nil
}

// update применяет fn к строке с id.
func (s *memStore[T, C]) update(id uuid.UUID, fn func(*T)) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++

	if s.err != nil {
		return nil, s.err
	}
	for i := range s.items {
		if s.idOf(s.items[i]) == id {
			fn(&s.items[i])
			item := s.items[i]
			return &item, nil
		}
	}
	return nil, repo.ErrNotFound
}

type fakeClients struct {
	*memStore[domain.Client, domain.ClientCreate]
}

func newFakeClients(items ...domain.Client) *fakeClients {
	return &fakeClients{&memStore[domain.Client, domain.ClientCreate]{
		items: items,
		idOf:  func(c domain.Client) uuid.UUID { return c.ID },
		build: func(in domain.ClientCreate) domain.Client {
			return domain.Client{
				ID:          uuid.New(),
				Name:        in.Name,
				Description: in.Description,
				Status:      in.Status,
				Projects:    []domain.Project{},
			}
		},
	}}
}

type fakeProjects struct {
	*memStore[domain.Project, domain.ProjectCreate]
}

func newFakeProjects(items ...domain.Project) *fakeProjects {
	return &fakeProjects{&memStore[domain.Project, domain.ProjectCreate]{
		items: items,
		idOf:  func(p domain.Project) uuid.UUID { return p.ID },
		build: func(in domain.ProjectCreate) domain.Project {
			return domain.Project{
				ID:           uuid.New(),
				Name:         in.Name,
				ClientID:     in.ClientID,
				Description:  in.Description,
				Repository:   in.Repository,
				Technology:   in.Technology,
				Team:         []string{},
				Environments: []domain.Environment{},
			}
		},
	}}
}

type fakeEnvironments struct {
	*memStore[domain.Environment, domain.EnvironmentCreate]
}

func newFakeEnvironments(items ...domain.Environment) *fakeEnvironments {
	return &fakeEnvironments{&memStore[domain.Environment, domain.EnvironmentCreate]{
		items: items,
		idOf:  func(e domain.Environment) uuid.UUID { return e.ID },
		build: func(in domain.EnvironmentCreate) domain.Environment {
			return domain.Environment{
				ID:        uuid.New(),
				Name:      in.Name,
				ProjectID: in.ProjectID,
				URL:       in.URL,
				Version:   in.Version,
				Resources: in.Resources,
				Services:  []string{},
				Servers:   []domain.Server{},
			}
		},
	}}
}

type fakeServers struct {
	*memStore[domain.Server, domain.ServerCreate]
}

func newFakeServers(items ...domain.Server) *fakeServers {
	return &fakeServers{&memStore[domain.Server, domain.ServerCreate]{
		items: items,
		idOf:  func(s domain.Server) uuid.UUID { return s.ID },
		build: func(in domain.ServerCreate) domain.Server {
			return domain.Server{
				ID:            uuid.New(),
				Name:          in.Name,
				Type:          in.Type,
				Region:        in.Region,
				PrivateIP:     in.PrivateIP,
				EnvironmentID: in.EnvironmentID,
				Status:        domain.ServerStatusStopped,
			}
		},
	}}
}

func (s *fakeServers) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ServerStatus) (*domain.Server, error) {
	return s.update(id, func(srv *domain.Server) { srv.Status = status })
}

type fakeMonitors struct {
	*memStore[domain.Monitor, domain.MonitorCreate]
}

func newFakeMonitors(items ...domain.Monitor) *fakeMonitors {
	return &fakeMonitors{&memStore[domain.Monitor, domain.MonitorCreate]{
		items: items,
		idOf:  func(m domain.Monitor) uuid.UUID { return m.ID },
		build: func(in domain.MonitorCreate) domain.Monitor {
			return domain.Monitor{ID: uuid.New(), Name: in.Name, URL: in.URL}
		},
	}}
}

type fakeSettings struct {
	*memStore[domain.Setting, domain.SettingCreate]
}

func newFakeSettings(items ...domain.Setting) *fakeSettings {
	return &fakeSettings{&memStore[domain.Setting, domain.SettingCreate]{
		items: items,
		idOf:  func(s domain.Setting) uuid.UUID { return s.ID },
		build: func(in domain.SettingCreate) domain.Setting {
			return domain.Setting{ID: uuid.New(), Key: in.Key, Value: in.Value, Description: in.Description}
		},
	}}
}

func (s *fakeSettings) UpdateValue(ctx context.Context, id uuid.UUID, value string) (*domain.Setting, error) {
	return s.update(id, func(st *domain.Setting) { st.Value = value })
}

type fakeSecrets struct {
	*memStore[domain.Secret, domain.SecretCreate]
}

func newFakeSecrets(items ...domain.Secret) *fakeSecrets {
	return &fakeSecrets{&memStore[domain.Secret, domain.SecretCreate]{
		items: items,
		idOf:  func(s domain.Secret) uuid.UUID { return s.ID },
		build: func(in domain.SecretCreate) domain.Secret {
			return domain.Secret{ID: uuid.New(), Key: in.Key, Value: in.Value, Environment: in.Environment}
		},
	}}
}

func (s *fakeSecrets) UpdateValue(ctx context.Context, id uuid.UUID, value string) (*domain.Secret, error) {
	return s.update(id, func(sec *domain.Secret) { sec.Value = value })
}

type fakeCounter struct {
	counts map[repo.Table]int64
	// err возвращается для любой таблицы, errs только для своей.
	err  error
	errs map[repo.Table]error
}

func (c *fakeCounter) Count(ctx context.Context, table repo.Table) (int64, error) {
	if c.err != nil {
		return 0, c.err
	}
	if err := c.errs[table]; err != nil {
		return 0, err
	}
	return c.counts[table], nil
}

type publishedEvent struct {
	Type    mq.EventType
	Payload any
}

type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (p *fakePublisher) Publish(ctx context.Context, eventType mq.EventType, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, publishedEvent{Type: eventType, Payload: payload})
	return p.err
}

func (p *fakePublisher) Events() []publishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]publishedEvent(nil), p.events...)
}
