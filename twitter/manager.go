package twitter

import (
	"context"
	"sync"
)

// Builder constructs the handle pair from loaded credentials. Tests
// substitute it with fakes.
type Builder func(creds Credentials, config Config) (Modern, Legacy)

func DefaultBuilder(creds Credentials, config Config) (Modern, Legacy) {
	return NewClient(creds, config), NewLegacyClient(creds, config)
}

// Manager lazily constructs and caches the single pair of API client
// handles. Credentials are read on the first acquisition only;
// construction happens at most once per process even under concurrent
// first callers, and a configuration failure is cached without retrying.
type Manager struct {
	configured Credentials
	config     Config
	builder    Builder

	once   sync.Once
	modern Modern
	legacy Legacy
	err    error
}

func NewManager(configured Credentials, config Config, builder Builder) *Manager {
	return &Manager{
		configured: configured,
		config:     config,
		builder:    builder,
	}
}

func (m *Manager) Clients(ctx context.Context) (Modern, Legacy, error) {
	m.once.Do(func() {
		creds, err := LoadCredentials(m.configured)
		if err != nil {
			m.err = err
			return
		}
		m.modern, m.legacy = m.builder(creds, m.config)
	})
	return m.modern, m.legacy, m.err
}
