package cart

import (
	"github.com/jacksmith/larder/internal/model"
	"go.uber.org/zap"
)

// Keys under which the lists are stored.
const (
	CartKey  = "cart"
	SavedKey = "saved-items"
)

// Backend is the durable key-value storage the lists are written to.
// The concrete implementations live in the storage package.
type Backend interface {
	GetItem(key string) (value string, ok bool, err error)
	SetItem(key, value string) error
}

// Key returns the storage key for a list.
func Key(list List) string {
	if list == ListSaved {
		return SavedKey
	}
	return CartKey
}

// Persister writes each list to a Backend as a JSON array.
// Failures are logged and dropped; they never reach the store's callers.
type Persister struct {
	backend Backend
	logger  *zap.Logger
}

// NewPersister returns a Persister writing to backend.
// A nil logger discards log output.
func NewPersister(backend Backend, logger *zap.Logger) *Persister {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Persister{backend: backend, logger: logger}
}

// Save writes items under the list's key. It has the ChangeFunc signature
// so it can be registered directly with Store.OnChange.
func (p *Persister) Save(list List, items []model.LineItem) {
	key := Key(list)
	data, err := model.EncodeItems(items)
	if err != nil {
		p.logger.Error("failed to encode list", zap.String("key", key), zap.Error(err))
		return
	}
	if err := p.backend.SetItem(key, data); err != nil {
		p.logger.Error("failed to write list", zap.String("key", key), zap.Error(err))
		return
	}
	p.logger.Debug("list written", zap.String("key", key), zap.Int("items", len(items)))
}

// Load reads one list. Missing, unreadable, or corrupt data yields an empty
// list and a logged warning.
func (p *Persister) Load(list List) []model.LineItem {
	key := Key(list)
	raw, ok, err := p.backend.GetItem(key)
	if err != nil {
		p.logger.Warn("failed to read list", zap.String("key", key), zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}
	items, err := model.DecodeItems(raw)
	if err != nil {
		p.logger.Warn("discarding corrupt list", zap.String("key", key), zap.Error(err))
		return nil
	}
	return items
}

// Hydrate loads both lists into s.
func (p *Persister) Hydrate(s *Store) {
	s.Hydrate(p.Load(ListCart), p.Load(ListSaved))
}

// Attach hydrates s and registers p as its change hook.
func (p *Persister) Attach(s *Store) {
	p.Hydrate(s)
	s.OnChange(p.Save)
}
