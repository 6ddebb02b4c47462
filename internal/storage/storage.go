// Package storage provides file system operations for .larder/ directories.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jacksmith/larder/internal/model"
	"gopkg.in/yaml.v3"
)

const (
	// larderDir is the name of the larder directory.
	larderDir = ".larder"
	// localDir holds one file per key for the file backend.
	localDir = "local"
	// localDB is the database file for the sqlite backend.
	localDB = "local.db"
	// ordersDir is the subdirectory for submitted orders.
	ordersDir = "orders"
	// configFile is the name of the config file within .larder/.
	configFile = "config.yaml"
	// catalogFile is the name of the product catalog within .larder/.
	catalogFile = "catalog.yaml"
)

// Backend names accepted in config.yaml.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// StorageConfig contains settings stored in .larder/config.yaml.
type StorageConfig struct {
	Version int    `yaml:"version"`
	Backend string `yaml:"backend"`
}

// Storage provides access to a .larder/ directory.
type Storage struct {
	root string // path to directory containing .larder/
	cfg  StorageConfig
}

// ValidateBackend checks that name is a known backend.
func ValidateBackend(name string) error {
	switch name {
	case BackendFile, BackendSQLite:
		return nil
	default:
		return fmt.Errorf("unknown backend %q (expected %s or %s)", name, BackendFile, BackendSQLite)
	}
}

// Open returns a Storage for the given directory.
// Returns error if .larder/ does not exist.
func Open(dir string) (*Storage, error) {
	larderPath := filepath.Join(dir, larderDir)
	info, err := os.Stat(larderPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf(".larder/ directory not found in %s (run larder init)", dir)
		}
		return nil, fmt.Errorf("failed to access .larder/: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf(".larder is not a directory")
	}

	s := &Storage{root: dir, cfg: StorageConfig{Version: 1, Backend: BackendFile}}
	data, err := os.ReadFile(filepath.Join(larderPath, configFile))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", configFile, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &s.cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", configFile, err)
		}
		if s.cfg.Backend == "" {
			s.cfg.Backend = BackendFile
		}
		if err := ValidateBackend(s.cfg.Backend); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Init creates .larder/ with the default catalog.
// Returns error if .larder/ already exists.
func Init(dir string, backend string) (*Storage, error) {
	larderPath := filepath.Join(dir, larderDir)

	// Check if .larder/ already exists
	if _, err := os.Stat(larderPath); err == nil {
		return nil, fmt.Errorf(".larder/ directory already exists in %s", dir)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to check for .larder/: %w", err)
	}

	if backend == "" {
		backend = BackendFile
	}
	backend = strings.ToLower(backend)
	if err := ValidateBackend(backend); err != nil {
		return nil, err
	}

	// Create directory structure
	for _, sub := range []string{localDir, ordersDir} {
		if err := os.MkdirAll(filepath.Join(larderPath, sub), 0755); err != nil {
			return nil, fmt.Errorf("failed to create .larder/%s/: %w", sub, err)
		}
	}

	// Create config.yaml
	cfg := StorageConfig{Version: 1, Backend: backend}
	cfgData, err := yaml.Marshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	cfgPath := filepath.Join(larderPath, configFile)
	if err := os.WriteFile(cfgPath, cfgData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write config.yaml: %w", err)
	}

	s := &Storage{root: dir, cfg: cfg}
	if err := s.SaveCatalog(DefaultCatalog()); err != nil {
		// Clean up on failure
		os.RemoveAll(larderPath)
		return nil, fmt.Errorf("failed to create default catalog: %w", err)
	}

	return s, nil
}

// Root returns the root directory containing .larder/.
func (s *Storage) Root() string {
	return s.root
}

// LarderPath returns the path to the .larder/ directory.
func (s *Storage) LarderPath() string {
	return filepath.Join(s.root, larderDir)
}

// LocalPath returns the directory holding durable list data.
func (s *Storage) LocalPath() string {
	return filepath.Join(s.root, larderDir, localDir)
}

// BackendName returns the backend recorded in config.yaml.
func (s *Storage) BackendName() string {
	return s.cfg.Backend
}

// OpenBackend opens the key-value backend recorded in config.yaml.
// The caller must close it.
func (s *Storage) OpenBackend() (KV, error) {
	switch s.cfg.Backend {
	case BackendSQLite:
		return NewSQLiteKV(filepath.Join(s.root, larderDir, localDB))
	default:
		return NewFileKV(s.LocalPath())
	}
}

// LoadCatalog loads .larder/catalog.yaml.
func (s *Storage) LoadCatalog() (*model.Catalog, error) {
	return model.LoadCatalog(filepath.Join(s.root, larderDir, catalogFile))
}

// SaveCatalog writes .larder/catalog.yaml.
func (s *Storage) SaveCatalog(c *model.Catalog) error {
	return model.SaveCatalog(filepath.Join(s.root, larderDir, catalogFile), c)
}

// orderPath returns the path to an order file by id.
func (s *Storage) orderPath(id string) string {
	return filepath.Join(s.root, larderDir, ordersDir, strings.ToLower(id)+".yaml")
}

// SaveOrder writes an order to .larder/orders/{id}.yaml.
func (s *Storage) SaveOrder(o *model.Order) error {
	if err := os.MkdirAll(filepath.Join(s.root, larderDir, ordersDir), 0755); err != nil {
		return fmt.Errorf("failed to create orders directory: %w", err)
	}
	return model.SaveOrder(s.orderPath(o.ID), o)
}

// LoadOrder loads an order by id.
func (s *Storage) LoadOrder(id string) (*model.Order, error) {
	path := s.orderPath(id)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("order %q not found", id)
		}
		return nil, fmt.Errorf("failed to access order file: %w", err)
	}
	return model.LoadOrder(path)
}

// ListOrders returns the ids of all submitted orders, oldest first.
func (s *Storage) ListOrders() ([]string, error) {
	dir := filepath.Join(s.root, larderDir, ordersDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read orders directory: %w", err)
	}

	type entry struct {
		id  string
		mod int64
	}
	var found []entry
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		found = append(found, entry{strings.TrimSuffix(e.Name(), ".yaml"), info.ModTime().UnixNano()})
	}
	sort.SliceStable(found, func(i, j int) bool {
		if found[i].mod != found[j].mod {
			return found[i].mod < found[j].mod
		}
		return found[i].id < found[j].id
	})

	ids := make([]string, len(found))
	for i, e := range found {
		ids[i] = e.id
	}
	return ids, nil
}
