package export

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry manages available exporters
type Registry struct {
	mu        sync.RWMutex
	exporters map[string]ExporterFactory
}

// NewRegistry creates a new exporter registry
func NewRegistry() *Registry {
	return &Registry{
		exporters: make(map[string]ExporterFactory),
	}
}

// Register adds a new exporter factory to the registry. The name is the
// value users put in export.format, so it must be a bare lowercase word and
// match what the exporter reports; the extension must be empty or start
// with a dot.
func (r *Registry) Register(name string, factory ExporterFactory) error {
	if err := validFormatName(name); err != nil {
		return err
	}
	if factory == nil {
		return fmt.Errorf("exporter %s has no factory", name)
	}
	sample := factory()
	if sample.Name() != name {
		return fmt.Errorf("exporter registered as %s reports name %q", name, sample.Name())
	}
	if ext := sample.Extension(); ext != "" && (!strings.HasPrefix(ext, ".") || len(ext) < 2) {
		return fmt.Errorf("exporter %s has invalid extension %q", name, ext)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.exporters[name]; exists {
		return fmt.Errorf("exporter %s already registered", name)
	}

	r.exporters[name] = factory
	return nil
}

func validFormatName(name string) error {
	if name == "" {
		return fmt.Errorf("exporter name must not be empty")
	}
	for _, c := range name {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return fmt.Errorf("exporter name %q must be lowercase letters and digits", name)
		}
	}
	return nil
}

// Create instantiates an exporter by name
func (r *Registry) Create(name string) (Exporter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.exporters[name]
	if !exists {
		return nil, fmt.Errorf("exporter %s not registered", name)
	}

	return factory(), nil
}

// List returns all registered exporter names, sorted
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.exporters))
	for name := range r.exporters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe lists each format with the extension of the files it writes,
// e.g. "sqlite (.db)". Formats that write nothing say so.
func (r *Registry) Describe() []string {
	names := r.List()

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(names))
	for _, name := range names {
		ext := r.exporters[name]().Extension()
		if ext == "" {
			out = append(out, name+" (writes nothing)")
			continue
		}
		out = append(out, fmt.Sprintf("%s (%s)", name, ext))
	}
	return out
}

var defaultRegistry = NewRegistry()

// Register adds an exporter to the global registry
func Register(name string, factory ExporterFactory) error {
	return defaultRegistry.Register(name, factory)
}

// New creates an exporter from the global registry
func New(name string) (Exporter, error) {
	return defaultRegistry.Create(name)
}

// Formats returns all registered format names from the global registry
func Formats() []string {
	return defaultRegistry.List()
}

// Describe lists the registered formats of the global registry with their
// file extensions
func Describe() []string {
	return defaultRegistry.Describe()
}
