package portability

import (
	"sort"
	"sync"
)

// Registry maps formats to importers.
type Registry struct {
	mu        sync.RWMutex
	importers map[Format]Importer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{importers: make(map[Format]Importer)}
}

// defaultRegistry is the global registry instance.
var defaultRegistry = NewRegistry()

func init() {
	RegisterImporter(&OpenAPIImporter{})
	RegisterImporter(&NativeImporter{})
}

// RegisterImporter adds an importer to the default registry.
func RegisterImporter(importer Importer) {
	defaultRegistry.RegisterImporter(importer)
}

// GetImporter returns the importer for a format from the default registry.
func GetImporter(format Format) Importer {
	return defaultRegistry.GetImporter(format)
}

// ImportFormats lists the formats in the default registry.
func ImportFormats() []Format {
	return defaultRegistry.Formats()
}

// RegisterImporter adds an importer to the registry, replacing any
// importer already registered for its format.
func (r *Registry) RegisterImporter(importer Importer) {
	if importer == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.importers[importer.Format()] = importer
}

// GetImporter returns the importer for a format, or nil.
func (r *Registry) GetImporter(format Format) Importer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.importers[format]
}

// Formats returns the registered formats in sorted order.
func (r *Registry) Formats() []Format {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Format, 0, len(r.importers))
	for f := range r.importers {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
