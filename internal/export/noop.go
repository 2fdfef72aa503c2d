package export

import "context"

// NoopExporter writes nothing, used when exports are switched off
type NoopExporter struct{}

// NewNoopExporter creates a new no-op exporter
func NewNoopExporter() Exporter {
	return &NoopExporter{}
}

// Name returns the format identifier
func (n *NoopExporter) Name() string {
	return "noop"
}

// Extension returns an empty extension
func (n *NoopExporter) Extension() string {
	return ""
}

// Export does nothing
func (n *NoopExporter) Export(ctx context.Context, path string, snap Snapshot) error {
	return nil
}

func init() {
	Register("noop", func() Exporter { return NewNoopExporter() })
}
