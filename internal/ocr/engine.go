// Package ocr defines the recognizer contract the gate scans through: named
// engines, the registry they live in, and the runner that invokes one over a
// region of an image.
package ocr

import (
	"context"
	"fmt"
	"sort"
)

// Input is what an engine receives for one recognition call. Image holds
// encoded image bytes, already cut down to the requested region.
type Input struct {
	Image []byte
}

// Result is the text an engine recognized.
type Result struct {
	Text string
}

// Engine is an OCR backend. Implementations must be safe for concurrent use.
type Engine interface {
	// Name identifies the backend kind in logs, e.g. "tesseract".
	Name() string
	// Recognize extracts the text visible in the input image.
	Recognize(ctx context.Context, in Input) (Result, error)
}

// Registry maps recognizer names to engines. It is assembled once at startup
// and read-only afterwards, so lookups need no locking.
type Registry struct {
	engines map[string]Engine
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{engines: make(map[string]Engine)}
}

// Register binds name to an engine. Registering the same name twice is an
// error.
func (r *Registry) Register(name string, e Engine) error {
	if name == "" {
		return fmt.Errorf("recognizer name must not be empty")
	}
	if e == nil {
		return fmt.Errorf("recognizer %q: engine must not be nil", name)
	}
	if _, exists := r.engines[name]; exists {
		return fmt.Errorf("recognizer %q already registered", name)
	}
	r.engines[name] = e
	return nil
}

// Lookup returns the engine registered under name.
func (r *Registry) Lookup(name string) (Engine, bool) {
	e, ok := r.engines[name]
	return e, ok
}

// Names lists the registered recognizer names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.engines))
	for name := range r.engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
