package provider

import (
	"fmt"
	"sync"
)

// Registry maps (operation, modelId) pairs to adapters. A registration with
// an empty model id is the operation's default, used when params carry no
// modelId or the model is unknown.
type Registry struct {
	mu       sync.RWMutex
	byModel  map[string]Adapter // "operation/modelId"
	defaults map[string]Adapter // operation
}

// NewRegistry creates an empty adapter registry.
func NewRegistry() *Registry {
	return &Registry{
		byModel:  make(map[string]Adapter),
		defaults: make(map[string]Adapter),
	}
}

// Register binds an adapter to an operation and model id. An empty modelID
// registers the operation default.
func (r *Registry) Register(operation, modelID string, adapter Adapter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if modelID == "" {
		r.defaults[operation] = adapter
		return
	}
	r.byModel[operation+"/"+modelID] = adapter
}

// Lookup selects the adapter for an operation and model id.
func (r *Registry) Lookup(operation, modelID string) (Adapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if modelID != "" {
		if adapter, ok := r.byModel[operation+"/"+modelID]; ok {
			return adapter, nil
		}
	}
	if adapter, ok := r.defaults[operation]; ok {
		return adapter, nil
	}
	return nil, fmt.Errorf("%w for operation %q model %q", ErrNoAdapter, operation, modelID)
}

// ModelID extracts params.modelId if present.
func ModelID(params map[string]interface{}) string {
	if v, ok := params["modelId"].(string); ok {
		return v
	}
	return ""
}
