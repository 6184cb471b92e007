package registry

import (
	"github.com/weftlabs/weft/internal/core/config"
	"github.com/weftlabs/weft/internal/core/label"
	"github.com/weftlabs/weft/internal/core/system"
	"github.com/weftlabs/weft/internal/core/world"
)

// The forwarders below operate on the Registry stored as a resource on the
// world, default-initialized on first use. Each one extracts the registry via
// world.ResourceScope so the registry and the remaining world can both be
// mutated during the call, and the registry is restored on every exit path.

// Configure applies registry policy on the world's registry.
func Configure(w *world.World, cfg config.RegistryConfig) {
	world.ResourceScope(w, func(_ *world.World, r *Registry) {
		r.Configure(cfg)
	})
}

// Register calls the method of the same name on the world's Registry.
func Register(w *world.World, sys system.System) error {
	var err error
	world.ResourceScope(w, func(w *world.World, r *Registry) {
		err = r.Register(w, sys)
	})
	return err
}

// RegisterWithLabels calls the method of the same name on the world's
// Registry.
func RegisterWithLabels(w *world.World, sys system.System, labels ...label.Label) int {
	var index int
	world.ResourceScope(w, func(w *world.World, r *Registry) {
		index = r.RegisterWithLabels(w, sys, labels...)
	})
	return index
}

// Run calls the method of the same name on the world's Registry.
func Run(w *world.World, sys system.System) {
	world.ResourceScope(w, func(w *world.World, r *Registry) {
		r.Run(w, sys)
	})
}

// RunByLabel calls the method of the same name on the world's Registry.
func RunByLabel(w *world.World, l label.Label) error {
	var err error
	world.ResourceScope(w, func(w *world.World, r *Registry) {
		err = r.RunByLabel(w, l)
	})
	return err
}

// RunCallback calls the method of the same name on the world's Registry.
func RunCallback(w *world.World, cb label.Callback) error {
	var err error
	world.ResourceScope(w, func(w *world.World, r *Registry) {
		err = r.RunCallback(w, cb)
	})
	return err
}
