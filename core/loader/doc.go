// Package loader registers and loads the application's features.
//
// A feature bundles a service, its HTTP handler and its routes. The Manager
// keeps features in registration order and loads the enabled ones onto a
// Fiber router at startup.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Usage
//
//	mgr := loader.NewManager(logger)
//	mgr.Register(terminal.NewFeature(svc))
//	if err := mgr.LoadAll(app); err != nil {
//	    logger.Fatal("Failed to load features", zap.Error(err))
//	}
package loader
