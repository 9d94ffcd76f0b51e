package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/RoyalZSoftware/management-cli/internal/service"
	"github.com/RoyalZSoftware/management-cli/internal/store"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout      io.Writer
	Stderr      io.Writer
	Stdin       io.Reader
	Exit        func(code int)
	DataPath    func() (string, error)
	NewServices func() (*service.Services, error)
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Stdin:       os.Stdin,
		Exit:        os.Exit,
		DataPath:    store.DefaultPath,
		NewServices: service.NewServices,
	}
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}

// loadServices constructs the services and loads all collections from the
// data document. On failure it reports the error and exits; callers must
// handle the nil return when a stubbed Exit does not terminate.
func loadServices() *service.Services {
	services, err := deps.NewServices()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to initialize services")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
		deps.Exit(1)
		return nil
	}

	if err := services.Load(); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load data")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check the data file: %s\n", services.Store.Path())
		deps.Exit(1)
		return nil
	}

	return services
}
