package deps

import (
	slog "log"
)

// Contains bootstraped dependencies.
var Container Deps

// An ignitor takes a Container and injects bootstraped dependencies.
type Ignitor func(Deps) (Deps, error)

// Ignite runs the ignitors in order over an empty container.
func Ignite(ignitors ...Ignitor) (container Deps, err error) {
	for _, fn := range ignitors {
		container, err = fn(container)
		if err != nil {
			return
		}
	}
	return
}

// Runs ignitors to fulfill deps container.
func Bootstrap() {
	container, err := Ignite(
		IgniteEnv,
		IgniteConfig,
		IgniteLogger,
		IgniteBucket,
	)
	if err != nil {
		slog.Panic(err)
	}

	Container = container
}
