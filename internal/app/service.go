package app

import (
	"os"

	"colcon-ls/internal/adapters"
	"colcon-ls/internal/core"
	"colcon-ls/internal/ports"
)

type Service struct {
	Walker    ports.DiscoveryPort
	Output    ports.OutputPort
	Collector core.CollectorCore
}

func NewService() Service {
	return Service{
		Walker: adapters.NewWalkerAdapter(
			adapters.NewDefaultPathPolicy(),
			adapters.NewPackageXMLAdapter(),
			core.NewClassifierCore(),
		),
		Output:    adapters.NewOutputWriterAdapter(os.Stdout),
		Collector: core.NewCollectorCore(),
	}
}
