// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/piper/internal/adapters/config"
	_ "go.trai.ch/piper/internal/adapters/history"
	_ "go.trai.ch/piper/internal/adapters/logger"
	_ "go.trai.ch/piper/internal/adapters/proc"
	// Register app nodes.
	_ "go.trai.ch/piper/internal/app"
)
