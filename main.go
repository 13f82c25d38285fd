package main

import (
	"os"
	"os/signal"
	"path/filepath"

	"github.com/MaaXYZ/maa-framework-go/v3"
	"github.com/rs/zerolog/log"

	"github.com/MaaXYZ/MaaPointRace/agent/go-service/logging"
	"github.com/MaaXYZ/MaaPointRace/agent/go-service/pointrace"
	"github.com/MaaXYZ/MaaPointRace/agent/go-service/registry"
)

func main() {
	cleanup, err := logging.Init(logging.DefaultConfig())
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize logger")
		os.Exit(1)
	}
	defer cleanup()

	log.Info().Str("version", Version).Msg("MaaPointRace Agent Service")

	if len(os.Args) < 2 {
		log.Error().Msg("Usage: go-service <identifier>")
		os.Exit(1)
	}

	identifier := os.Args[1]
	log.Info().Str("identifier", identifier).Msg("Starting agent server")

	// MAA DLL 位于工作目录下的 maafw 子目录
	libDir := filepath.Join(getCwd(), "maafw")
	log.Info().Str("libDir", libDir).Msg("Initializing MAA framework")
	if err := maa.Init(maa.WithLibDir(libDir)); err != nil {
		log.Error().Err(err).Msg("Failed to initialize MAA framework")
		os.Exit(1)
	}
	defer maa.Release()
	log.Info().Msg("MAA framework initialized")

	userPath := getCwd()
	if ok := maa.ConfigInitOption(userPath, "{}"); !ok {
		log.Warn().Str("userPath", userPath).Msg("Failed to init toolkit config option")
	} else {
		log.Info().Str("userPath", userPath).Msg("Toolkit config option initialized")
	}

	reg := registry.New()
	if err := pointrace.Register(reg); err != nil {
		log.Error().Err(err).Msg("Failed to build custom registry")
		os.Exit(1)
	}
	if err := reg.Install(registry.AgentServer{}); err != nil {
		log.Error().Err(err).Msg("Failed to register custom recognition and actions")
		os.Exit(1)
	}
	log.Info().
		Strs("recognitions", reg.RecognitionNames()).
		Strs("actions", reg.ActionNames()).
		Msg("Registered custom recognition and actions")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, shutdownSignals...)

	go func() {
		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("Received signal, initiating shutdown")
		maa.AgentServerShutDown()
	}()

	if !maa.AgentServerStartUp(identifier) {
		log.Error().Msg("Failed to start agent server")
		os.Exit(1)
	}
	log.Info().Msg("Agent server started")

	maa.AgentServerJoin()

	// idempotent, safe after a signal-triggered shutdown
	maa.AgentServerShutDown()
	log.Info().Msg("Agent server shutdown complete")
}

func getCwd() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}
