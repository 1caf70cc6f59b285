// Package dependency wires core toolbridge services using go.uber.org/dig.
package dependency

import (
	"net/http"
	"time"

	"go.uber.org/dig"

	"github.com/crystaldolphin/toolbridge/internal/agent"
	"github.com/crystaldolphin/toolbridge/internal/config"
	"github.com/crystaldolphin/toolbridge/internal/mcp"
	"github.com/crystaldolphin/toolbridge/internal/providers"
	"github.com/crystaldolphin/toolbridge/internal/schema"
	"github.com/crystaldolphin/toolbridge/internal/server"
	"github.com/crystaldolphin/toolbridge/internal/tools"
)

// ServiceContainer holds the resolved core service singletons.
// Callers use the typed getter methods; they never need to import dig directly.
type ServiceContainer struct {
	gateway      schema.Gateway
	registry     *tools.Registry
	dispatcher   *tools.Dispatcher
	orchestrator *agent.Orchestrator
	server       *server.Server
}

func (c *ServiceContainer) Gateway() schema.Gateway           { return c.gateway }
func (c *ServiceContainer) Registry() *tools.Registry         { return c.registry }
func (c *ServiceContainer) Dispatcher() *tools.Dispatcher     { return c.dispatcher }
func (c *ServiceContainer) Orchestrator() *agent.Orchestrator { return c.orchestrator }
func (c *ServiceContainer) Server() *server.Server            { return c.server }

// AppVersion is a named string type so dig can tell the build version apart
// from other strings.
type AppVersion string

// MCPHandler wraps the optional /mcp handler; Handler is nil when disabled.
type MCPHandler struct{ http.Handler }

// New builds and wires all core services from cfg.
func New(cfg *config.Config, version string) (*ServiceContainer, error) {
	d := dig.New()

	ctors := []any{
		func() *config.Config { return cfg },
		func() AppVersion { return AppVersion(version) },
		newToolEnv,
		newRegistry,
		newGateway,
		newDispatcher,
		newContextBuilder,
		newOrchestrator,
		newMCPHandler,
		newServer,
	}
	for _, p := range ctors {
		if err := d.Provide(p); err != nil {
			return nil, err
		}
	}

	var result *ServiceContainer
	err := d.Invoke(func(
		gateway schema.Gateway,
		registry *tools.Registry,
		dispatcher *tools.Dispatcher,
		orchestrator *agent.Orchestrator,
		srv *server.Server,
	) {
		result = &ServiceContainer{
			gateway:      gateway,
			registry:     registry,
			dispatcher:   dispatcher,
			orchestrator: orchestrator,
			server:       srv,
		}
	})
	if err != nil {
		return nil, dig.RootCause(err)
	}
	return result, nil
}

func newToolEnv(cfg *config.Config) tools.Env {
	workspace := cfg.WorkspacePath()
	allowedDir := ""
	if cfg.Tools.RestrictToWorkspace {
		allowedDir = workspace
	}
	return tools.Env{
		Workspace:      workspace,
		AllowedDir:     allowedDir,
		ExecTimeout:    time.Duration(cfg.Tools.Exec.Timeout) * time.Second,
		HTTPClient:     &http.Client{Timeout: time.Duration(cfg.Tools.Web.TimeoutSeconds) * time.Second},
		WeatherAPIKey:  cfg.Tools.Web.Weather.APIKey,
		WeatherBaseURL: cfg.Tools.Web.Weather.BaseURL,
		FlightBaseURL:  cfg.Tools.Web.Flight.BaseURL,
	}
}

func newRegistry(cfg *config.Config, env tools.Env) (*tools.Registry, error) {
	var manifest *tools.Manifest
	if path := cfg.ManifestPath(); path != "" {
		m, err := tools.LoadManifest(path)
		if err != nil {
			return nil, err
		}
		manifest = m
	}
	return tools.Discover(tools.DefaultCatalog(), manifest, env)
}

func newGateway(cfg *config.Config) (schema.Gateway, error) {
	return providers.New(providers.Params{
		ProviderName: cfg.Provider.Name,
		APIKey:       cfg.Provider.APIKey,
		APIBase:      cfg.Provider.APIBase,
		Model:        cfg.Provider.Model,
		Temperature:  cfg.Agent.Temperature,
		ExtraHeaders: cfg.Provider.ExtraHeaders,
		Timeout:      cfg.Agent.ModelTimeoutDuration(),
	})
}

func newDispatcher(cfg *config.Config, registry *tools.Registry) *tools.Dispatcher {
	return tools.NewDispatcher(registry, cfg.Agent.ToolTimeoutDuration(), cfg.Agent.MaxParallelTools)
}

func newContextBuilder(cfg *config.Config, registry *tools.Registry) *agent.ContextBuilder {
	return agent.NewContextBuilder(cfg.Agent.SystemPrompt, cfg.WorkspacePath(), registry.Names())
}

func newOrchestrator(
	cfg *config.Config,
	gateway schema.Gateway,
	registry *tools.Registry,
	dispatcher *tools.Dispatcher,
	cb *agent.ContextBuilder,
) *agent.Orchestrator {
	settings := schema.NewAgentSettings(cfg.Agent.MaxRounds, cfg.Agent.ModelTimeoutDuration())
	return agent.NewOrchestrator(gateway, registry, dispatcher, settings, cb)
}

func newMCPHandler(cfg *config.Config, registry *tools.Registry, dispatcher *tools.Dispatcher, version AppVersion) MCPHandler {
	if !cfg.Server.EnableMCP {
		return MCPHandler{}
	}
	return MCPHandler{mcp.NewHandler(mcp.NewServer(registry, dispatcher, string(version)))}
}

func newServer(cfg *config.Config, orch *agent.Orchestrator, registry *tools.Registry, h MCPHandler) *server.Server {
	return server.New(cfg.Server, orch, registry, h.Handler)
}
