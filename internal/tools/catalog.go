package tools

import (
	"context"
	"net/http"
	"time"

	"github.com/crystaldolphin/toolbridge/internal/schema"
)

// ToolName is the canonical name of a built-in tool.
type ToolName string

const (
	ToolHello         ToolName = "hello"
	ToolEcho          ToolName = "echo"
	ToolReverseEcho   ToolName = "reverse_echo"
	ToolReverse       ToolName = "reverse"
	ToolUpperCase     ToolName = "to_upper_case"
	ToolLowerCase     ToolName = "to_lower_case"
	ToolLeetSpeak     ToolName = "leet_speak"
	ToolCurrentTime   ToolName = "current_time"
	ToolAddTime       ToolName = "add_time"
	ToolReadFile      ToolName = "read_file"
	ToolWriteFile     ToolName = "write_file"
	ToolListDirectory ToolName = "list_directory"
	ToolSystemInfo    ToolName = "system_info"
	ToolMacSystemInfo ToolName = "get_mac_system_info"
	ToolListProcesses ToolName = "list_processes"
	ToolProcessInfo   ToolName = "get_process_info"
	ToolPingHost      ToolName = "ping_host"
	ToolNetInterfaces ToolName = "get_network_interfaces"
	ToolGetEnv        ToolName = "get_environment_variable"
	ToolListEnv       ToolName = "list_environment_variables"
	ToolWeather       ToolName = "get_weather"
	ToolFlightInfo    ToolName = "get_flight_info"
	ToolOpenWebsite   ToolName = "open_website"
	ToolExecuteQuery  ToolName = "execute_query"
	ToolPressButton   ToolName = "press_button"
)

// Env carries the construction-time settings leaf tools need.
type Env struct {
	Workspace   string // base for relative paths
	AllowedDir  string // non-empty restricts file access to this directory
	ExecTimeout time.Duration

	HTTPClient     *http.Client
	WeatherAPIKey  string
	WeatherBaseURL string
	FlightBaseURL  string

	Now     func() time.Time
	OpenURL func(ctx context.Context, url string) error
}

func (e Env) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e Env) httpClient() *http.Client {
	if e.HTTPClient != nil {
		return e.HTTPClient
	}
	return &http.Client{Timeout: 15 * time.Second}
}

func (e Env) execTimeout() time.Duration {
	if e.ExecTimeout > 0 {
		return e.ExecTimeout
	}
	return 20 * time.Second
}

// Factory builds one tool descriptor from env.
type Factory func(env Env) schema.ToolDescriptor

// CatalogEntry binds a tool name to its constructor.
type CatalogEntry struct {
	Name ToolName
	New  Factory
}

// Catalog is the static list of tools this binary knows how to build.
type Catalog []CatalogEntry

// Find returns the entry with the given name.
func (c Catalog) Find(name string) (CatalogEntry, bool) {
	for _, e := range c {
		if string(e.Name) == name {
			return e, true
		}
	}
	return CatalogEntry{}, false
}

// DefaultCatalog lists every built-in tool in registration order.
func DefaultCatalog() Catalog {
	return Catalog{
		{ToolHello, newHelloTool},
		{ToolEcho, newEchoTool},
		{ToolReverseEcho, newReverseEchoTool},
		{ToolReverse, newReverseTool},
		{ToolUpperCase, newUpperCaseTool},
		{ToolLowerCase, newLowerCaseTool},
		{ToolLeetSpeak, newLeetSpeakTool},
		{ToolCurrentTime, newCurrentTimeTool},
		{ToolAddTime, newAddTimeTool},
		{ToolReadFile, newReadFileTool},
		{ToolWriteFile, newWriteFileTool},
		{ToolListDirectory, newListDirectoryTool},
		{ToolSystemInfo, newSystemInfoTool},
		{ToolMacSystemInfo, newMacSystemInfoTool},
		{ToolListProcesses, newListProcessesTool},
		{ToolProcessInfo, newProcessInfoTool},
		{ToolPingHost, newPingHostTool},
		{ToolNetInterfaces, newNetworkInterfacesTool},
		{ToolGetEnv, newGetEnvTool},
		{ToolListEnv, newListEnvTool},
		{ToolWeather, newWeatherTool},
		{ToolFlightInfo, newFlightInfoTool},
		{ToolOpenWebsite, newOpenWebsiteTool},
		{ToolExecuteQuery, newExecuteQueryTool},
		{ToolPressButton, newPressButtonTool},
	}
}
