package tools

import (
	"context"
	"net"
	"regexp"
	"runtime"
	"strings"

	"github.com/crystaldolphin/toolbridge/internal/schema"
)

// hostnameRE admits DNS names and IPv4/IPv6 literals. It rejects anything
// that could be read as a ping flag.
var hostnameRE = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9.\-:]*$`)

var pingFailureMarkers = []string{"unreachable", "request timeout", "unknown host"}

func newPingHostTool(env Env) schema.ToolDescriptor {
	type pingResult struct {
		Hostname string `json:"hostname"`
		Success  bool   `json:"success"`
		Output   string `json:"output,omitempty"`
		Error    string `json:"error,omitempty"`
	}
	return schema.ToolDescriptor{
		Name:        string(ToolPingHost),
		Title:       "Ping Host",
		Description: "Pings a host and returns response time and status.",
		Params: []schema.Param{
			schema.StringParam{Name: "hostname", Description: "The hostname or IP address to ping"},
		},
		Handler: func(ctx context.Context, args schema.Args) schema.ToolResult {
			host := strings.TrimSpace(stringArg(args, "hostname"))
			if !hostnameRE.MatchString(host) {
				return schema.JSONError(pingResult{Hostname: host, Error: "invalid hostname"})
			}
			countFlag := "-c"
			if runtime.GOOS == "windows" {
				countFlag = "-n"
			}
			out, err := runCommand(ctx, env, "ping", countFlag, "4", host)
			if err != nil {
				return schema.JSONError(pingResult{Hostname: host, Error: err.Error(), Output: strings.TrimSpace(out)})
			}
			return schema.JSONContent(pingResult{Hostname: host, Success: pingSucceeded(out), Output: out})
		},
	}
}

func pingSucceeded(output string) bool {
	lower := strings.ToLower(output)
	for _, m := range pingFailureMarkers {
		if strings.Contains(lower, m) {
			return false
		}
	}
	return true
}

func newNetworkInterfacesTool(Env) schema.ToolDescriptor {
	type address struct {
		Address string `json:"address"`
		Family  string `json:"family"`
		Netmask string `json:"netmask"`
		MAC     string `json:"mac"`
	}
	type iface struct {
		Name      string    `json:"name"`
		Addresses []address `json:"addresses"`
	}
	type interfaces struct {
		Interfaces []iface `json:"interfaces"`
	}
	return schema.ToolDescriptor{
		Name:        string(ToolNetInterfaces),
		Title:       "Get Network Interfaces",
		Description: "Gets network interface information.",
		Handler: func(context.Context, schema.Args) schema.ToolResult {
			ifs, err := net.Interfaces()
			if err != nil {
				return schema.JSONError(errorBody{Error: err.Error()})
			}
			result := interfaces{Interfaces: []iface{}}
			for _, nif := range ifs {
				if nif.Flags&net.FlagLoopback != 0 {
					continue
				}
				addrs, err := nif.Addrs()
				if err != nil {
					continue
				}
				var list []address
				for _, a := range addrs {
					ipnet, ok := a.(*net.IPNet)
					if !ok {
						continue
					}
					family := "IPv6"
					if ipnet.IP.To4() != nil {
						family = "IPv4"
					}
					list = append(list, address{
						Address: ipnet.IP.String(),
						Family:  family,
						Netmask: net.IP(ipnet.Mask).String(),
						MAC:     nif.HardwareAddr.String(),
					})
				}
				if len(list) > 0 {
					result.Interfaces = append(result.Interfaces, iface{Name: nif.Name, Addresses: list})
				}
			}
			return schema.JSONContent(result)
		},
	}
}
