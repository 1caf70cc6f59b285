package tools

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/crystaldolphin/toolbridge/internal/schema"
)

type errorBody struct {
	Error string `json:"error"`
}

// runCommand executes name with args under the env exec timeout and returns
// trimmed stdout. Stderr is folded into the error.
func runCommand(ctx context.Context, env Env, name string, args ...string) (string, error) {
	cmdCtx, cancel := context.WithTimeout(ctx, env.execTimeout())
	defer cancel()

	cmd := exec.CommandContext(cmdCtx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() != nil {
		return stdout.String(), fmt.Errorf("command %s cancelled: %w", name, ctx.Err())
	}
	if cmdCtx.Err() != nil {
		return stdout.String(), fmt.Errorf("command %s timed out after %v", name, env.execTimeout())
	}
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return stdout.String(), fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return stdout.String(), fmt.Errorf("%s: %w", name, err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

func gigabytes(b uint64) float64 {
	return math.Round(float64(b)/(1<<30)*100) / 100
}

func formatUptime(d time.Duration) string {
	secs := int64(d.Seconds())
	days := secs / 86400
	hours := (secs % 86400) / 3600
	mins := (secs % 3600) / 60
	return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
}

func newSystemInfoTool(Env) schema.ToolDescriptor {
	type systemInfo struct {
		OS            string  `json:"OS"`
		CPUCores      int     `json:"CPU_Cores"`
		Architecture  string  `json:"Architecture"`
		Platform      string  `json:"Platform"`
		Hostname      string  `json:"Hostname,omitempty"`
		Uptime        string  `json:"Uptime,omitempty"`
		TotalMemoryGB float64 `json:"Total_Memory_GB,omitempty"`
		FreeMemoryGB  float64 `json:"Free_Memory_GB,omitempty"`
	}
	return schema.ToolDescriptor{
		Name:        string(ToolSystemInfo),
		Title:       "System Information",
		Description: "Returns basic system information (CPU count, OS, uptime).",
		Handler: func(context.Context, schema.Args) schema.ToolResult {
			info := systemInfo{
				OS:           osDescription(),
				CPUCores:     runtime.NumCPU(),
				Architecture: runtime.GOARCH,
				Platform:     runtime.GOOS,
			}
			info.Hostname, _ = os.Hostname()
			if up, ok := readUptime(); ok {
				info.Uptime = formatUptime(up)
			}
			if total, free, ok := readMemInfo(); ok {
				info.TotalMemoryGB = gigabytes(total)
				info.FreeMemoryGB = gigabytes(free)
			}
			return schema.JSONContent(info)
		},
	}
}

func newMacSystemInfoTool(env Env) schema.ToolDescriptor {
	type macInfo struct {
		OS           string  `json:"OS"`
		CPU          string  `json:"CPU"`
		CPUCores     string  `json:"CPU_Cores"`
		Architecture string  `json:"Architecture"`
		RAMGB        float64 `json:"RAM_GB"`
		Uptime       string  `json:"Uptime"`
	}
	return schema.ToolDescriptor{
		Name:        string(ToolMacSystemInfo),
		Title:       "macOS System Info",
		Description: "Returns detailed macOS system info including CPU, RAM, OS version, architecture, and uptime.",
		Handler: func(ctx context.Context, _ schema.Args) schema.ToolResult {
			if runtime.GOOS != "darwin" {
				return schema.JSONError(errorBody{Error: "This tool is intended for macOS only."})
			}
			var (
				info macInfo
				err  error
				run  = func(name string, args ...string) string {
					if err != nil {
						return ""
					}
					var out string
					out, err = runCommand(ctx, env, name, args...)
					return out
				}
			)
			info.OS = "macOS " + run("sw_vers", "-productVersion")
			info.CPU = run("sysctl", "-n", "machdep.cpu.brand_string")
			info.CPUCores = run("sysctl", "-n", "hw.ncpu")
			mem := run("sysctl", "-n", "hw.memsize")
			info.Architecture = run("uname", "-m")
			info.Uptime = run("uptime")
			if err != nil {
				return schema.JSONError(errorBody{Error: err.Error()})
			}
			if n, perr := strconv.ParseUint(mem, 10, 64); perr == nil {
				info.RAMGB = gigabytes(n)
			}
			return schema.JSONContent(info)
		},
	}
}

func newListProcessesTool(env Env) schema.ToolDescriptor {
	type processList struct {
		Platform  string `json:"platform"`
		Processes string `json:"processes"`
	}
	return schema.ToolDescriptor{
		Name:        string(ToolListProcesses),
		Title:       "List Processes",
		Description: "Lists running processes with basic information.",
		Handler: func(ctx context.Context, _ schema.Args) schema.ToolResult {
			var (
				out string
				err error
			)
			switch runtime.GOOS {
			case "windows":
				out, err = runCommand(ctx, env, "tasklist", "/fo", "csv")
			case "darwin":
				out, err = runCommand(ctx, env, "ps", "-axo", "pid,comm,pmem,rss", "-m")
			default:
				out, err = runCommand(ctx, env, "ps", "-eo", "pid,comm,pmem,rss", "--sort=-rss")
			}
			if err != nil {
				return schema.JSONError(errorBody{Error: err.Error()})
			}
			return schema.JSONContent(processList{Platform: runtime.GOOS, Processes: headLines(out, 21)})
		},
	}
}

func newProcessInfoTool(env Env) schema.ToolDescriptor {
	type processInfo struct {
		ProcessID   int    `json:"processId"`
		Platform    string `json:"platform"`
		ProcessInfo string `json:"processInfo"`
	}
	type processError struct {
		Error     string `json:"error"`
		ProcessID any    `json:"processId"`
	}
	return schema.ToolDescriptor{
		Name:        string(ToolProcessInfo),
		Title:       "Get Process Info",
		Description: "Gets detailed information about a specific process by ID.",
		Params: []schema.Param{
			schema.NumberParam{Name: "processId", Description: "The process ID to get information about"},
		},
		Handler: func(ctx context.Context, args schema.Args) schema.ToolResult {
			pid, ok := intArg(args, "processId")
			if !ok || pid <= 0 {
				return schema.JSONError(processError{Error: "processId must be a positive integer", ProcessID: args["processId"]})
			}
			var (
				out string
				err error
			)
			if runtime.GOOS == "windows" {
				out, err = runCommand(ctx, env, "tasklist", "/fi", fmt.Sprintf("PID eq %d", pid), "/fo", "csv")
			} else {
				out, err = runCommand(ctx, env, "ps", "-p", strconv.Itoa(pid), "-o", "pid,comm,pmem,rss,time,etime")
			}
			// ps exits non-zero for a missing pid but still prints the header.
			out = strings.TrimSpace(out)
			if !strings.Contains(out, "\n") {
				if err != nil && out == "" {
					return schema.JSONError(processError{Error: err.Error(), ProcessID: pid})
				}
				return schema.JSONError(processError{Error: "Process not found", ProcessID: pid})
			}
			return schema.JSONContent(processInfo{ProcessID: pid, Platform: runtime.GOOS, ProcessInfo: out})
		},
	}
}

func headLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}
