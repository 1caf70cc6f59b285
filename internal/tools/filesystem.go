package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/crystaldolphin/toolbridge/internal/schema"
)

// resolvePath resolves a file path against workspace (if relative) and
// enforces directory restriction if allowedDir is non-empty.
func resolvePath(path, workspace, allowedDir string) (string, error) {
	p := path
	if !filepath.IsAbs(p) && workspace != "" {
		p = filepath.Join(workspace, p)
	}
	resolved, err := filepath.EvalSymlinks(p)
	if err != nil {
		// Path may not exist yet (for writes); resolve the parent so a
		// symlinked directory cannot carry the write outside allowedDir.
		resolved = filepath.Clean(p)
		if dir, derr := filepath.EvalSymlinks(filepath.Dir(resolved)); derr == nil {
			resolved = filepath.Join(dir, filepath.Base(resolved))
		}
	}
	if allowedDir != "" {
		base := filepath.Clean(allowedDir)
		if b, err := filepath.EvalSymlinks(base); err == nil {
			base = b
		}
		rel, err := filepath.Rel(base, resolved)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return "", fmt.Errorf("path %s is outside allowed directory %s", path, allowedDir)
		}
	}
	return resolved, nil
}

type fileError struct {
	Error string `json:"error"`
	Path  string `json:"path"`
}

func newReadFileTool(env Env) schema.ToolDescriptor {
	type readResult struct {
		Success bool   `json:"success"`
		Path    string `json:"path"`
		Content string `json:"content"`
		Size    int64  `json:"size"`
	}
	return schema.ToolDescriptor{
		Name:        string(ToolReadFile),
		Title:       "Read File",
		Description: "Reads content from a text file. Returns file content or error message.",
		Params: []schema.Param{
			schema.StringParam{Name: "filePath", Description: "The absolute or relative path to the file to read"},
		},
		Handler: func(_ context.Context, args schema.Args) schema.ToolResult {
			path, ok := requiredString(args, "filePath")
			if !ok {
				return schema.JSONError(fileError{Error: "filePath is required"})
			}
			fp, err := resolvePath(path, env.Workspace, env.AllowedDir)
			if err != nil {
				return schema.JSONError(fileError{Error: err.Error(), Path: path})
			}
			info, err := os.Stat(fp)
			if err != nil {
				return schema.JSONError(fileError{Error: "File not found", Path: path})
			}
			if !info.Mode().IsRegular() {
				return schema.JSONError(fileError{Error: "Not a file", Path: path})
			}
			data, err := os.ReadFile(fp)
			if err != nil {
				return schema.JSONError(fileError{Error: err.Error(), Path: path})
			}
			return schema.JSONContent(readResult{Success: true, Path: path, Content: string(data), Size: info.Size()})
		},
	}
}

func newWriteFileTool(env Env) schema.ToolDescriptor {
	type writeResult struct {
		Success bool   `json:"success"`
		Path    string `json:"path"`
		Message string `json:"message"`
		Size    int    `json:"size"`
	}
	return schema.ToolDescriptor{
		Name:        string(ToolWriteFile),
		Title:       "Write File",
		Description: "Writes content to a text file. Creates the file and parent directories if they don't exist.",
		Params: []schema.Param{
			schema.StringParam{Name: "filePath", Description: "The absolute or relative path to the file to write"},
			schema.StringParam{Name: "content", Description: "The content to write to the file"},
		},
		Handler: func(_ context.Context, args schema.Args) schema.ToolResult {
			path, ok := requiredString(args, "filePath")
			if !ok {
				return schema.JSONError(fileError{Error: "filePath is required"})
			}
			content := stringArg(args, "content")
			fp, err := resolvePath(path, env.Workspace, env.AllowedDir)
			if err != nil {
				return schema.JSONError(fileError{Error: err.Error(), Path: path})
			}
			if err := os.MkdirAll(filepath.Dir(fp), 0o755); err != nil {
				return schema.JSONError(fileError{Error: err.Error(), Path: path})
			}
			if err := os.WriteFile(fp, []byte(content), 0o644); err != nil {
				return schema.JSONError(fileError{Error: err.Error(), Path: path})
			}
			return schema.JSONContent(writeResult{
				Success: true,
				Path:    path,
				Message: "File written successfully",
				Size:    len(content),
			})
		},
	}
}

func newListDirectoryTool(env Env) schema.ToolDescriptor {
	type item struct {
		Name     string `json:"name"`
		Type     string `json:"type"`
		Size     int64  `json:"size"`
		Modified string `json:"modified"`
	}
	type listing struct {
		Path  string `json:"path"`
		Items []item `json:"items"`
	}
	return schema.ToolDescriptor{
		Name:        string(ToolListDirectory),
		Title:       "List Directory",
		Description: "Lists files and directories in the specified path.",
		Params: []schema.Param{
			schema.StringParam{Name: "directoryPath", Description: "The path to the directory to list"},
		},
		Handler: func(_ context.Context, args schema.Args) schema.ToolResult {
			path, ok := requiredString(args, "directoryPath")
			if !ok {
				return schema.JSONError(fileError{Error: "directoryPath is required"})
			}
			dp, err := resolvePath(path, env.Workspace, env.AllowedDir)
			if err != nil {
				return schema.JSONError(fileError{Error: err.Error(), Path: path})
			}
			info, err := os.Stat(dp)
			if err != nil {
				return schema.JSONError(fileError{Error: "Directory not found", Path: path})
			}
			if !info.IsDir() {
				return schema.JSONError(fileError{Error: "Not a directory", Path: path})
			}
			entries, err := os.ReadDir(dp)
			if err != nil {
				return schema.JSONError(fileError{Error: err.Error(), Path: path})
			}
			sort.Slice(entries, func(i, j int) bool {
				return entries[i].Name() < entries[j].Name()
			})

			items := make([]item, 0, len(entries))
			for _, e := range entries {
				fi, err := e.Info()
				if err != nil {
					continue
				}
				it := item{Name: e.Name(), Type: "file", Modified: fi.ModTime().UTC().Format(time.RFC3339)}
				if fi.IsDir() {
					it.Type = "directory"
				} else {
					it.Size = fi.Size()
				}
				items = append(items, it)
			}
			return schema.JSONContent(listing{Path: path, Items: items})
		},
	}
}
