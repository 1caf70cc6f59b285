package tools

import (
	"context"
	"database/sql"
	"strings"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/crystaldolphin/toolbridge/internal/schema"
)

const (
	memoryDSN    = ":memory:"
	maxQueryRows = 200
)

var rowReturningVerbs = []string{"select", "pragma", "with", "explain", "values"}

type queryResult struct {
	ConnectionString string           `json:"connectionString"`
	Query            string           `json:"query"`
	Columns          []string         `json:"columns,omitempty"`
	Rows             []map[string]any `json:"rows,omitempty"`
	RowCount         int              `json:"rowCount"`
	Truncated        bool             `json:"truncated,omitempty"`
	RowsAffected     *int64           `json:"rowsAffected,omitempty"`
}

type queryError struct {
	Error string `json:"error"`
	Query string `json:"query,omitempty"`
}

func newExecuteQueryTool(env Env) schema.ToolDescriptor {
	return schema.ToolDescriptor{
		Name:        string(ToolExecuteQuery),
		Title:       "Execute SQL Query",
		Description: "Executes a SQLite query. Uses an in-memory database if none is specified.",
		Params: []schema.Param{
			schema.StringParam{Name: "query", Description: "The SQL query to execute"},
			schema.StringParam{Name: "connectionString", Description: "Optional SQLite database file (default: in-memory)", Optional: true},
		},
		Handler: func(ctx context.Context, args schema.Args) schema.ToolResult {
			query, ok := requiredString(args, "query")
			if !ok {
				return schema.JSONError(queryError{Error: "query is required"})
			}
			dsn := strings.TrimSpace(stringArg(args, "connectionString"))
			if dsn == "" {
				dsn = memoryDSN
			}
			if dsn != memoryDSN {
				resolved, err := resolvePath(strings.TrimPrefix(dsn, "file:"), env.Workspace, env.AllowedDir)
				if err != nil {
					return schema.JSONError(queryError{Error: err.Error(), Query: query})
				}
				dsn = "file:" + resolved
			}

			res, err := runQuery(ctx, dsn, query)
			if err != nil {
				return schema.JSONError(queryError{Error: err.Error(), Query: query})
			}
			return schema.JSONContent(res)
		},
	}
}

func runQuery(ctx context.Context, dsn, query string) (*queryResult, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	// :memory: databases are per connection.
	db.SetMaxOpenConns(1)

	res := &queryResult{ConnectionString: dsn, Query: query}

	if !returnsRows(query) {
		r, err := db.ExecContext(ctx, query)
		if err != nil {
			return nil, err
		}
		n, _ := r.RowsAffected()
		res.RowsAffected = &n
		return res, nil
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	res.Columns = cols
	res.Rows = []map[string]any{}

	for rows.Next() {
		if len(res.Rows) == maxQueryRows {
			res.Truncated = true
			break
		}
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(map[string]any, len(cols))
		for i, c := range cols {
			if b, ok := values[i].([]byte); ok {
				row[c] = string(b)
			} else {
				row[c] = values[i]
			}
		}
		res.Rows = append(res.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	res.RowCount = len(res.Rows)
	return res, nil
}

func returnsRows(query string) bool {
	fields := strings.Fields(strings.ToLower(query))
	if len(fields) == 0 {
		return false
	}
	for _, v := range rowReturningVerbs {
		if fields[0] == v {
			return true
		}
	}
	return false
}
