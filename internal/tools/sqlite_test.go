package tools

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crystaldolphin/toolbridge/internal/schema"
)

func TestExecuteQuery_InMemory(t *testing.T) {
	out, isErr := call(t, newExecuteQueryTool(Env{}), schema.Args{"query": "SELECT 1 AS one, 'x' AS name"})
	require.False(t, isErr, out)

	m := decodeJSON(t, out)
	assert.Equal(t, ":memory:", m["connectionString"])
	assert.Equal(t, float64(1), m["rowCount"])
	rows := m["rows"].([]any)
	row := rows[0].(map[string]any)
	assert.Equal(t, float64(1), row["one"])
	assert.Equal(t, "x", row["name"])
}

func TestExecuteQuery_FileDatabase(t *testing.T) {
	dir := t.TempDir()
	env := Env{Workspace: dir, AllowedDir: dir}
	tool := newExecuteQueryTool(env)

	out, isErr := call(t, tool, schema.Args{
		"query":            "CREATE TABLE t (id INTEGER, v TEXT); INSERT INTO t VALUES (1, 'a'), (2, 'b');",
		"connectionString": "data.db",
	})
	require.False(t, isErr, out)

	out, isErr = call(t, tool, schema.Args{"query": "select v from t order by id", "connectionString": "data.db"})
	require.False(t, isErr, out)
	m := decodeJSON(t, out)
	assert.Equal(t, float64(2), m["rowCount"])
	assert.Equal(t, "file:"+filepath.Join(dir, "data.db"), m["connectionString"])
}

func TestExecuteQuery_Errors(t *testing.T) {
	out, isErr := call(t, newExecuteQueryTool(Env{}), schema.Args{"query": "SELECT * FROM missing_table"})
	require.True(t, isErr)
	assert.Contains(t, out, "missing_table")

	dir := t.TempDir()
	_, isErr = call(t, newExecuteQueryTool(Env{Workspace: dir, AllowedDir: dir}), schema.Args{
		"query":            "SELECT 1",
		"connectionString": "/tmp/elsewhere.db",
	})
	assert.True(t, isErr)
}

func TestReturnsRows(t *testing.T) {
	assert.True(t, returnsRows("  SELECT 1"))
	assert.True(t, returnsRows("with x as (select 1) select * from x"))
	assert.False(t, returnsRows("insert into t values (1)"))
	assert.False(t, returnsRows(""))
}
