package server

import (
	"strings"
	"testing"

	"github.com/eternalApril/nisekv/internal/resp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlushAndDBSize(t *testing.T) {
	c := setupClient(t, Options{})

	c.do("MSET", "a", "1", "b", "2")
	c.do("SELECT", "1")
	c.do("SET", "c", "3")
	assert.Equal(t, int64(1), c.do("DBSIZE").Integer)

	assert.Equal(t, "OK", string(c.do("FLUSHDB").String))
	assert.Equal(t, int64(0), c.do("DBSIZE").Integer)

	c.do("SELECT", "0")
	assert.Equal(t, int64(2), c.do("DBSIZE").Integer)

	assert.Equal(t, "ERR syntax error", string(c.do("FLUSHALL", "NOW").String))
	assert.Equal(t, "OK", string(c.do("FLUSHALL", "ASYNC").String))
	assert.Equal(t, int64(0), c.do("DBSIZE").Integer)
}

func TestInfo(t *testing.T) {
	c := setupClient(t, Options{})

	c.do("SET", "a", "1")
	c.do("SET", "b", "1", "EX", "10")

	all := string(c.do("INFO").String)
	for _, section := range []string{"# Server", "# Clients", "# Stats", "# Keyspace"} {
		assert.Contains(t, all, section)
	}
	assert.Contains(t, all, "redis_version:7.0.0\r\n")
	assert.Contains(t, all, "connected_clients:1\r\n")
	assert.Contains(t, all, "db0:keys=2,expires=1,avg_ttl=0\r\n")

	keyspace := string(c.do("INFO", "keyspace").String)
	assert.True(t, strings.HasPrefix(keyspace, "# Keyspace\r\n"))
	assert.NotContains(t, keyspace, "# Server")

	assert.Contains(t, string(c.do("INFO", "everything").String), "# Stats")
}

func TestTime(t *testing.T) {
	c := setupClient(t, Options{})

	res := c.do("TIME")
	require.Len(t, res.Array, 2)
	assert.Equal(t, "1700000000", string(res.Array[0].String))
	assert.Equal(t, "0", string(res.Array[1].String))
}

func TestCommandIntrospection(t *testing.T) {
	c := setupClient(t, Options{})

	assert.Equal(t, int64(len(commandRegistry)), c.do("COMMAND", "COUNT").Integer)
	assert.Len(t, c.do("COMMAND").Array, len(commandRegistry))

	info := c.do("COMMAND", "INFO", "get", "nope")
	require.Len(t, info.Array, 2)
	assert.Equal(t, "get", string(info.Array[0].Array[0].String))
	assert.Equal(t, int64(2), info.Array[0].Array[1].Integer)
	assert.True(t, info.Array[1].IsNull)

	docs := c.do("COMMAND", "DOCS", "SET")
	require.Len(t, docs.Array, 2)
	assert.Equal(t, "set", string(docs.Array[0].String))
	assert.Equal(t, "Set the string value of a key.", string(docs.Array[1].Array[1].String))

	assert.True(t, c.do("COMMAND", "HELP", "ME").IsError())
}
