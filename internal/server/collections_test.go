package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCommands(t *testing.T) {
	c := setupClient(t, Options{})

	assert.Equal(t, int64(0), c.do("LPUSHX", "l", "a").Integer)
	assert.Equal(t, int64(3), c.do("RPUSH", "l", "a", "b", "c").Integer)
	assert.Equal(t, int64(5), c.do("LPUSH", "l", "y", "z").Integer)
	assert.Equal(t, []string{"z", "y", "a", "b", "c"}, arrayStrings(c.do("LRANGE", "l", "0", "-1")))

	assert.Equal(t, "c", string(c.do("LINDEX", "l", "-1").String))
	assert.True(t, c.do("LINDEX", "l", "10").IsNull)

	assert.Equal(t, int64(6), c.do("LINSERT", "l", "BEFORE", "a", "x").Integer)
	assert.Equal(t, int64(-1), c.do("LINSERT", "l", "AFTER", "nope", "x").Integer)
	assert.Equal(t, int64(0), c.do("LINSERT", "missing", "AFTER", "a", "x").Integer)
	assert.Equal(t, "ERR syntax error", string(c.do("LINSERT", "l", "AROUND", "a", "x").String))
	assert.Equal(t, "ERR syntax error", string(c.do("LINSERT", "missing", "AROUND", "a", "x").String))

	assert.Equal(t, "OK", string(c.do("LSET", "l", "0", "first").String))
	assert.Equal(t, "ERR index out of range", string(c.do("LSET", "l", "99", "v").String))
	assert.Equal(t, "ERR no such key", string(c.do("LSET", "missing", "0", "v").String))

	c.do("RPUSH", "l", "a", "a")
	assert.Equal(t, int64(2), c.do("LREM", "l", "-2", "a").Integer)
	assert.Equal(t, []string{"first", "y", "x", "a", "b", "c"}, arrayStrings(c.do("LRANGE", "l", "0", "-1")))

	assert.Equal(t, "OK", string(c.do("LTRIM", "l", "1", "-2").String))
	assert.Equal(t, []string{"y", "x", "a", "b"}, arrayStrings(c.do("LRANGE", "l", "0", "-1")))
	assert.Equal(t, []string{"y", "x", "a", "b"}, arrayStrings(c.do("LRANGE", "l", "-2", "-1")))
	assert.Equal(t, []string{"a", "b"}, arrayStrings(c.do("LRANGE", "l", "2", "-1")))

	assert.Equal(t, "y", string(c.do("LPOP", "l").String))
	assert.Equal(t, "b", string(c.do("RPOP", "l").String))
	assert.Equal(t, int64(2), c.do("LLEN", "l").Integer)

	assert.Equal(t, "a", string(c.do("RPOPLPUSH", "l", "dst").String))
	assert.Equal(t, []string{"a"}, arrayStrings(c.do("LRANGE", "dst", "0", "-1")))

	// popping the last element removes the key
	c.do("LPOP", "l")
	assert.Equal(t, int64(0), c.do("EXISTS", "l").Integer)
	assert.True(t, c.do("LPOP", "l").IsNull)

	res := c.do("LRANGE", "missing", "0", "-1")
	require.NotNil(t, res.Array)
	assert.Empty(t, res.Array)
}

func TestSetCommands(t *testing.T) {
	c := setupClient(t, Options{})

	assert.Equal(t, int64(3), c.do("SADD", "s1", "a", "b", "c").Integer)
	assert.Equal(t, int64(0), c.do("SADD", "s1", "a").Integer)
	c.do("SADD", "s2", "c", "d")

	assert.Equal(t, int64(3), c.do("SCARD", "s1").Integer)
	assert.Equal(t, int64(1), c.do("SISMEMBER", "s1", "a").Integer)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, arrayStrings(c.do("SMEMBERS", "s1")))

	assert.ElementsMatch(t, []string{"a", "b"}, arrayStrings(c.do("SDIFF", "s1", "s2")))
	assert.ElementsMatch(t, []string{"c"}, arrayStrings(c.do("SINTER", "s1", "s2")))
	assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, arrayStrings(c.do("SUNION", "s1", "s2")))
	assert.Empty(t, c.do("SINTER", "s1", "missing").Array)

	assert.Equal(t, int64(4), c.do("SUNIONSTORE", "u", "s1", "s2").Integer)
	assert.Equal(t, int64(0), c.do("SINTERSTORE", "u", "s1", "missing").Integer)
	assert.Equal(t, int64(0), c.do("EXISTS", "u").Integer, "empty result deletes the destination")
	assert.Equal(t, int64(2), c.do("SDIFFSTORE", "dd", "s1", "s2").Integer)

	assert.Equal(t, int64(1), c.do("SMOVE", "s1", "s2", "a").Integer)
	assert.Equal(t, int64(0), c.do("SMOVE", "s1", "s2", "a").Integer)
	assert.Equal(t, int64(1), c.do("SISMEMBER", "s2", "a").Integer)

	assert.Equal(t, int64(1), c.do("SREM", "s1", "b", "zzz").Integer)

	m := string(c.do("SRANDMEMBER", "s2").String)
	assert.Contains(t, []string{"a", "c", "d"}, m)
	assert.Len(t, c.do("SRANDMEMBER", "s2", "10").Array, 3)
	assert.Len(t, c.do("SRANDMEMBER", "s2", "-5").Array, 5)
	assert.True(t, c.do("SRANDMEMBER", "missing").IsNull)

	popped := arrayStrings(c.do("SPOP", "s2", "2"))
	assert.Len(t, popped, 2)
	assert.Equal(t, int64(1), c.do("SCARD", "s2").Integer)
	assert.Len(t, c.do("SPOP", "s2", "5").Array, 1)
	assert.Equal(t, int64(0), c.do("EXISTS", "s2").Integer)
	assert.True(t, c.do("SPOP", "s2").IsNull)

	res := c.do("SPOP", "s1", "-1")
	assert.Equal(t, "ERR value is out of range, must be positive", string(res.String))

	// huge counts are bounded by the set itself
	assert.Empty(t, c.do("SPOP", "missing", "9223372036854775807").Array)
	assert.Equal(t, []string{"c"}, arrayStrings(c.do("SPOP", "s1", "9223372036854775807")))

	c.do("SADD", "s3", "x")
	for _, count := range []string{"-9223372036854775808", "-1000000000000"} {
		res = c.do("SRANDMEMBER", "s3", count)
		assert.Equal(t, "ERR value is out of range", string(res.String))
	}
	assert.Equal(t, []string{"x", "x"}, arrayStrings(c.do("SRANDMEMBER", "s3", "-2")))
}

func TestHashCommands(t *testing.T) {
	c := setupClient(t, Options{})

	assert.Equal(t, int64(2), c.do("HSET", "h", "f1", "v1", "f2", "v2").Integer)
	assert.Equal(t, int64(0), c.do("HSET", "h", "f1", "v1b").Integer)
	assert.Equal(t, "ERR wrong number of arguments for 'hset' command", string(c.do("HSET", "h", "f1", "v", "f2").String))

	assert.Equal(t, "OK", string(c.do("HMSET", "h", "f3", "v3").String))
	assert.Equal(t, "v1b", string(c.do("HGET", "h", "f1").String))
	assert.True(t, c.do("HGET", "h", "nope").IsNull)
	assert.Equal(t, int64(1), c.do("HEXISTS", "h", "f3").Integer)
	assert.Equal(t, int64(3), c.do("HLEN", "h").Integer)

	all := arrayStrings(c.do("HGETALL", "h"))
	require.Len(t, all, 6)
	got := map[string]string{}
	for i := 0; i < len(all); i += 2 {
		got[all[i]] = all[i+1]
	}
	assert.Equal(t, map[string]string{"f1": "v1b", "f2": "v2", "f3": "v3"}, got)

	assert.ElementsMatch(t, []string{"f1", "f2", "f3"}, arrayStrings(c.do("HKEYS", "h")))
	assert.ElementsMatch(t, []string{"v1b", "v2", "v3"}, arrayStrings(c.do("HVALS", "h")))

	res := c.do("HMGET", "h", "f1", "nope")
	require.Len(t, res.Array, 2)
	assert.Equal(t, "v1b", string(res.Array[0].String))
	assert.True(t, res.Array[1].IsNull)

	assert.Equal(t, int64(0), c.do("HSETNX", "h", "f1", "x").Integer)
	assert.Equal(t, int64(1), c.do("HSETNX", "h", "f4", "x").Integer)

	assert.Equal(t, int64(5), c.do("HINCRBY", "h", "n", "5").Integer)
	assert.Equal(t, "5.5", string(c.do("HINCRBYFLOAT", "h", "n", "0.5").String))
	assert.Equal(t, "ERR value is not an integer or out of range", string(c.do("HINCRBY", "h", "f1", "1").String))

	assert.Equal(t, int64(2), c.do("HDEL", "h", "f1", "f2", "nope").Integer)
	c.do("HDEL", "h", "f3", "f4", "n")
	assert.Equal(t, int64(0), c.do("EXISTS", "h").Integer)
}
