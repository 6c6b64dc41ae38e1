package server

// registerCommands fills the registry with every supported command
func (d *Dispatcher) registerCommands() {
	// keys
	d.register("DEL", commandFunc(del))
	d.register("EXISTS", commandFunc(exists))
	d.register("EXPIRE", commandFunc(expire))
	d.register("PEXPIRE", commandFunc(pexpire))
	d.register("EXPIREAT", commandFunc(expireat))
	d.register("PEXPIREAT", commandFunc(pexpireat))
	d.register("TTL", commandFunc(ttl))
	d.register("PTTL", commandFunc(pttl))
	d.register("PERSIST", commandFunc(persist))
	d.register("MOVE", commandFunc(move))
	d.register("RENAME", commandFunc(rename))
	d.register("RENAMENX", commandFunc(renamenx))
	d.register("RANDOMKEY", commandFunc(randomkey))
	d.register("KEYS", commandFunc(keys))
	d.register("TYPE", commandFunc(typeOf))

	// strings
	d.register("APPEND", commandFunc(appendValue))
	d.register("BITCOUNT", commandFunc(bitcount))
	d.register("DECR", commandFunc(decr))
	d.register("DECRBY", commandFunc(decrby))
	d.register("GET", commandFunc(get))
	d.register("GETBIT", commandFunc(getbit))
	d.register("GETRANGE", commandFunc(getrange))
	d.register("SUBSTR", commandFunc(getrange))
	d.register("GETSET", commandFunc(getset))
	d.register("INCR", commandFunc(incr))
	d.register("INCRBY", commandFunc(incrby))
	d.register("INCRBYFLOAT", commandFunc(incrbyfloat))
	d.register("MGET", commandFunc(mget))
	d.register("MSET", commandFunc(mset))
	d.register("MSETNX", commandFunc(msetnx))
	d.register("SET", commandFunc(set))
	d.register("SETBIT", commandFunc(setbit))
	d.register("SETEX", commandFunc(setex))
	d.register("PSETEX", commandFunc(psetex))
	d.register("SETNX", commandFunc(setnx))
	d.register("SETRANGE", commandFunc(setrange))
	d.register("STRLEN", commandFunc(strlen))

	// lists
	d.register("LINDEX", commandFunc(lindex))
	d.register("LINSERT", commandFunc(linsert))
	d.register("LLEN", commandFunc(llen))
	d.register("LPOP", commandFunc(lpop))
	d.register("LPUSH", commandFunc(lpush))
	d.register("LPUSHX", commandFunc(lpushx))
	d.register("LRANGE", commandFunc(lrange))
	d.register("LREM", commandFunc(lrem))
	d.register("LSET", commandFunc(lset))
	d.register("LTRIM", commandFunc(ltrim))
	d.register("RPOP", commandFunc(rpop))
	d.register("RPOPLPUSH", commandFunc(rpoplpush))
	d.register("RPUSH", commandFunc(rpush))
	d.register("RPUSHX", commandFunc(rpushx))

	// sets
	d.register("SADD", commandFunc(sadd))
	d.register("SCARD", commandFunc(scard))
	d.register("SDIFF", commandFunc(sdiff))
	d.register("SDIFFSTORE", commandFunc(sdiffstore))
	d.register("SINTER", commandFunc(sinter))
	d.register("SINTERSTORE", commandFunc(sinterstore))
	d.register("SISMEMBER", commandFunc(sismember))
	d.register("SMEMBERS", commandFunc(smembers))
	d.register("SMOVE", commandFunc(smove))
	d.register("SPOP", commandFunc(spop))
	d.register("SRANDMEMBER", commandFunc(srandmember))
	d.register("SREM", commandFunc(srem))
	d.register("SUNION", commandFunc(sunion))
	d.register("SUNIONSTORE", commandFunc(sunionstore))

	// hashes
	d.register("HDEL", commandFunc(hdel))
	d.register("HEXISTS", commandFunc(hexists))
	d.register("HGET", commandFunc(hget))
	d.register("HGETALL", commandFunc(hgetall))
	d.register("HINCRBY", commandFunc(hincrby))
	d.register("HINCRBYFLOAT", commandFunc(hincrbyfloat))
	d.register("HKEYS", commandFunc(hkeys))
	d.register("HLEN", commandFunc(hlen))
	d.register("HMGET", commandFunc(hmget))
	d.register("HMSET", commandFunc(hmset))
	d.register("HSET", commandFunc(hset))
	d.register("HSETNX", commandFunc(hsetnx))
	d.register("HVALS", commandFunc(hvals))

	// connection
	d.register("AUTH", commandFunc(auth))
	d.register("CLIENT", commandFunc(client))
	d.register("ECHO", commandFunc(echo))
	d.register("PING", commandFunc(ping))
	d.register("QUIT", commandFunc(quit))
	d.register("SELECT", commandFunc(selectDB))

	// server
	d.register("COMMAND", commandFunc(cmd))
	d.register("DBSIZE", commandFunc(dbsize))
	d.register("FLUSHALL", commandFunc(flushall))
	d.register("FLUSHDB", commandFunc(flushdb))
	d.register("INFO", commandFunc(info))
	d.register("TIME", commandFunc(serverTime))
}
