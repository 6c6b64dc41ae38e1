package server

import (
	"slices"
	"strings"

	"github.com/eternalApril/nisekv/internal/resp"
)

type commandMetadata struct {
	arity    int      // Arity includes the command name itself
	flags    []string // read, write, fast, denyoom, etc
	firstKey int      // 1-based index of the first key
	lastKey  int      // 1-based index of the last key
	step     int      // Step count for finding keys
}

// accepts reports whether argc (command name included) satisfies the arity.
// A negative arity is a minimum
func (m commandMetadata) accepts(argc int) bool {
	if m.arity < 0 {
		return argc >= -m.arity
	}
	return argc == m.arity
}

func (m commandMetadata) has(flag string) bool {
	return slices.Contains(m.flags, flag)
}

var (
	flagsRead          = []string{"readonly"}
	flagsReadFast      = []string{"readonly", "fast"}
	flagsWrite         = []string{"write"}
	flagsWriteFast     = []string{"write", "fast"}
	flagsWriteGrow     = []string{"write", "denyoom"}
	flagsWriteGrowFast = []string{"write", "denyoom", "fast"}
)

var (
	commandRegistry = map[string]commandMetadata{
		// keys
		"DEL":       {-2, flagsWrite, 1, -1, 1},
		"EXISTS":    {-2, flagsReadFast, 1, -1, 1},
		"EXPIRE":    {3, flagsWriteFast, 1, 1, 1},
		"PEXPIRE":   {3, flagsWriteFast, 1, 1, 1},
		"EXPIREAT":  {3, flagsWriteFast, 1, 1, 1},
		"PEXPIREAT": {3, flagsWriteFast, 1, 1, 1},
		"TTL":       {2, flagsReadFast, 1, 1, 1},
		"PTTL":      {2, flagsReadFast, 1, 1, 1},
		"PERSIST":   {2, flagsWriteFast, 1, 1, 1},
		"MOVE":      {3, flagsWriteFast, 1, 1, 1},
		"RENAME":    {3, flagsWrite, 1, 2, 1},
		"RENAMENX":  {3, flagsWriteFast, 1, 2, 1},
		"RANDOMKEY": {1, []string{"readonly", "random"}, 0, 0, 0},
		"KEYS":      {2, []string{"readonly", "sort_for_script"}, 0, 0, 0},
		"TYPE":      {2, flagsReadFast, 1, 1, 1},

		// strings
		"APPEND":      {3, flagsWriteGrowFast, 1, 1, 1},
		"BITCOUNT":    {-2, flagsRead, 1, 1, 1},
		"DECR":        {2, flagsWriteGrowFast, 1, 1, 1},
		"DECRBY":      {3, flagsWriteGrowFast, 1, 1, 1},
		"GET":         {2, flagsReadFast, 1, 1, 1},
		"GETBIT":      {3, flagsReadFast, 1, 1, 1},
		"GETRANGE":    {4, flagsRead, 1, 1, 1},
		"SUBSTR":      {4, flagsRead, 1, 1, 1},
		"GETSET":      {3, flagsWriteGrowFast, 1, 1, 1},
		"INCR":        {2, flagsWriteGrowFast, 1, 1, 1},
		"INCRBY":      {3, flagsWriteGrowFast, 1, 1, 1},
		"INCRBYFLOAT": {3, flagsWriteGrowFast, 1, 1, 1},
		"MGET":        {-2, flagsReadFast, 1, -1, 1},
		"MSET":        {-3, flagsWriteGrow, 1, -1, 2},
		"MSETNX":      {-3, flagsWriteGrow, 1, -1, 2},
		"SET":         {-3, flagsWriteGrow, 1, 1, 1},
		"SETBIT":      {4, flagsWriteGrow, 1, 1, 1},
		"SETEX":       {4, flagsWriteGrow, 1, 1, 1},
		"PSETEX":      {4, flagsWriteGrow, 1, 1, 1},
		"SETNX":       {3, flagsWriteGrowFast, 1, 1, 1},
		"SETRANGE":    {4, flagsWriteGrow, 1, 1, 1},
		"STRLEN":      {2, flagsReadFast, 1, 1, 1},

		// lists
		"LINDEX":    {3, flagsRead, 1, 1, 1},
		"LINSERT":   {5, flagsWriteGrow, 1, 1, 1},
		"LLEN":      {2, flagsReadFast, 1, 1, 1},
		"LPOP":      {2, flagsWriteFast, 1, 1, 1},
		"LPUSH":     {-3, flagsWriteGrowFast, 1, 1, 1},
		"LPUSHX":    {-3, flagsWriteGrowFast, 1, 1, 1},
		"LRANGE":    {4, flagsRead, 1, 1, 1},
		"LREM":      {4, flagsWrite, 1, 1, 1},
		"LSET":      {4, flagsWriteGrow, 1, 1, 1},
		"LTRIM":     {4, flagsWrite, 1, 1, 1},
		"RPOP":      {2, flagsWriteFast, 1, 1, 1},
		"RPOPLPUSH": {3, flagsWriteGrow, 1, 2, 1},
		"RPUSH":     {-3, flagsWriteGrowFast, 1, 1, 1},
		"RPUSHX":    {-3, flagsWriteGrowFast, 1, 1, 1},

		// sets
		"SADD":        {-3, flagsWriteGrowFast, 1, 1, 1},
		"SCARD":       {2, flagsReadFast, 1, 1, 1},
		"SDIFF":       {-2, []string{"readonly", "sort_for_script"}, 1, -1, 1},
		"SDIFFSTORE":  {-3, flagsWriteGrow, 1, -1, 1},
		"SINTER":      {-2, []string{"readonly", "sort_for_script"}, 1, -1, 1},
		"SINTERSTORE": {-3, flagsWriteGrow, 1, -1, 1},
		"SISMEMBER":   {3, flagsReadFast, 1, 1, 1},
		"SMEMBERS":    {2, []string{"readonly", "sort_for_script"}, 1, 1, 1},
		"SMOVE":       {4, flagsWriteFast, 1, 2, 1},
		"SPOP":        {-2, []string{"write", "random", "fast"}, 1, 1, 1},
		"SRANDMEMBER": {-2, []string{"readonly", "random"}, 1, 1, 1},
		"SREM":        {-3, flagsWriteFast, 1, 1, 1},
		"SUNION":      {-2, []string{"readonly", "sort_for_script"}, 1, -1, 1},
		"SUNIONSTORE": {-3, flagsWriteGrow, 1, -1, 1},

		// hashes
		"HDEL":         {-3, flagsWriteFast, 1, 1, 1},
		"HEXISTS":      {3, flagsReadFast, 1, 1, 1},
		"HGET":         {3, flagsReadFast, 1, 1, 1},
		"HGETALL":      {2, []string{"readonly", "random"}, 1, 1, 1},
		"HINCRBY":      {4, flagsWriteGrowFast, 1, 1, 1},
		"HINCRBYFLOAT": {4, flagsWriteGrowFast, 1, 1, 1},
		"HKEYS":        {2, []string{"readonly", "sort_for_script"}, 1, 1, 1},
		"HLEN":         {2, flagsReadFast, 1, 1, 1},
		"HMGET":        {-3, flagsReadFast, 1, 1, 1},
		"HMSET":        {-4, flagsWriteGrowFast, 1, 1, 1},
		"HSET":         {-4, flagsWriteGrowFast, 1, 1, 1},
		"HSETNX":       {4, flagsWriteGrowFast, 1, 1, 1},
		"HVALS":        {2, []string{"readonly", "sort_for_script"}, 1, 1, 1},

		// connection
		"AUTH":   {-2, []string{"noscript", "loading", "stale", "fast", "no-auth"}, 0, 0, 0},
		"CLIENT": {-2, []string{"admin", "noscript", "random", "loading", "stale"}, 0, 0, 0},
		"ECHO":   {2, []string{"fast"}, 0, 0, 0},
		"PING":   {-1, []string{"fast", "stale"}, 0, 0, 0},
		"QUIT":   {-1, []string{"loading", "stale", "fast", "no-auth"}, 0, 0, 0},
		"SELECT": {2, []string{"loading", "fast"}, 0, 0, 0},

		// server
		"COMMAND":  {-1, []string{"random", "loading", "stale"}, 0, 0, 0},
		"DBSIZE":   {1, flagsReadFast, 0, 0, 0},
		"FLUSHALL": {-1, flagsWrite, 0, 0, 0},
		"FLUSHDB":  {-1, flagsWrite, 0, 0, 0},
		"INFO":     {-1, []string{"random", "loading", "stale"}, 0, 0, 0},
		"TIME":     {1, []string{"random", "loading", "stale", "fast"}, 0, 0, 0},
	}
)

// commandDoc stores a description for the command
type commandDoc struct {
	summary    string
	complexity string
	group      string
	since      string
}

const (
	o1 = "O(1)"
	oN = "O(N)"
)

// commandDocsRegistry documentation registry
var commandDocsRegistry = map[string]commandDoc{
	"DEL":       {"Delete a key.", "O(N) where N is the number of keys that will be removed.", "generic", "1.0.0"},
	"EXISTS":    {"Determine if a key exists.", "O(N) where N is the number of keys to check.", "generic", "1.0.0"},
	"EXPIRE":    {"Set a key's time to live in seconds.", o1, "generic", "1.0.0"},
	"PEXPIRE":   {"Set a key's time to live in milliseconds.", o1, "generic", "2.6.0"},
	"EXPIREAT":  {"Set the expiration for a key as a UNIX timestamp.", o1, "generic", "1.2.0"},
	"PEXPIREAT": {"Set the expiration for a key as a UNIX timestamp specified in milliseconds.", o1, "generic", "2.6.0"},
	"TTL":       {"Get the time to live for a key in seconds.", o1, "generic", "1.0.0"},
	"PTTL":      {"Get the time to live for a key in milliseconds.", o1, "generic", "2.6.0"},
	"PERSIST":   {"Remove the expiration from a key.", o1, "generic", "2.2.0"},
	"MOVE":      {"Move a key to another database.", o1, "generic", "1.0.0"},
	"RENAME":    {"Rename a key.", o1, "generic", "1.0.0"},
	"RENAMENX":  {"Rename a key, only if the new key does not exist.", o1, "generic", "1.0.0"},
	"RANDOMKEY": {"Return a random key from the keyspace.", o1, "generic", "1.0.0"},
	"KEYS":      {"Find all keys matching the given pattern.", "O(N) with N being the number of keys in the database.", "generic", "1.0.0"},
	"TYPE":      {"Determine the type stored at key.", o1, "generic", "1.0.0"},

	"APPEND":      {"Append a value to a key.", o1, "string", "2.0.0"},
	"BITCOUNT":    {"Count set bits in a string.", oN, "bitmap", "2.6.0"},
	"DECR":        {"Decrement the integer value of a key by one.", o1, "string", "1.0.0"},
	"DECRBY":      {"Decrement the integer value of a key by the given number.", o1, "string", "1.0.0"},
	"GET":         {"Get the value of a key.", o1, "string", "1.0.0"},
	"GETBIT":      {"Returns the bit value at offset in the string value stored at key.", o1, "bitmap", "2.2.0"},
	"GETRANGE":    {"Get a substring of the string stored at a key.", "O(N) where N is the length of the returned string.", "string", "2.4.0"},
	"SUBSTR":      {"Get a substring of the string stored at a key.", "O(N) where N is the length of the returned string.", "string", "1.0.0"},
	"GETSET":      {"Set the string value of a key and return its old value.", o1, "string", "1.0.0"},
	"INCR":        {"Increment the integer value of a key by one.", o1, "string", "1.0.0"},
	"INCRBY":      {"Increment the integer value of a key by the given amount.", o1, "string", "1.0.0"},
	"INCRBYFLOAT": {"Increment the float value of a key by the given amount.", o1, "string", "2.6.0"},
	"MGET":        {"Get the values of all the given keys.", "O(N) where N is the number of keys to retrieve.", "string", "1.0.0"},
	"MSET":        {"Set multiple keys to multiple values.", "O(N) where N is the number of keys to set.", "string", "1.0.1"},
	"MSETNX":      {"Set multiple keys to multiple values, only if none of the keys exist.", "O(N) where N is the number of keys to set.", "string", "1.0.1"},
	"SET":         {"Set the string value of a key.", o1, "string", "1.0.0"},
	"SETBIT":      {"Sets or clears the bit at offset in the string value stored at key.", o1, "bitmap", "2.2.0"},
	"SETEX":       {"Set the value and expiration of a key.", o1, "string", "2.0.0"},
	"PSETEX":      {"Set the value and expiration in milliseconds of a key.", o1, "string", "2.6.0"},
	"SETNX":       {"Set the value of a key, only if the key does not exist.", o1, "string", "1.0.0"},
	"SETRANGE":    {"Overwrite part of a string at key starting at the specified offset.", o1, "string", "2.2.0"},
	"STRLEN":      {"Get the length of the value stored in a key.", o1, "string", "2.2.0"},

	"LINDEX":    {"Get an element from a list by its index.", oN, "list", "1.0.0"},
	"LINSERT":   {"Insert an element before or after another element in a list.", oN, "list", "2.2.0"},
	"LLEN":      {"Get the length of a list.", o1, "list", "1.0.0"},
	"LPOP":      {"Remove and get the first element in a list.", o1, "list", "1.0.0"},
	"LPUSH":     {"Prepend one or multiple elements to a list.", o1, "list", "1.0.0"},
	"LPUSHX":    {"Prepend an element to a list, only if the list exists.", o1, "list", "2.2.0"},
	"LRANGE":    {"Get a range of elements from a list.", "O(S+N)", "list", "1.0.0"},
	"LREM":      {"Remove elements from a list.", "O(N+M)", "list", "1.0.0"},
	"LSET":      {"Set the value of an element in a list by its index.", oN, "list", "1.0.0"},
	"LTRIM":     {"Trim a list to the specified range.", "O(N) where N is the number of elements to be removed by the operation.", "list", "1.0.0"},
	"RPOP":      {"Remove and get the last element in a list.", o1, "list", "1.0.0"},
	"RPOPLPUSH": {"Remove the last element in a list, prepend it to another list and return it.", o1, "list", "1.2.0"},
	"RPUSH":     {"Append one or multiple elements to a list.", o1, "list", "1.0.0"},
	"RPUSHX":    {"Append an element to a list, only if the list exists.", o1, "list", "2.2.0"},

	"SADD":        {"Add one or more members to a set.", o1, "set", "1.0.0"},
	"SCARD":       {"Get the number of members in a set.", o1, "set", "1.0.0"},
	"SDIFF":       {"Subtract multiple sets.", "O(N) where N is the total number of elements in all given sets.", "set", "1.0.0"},
	"SDIFFSTORE":  {"Subtract multiple sets and store the resulting set in a key.", "O(N) where N is the total number of elements in all given sets.", "set", "1.0.0"},
	"SINTER":      {"Intersect multiple sets.", "O(N*M) worst case where N is the cardinality of the smallest set and M is the number of sets.", "set", "1.0.0"},
	"SINTERSTORE": {"Intersect multiple sets and store the resulting set in a key.", "O(N*M) worst case where N is the cardinality of the smallest set and M is the number of sets.", "set", "1.0.0"},
	"SISMEMBER":   {"Determine if a given value is a member of a set.", o1, "set", "1.0.0"},
	"SMEMBERS":    {"Get all the members in a set.", "O(N) where N is the set cardinality.", "set", "1.0.0"},
	"SMOVE":       {"Move a member from one set to another.", o1, "set", "1.0.0"},
	"SPOP":        {"Remove and return one or multiple random members from a set.", o1, "set", "1.0.0"},
	"SRANDMEMBER": {"Get one or multiple random members from a set.", "O(N) where N is the absolute value of the passed count.", "set", "1.0.0"},
	"SREM":        {"Remove one or more members from a set.", "O(N) where N is the number of members to be removed.", "set", "1.0.0"},
	"SUNION":      {"Add multiple sets.", "O(N) where N is the total number of elements in all given sets.", "set", "1.0.0"},
	"SUNIONSTORE": {"Add multiple sets and store the resulting set in a key.", "O(N) where N is the total number of elements in all given sets.", "set", "1.0.0"},

	"HDEL":         {"Delete one or more hash fields.", "O(N) where N is the number of fields to be removed.", "hash", "2.0.0"},
	"HEXISTS":      {"Determine if a hash field exists.", o1, "hash", "2.0.0"},
	"HGET":         {"Get the value of a hash field.", o1, "hash", "2.0.0"},
	"HGETALL":      {"Get all the fields and values in a hash.", "O(N) where N is the size of the hash.", "hash", "2.0.0"},
	"HINCRBY":      {"Increment the integer value of a hash field by the given number.", o1, "hash", "2.0.0"},
	"HINCRBYFLOAT": {"Increment the float value of a hash field by the given amount.", o1, "hash", "2.6.0"},
	"HKEYS":        {"Get all the fields in a hash.", "O(N) where N is the size of the hash.", "hash", "2.0.0"},
	"HLEN":         {"Get the number of fields in a hash.", o1, "hash", "2.0.0"},
	"HMGET":        {"Get the values of all the given hash fields.", "O(N) where N is the number of fields being requested.", "hash", "2.0.0"},
	"HMSET":        {"Set multiple hash fields to multiple values.", "O(N) where N is the number of fields being set.", "hash", "2.0.0"},
	"HSET":         {"Set the string value of a hash field.", "O(1) for each field/value pair added.", "hash", "2.0.0"},
	"HSETNX":       {"Set the value of a hash field, only if the field does not exist.", o1, "hash", "2.0.0"},
	"HVALS":        {"Get all the values in a hash.", "O(N) where N is the size of the hash.", "hash", "2.0.0"},

	"AUTH":   {"Authenticate to the server.", "O(N) where N is the number of passwords defined for the user.", "connection", "1.0.0"},
	"CLIENT": {"A container for client connection commands.", "Depends on subcommand.", "connection", "2.4.0"},
	"ECHO":   {"Echo the given string.", o1, "connection", "1.0.0"},
	"PING":   {"Ping the server.", o1, "connection", "1.0.0"},
	"QUIT":   {"Close the connection.", o1, "connection", "1.0.0"},
	"SELECT": {"Change the selected database for the current connection.", o1, "connection", "1.0.0"},

	"COMMAND":  {"Get array of command details.", "O(N) where N is the number of commands to look up.", "server", "2.8.13"},
	"DBSIZE":   {"Return the number of keys in the selected database.", o1, "server", "1.0.0"},
	"FLUSHALL": {"Remove all keys from all databases.", "O(N) where N is the total number of keys in all databases.", "server", "1.0.0"},
	"FLUSHDB":  {"Remove all keys from the current database.", "O(N) where N is the number of keys in the selected database.", "server", "1.0.0"},
	"INFO":     {"Get information and statistics about the server.", o1, "server", "1.0.0"},
	"TIME":     {"Return the current server time.", o1, "server", "2.6.0"},
}

func makeFlagsArray(flags []string) resp.Value {
	vals := make([]resp.Value, len(flags))
	for i, f := range flags {
		vals[i] = resp.MakeSimpleString(f)
	}
	return resp.MakeArray(vals)
}

func makeInfoCmdArray(name string) []resp.Value {
	meta := commandRegistry[name]
	return []resp.Value{
		resp.MakeBulkString(strings.ToLower(name)),
		resp.MakeInteger(int64(meta.arity)),
		makeFlagsArray(meta.flags),
		resp.MakeInteger(int64(meta.firstKey)),
		resp.MakeInteger(int64(meta.lastKey)),
		resp.MakeInteger(int64(meta.step)),
	}
}

// getAllCommands returns the details of every registered command, sorted by name
func getAllCommands() resp.Value {
	names := make([]string, 0, len(commandRegistry))
	for name := range commandRegistry {
		names = append(names, name)
	}
	slices.Sort(names)

	cmdArray := make([]resp.Value, 0, len(names))
	for _, name := range names {
		cmdArray = append(cmdArray, resp.MakeArray(makeInfoCmdArray(name)))
	}
	return resp.MakeArray(cmdArray)
}

// getCommandsInfo returns the details of the named commands, nil for unknown ones
func getCommandsInfo(names []string) resp.Value {
	out := make([]resp.Value, 0, len(names))
	for _, name := range names {
		name = strings.ToUpper(name)
		if _, ok := commandRegistry[name]; !ok {
			out = append(out, resp.MakeNilArray())
			continue
		}
		out = append(out, resp.MakeArray(makeInfoCmdArray(name)))
	}
	return resp.MakeArray(out)
}

// getCommandsDocs returns documentation for specified commands or all commands
// Format: [Name, [Summary, val, Since, val...], Name, [...]]
func getCommandsDocs(names []string) resp.Value {
	var targets []string

	if len(names) == 0 {
		targets = make([]string, 0, len(commandDocsRegistry))
		for name := range commandDocsRegistry {
			targets = append(targets, name)
		}
		slices.Sort(targets)
	} else {
		targets = make([]string, 0, len(names))
		for _, name := range names {
			targets = append(targets, strings.ToUpper(name))
		}
	}

	result := make([]resp.Value, 0, len(targets)*2)

	for _, name := range targets {
		doc, ok := commandDocsRegistry[name]
		if !ok {
			continue
		}

		result = append(result, resp.MakeBulkString(strings.ToLower(name)))

		props := []resp.Value{
			resp.MakeBulkString("summary"),
			resp.MakeBulkString(doc.summary),
			resp.MakeBulkString("since"),
			resp.MakeBulkString(doc.since),
			resp.MakeBulkString("group"),
			resp.MakeBulkString(doc.group),
			resp.MakeBulkString("complexity"),
			resp.MakeBulkString(doc.complexity),
		}

		result = append(result, resp.MakeArray(props))
	}

	return resp.MakeArray(result)
}
