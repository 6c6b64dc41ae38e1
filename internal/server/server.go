package server

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/eternalApril/nisekv/internal/engine"
	"github.com/eternalApril/nisekv/internal/resp"
)

func dbsize(ctx *Context) resp.Value {
	return resp.MakeInteger(int64(ctx.engine.DBSize()))
}

// flushMode validates the optional ASYNC / SYNC modifier. Both flush synchronously
func flushMode(ctx *Context) bool {
	switch len(ctx.args) {
	case 0:
		return true
	case 1:
		return ctx.isArg(0, "ASYNC") || ctx.isArg(0, "SYNC")
	}
	return false
}

func flushall(ctx *Context) resp.Value {
	if !flushMode(ctx) {
		return syntaxError()
	}
	ctx.engine.FlushAll()
	return resp.MakeOK()
}

func flushdb(ctx *Context) resp.Value {
	if !flushMode(ctx) {
		return syntaxError()
	}
	ctx.engine.FlushDB()
	return resp.MakeOK()
}

// info supports INFO [section ...]. all, everything and default select every section
func info(ctx *Context) resp.Value {
	d := ctx.server
	m := d.metrics

	sections := ctx.engine.InfoSections()
	sections[0].Fields = append(sections[0].Fields,
		engine.InfoField{Name: "uptime_in_seconds", Value: fmt.Sprint(int64(time.Since(d.started).Seconds()))},
	)
	sections = slices.Insert(sections, 1,
		engine.InfoSection{Name: "Clients", Fields: []engine.InfoField{
			{Name: "connected_clients", Value: strconv.FormatUint(m.ConnectedClients(), 10)},
		}},
		engine.InfoSection{Name: "Stats", Fields: []engine.InfoField{
			{Name: "total_connections_received", Value: strconv.FormatUint(m.TotalConnections(), 10)},
			{Name: "total_commands_processed", Value: strconv.FormatUint(m.TotalCommands(), 10)},
			{Name: "total_error_replies", Value: strconv.FormatUint(m.TotalErrors(), 10)},
		}},
	)

	if len(ctx.args) == 0 {
		return resp.MakeBulkString(engine.FormatInfo(sections, ""))
	}

	var b strings.Builder
	for _, name := range ctx.argsFrom(0) {
		switch strings.ToLower(name) {
		case "all", "everything", "default":
			return resp.MakeBulkString(engine.FormatInfo(sections, ""))
		}
		b.WriteString(engine.FormatInfo(sections, name))
	}
	return resp.MakeBulkString(b.String())
}

// serverTime replies the unix time in seconds and the microseconds elapsed in the current second
func serverTime(ctx *Context) resp.Value {
	now := ctx.engine.Time()
	return resp.MakeStringArray([]string{
		strconv.FormatInt(now.Unix(), 10),
		strconv.FormatInt(int64(now.Nanosecond()/1000), 10),
	})
}

// cmd supports COMMAND, COMMAND COUNT, COMMAND INFO name... and COMMAND DOCS [name...]
func cmd(ctx *Context) resp.Value {
	if len(ctx.args) == 0 {
		return getAllCommands()
	}

	switch {
	case ctx.isArg(0, "COUNT") && len(ctx.args) == 1:
		return resp.MakeInteger(int64(len(commandRegistry)))
	case ctx.isArg(0, "INFO") && len(ctx.args) == 1:
		return getAllCommands()
	case ctx.isArg(0, "INFO"):
		return getCommandsInfo(ctx.argsFrom(1))
	case ctx.isArg(0, "DOCS"):
		return getCommandsDocs(ctx.argsFrom(1))
	}

	return resp.MakeError(fmt.Sprintf("ERR unknown subcommand or wrong number of arguments for '%s'. Try COMMAND HELP.", ctx.arg(0)))
}
