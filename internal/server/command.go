package server

import (
	"errors"
	"strings"

	"github.com/eternalApril/nisekv/internal/engine"
	"github.com/eternalApril/nisekv/internal/resp"
	"github.com/eternalApril/nisekv/internal/storage"
)

// Context carries everything a command handler may touch
type Context struct {
	args   []resp.Value
	peer   *Peer
	engine *engine.Engine
	server *Dispatcher
}

type command interface {
	execute(ctx *Context) resp.Value
}

type commandFunc func(ctx *Context) resp.Value

func (c commandFunc) execute(ctx *Context) resp.Value {
	return c(ctx)
}

// arg returns the i-th argument as a string
func (ctx *Context) arg(i int) string {
	return string(ctx.args[i].String)
}

// argsFrom returns the arguments starting at i
func (ctx *Context) argsFrom(i int) []string {
	out := make([]string, 0, len(ctx.args)-i)
	for _, a := range ctx.args[i:] {
		out = append(out, string(a.String))
	}
	return out
}

// int64Arg parses the i-th argument as a canonical integer
func (ctx *Context) int64Arg(i int) (int64, error) {
	return storage.ParseInteger(ctx.arg(i))
}

func (ctx *Context) intArg(i int) (int, error) {
	n, err := ctx.int64Arg(i)
	return int(n), err
}

func (ctx *Context) floatArg(i int) (float64, error) {
	return storage.ParseFloat(ctx.arg(i))
}

// isArg reports whether the i-th argument equals token, ignoring case
func (ctx *Context) isArg(i int, token string) bool {
	return strings.EqualFold(ctx.arg(i), token)
}

// errorReply maps an error to the reply a Redis client expects
// errorReply maps a failure to its reply. Type mismatches get their own
// WRONGTYPE code, everything else is a generic ERR
func errorReply(err error) resp.Value {
	if errors.Is(err, storage.ErrWrongType) {
		return resp.MakeError("WRONGTYPE Operation against a key holding the wrong kind of value")
	}
	return resp.MakeError("ERR " + err.Error())
}

func bulkOrNil(v string, ok bool) resp.Value {
	if !ok {
		return resp.MakeNilBulkString()
	}
	return resp.MakeBulkString(v)
}

func optionalArray(vals []engine.OptionalString) resp.Value {
	out := make([]resp.Value, len(vals))
	for i, v := range vals {
		out[i] = bulkOrNil(v.Value, v.Valid)
	}
	return resp.MakeArray(out)
}

func syntaxError() resp.Value {
	return errorReply(storage.ErrSyntax)
}

// membersReply turns a (values, error) result into an array reply
func membersReply(members []string, err error) resp.Value {
	if err != nil {
		return errorReply(err)
	}
	return resp.MakeStringArray(members)
}

// countReply turns a (count, error) result into an integer reply
func countReply(n int, err error) resp.Value {
	if err != nil {
		return errorReply(err)
	}
	return resp.MakeInteger(int64(n))
}
