package server

import (
	"github.com/eternalApril/nisekv/internal/resp"
	"github.com/eternalApril/nisekv/internal/storage"
)

func hdel(ctx *Context) resp.Value {
	return countReply(ctx.engine.HDel(ctx.arg(0), ctx.argsFrom(1)...))
}

func hexists(ctx *Context) resp.Value {
	ok, err := ctx.engine.HExists(ctx.arg(0), ctx.arg(1))
	if err != nil {
		return errorReply(err)
	}
	return resp.MakeBool(ok)
}

func hget(ctx *Context) resp.Value {
	v, ok, err := ctx.engine.HGet(ctx.arg(0), ctx.arg(1))
	if err != nil {
		return errorReply(err)
	}
	return bulkOrNil(v, ok)
}

// hgetall flattens the hash into field, value, field, value...
func hgetall(ctx *Context) resp.Value {
	pairs, err := ctx.engine.HGetAll(ctx.arg(0))
	if err != nil {
		return errorReply(err)
	}
	flat := make([]string, 0, len(pairs)*2)
	for _, p := range pairs {
		flat = append(flat, p.Field, p.Value)
	}
	return resp.MakeStringArray(flat)
}

func hincrby(ctx *Context) resp.Value {
	delta, err := ctx.int64Arg(2)
	if err != nil {
		return errorReply(err)
	}
	n, err := ctx.engine.HIncrBy(ctx.arg(0), ctx.arg(1), delta)
	if err != nil {
		return errorReply(err)
	}
	return resp.MakeInteger(n)
}

func hincrbyfloat(ctx *Context) resp.Value {
	delta, err := ctx.floatArg(2)
	if err != nil {
		return errorReply(err)
	}
	v, err := ctx.engine.HIncrByFloat(ctx.arg(0), ctx.arg(1), delta)
	if err != nil {
		return errorReply(err)
	}
	return resp.MakeBulkString(v)
}

func hkeys(ctx *Context) resp.Value {
	return membersReply(ctx.engine.HKeys(ctx.arg(0)))
}

func hvals(ctx *Context) resp.Value {
	return membersReply(ctx.engine.HVals(ctx.arg(0)))
}

func hlen(ctx *Context) resp.Value {
	return countReply(ctx.engine.HLen(ctx.arg(0)))
}

func hmget(ctx *Context) resp.Value {
	vals, err := ctx.engine.HMGet(ctx.arg(0), ctx.argsFrom(1)...)
	if err != nil {
		return errorReply(err)
	}
	return optionalArray(vals)
}

// fieldValuePairs flattens "f1 v1 f2 v2 ..." starting at the second argument
func fieldValuePairs(ctx *Context) ([]storage.FieldValue, bool) {
	args := ctx.argsFrom(1)
	if len(args)%2 != 0 {
		return nil, false
	}
	pairs := make([]storage.FieldValue, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		pairs = append(pairs, storage.FieldValue{Field: args[i], Value: args[i+1]})
	}
	return pairs, true
}

func hset(ctx *Context) resp.Value {
	pairs, ok := fieldValuePairs(ctx)
	if !ok {
		return resp.MakeErrorWrongNumberOfArguments("hset")
	}
	return countReply(ctx.engine.HSet(ctx.arg(0), pairs...))
}

func hmset(ctx *Context) resp.Value {
	pairs, ok := fieldValuePairs(ctx)
	if !ok {
		return resp.MakeErrorWrongNumberOfArguments("hmset")
	}
	if _, err := ctx.engine.HSet(ctx.arg(0), pairs...); err != nil {
		return errorReply(err)
	}
	return resp.MakeOK()
}

func hsetnx(ctx *Context) resp.Value {
	ok, err := ctx.engine.HSetNX(ctx.arg(0), ctx.arg(1), ctx.arg(2))
	if err != nil {
		return errorReply(err)
	}
	return resp.MakeBool(ok)
}
