package server

import (
	"github.com/eternalApril/nisekv/internal/resp"
)

func lindex(ctx *Context) resp.Value {
	index, err := ctx.intArg(1)
	if err != nil {
		return errorReply(err)
	}
	v, ok, err := ctx.engine.LIndex(ctx.arg(0), index)
	if err != nil {
		return errorReply(err)
	}
	return bulkOrNil(v, ok)
}

// linsert supports LINSERT key BEFORE|AFTER pivot element
func linsert(ctx *Context) resp.Value {
	n, err := ctx.engine.LInsert(ctx.arg(0), ctx.arg(1), ctx.arg(2), ctx.arg(3))
	if err != nil {
		return errorReply(err)
	}
	return resp.MakeInteger(int64(n))
}

func llen(ctx *Context) resp.Value {
	return countReply(ctx.engine.LLen(ctx.arg(0)))
}

func lpop(ctx *Context) resp.Value {
	v, ok, err := ctx.engine.LPop(ctx.arg(0))
	if err != nil {
		return errorReply(err)
	}
	return bulkOrNil(v, ok)
}

func rpop(ctx *Context) resp.Value {
	v, ok, err := ctx.engine.RPop(ctx.arg(0))
	if err != nil {
		return errorReply(err)
	}
	return bulkOrNil(v, ok)
}

func lpush(ctx *Context) resp.Value {
	return countReply(ctx.engine.LPush(ctx.arg(0), ctx.argsFrom(1)...))
}

func lpushx(ctx *Context) resp.Value {
	return countReply(ctx.engine.LPushX(ctx.arg(0), ctx.argsFrom(1)...))
}

func rpush(ctx *Context) resp.Value {
	return countReply(ctx.engine.RPush(ctx.arg(0), ctx.argsFrom(1)...))
}

func rpushx(ctx *Context) resp.Value {
	return countReply(ctx.engine.RPushX(ctx.arg(0), ctx.argsFrom(1)...))
}

// rangeArgs parses the start and stop positions at i and i+1
func rangeArgs(ctx *Context, i int) (int, int, error) {
	start, err := ctx.intArg(i)
	if err != nil {
		return 0, 0, err
	}
	stop, err := ctx.intArg(i + 1)
	if err != nil {
		return 0, 0, err
	}
	return start, stop, nil
}

func lrange(ctx *Context) resp.Value {
	start, stop, err := rangeArgs(ctx, 1)
	if err != nil {
		return errorReply(err)
	}
	vals, err := ctx.engine.LRange(ctx.arg(0), start, stop)
	if err != nil {
		return errorReply(err)
	}
	return resp.MakeStringArray(vals)
}

func lrem(ctx *Context) resp.Value {
	count, err := ctx.intArg(1)
	if err != nil {
		return errorReply(err)
	}
	n, err := ctx.engine.LRem(ctx.arg(0), count, ctx.arg(2))
	if err != nil {
		return errorReply(err)
	}
	return resp.MakeInteger(int64(n))
}

func lset(ctx *Context) resp.Value {
	index, err := ctx.intArg(1)
	if err != nil {
		return errorReply(err)
	}
	if err := ctx.engine.LSet(ctx.arg(0), index, ctx.arg(2)); err != nil {
		return errorReply(err)
	}
	return resp.MakeOK()
}

func ltrim(ctx *Context) resp.Value {
	start, stop, err := rangeArgs(ctx, 1)
	if err != nil {
		return errorReply(err)
	}
	if err := ctx.engine.LTrim(ctx.arg(0), start, stop); err != nil {
		return errorReply(err)
	}
	return resp.MakeOK()
}

func rpoplpush(ctx *Context) resp.Value {
	v, ok, err := ctx.engine.RPopLPush(ctx.arg(0), ctx.arg(1))
	if err != nil {
		return errorReply(err)
	}
	return bulkOrNil(v, ok)
}
