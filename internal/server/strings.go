package server

import (
	"math"
	"time"

	"github.com/eternalApril/nisekv/internal/engine"
	"github.com/eternalApril/nisekv/internal/resp"
	"github.com/eternalApril/nisekv/internal/storage"
)

func appendValue(ctx *Context) resp.Value {
	n, err := ctx.engine.Append(ctx.arg(0), ctx.arg(1))
	if err != nil {
		return errorReply(err)
	}
	return resp.MakeInteger(int64(n))
}

// bitcount takes an optional byte range, both bounds or none
func bitcount(ctx *Context) resp.Value {
	start, end := 0, -1

	switch len(ctx.args) {
	case 1:
	case 3:
		var err error
		if start, err = ctx.intArg(1); err != nil {
			return errorReply(err)
		}
		if end, err = ctx.intArg(2); err != nil {
			return errorReply(err)
		}
	default:
		return syntaxError()
	}

	n, err := ctx.engine.BitCount(ctx.arg(0), start, end)
	if err != nil {
		return errorReply(err)
	}
	return resp.MakeInteger(int64(n))
}

func incrBy(ctx *Context, delta int64) resp.Value {
	n, err := ctx.engine.IncrBy(ctx.arg(0), delta)
	if err != nil {
		return errorReply(err)
	}
	return resp.MakeInteger(n)
}

func incr(ctx *Context) resp.Value {
	return incrBy(ctx, 1)
}

func decr(ctx *Context) resp.Value {
	return incrBy(ctx, -1)
}

func incrby(ctx *Context) resp.Value {
	delta, err := ctx.int64Arg(1)
	if err != nil {
		return errorReply(err)
	}
	return incrBy(ctx, delta)
}

func decrby(ctx *Context) resp.Value {
	delta, err := ctx.int64Arg(1)
	if err != nil {
		return errorReply(err)
	}
	if delta == math.MinInt64 {
		return resp.MakeError("ERR decrement would overflow")
	}
	return incrBy(ctx, -delta)
}

func incrbyfloat(ctx *Context) resp.Value {
	delta, err := ctx.floatArg(1)
	if err != nil {
		return errorReply(err)
	}
	v, err := ctx.engine.IncrByFloat(ctx.arg(0), delta)
	if err != nil {
		return errorReply(err)
	}
	return resp.MakeBulkString(v)
}

func get(ctx *Context) resp.Value {
	v, ok, err := ctx.engine.Get(ctx.arg(0))
	if err != nil {
		return errorReply(err)
	}
	return bulkOrNil(v, ok)
}

// bitOffset parses a bit offset; any malformed or negative value is ErrBitOffset
func bitOffset(ctx *Context, i int) (int64, error) {
	offset, err := ctx.int64Arg(i)
	if err != nil || offset < 0 {
		return 0, storage.ErrBitOffset
	}
	return offset, nil
}

func getbit(ctx *Context) resp.Value {
	offset, err := bitOffset(ctx, 1)
	if err != nil {
		return errorReply(err)
	}
	bit, err := ctx.engine.GetBit(ctx.arg(0), offset)
	if err != nil {
		return errorReply(err)
	}
	return resp.MakeInteger(int64(bit))
}

func getrange(ctx *Context) resp.Value {
	start, err := ctx.intArg(1)
	if err != nil {
		return errorReply(err)
	}
	end, err := ctx.intArg(2)
	if err != nil {
		return errorReply(err)
	}
	v, err := ctx.engine.GetRange(ctx.arg(0), start, end)
	if err != nil {
		return errorReply(err)
	}
	return resp.MakeBulkString(v)
}

func getset(ctx *Context) resp.Value {
	old, ok, err := ctx.engine.GetSet(ctx.arg(0), ctx.arg(1))
	if err != nil {
		return errorReply(err)
	}
	return bulkOrNil(old, ok)
}

func mget(ctx *Context) resp.Value {
	return optionalArray(ctx.engine.MGet(ctx.argsFrom(0)...))
}

// keyValuePairs flattens "k1 v1 k2 v2 ..." into pairs, false on an odd count
func keyValuePairs(args []string) ([]engine.KeyValue, bool) {
	if len(args)%2 != 0 {
		return nil, false
	}
	pairs := make([]engine.KeyValue, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		pairs = append(pairs, engine.KeyValue{Key: args[i], Value: args[i+1]})
	}
	return pairs, true
}

func mset(ctx *Context) resp.Value {
	pairs, ok := keyValuePairs(ctx.argsFrom(0))
	if !ok {
		return resp.MakeErrorWrongNumberOfArguments("mset")
	}
	ctx.engine.MSet(pairs...)
	return resp.MakeOK()
}

func msetnx(ctx *Context) resp.Value {
	pairs, ok := keyValuePairs(ctx.argsFrom(0))
	if !ok {
		return resp.MakeErrorWrongNumberOfArguments("msetnx")
	}
	return resp.MakeBool(ctx.engine.MSetNX(pairs...))
}

// set supports SET key value [NX | XX] [EX seconds | PX milliseconds | EXAT unix-time-seconds | PXAT unix-time-milliseconds | KEEPTTL]
func set(ctx *Context) resp.Value {
	var opts engine.SetOptions
	expiration := false

	for i := 2; i < len(ctx.args); i++ {
		switch {
		case ctx.isArg(i, "NX") && !opts.XX:
			opts.NX = true
		case ctx.isArg(i, "XX") && !opts.NX:
			opts.XX = true
		case ctx.isArg(i, "KEEPTTL") && !expiration:
			opts.KeepTTL = true
			expiration = true
		case (ctx.isArg(i, "EX") || ctx.isArg(i, "PX") || ctx.isArg(i, "EXAT") || ctx.isArg(i, "PXAT")) &&
			!expiration && i+1 < len(ctx.args):
			n, err := ctx.int64Arg(i + 1)
			if err != nil {
				return errorReply(err)
			}
			if n <= 0 {
				return invalidExpireTime("set")
			}

			var errVal resp.Value
			ok := true
			switch {
			case ctx.isArg(i, "EX"):
				opts.TTL, errVal, ok = relativeExpire(ctx, i+1, time.Second, "set")
			case ctx.isArg(i, "PX"):
				opts.TTL, errVal, ok = relativeExpire(ctx, i+1, time.Millisecond, "set")
			case ctx.isArg(i, "EXAT"):
				opts.ExpireAt, errVal, ok = absoluteExpire(ctx, i+1, time.Second, "set")
			default:
				opts.ExpireAt, errVal, ok = absoluteExpire(ctx, i+1, time.Millisecond, "set")
			}
			if !ok {
				return errVal
			}

			expiration = true
			i++
		default:
			return syntaxError()
		}
	}

	if !ctx.engine.Set(ctx.arg(0), ctx.arg(1), opts) {
		return resp.MakeNilBulkString()
	}
	return resp.MakeOK()
}

func setWithTTL(ctx *Context, unit time.Duration, name string) resp.Value {
	ttl, errVal, ok := relativeExpire(ctx, 1, unit, name)
	if !ok {
		return errVal
	}
	if ttl <= 0 {
		return invalidExpireTime(name)
	}
	ctx.engine.Set(ctx.arg(0), ctx.arg(2), engine.SetOptions{TTL: ttl})
	return resp.MakeOK()
}

func setex(ctx *Context) resp.Value {
	return setWithTTL(ctx, time.Second, "setex")
}

func psetex(ctx *Context) resp.Value {
	return setWithTTL(ctx, time.Millisecond, "psetex")
}

func setbit(ctx *Context) resp.Value {
	offset, err := bitOffset(ctx, 1)
	if err != nil {
		return errorReply(err)
	}
	bit, err := ctx.intArg(2)
	if err != nil || (bit != 0 && bit != 1) {
		return errorReply(storage.ErrBitValue)
	}
	old, err := ctx.engine.SetBit(ctx.arg(0), offset, bit)
	if err != nil {
		return errorReply(err)
	}
	return resp.MakeInteger(int64(old))
}

func setnx(ctx *Context) resp.Value {
	return resp.MakeBool(ctx.engine.SetNX(ctx.arg(0), ctx.arg(1)))
}

func setrange(ctx *Context) resp.Value {
	offset, err := ctx.intArg(1)
	if err != nil {
		return errorReply(err)
	}
	n, err := ctx.engine.SetRange(ctx.arg(0), offset, ctx.arg(2))
	if err != nil {
		return errorReply(err)
	}
	return resp.MakeInteger(int64(n))
}

func strlen(ctx *Context) resp.Value {
	n, err := ctx.engine.StrLen(ctx.arg(0))
	if err != nil {
		return errorReply(err)
	}
	return resp.MakeInteger(int64(n))
}
