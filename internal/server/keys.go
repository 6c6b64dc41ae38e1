package server

import (
	"fmt"
	"math"
	"time"

	"github.com/eternalApril/nisekv/internal/resp"
	"github.com/eternalApril/nisekv/internal/storage"
)

func del(ctx *Context) resp.Value {
	return resp.MakeInteger(int64(ctx.engine.Del(ctx.argsFrom(0)...)))
}

func exists(ctx *Context) resp.Value {
	return resp.MakeInteger(int64(ctx.engine.Exists(ctx.argsFrom(0)...)))
}

// relativeExpire parses the i-th argument as an amount of unit, rejecting values
// that do not fit in a time.Duration
func relativeExpire(ctx *Context, i int, unit time.Duration, name string) (time.Duration, resp.Value, bool) {
	n, err := ctx.int64Arg(i)
	if err != nil {
		return 0, errorReply(err), false
	}
	limit := int64(math.MaxInt64 / unit)
	if n > limit || n < -limit {
		return 0, invalidExpireTime(name), false
	}
	return time.Duration(n) * unit, resp.Value{}, true
}

// absoluteExpire parses the i-th argument as a unix timestamp in unit (time.Second or time.Millisecond)
func absoluteExpire(ctx *Context, i int, unit time.Duration, name string) (time.Time, resp.Value, bool) {
	n, err := ctx.int64Arg(i)
	if err != nil {
		return time.Time{}, errorReply(err), false
	}
	limit := int64(math.MaxInt64 / unit)
	if n > limit || n < -limit {
		return time.Time{}, invalidExpireTime(name), false
	}
	return time.Unix(0, n*int64(unit)), resp.Value{}, true
}

func invalidExpireTime(name string) resp.Value {
	return resp.MakeError(fmt.Sprintf("ERR invalid expire time in '%s' command", name))
}

func expire(ctx *Context) resp.Value {
	ttl, errVal, ok := relativeExpire(ctx, 1, time.Second, "expire")
	if !ok {
		return errVal
	}
	return resp.MakeBool(ctx.engine.Expire(ctx.arg(0), ttl))
}

func pexpire(ctx *Context) resp.Value {
	ttl, errVal, ok := relativeExpire(ctx, 1, time.Millisecond, "pexpire")
	if !ok {
		return errVal
	}
	return resp.MakeBool(ctx.engine.Expire(ctx.arg(0), ttl))
}

func expireat(ctx *Context) resp.Value {
	at, errVal, ok := absoluteExpire(ctx, 1, time.Second, "expireat")
	if !ok {
		return errVal
	}
	return resp.MakeBool(ctx.engine.ExpireAt(ctx.arg(0), at))
}

func pexpireat(ctx *Context) resp.Value {
	at, errVal, ok := absoluteExpire(ctx, 1, time.Millisecond, "pexpireat")
	if !ok {
		return errVal
	}
	return resp.MakeBool(ctx.engine.ExpireAt(ctx.arg(0), at))
}

// ttl returns the remaining lifetime rounded to whole seconds
func ttl(ctx *Context) resp.Value {
	secs := ctx.engine.TTL(ctx.arg(0))
	if secs < 0 {
		return resp.MakeInteger(int64(secs))
	}
	return resp.MakeInteger(int64(math.Round(secs)))
}

func pttl(ctx *Context) resp.Value {
	d, status := ctx.engine.Expiry(ctx.arg(0))
	if status != storage.ExpActive {
		return resp.MakeInteger(int64(status))
	}
	return resp.MakeInteger(max(d.Milliseconds(), 0))
}

func persist(ctx *Context) resp.Value {
	return resp.MakeBool(ctx.engine.Persist(ctx.arg(0)))
}

func move(ctx *Context) resp.Value {
	index, err := ctx.intArg(1)
	if err != nil {
		return errorReply(err)
	}
	moved, err := ctx.engine.Move(ctx.arg(0), index)
	if err != nil {
		return errorReply(err)
	}
	return resp.MakeBool(moved)
}

func rename(ctx *Context) resp.Value {
	if err := ctx.engine.Rename(ctx.arg(0), ctx.arg(1)); err != nil {
		return errorReply(err)
	}
	return resp.MakeOK()
}

func renamenx(ctx *Context) resp.Value {
	renamed, err := ctx.engine.RenameNX(ctx.arg(0), ctx.arg(1))
	if err != nil {
		return errorReply(err)
	}
	return resp.MakeBool(renamed)
}

func randomkey(ctx *Context) resp.Value {
	return bulkOrNil(ctx.engine.RandomKey())
}

func keys(ctx *Context) resp.Value {
	matches, err := ctx.engine.Keys(ctx.arg(0))
	if err != nil {
		return errorReply(err)
	}
	return resp.MakeStringArray(matches)
}

func typeOf(ctx *Context) resp.Value {
	return resp.MakeSimpleString(ctx.engine.Type(ctx.arg(0)))
}
