package server

import (
	"github.com/eternalApril/nisekv/internal/resp"
)

func sadd(ctx *Context) resp.Value {
	return countReply(ctx.engine.SAdd(ctx.arg(0), ctx.argsFrom(1)...))
}

func srem(ctx *Context) resp.Value {
	return countReply(ctx.engine.SRem(ctx.arg(0), ctx.argsFrom(1)...))
}

func scard(ctx *Context) resp.Value {
	return countReply(ctx.engine.SCard(ctx.arg(0)))
}

func sismember(ctx *Context) resp.Value {
	ok, err := ctx.engine.SIsMember(ctx.arg(0), ctx.arg(1))
	if err != nil {
		return errorReply(err)
	}
	return resp.MakeBool(ok)
}

func smembers(ctx *Context) resp.Value {
	return membersReply(ctx.engine.SMembers(ctx.arg(0)))
}

func smove(ctx *Context) resp.Value {
	moved, err := ctx.engine.SMove(ctx.arg(0), ctx.arg(1), ctx.arg(2))
	if err != nil {
		return errorReply(err)
	}
	return resp.MakeBool(moved)
}

// spop supports SPOP key [count]. With a count the reply is always an array
func spop(ctx *Context) resp.Value {
	switch len(ctx.args) {
	case 1:
		m, ok, err := ctx.engine.SPop(ctx.arg(0))
		if err != nil {
			return errorReply(err)
		}
		return bulkOrNil(m, ok)
	case 2:
		count, err := ctx.intArg(1)
		if err != nil || count < 0 {
			return resp.MakeError("ERR value is out of range, must be positive")
		}
		card, err := ctx.engine.SCard(ctx.arg(0))
		if err != nil {
			return errorReply(err)
		}
		popped := make([]string, 0, min(count, card))
		for range count {
			m, ok, err := ctx.engine.SPop(ctx.arg(0))
			if err != nil {
				return errorReply(err)
			}
			if !ok {
				break
			}
			popped = append(popped, m)
		}
		return resp.MakeStringArray(popped)
	default:
		return syntaxError()
	}
}

// srandmember supports SRANDMEMBER key [count]. Without a count the reply is a single bulk string
func srandmember(ctx *Context) resp.Value {
	switch len(ctx.args) {
	case 1:
		members, err := ctx.engine.SRandMember(ctx.arg(0), 1)
		if err != nil {
			return errorReply(err)
		}
		if len(members) == 0 {
			return resp.MakeNilBulkString()
		}
		return resp.MakeBulkString(members[0])
	case 2:
		count, err := ctx.intArg(1)
		if err != nil {
			return errorReply(err)
		}
		members, err := ctx.engine.SRandMember(ctx.arg(0), count)
		if err != nil {
			return errorReply(err)
		}
		return resp.MakeStringArray(members)
	default:
		return syntaxError()
	}
}

func sdiff(ctx *Context) resp.Value {
	return membersReply(ctx.engine.SDiff(ctx.argsFrom(0)...))
}

func sinter(ctx *Context) resp.Value {
	return membersReply(ctx.engine.SInter(ctx.argsFrom(0)...))
}

func sunion(ctx *Context) resp.Value {
	return membersReply(ctx.engine.SUnion(ctx.argsFrom(0)...))
}

func sdiffstore(ctx *Context) resp.Value {
	return countReply(ctx.engine.SDiffStore(ctx.arg(0), ctx.argsFrom(1)...))
}

func sinterstore(ctx *Context) resp.Value {
	return countReply(ctx.engine.SInterStore(ctx.arg(0), ctx.argsFrom(1)...))
}

func sunionstore(ctx *Context) resp.Value {
	return countReply(ctx.engine.SUnionStore(ctx.arg(0), ctx.argsFrom(1)...))
}
