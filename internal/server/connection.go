package server

import (
	"fmt"
	"strings"
	"time"

	"github.com/eternalApril/nisekv/internal/resp"
	"golang.org/x/crypto/bcrypt"
)

// auth supports AUTH password and AUTH username password. Only the default user exists
func auth(ctx *Context) resp.Value {
	var user, pass string
	switch len(ctx.args) {
	case 1:
		user, pass = "default", ctx.arg(0)
	case 2:
		user, pass = ctx.arg(0), ctx.arg(1)
	default:
		return syntaxError()
	}

	hash := ctx.server.passHash
	if hash == nil {
		ctx.peer.authenticated = true
		return resp.MakeOK()
	}

	if user != "default" || bcrypt.CompareHashAndPassword(hash, []byte(pass)) != nil {
		return resp.MakeError("WRONGPASS invalid username-password pair or user is disabled.")
	}

	ctx.peer.authenticated = true
	return resp.MakeOK()
}

func echo(ctx *Context) resp.Value {
	return resp.MakeBulkString(ctx.arg(0))
}

func ping(ctx *Context) resp.Value {
	switch len(ctx.args) {
	case 0:
		return resp.MakeSimpleString("PONG")
	case 1:
		return resp.MakeBulkString(ctx.arg(0))
	default:
		return resp.MakeErrorWrongNumberOfArguments("ping")
	}
}

// quit replies OK, the connection is closed once the reply is flushed
func quit(ctx *Context) resp.Value {
	ctx.peer.closing = true
	return resp.MakeOK()
}

func selectDB(ctx *Context) resp.Value {
	index, err := ctx.intArg(0)
	if err != nil {
		return errorReply(err)
	}
	if _, err := ctx.server.registry.Database(index); err != nil {
		return errorReply(err)
	}
	ctx.peer.db = index
	return resp.MakeOK()
}

// client supports the CLIENT subcommands used by common client libraries
func client(ctx *Context) resp.Value {
	sub := strings.ToUpper(ctx.arg(0))

	switch {
	case sub == "ID" && len(ctx.args) == 1:
		return resp.MakeInteger(int64(ctx.peer.id))
	case sub == "GETNAME" && len(ctx.args) == 1:
		return bulkOrNil(ctx.peer.name, ctx.peer.name != "")
	case sub == "SETNAME" && len(ctx.args) == 2:
		name := ctx.arg(1)
		if strings.ContainsFunc(name, func(r rune) bool { return r <= ' ' || r > '~' }) {
			return resp.MakeError("ERR Client names cannot contain spaces, newlines or special characters.")
		}
		ctx.peer.name = name
		return resp.MakeOK()
	case sub == "SETINFO" && len(ctx.args) == 3:
		if !ctx.isArg(1, "LIB-NAME") && !ctx.isArg(1, "LIB-VER") {
			return resp.MakeError(fmt.Sprintf("ERR Unrecognized option '%s'", ctx.arg(1)))
		}
		return resp.MakeOK()
	case sub == "INFO" && len(ctx.args) == 1:
		return resp.MakeBulkString(clientInfo(ctx.peer, time.Now()))
	case sub == "LIST" && len(ctx.args) == 1:
		var b strings.Builder
		now := time.Now()
		for _, p := range ctx.server.Peers() {
			b.WriteString(clientInfo(p, now))
		}
		return resp.MakeBulkString(b.String())
	}

	return resp.MakeError(fmt.Sprintf("ERR unknown subcommand or wrong number of arguments for '%s'. Try CLIENT HELP.", ctx.arg(0)))
}

// clientInfo renders one CLIENT LIST line
func clientInfo(p *Peer, now time.Time) string {
	cmd := p.lastCommand
	if cmd == "" {
		cmd = "NULL"
	}
	return fmt.Sprintf("id=%d addr=%s name=%s age=%d db=%d cmd=%s\n",
		p.id, p.Addr(), p.name, int64(now.Sub(p.createdAt).Seconds()), p.db, cmd)
}
