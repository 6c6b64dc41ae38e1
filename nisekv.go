// Package nisekv is an in-memory key-value engine reproducing the observable
// semantics of Redis strings, lists, sets, hashes and key expiration.
//
// It can be embedded directly:
//
//	kv := nisekv.New(nil)
//	kv.Set("greeting", "hello", nisekv.SetOptions{TTL: time.Minute})
//	v, ok, err := kv.Get("greeting")
//
// An Instance is not safe for concurrent use, callers serialize access.
package nisekv

import (
	"github.com/eternalApril/nisekv/internal/engine"
	"github.com/eternalApril/nisekv/internal/storage"
)

type (
	Options        = engine.Options
	SetOptions     = engine.SetOptions
	OptionalString = engine.OptionalString
	KeyValue       = engine.KeyValue
	FieldValue     = storage.FieldValue
	Clock          = storage.Clock
	ExpiryStatus   = storage.ExpiryStatus
	InfoSection    = engine.InfoSection
)

// DefaultDatabases is the number of databases created when Options.Databases is zero
const DefaultDatabases = engine.DefaultDatabases

const (
	ExpNotFound  = storage.ExpNotFound
	ExpNoTimeout = storage.ExpNoTimeout
	ExpActive    = storage.ExpActive
)

var (
	ErrWrongType        = storage.ErrWrongType
	ErrNotANumber       = storage.ErrNotANumber
	ErrInvalidArgument  = storage.ErrInvalidArgument
	ErrOutOfRange       = storage.ErrOutOfRange
	ErrInvalidOperation = storage.ErrInvalidOperation

	ErrNotInteger       = storage.ErrNotInteger
	ErrNotFloat         = storage.ErrNotFloat
	ErrSyntax           = storage.ErrSyntax
	ErrNoSuchKey        = storage.ErrNoSuchKey
	ErrIndexOutOfRange  = storage.ErrIndexOutOfRange
	ErrOffsetOutOfRange = storage.ErrOffsetOutOfRange
	ErrInvalidPattern   = storage.ErrInvalidPattern
)

// Instance is an Engine bound to its own set of databases
type Instance struct {
	*engine.Engine
	registry *engine.Registry
}

// New creates an Instance with database 0 selected. opts may be nil
func New(opts *Options) *Instance {
	registry := engine.NewRegistry(opts)
	return &Instance{
		Engine:   engine.New(registry),
		registry: registry,
	}
}

// Select makes the database at index the target of subsequent commands
func (i *Instance) Select(index int) error {
	return i.registry.Select(index)
}

// Selected returns the index of the selected database
func (i *Instance) Selected() int {
	return i.registry.Index()
}
