package storage

import "errors"

// Failure categories. Specific errors below match their category with errors.Is
var (
	// ErrWrongType is returned when a command targets a key holding another kind of value
	ErrWrongType = errors.New("operation against a key holding the wrong kind of value")

	// ErrNotANumber is the category of every numeric format failure
	ErrNotANumber = errors.New("value is not a number")

	// ErrInvalidArgument is the category of malformed options and out-of-bounds arguments
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange is returned for a database index outside [0, N)
	ErrOutOfRange = errors.New("DB index is out of range")

	// ErrInvalidOperation is returned when a key is moved to the database that already holds it
	ErrInvalidOperation = errors.New("source and destination objects are the same")
)

var (
	ErrNotInteger = numberError("value is not an integer or out of range")
	ErrNotFloat   = numberError("value is not a valid float")
	ErrOverflow   = numberError("increment or decrement would overflow")
	ErrNaN        = numberError("increment would produce NaN or Infinity")

	ErrSyntax           = argumentError("syntax error")
	ErrOffsetOutOfRange = argumentError("offset is out of range")
	ErrBitValue         = argumentError("bit is not an integer or out of range")
	ErrBitOffset        = argumentError("bit offset is not an integer or out of range")
	ErrIndexOutOfRange  = argumentError("index out of range")
	ErrNoSuchKey        = argumentError("no such key")
	ErrInvalidPattern   = argumentError("invalid pattern")
	ErrStringTooLong    = argumentError("string exceeds maximum allowed size (512MB)")
	ErrCountOutOfRange  = argumentError("value is out of range")
)

type numberError string

func (e numberError) Error() string { return string(e) }

func (e numberError) Is(target error) bool { return target == ErrNotANumber }

type argumentError string

func (e argumentError) Error() string { return string(e) }

func (e argumentError) Is(target error) bool { return target == ErrInvalidArgument }
