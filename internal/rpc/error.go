package rpc

import (
	"errors"
	"fmt"
)

// Error is an error reported by the daemon in the JSON-RPC error object.
// Message is the daemon's human readable text and is shown to the user verbatim.
type Error struct {
	Code    int64
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (code %d)", e.Message, e.Code)
}

// DaemonMessage is the text reported by zcld
func (e *Error) DaemonMessage() string {
	return e.Message
}

// ErrCodeWalletWrongEncState is returned for lock/unlock calls on an unencrypted wallet
const ErrCodeWalletWrongEncState = -15

// ErrNoResult is returned when a response carries neither result nor error
var ErrNoResult = errors.New("daemon response has no result")

// IsCode reports whether err is a daemon error with the given code
func IsCode(err error, code int64) bool {
	var rpcErr *Error
	return errors.As(err, &rpcErr) && rpcErr.Code == code
}
