package cli

import (
	"errors"
	"fmt"
)

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1 // argument, not-found and IO errors alike
)

// ArgumentError is a missing or malformed command argument.
type ArgumentError struct {
	Verb string
	Msg  string
}

func (e *ArgumentError) Error() string { return e.Msg }

// NotFoundError reports an id that is not in the store.
type NotFoundError struct {
	ID uint64
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("no task with id %d", e.ID) }

// IOError wraps a failure to read, write or remove the store file.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string { return fmt.Sprintf("error %s todos: %v", e.Op, e.Err) }

func (e *IOError) Unwrap() error { return e.Err }

// report prints err and returns the process exit code for it.
func (a *app) report(err error) int {
	if err == nil {
		return ExitOK
	}
	a.ui.Fail(err.Error())

	var argErr *ArgumentError
	if errors.As(err, &argErr) {
		if u, ok := usages[argErr.Verb]; ok {
			a.ui.Hint("usage: todo " + u)
		}
	}
	var nfErr *NotFoundError
	if errors.As(err, &nfErr) {
		a.ui.Hint("Hint: run `todo list --all` to see valid ids")
	}
	return ExitError
}
