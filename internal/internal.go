// Package internal provides helpers for splitting work into batches
// and for carrying panics across goroutines, shared by the other
// packages of this module.
package internal

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// ComputeNofBatches divides the size of the range (high - low) by n. If n is 0,
// a default is used that takes runtime.GOMAXPROCS(0) into account.
func ComputeNofBatches(low, high, n int) (batches int) {
	switch size := high - low; {
	case size > 0:
		switch {
		case n == 0:
			batches = 2 * runtime.GOMAXPROCS(0)
		case n > 0:
			batches = n
		default:
			panic(fmt.Sprintf("invalid number of batches: %v", n))
		}
		if batches > size {
			batches = size
		}
	case size == 0:
		batches = 1
	default:
		panic(fmt.Sprintf("invalid range: %v:%v", low, high))
	}
	return
}

// A PanicError is a recovered panic converted into an error, with the
// stack trace of the goroutine that panicked.
type PanicError struct {
	Value interface{}
	Stack []byte
}

func (p *PanicError) Error() string {
	return fmt.Sprintf("%v\n%s", p.Value, p.Stack)
}

// Unwrap returns the panic value if it is an error.
func (p *PanicError) Unwrap() error {
	if err, isError := p.Value.(error); isError {
		return err
	}
	return nil
}

// RecoverPanic converts a panic in the calling goroutine into an error
// stored in *err. It only has an effect when it is deferred directly,
// as in defer internal.RecoverPanic(&err).
func RecoverPanic(err *error) {
	if p := recover(); p != nil {
		*err = WrapPanic(p)
	}
}

// WrapPanic adds stack trace information to a recovered panic. A panic
// that is already a *PanicError is returned as is, so that a panic
// passed on through several goroutines keeps its original stack trace.
func WrapPanic(p interface{}) error {
	if p == nil {
		return nil
	}
	if perr, isPanicError := p.(*PanicError); isPanicError {
		return perr
	}
	return &PanicError{Value: p, Stack: debug.Stack()}
}
