package magnet

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/mvoloshyn/magnet/internal/reflectx"
)

var (
	contextType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
)

// Inject wraps a function so that its injectable parameters are filled
// from the graph at call time. The wrapper has the same signature as the
// target. A parameter is filled when it is injectable (connectable or
// forced) and the caller passed its zero value; explicit caller-supplied
// arguments always win. context.Context parameters are always left to the
// caller.
//
// If resolution fails at call time, the error is returned through the
// target's trailing error result; targets without an error result panic
// with the *Error.
func (c *Container) Inject(target any) (any, error) {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Func {
		return nil, newError(ErrCodeInvalidTarget, fmt.Sprintf("inject target must be a function, got %s", reflectx.NameOf(target)), nil)
	}

	t := v.Type()
	if t.IsVariadic() {
		return nil, newError(ErrCodeInvalidTarget, fmt.Sprintf("inject target must not be variadic, got %s", t), nil)
	}

	wrapped := reflect.MakeFunc(t, func(args []reflect.Value) []reflect.Value {
		filled := make([]reflect.Value, len(args))
		for i, arg := range args {
			paramType := t.In(i)

			if paramType == contextType || !reflectx.IsZero(arg) || !c.internal.Injectable(paramType) {
				filled[i] = arg
				continue
			}

			node, err := c.internal.Resolve(paramType)
			if err != nil {
				return failureResults(t, wrapEngine(err))
			}
			filled[i] = reflect.ValueOf(node.Instance)
		}

		return v.Call(filled)
	})

	return wrapped.Interface(), nil
}

// InjectT is Inject with the wrapper typed as the target.
func InjectT[F any](c *Container, target F) (F, error) {
	var zero F

	wrapped, err := c.Inject(target)
	if err != nil {
		return zero, err
	}

	return wrapped.(F), nil
}

// failureResults builds the return values for a wrapped call that failed
// before reaching the target: zero values plus err in the trailing error
// slot. Without an error slot, or when the slot's concrete type cannot
// hold err, there is nowhere to put it, so panic.
func failureResults(t reflect.Type, err error) []reflect.Value {
	n := t.NumOut()
	if n == 0 || !t.Out(n-1).Implements(errorType) || !reflect.TypeOf(err).AssignableTo(t.Out(n-1)) {
		panic(err)
	}

	out := make([]reflect.Value, n)
	for i := range n - 1 {
		out[i] = reflect.Zero(t.Out(i))
	}

	errVal := reflect.New(t.Out(n - 1)).Elem()
	errVal.Set(reflect.ValueOf(err))
	out[n-1] = errVal

	return out
}

// Run resolves fn's parameters, connects the whole graph, calls fn, and
// disconnects on the way out regardless of how the call went. Parameters
// of type context.Context receive ctx; everything else must resolve from
// the graph. fn's trailing error result, if any, becomes Run's primary
// error, joined with any disconnect failure.
func Run(ctx context.Context, c *Container, fn any) (err error) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return newError(ErrCodeInvalidTarget, fmt.Sprintf("run target must be a function, got %s", reflectx.NameOf(fn)), nil)
	}

	t := v.Type()

	args := make([]reflect.Value, t.NumIn())
	for i := range t.NumIn() {
		paramType := t.In(i)

		if paramType == contextType {
			args[i] = reflect.ValueOf(ctx)
			continue
		}

		node, rerr := c.internal.Resolve(paramType)
		if rerr != nil {
			return wrapEngine(rerr)
		}
		args[i] = reflect.ValueOf(node.Instance)
	}

	if err := c.Connect(ctx); err != nil {
		return err
	}

	defer func() {
		if derr := c.Disconnect(context.WithoutCancel(ctx)); derr != nil {
			err = errors.Join(err, derr)
		}
	}()

	results := v.Call(args)

	if n := t.NumOut(); n > 0 && t.Out(n-1).Implements(errorType) {
		if callErr, ok := results[n-1].Interface().(error); ok && callErr != nil {
			return callErr
		}
	}

	return nil
}
