package xcontext

import "context"

type holder[T any] struct {
	value T
}

// WithResponseAndError prepares mutable response and error slots used by the
// router. Handlers never touch these directly; middlewares and closers read
// them through GetResponse and Error.
func WithResponseAndError(ctx context.Context) context.Context {
	ctx = context.WithValue(ctx, responseKey{}, &holder[any]{})
	return context.WithValue(ctx, errorKey{}, &holder[error]{})
}

func SetResponse(ctx context.Context, resp any) {
	if h, ok := ctx.Value(responseKey{}).(*holder[any]); ok {
		h.value = resp
	}
}

func GetResponse(ctx context.Context) any {
	if h, ok := ctx.Value(responseKey{}).(*holder[any]); ok {
		return h.value
	}

	return nil
}

func SetError(ctx context.Context, err error) {
	if h, ok := ctx.Value(errorKey{}).(*holder[error]); ok {
		h.value = err
	}
}

func Error(ctx context.Context) error {
	if h, ok := ctx.Value(errorKey{}).(*holder[error]); ok {
		return h.value
	}

	return nil
}
