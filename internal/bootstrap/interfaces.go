package bootstrap

import "context"

// Mounter attaches the application to its output. Mount must return once
// the application is running; it is called exactly once per sequence.
type Mounter interface {
	Mount(ctx context.Context, appCtx *AppContext) error
}

// StoreInitializer performs the asynchronous state-store initialization
// dispatched right after mount.
type StoreInitializer interface {
	Init(ctx context.Context) error
}

// MounterFunc adapts a function to [Mounter].
type MounterFunc func(ctx context.Context, appCtx *AppContext) error

func (f MounterFunc) Mount(ctx context.Context, appCtx *AppContext) error {
	return f(ctx, appCtx)
}

// StoreInitializerFunc adapts a function to [StoreInitializer].
type StoreInitializerFunc func(ctx context.Context) error

func (f StoreInitializerFunc) Init(ctx context.Context) error {
	return f(ctx)
}
