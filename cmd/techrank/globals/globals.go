package globals

import (
	"context"

	"techrank/internal/pipeline"
)

type key struct{}

type Value struct {
	Config pipeline.Config
}

func Set(ctx context.Context, value *Value) context.Context {
	return context.WithValue(ctx, key{}, value)
}

func Get(ctx context.Context) *Value {
	return ctx.Value(key{}).(*Value)
}
