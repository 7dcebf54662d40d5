package shadow_test

import (
	"context"
	"testing"

	"github.com/deepnoodle-ai/shadow"
	"github.com/deepnoodle-ai/shadow/object"
	"github.com/stretchr/testify/require"
)

func TestNewForwardsWithoutTraps(t *testing.T) {
	ctx := context.Background()

	target := object.NewObject()
	require.NoError(t, target.Put("greeting", object.NewString("hello")))

	p, err := shadow.New(ctx, target, object.NewObject())
	require.NoError(t, err)

	value, err := p.Get(ctx, "greeting", nil)
	require.NoError(t, err)
	require.Equal(t, "hello", value.(*object.String).Value())
}

func TestNewRequiresObjects(t *testing.T) {
	ctx := context.Background()

	_, err := shadow.New(ctx, nil, object.NewObject())
	require.Error(t, err)

	_, err = shadow.New(ctx, object.NewObject(), nil)
	require.Error(t, err)
}

func TestProxyInterceptsGet(t *testing.T) {
	ctx := context.Background()

	target := object.NewObject()
	require.NoError(t, target.Put("x", object.NewInt(1)))

	handler := object.NewObject()
	trap := object.NewBuiltin("get", func(ctx context.Context, args ...object.Value) (object.Value, error) {
		return object.NewInt(42), nil
	})
	require.NoError(t, handler.Put("get", trap))

	p, err := shadow.New(ctx, target, handler)
	require.NoError(t, err)

	value, err := p.Get(ctx, "x", nil)
	require.NoError(t, err)
	require.Equal(t, int64(42), value.(*object.Int).Value())
}
