package handlers

import (
	"bytes"
	"context"
	"testing"

	"github.com/deepnoodle-ai/shadow/object"
	"github.com/deepnoodle-ai/wonton/assert"
	"github.com/rs/zerolog"
)

func newTarget(t *testing.T) *object.Ordinary {
	t.Helper()
	target := object.NewObject()
	assert.Nil(t, target.Put("name", object.NewString("ada")))
	assert.Nil(t, target.Put("age", object.NewInt(36)))
	return target
}

func TestForwarding(t *testing.T) {
	ctx := context.Background()
	target := newTarget(t)

	handler, err := Forwarding()
	assert.Nil(t, err)
	p, err := object.NewProxy(ctx, target, handler)
	assert.Nil(t, err)

	// All eleven traps are captured
	assert.Equal(t, p.Traps().Len(), 11)

	value, err := p.Get(ctx, "name", nil)
	assert.Nil(t, err)
	assert.Equal(t, value.(*object.String).Value(), "ada")

	ok, err := p.Set(ctx, "age", object.NewInt(37), nil)
	assert.Nil(t, err)
	assert.True(t, ok)

	keys, err := p.OwnKeys(ctx)
	assert.Nil(t, err)
	assert.Equal(t, keys, []string{"name", "age"})

	ok, err = p.Has(ctx, "age")
	assert.Nil(t, err)
	assert.True(t, ok)

	ok, err = p.Delete(ctx, "age")
	assert.Nil(t, err)
	assert.True(t, ok)

	extensible, err := p.IsExtensible(ctx)
	assert.Nil(t, err)
	assert.True(t, extensible)
}

func TestTracing(t *testing.T) {
	ctx := context.Background()
	target := newTarget(t)

	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	handler, err := Tracing(logger)
	assert.Nil(t, err)
	p, err := object.NewProxy(ctx, target, handler)
	assert.Nil(t, err)

	value, err := p.Get(ctx, "name", nil)
	assert.Nil(t, err)
	assert.Equal(t, value.(*object.String).Value(), "ada")

	out := buf.String()
	assert.Contains(t, out, `"trap":"get"`)
	assert.Contains(t, out, `"key":"name"`)
}

func TestReadOnly(t *testing.T) {
	ctx := context.Background()
	target := newTarget(t)

	handler, err := ReadOnly()
	assert.Nil(t, err)
	p, err := object.NewProxy(ctx, target, handler)
	assert.Nil(t, err)

	// Reads forward to the target
	value, err := p.Get(ctx, "name", nil)
	assert.Nil(t, err)
	assert.Equal(t, value.(*object.String).Value(), "ada")

	// Mutations report failure without touching the target
	ok, err := p.Set(ctx, "name", object.NewString("bob"), nil)
	assert.Nil(t, err)
	assert.False(t, ok)

	ok, err = p.Delete(ctx, "name")
	assert.Nil(t, err)
	assert.False(t, ok)

	ok, err = p.DefineOwnProperty(ctx, "extra", object.PropertyDescriptor{
		Value: object.NewInt(1),
	})
	assert.Nil(t, err)
	assert.False(t, ok)

	ok, err = p.PreventExtensions(ctx)
	assert.Nil(t, err)
	assert.False(t, ok)

	value, err = target.Get(ctx, "name", target)
	assert.Nil(t, err)
	assert.Equal(t, value.(*object.String).Value(), "ada")
}

func TestHidden(t *testing.T) {
	ctx := context.Background()
	target := newTarget(t)

	handler, err := Hidden("age")
	assert.Nil(t, err)
	p, err := object.NewProxy(ctx, target, handler)
	assert.Nil(t, err)

	ok, err := p.Has(ctx, "age")
	assert.Nil(t, err)
	assert.False(t, ok)

	value, err := p.Get(ctx, "age", nil)
	assert.Nil(t, err)
	assert.Equal(t, value, object.Nil)

	desc, err := p.GetOwnProperty(ctx, "age")
	assert.Nil(t, err)
	assert.Nil(t, desc)

	keys, err := p.OwnKeys(ctx)
	assert.Nil(t, err)
	assert.Equal(t, keys, []string{"name"})

	// Unhidden keys still come through
	ok, err = p.Has(ctx, "name")
	assert.Nil(t, err)
	assert.True(t, ok)
}

func TestHiddenNonConfigurable(t *testing.T) {
	ctx := context.Background()

	target := object.NewObject()
	ok, err := target.DefineOwnProperty(ctx, "pinned", object.PropertyDescriptor{
		Value:        object.NewInt(1),
		Writable:     object.FlagTrue,
		Enumerable:   object.FlagTrue,
		Configurable: object.FlagFalse,
	})
	assert.Nil(t, err)
	assert.True(t, ok)

	handler, err := Hidden("pinned")
	assert.Nil(t, err)
	p, err := object.NewProxy(ctx, target, handler)
	assert.Nil(t, err)

	// Hiding a non-configurable property trips the consistency checks
	_, err = p.Has(ctx, "pinned")
	assert.NotNil(t, err)

	_, err = p.GetOwnProperty(ctx, "pinned")
	assert.NotNil(t, err)

	_, err = p.OwnKeys(ctx)
	assert.NotNil(t, err)
}
