package object

import (
	"context"
	"testing"

	"github.com/deepnoodle-ai/wonton/assert"
)

func TestFromGoValue(t *testing.T) {
	value, err := FromGoValue(nil)
	assert.Nil(t, err)
	assert.Equal(t, value, Nil)

	value, err = FromGoValue(true)
	assert.Nil(t, err)
	assert.Equal(t, value, True)

	value, err = FromGoValue("hi")
	assert.Nil(t, err)
	assert.Equal(t, value.(*String).Value(), "hi")

	// JSON numbers arrive as float64; integral ones become ints
	value, err = FromGoValue(3.0)
	assert.Nil(t, err)
	assert.Equal(t, value.(*Int).Value(), int64(3))

	value, err = FromGoValue(3.5)
	assert.Nil(t, err)
	assert.Equal(t, value.(*Float).Value(), 3.5)

	value, err = FromGoValue([]interface{}{int64(1), "two"})
	assert.Nil(t, err)
	list := value.(*List)
	assert.Equal(t, list.Len(), 2)

	_, err = FromGoValue(struct{}{})
	assert.NotNil(t, err)
}

func TestFromGoValueObject(t *testing.T) {
	ctx := context.Background()

	value, err := FromGoValue(map[string]interface{}{
		"name": "ada",
		"age":  int64(36),
		"tags": []interface{}{"math"},
	})
	assert.Nil(t, err)

	obj, ok := value.(*Ordinary)
	assert.True(t, ok)

	// Keys are defined in sorted order for determinism
	keys, err := obj.OwnKeys(ctx)
	assert.Nil(t, err)
	assert.Equal(t, keys, []string{"age", "name", "tags"})

	name, err := obj.Get(ctx, "name", obj)
	assert.Nil(t, err)
	assert.Equal(t, name.(*String).Value(), "ada")
}

func TestToGoValueHonorsProxies(t *testing.T) {
	ctx := context.Background()

	target := NewObject()
	assert.Nil(t, target.Put("x", NewInt(1)))

	handler := NewObject()
	assert.Nil(t, handler.Put("get", NewBuiltin("get", func(ctx context.Context, args ...Value) (Value, error) {
		return NewInt(99), nil
	})))
	p, err := NewProxy(ctx, target, handler)
	assert.Nil(t, err)

	converted, err := ToGoValue(ctx, p)
	assert.Nil(t, err)
	assert.Equal(t, converted, map[string]interface{}{"x": int64(99)})
}

func TestAssertionHelpers(t *testing.T) {
	b, err := AsBool(True)
	assert.Nil(t, err)
	assert.True(t, b)
	_, err = AsBool(NewInt(1))
	assert.NotNil(t, err)

	s, err := AsString(NewString("x"))
	assert.Nil(t, err)
	assert.Equal(t, s, "x")
	_, err = AsString(Nil)
	assert.NotNil(t, err)

	i, err := AsInt(NewInt(3))
	assert.Nil(t, err)
	assert.Equal(t, i, int64(3))

	f, err := AsFloat(NewInt(3))
	assert.Nil(t, err)
	assert.Equal(t, f, 3.0)

	obj, err := AsObject(NewObject())
	assert.Nil(t, err)
	assert.NotNil(t, obj)
	_, err = AsObject(NewString("not an object"))
	assert.NotNil(t, err)
}
