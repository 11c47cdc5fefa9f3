package container

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvoloshyn/magnet/internal/reflectx"
)

type fakeConn struct{}

func (f *fakeConn) Connect(context.Context) error    { return nil }
func (f *fakeConn) Disconnect(context.Context) error { return nil }

type fakeIface interface{ Touch() }

type fakeImpl struct{ fakeConn }

func (f *fakeImpl) Touch() {}

func TestConstructorSpecs(t *testing.T) {
	t.Parallel()

	fn := func(a *fakeConn, b int) *fakeImpl { return nil }
	specs := ConstructorSpecs(reflect.TypeOf(fn))

	require.Len(t, specs, 2)
	assert.Equal(t, "arg0", specs[0].Name)
	assert.Equal(t, reflectx.TypeFor[*fakeConn](), specs[0].Type)
	assert.Equal(t, "arg1", specs[1].Name)
	assert.Equal(t, reflectx.TypeFor[int](), specs[1].Type)
	assert.False(t, specs[0].Forced)
}

func TestStructSpecs(t *testing.T) {
	t.Parallel()

	type target struct {
		DB     *fakeConn
		Clock  *int `magnet:"inject"`
		Name   string
		hidden bool
	}

	specs := StructSpecs(reflect.TypeOf(target{}))

	require.Len(t, specs, 3, "unexported fields are not slots")
	assert.Equal(t, "DB", specs[0].Name)
	assert.False(t, specs[0].Forced)
	assert.Equal(t, "Clock", specs[1].Name)
	assert.True(t, specs[1].Forced)
	assert.Equal(t, "Name", specs[2].Name)
	assert.False(t, specs[2].Forced)
}

func TestValidateConstructor(t *testing.T) {
	t.Parallel()

	target := reflectx.TypeFor[*fakeConn]()

	cases := []struct {
		name string
		fn   any
		ok   bool
	}{
		{"value only", func() *fakeConn { return nil }, true},
		{"value and error", func() (*fakeConn, error) { return nil, nil }, true},
		{"not a function", 42, false},
		{"variadic", func(xs ...int) *fakeConn { return nil }, false},
		{"no results", func() {}, false},
		{"second result not error", func() (*fakeConn, int) { return nil, 0 }, false},
		{"wrong value type", func() *fakeImpl { return nil }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateConstructor(target, reflect.ValueOf(tc.fn))
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateConstructor_InterfaceTarget(t *testing.T) {
	t.Parallel()

	target := reflectx.TypeFor[fakeIface]()
	err := ValidateConstructor(target, reflect.ValueOf(func() *fakeImpl { return nil }))
	assert.NoError(t, err, "concrete return assignable to interface target")
}

func TestInjectable(t *testing.T) {
	t.Parallel()

	c := New(&Config{})

	assert.True(t, c.Injectable(reflectx.TypeFor[*fakeConn]()))
	assert.False(t, c.Injectable(reflectx.TypeFor[int]()))
	assert.False(t, c.Injectable(reflectx.TypeFor[fakeIface]()))

	// A binding to a connectable implementation makes the interface
	// injectable; forcing makes anything injectable.
	require.NoError(t, c.Bind(reflectx.TypeFor[fakeIface](), reflectx.TypeFor[*fakeImpl]()))
	assert.True(t, c.Injectable(reflectx.TypeFor[fakeIface]()))

	c.Force(reflectx.TypeFor[int]())
	assert.True(t, c.Injectable(reflectx.TypeFor[int]()))
}
