package subfmt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testFactory is a minimal resolver factory whose behavior is driven by
// its fields.
type testFactory struct {
	name     string
	resolver CommandResolver
	err      error
}

func (f *testFactory) Name() string {
	return f.name
}

func (f *testFactory) ConfigKinds() []string {
	return []string{"map"}
}

func (f *testFactory) DefaultConfig() any {
	return map[string]string{}
}

func (f *testFactory) CreateResolver(_ any) (CommandResolver, error) {
	return f.resolver, f.err
}

func TestRegisterBuiltin_Nil(t *testing.T) {
	err := RegisterBuiltin(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgNilResolver)
}

func TestBuiltins_Snapshot(t *testing.T) {
	require.NoError(t, RegisterBuiltin(staticResolver{name: "SNAPSHOT_TEST_CMD", text: "x"}))

	before := Builtins()
	require.NoError(t, RegisterBuiltin(staticResolver{name: "SNAPSHOT_TEST_CMD_2", text: "y"}))

	// The earlier snapshot is unaffected by later registration.
	assert.Len(t, Builtins(), len(before)+1)
}

func TestRegisterFactory(t *testing.T) {
	t.Run("nil factory", func(t *testing.T) {
		err := RegisterFactory(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgNilFactory)
	})

	t.Run("empty name", func(t *testing.T) {
		err := RegisterFactory(&testFactory{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgEmptyFactory)
	})

	t.Run("duplicate name", func(t *testing.T) {
		require.NoError(t, RegisterFactory(&testFactory{name: "subfmt.test.dup"}))
		err := RegisterFactory(&testFactory{name: "subfmt.test.dup"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgFactoryExists)
	})

	t.Run("registered factory is retrievable", func(t *testing.T) {
		f := &testFactory{name: "subfmt.test.lookup"}
		require.NoError(t, RegisterFactory(f))

		got, ok := Factory("subfmt.test.lookup")
		require.True(t, ok)
		assert.Equal(t, f, got)
		assert.Contains(t, FactoryNames(), "subfmt.test.lookup")
	})
}

func TestNewResolverFromConfig(t *testing.T) {
	t.Run("unknown factory", func(t *testing.T) {
		_, err := NewResolverFromConfig("subfmt.test.absent", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgFactoryUnknown)
	})

	t.Run("factory error", func(t *testing.T) {
		cause := errors.New("bad config")
		require.NoError(t, RegisterFactory(&testFactory{name: "subfmt.test.fails", err: cause}))

		_, err := NewResolverFromConfig("subfmt.test.fails", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgFactoryFailed)
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("factory produces no resolver", func(t *testing.T) {
		// A nil resolver with a nil error is a configuration error that
		// must fail the load, never a silent omission.
		require.NoError(t, RegisterFactory(&testFactory{name: "subfmt.test.none"}))

		_, err := NewResolverFromConfig("subfmt.test.none", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgFactoryNoResolver)
	})

	t.Run("success", func(t *testing.T) {
		want := staticResolver{name: "FACTORY_MADE", text: "ok"}
		require.NoError(t, RegisterFactory(&testFactory{name: "subfmt.test.ok", resolver: want}))

		r, err := NewResolverFromConfig("subfmt.test.ok", map[string]string{})
		require.NoError(t, err)
		assert.Equal(t, want, r)
	})
}
