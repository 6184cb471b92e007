package label

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleSystem()  {}
func anotherSystem() {}

func TestNameKeyEquality(t *testing.T) {
	a := Name("attack")
	b := Name("attack")
	c := Name("defend")

	require.Equal(t, a.Key(), b.Key())
	require.NotEqual(t, a.Key(), c.Key())
}

func TestEqualLabelsShareHash(t *testing.T) {
	a := Name("attack")
	b := Name("attack")

	require.Equal(t, a.Key().Hash(), b.Key().Hash())
	require.NotZero(t, a.Key().Hash())
}

func TestAutoIsStablePerFunction(t *testing.T) {
	first := Auto(sampleSystem)
	second := Auto(sampleSystem)
	other := Auto(anotherSystem)

	require.Equal(t, first.Key(), second.Key())
	require.NotEqual(t, first.Key(), other.Key())
}

func TestAutoDistinguishesTypes(t *testing.T) {
	type marker struct{}
	type otherMarker struct{}

	require.Equal(t, Auto(marker{}).Key(), Auto(marker{}).Key())
	require.NotEqual(t, Auto(marker{}).Key(), Auto(otherMarker{}).Key())
	require.Equal(t, Auto(marker{}).Key(), Auto(&marker{}).Key())
}

func TestUserNameNeverCollidesWithTypeName(t *testing.T) {
	auto := Auto(sampleSystem)
	named := Name(auto.String())

	require.Equal(t, auto.String(), named.String())
	require.NotEqual(t, auto.Key(), named.Key())
}

func TestCallbackEqualityDelegatesToLabel(t *testing.T) {
	a := CallbackOf(sampleSystem)
	b := CallbackOf(sampleSystem)
	c := NewCallback(Name("attack"))
	d := NewCallback(Name("attack"))

	require.True(t, a == b)
	require.True(t, c == d)
	require.False(t, a == c)
	require.Equal(t, c.Hash(), d.Hash())
}

func TestCallbackStringEmpty(t *testing.T) {
	var cb Callback
	require.Equal(t, "<empty callback>", cb.String())
}
