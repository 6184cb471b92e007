package world

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type counter struct {
	Value int
}

type detector struct{}

func TestResourceRoundTrip(t *testing.T) {
	w := New()

	_, ok := Resource[counter](w)
	require.False(t, ok)

	InsertResource(w, counter{Value: 3})
	got, ok := Resource[counter](w)
	require.True(t, ok)
	require.Equal(t, 3, got.Value)

	ResourceMut[counter](w).Value = 9
	got, _ = Resource[counter](w)
	require.Equal(t, 9, got.Value)
}

func TestInitResourceKeepsExistingValue(t *testing.T) {
	w := New()
	InsertResource(w, counter{Value: 5})
	InitResource[counter](w)

	got, _ := Resource[counter](w)
	require.Equal(t, 5, got.Value)
}

func TestInsertionCountsAsChange(t *testing.T) {
	w := New()
	before := w.Tick()

	InsertResource(w, detector{})
	require.True(t, ResourceChangedSince[detector](w, before-1))
	require.False(t, ResourceChangedSince[detector](w, w.Tick()))
}

func TestChangeTracking(t *testing.T) {
	w := New()
	InsertResource(w, counter{})

	lastRun := w.Tick()
	w.AdvanceTick()
	require.False(t, ResourceChangedSince[counter](w, lastRun))

	ResourceMut[counter](w).Value++
	require.True(t, ResourceChangedSince[counter](w, lastRun))
}

func TestSetChangedWithoutMutation(t *testing.T) {
	w := New()
	InsertResource(w, detector{})

	lastRun := w.Tick()
	w.AdvanceTick()
	require.False(t, ResourceChangedSince[detector](w, lastRun))

	SetChanged[detector](w)
	require.True(t, ResourceChangedSince[detector](w, lastRun))
}

func TestEntityLifecycle(t *testing.T) {
	w := New()
	require.Equal(t, 0, w.EntityCount())

	a := w.Spawn()
	b := w.Spawn()
	require.NotEqual(t, a, b)
	require.Equal(t, 2, w.EntityCount())

	require.True(t, w.AttachComponent(a, counter{Value: 1}))
	c, ok := ComponentOf[counter](w, a)
	require.True(t, ok)
	require.Equal(t, 1, c.Value)
	require.Equal(t, 1, CountWith[counter](w))

	require.True(t, w.Despawn(a))
	require.False(t, w.Despawn(a))
	require.False(t, w.Alive(a))
	require.Equal(t, 1, w.EntityCount())
}

func TestCommandQueueOrder(t *testing.T) {
	w := New()
	var q CommandQueue
	var order []int
	for i := 0; i < 5; i++ {
		q.Push(CommandFunc(func(_ *World) { order = append(order, i) }))
	}

	q.Apply(w)
	require.Equal(t, []int{0, 1, 2, 3, 4}, order)
	require.Equal(t, 0, q.Len())
}

func TestCommandQueueAppliesNestedPushesSamePass(t *testing.T) {
	w := New()
	var q CommandQueue
	var order []string
	q.Push(CommandFunc(func(_ *World) {
		order = append(order, "outer")
		q.Push(CommandFunc(func(_ *World) { order = append(order, "inner") }))
	}))

	q.Apply(w)
	require.Equal(t, []string{"outer", "inner"}, order)
}

func TestSpawnCommand(t *testing.T) {
	w := New()
	var q CommandQueue
	q.Push(SpawnCommand{Components: []any{counter{Value: 7}}})
	q.Apply(w)

	require.Equal(t, 1, w.EntityCount())
	require.Equal(t, 1, CountWith[counter](w))
}

func TestResourceScopeRestores(t *testing.T) {
	w := New()
	InsertResource(w, counter{Value: 2})

	ResourceScope(w, func(w *World, c *counter) {
		c.Value = 4
		_, visible := Resource[counter](w)
		require.False(t, visible, "extracted resource must not be reachable through the world")
	})

	got, ok := Resource[counter](w)
	require.True(t, ok)
	require.Equal(t, 4, got.Value)
}

func TestResourceScopeInitializesZeroValue(t *testing.T) {
	w := New()
	ResourceScope(w, func(_ *World, c *counter) {
		c.Value = 1
	})

	got, ok := Resource[counter](w)
	require.True(t, ok)
	require.Equal(t, 1, got.Value)
}

func TestResourceScopeRestoresOnPanic(t *testing.T) {
	w := New()
	InsertResource(w, counter{Value: 1})

	require.Panics(t, func() {
		ResourceScope(w, func(_ *World, _ *counter) {
			panic("boom")
		})
	})

	got, ok := Resource[counter](w)
	require.True(t, ok)
	require.Equal(t, 1, got.Value)
}

func TestResourceScopeRejectsReentrancy(t *testing.T) {
	w := New()
	InsertResource(w, counter{})

	require.Panics(t, func() {
		ResourceScope(w, func(w *World, _ *counter) {
			ResourceScope(w, func(_ *World, _ *counter) {})
		})
	})

	// the outer scope's defer must still restore the resource
	_, ok := Resource[counter](w)
	require.True(t, ok)
}
