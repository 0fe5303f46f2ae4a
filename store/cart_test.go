package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemAggregatesQuantity(t *testing.T) {
	s := NewCartStore()

	for i := 0; i < 3; i++ {
		require.NoError(t, s.AddItem(1, 10, Line{ItemID: 1, Name: "Grilled Salmon Bowl", UnitPrice: 18.99}))
	}

	cart := s.Get(1)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 3, cart.Lines[0].Quantity)
}

func TestAddItemIgnoresCallerFieldsOnMerge(t *testing.T) {
	s := NewCartStore()

	require.NoError(t, s.AddItem(1, 10, Line{ItemID: 1, Name: "Latte", UnitPrice: 5.25}))
	// second add carries different fields and a bogus quantity; only the
	// id matters for the merge
	require.NoError(t, s.AddItem(1, 10, Line{ItemID: 1, Name: "renamed", UnitPrice: 99, Quantity: 7}))

	cart := s.Get(1)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, "Latte", cart.Lines[0].Name)
	assert.Equal(t, 5.25, cart.Lines[0].UnitPrice)
}

func TestCartScenario(t *testing.T) {
	// add {id:1, price:10} twice, then {id:2, price:5} once
	s := NewCartStore()
	require.NoError(t, s.AddItem(1, 10, Line{ItemID: 1, Name: "a", UnitPrice: 10}))
	require.NoError(t, s.AddItem(1, 10, Line{ItemID: 1, Name: "a", UnitPrice: 10}))
	require.NoError(t, s.AddItem(1, 10, Line{ItemID: 2, Name: "b", UnitPrice: 5}))

	cart := s.Get(1)
	require.Len(t, cart.Lines, 2)
	assert.Equal(t, int64(1), cart.Lines[0].ItemID)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, int64(2), cart.Lines[1].ItemID)
	assert.Equal(t, 1, cart.Lines[1].Quantity)
	assert.Equal(t, 25.0, s.Total(1))
}

func TestUpdateQuantity(t *testing.T) {
	t.Run("sets a positive quantity", func(t *testing.T) {
		s := NewCartStore()
		require.NoError(t, s.AddItem(1, 10, Line{ItemID: 1, Name: "a", UnitPrice: 10}))

		s.UpdateQuantity(1, 1, 4)
		cart := s.Get(1)
		require.Len(t, cart.Lines, 1)
		assert.Equal(t, 4, cart.Lines[0].Quantity)
	})

	t.Run("zero and negative both remove the line", func(t *testing.T) {
		for _, qty := range []int{0, -1, -5} {
			s := NewCartStore()
			require.NoError(t, s.AddItem(1, 10, Line{ItemID: 1, Name: "a", UnitPrice: 10}))
			s.UpdateQuantity(1, 1, 3)

			s.UpdateQuantity(1, 1, qty)
			assert.Empty(t, s.Get(1).Lines, "qty=%d", qty)
		}
	})

	t.Run("unknown item id is a no-op", func(t *testing.T) {
		s := NewCartStore()
		require.NoError(t, s.AddItem(1, 10, Line{ItemID: 1, Name: "a", UnitPrice: 10}))

		s.UpdateQuantity(1, 42, 5)
		cart := s.Get(1)
		require.Len(t, cart.Lines, 1)
		assert.Equal(t, 1, cart.Lines[0].Quantity)
	})
}

func TestRemoveItem(t *testing.T) {
	s := NewCartStore()
	require.NoError(t, s.AddItem(1, 10, Line{ItemID: 1, Name: "a", UnitPrice: 10}))
	require.NoError(t, s.AddItem(1, 10, Line{ItemID: 2, Name: "b", UnitPrice: 5}))

	s.RemoveItem(1, 1)
	cart := s.Get(1)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(2), cart.Lines[0].ItemID)

	// removing again is a no-op
	s.RemoveItem(1, 1)
	assert.Len(t, s.Get(1).Lines, 1)
}

func TestClearThenTotalIsZero(t *testing.T) {
	s := NewCartStore()
	require.NoError(t, s.AddItem(1, 10, Line{ItemID: 1, Name: "a", UnitPrice: 18.99}))
	require.NoError(t, s.AddItem(1, 10, Line{ItemID: 2, Name: "b", UnitPrice: 4.75}))
	s.UpdateQuantity(1, 2, 3)

	s.Clear(1)
	assert.Equal(t, 0.0, s.Total(1))
	assert.Empty(t, s.Get(1).Lines)

	// a cleared cart accepts items from any restaurant again
	require.NoError(t, s.AddItem(1, 20, Line{ItemID: 3, Name: "c", UnitPrice: 2}))
}

func TestAddItemValidation(t *testing.T) {
	s := NewCartStore()
	assert.ErrorIs(t, s.AddItem(1, 10, Line{ItemID: 0, Name: "a", UnitPrice: 1}), ErrInvalidItem)
	assert.ErrorIs(t, s.AddItem(1, 10, Line{ItemID: 1, Name: "a", UnitPrice: -1}), ErrInvalidItem)
	assert.ErrorIs(t, s.AddItem(1, 0, Line{ItemID: 1, Name: "a", UnitPrice: 1}), ErrInvalidItem)
}

func TestCartsAreScopedPerCustomer(t *testing.T) {
	s := NewCartStore()
	require.NoError(t, s.AddItem(1, 10, Line{ItemID: 1, Name: "a", UnitPrice: 10}))
	require.NoError(t, s.AddItem(2, 20, Line{ItemID: 9, Name: "z", UnitPrice: 3}))

	assert.Equal(t, int64(10), s.Get(1).RestaurantID)
	assert.Equal(t, int64(20), s.Get(2).RestaurantID)
	assert.Equal(t, 10.0, s.Total(1))
	assert.Equal(t, 3.0, s.Total(2))
}

func TestRestaurantSwitchProtocol(t *testing.T) {
	t.Run("adding across restaurants requires a switch", func(t *testing.T) {
		s := NewCartStore()
		require.NoError(t, s.AddItem(1, 10, Line{ItemID: 1, Name: "a", UnitPrice: 10}))

		err := s.AddItem(1, 20, Line{ItemID: 5, Name: "x", UnitPrice: 7})
		assert.ErrorIs(t, err, ErrRestaurantMismatch)
	})

	t.Run("confirm clears and rebinds", func(t *testing.T) {
		s := NewCartStore()
		require.NoError(t, s.AddItem(1, 10, Line{ItemID: 1, Name: "a", UnitPrice: 10}))

		pending, err := s.RequestSwitch(1, 20)
		require.NoError(t, err)
		assert.True(t, pending)

		require.NoError(t, s.ConfirmSwitch(1))
		cart := s.Get(1)
		assert.Equal(t, int64(20), cart.RestaurantID)
		assert.Empty(t, cart.Lines)
		assert.Nil(t, cart.PendingSwitch)
	})

	t.Run("cancel keeps the cart", func(t *testing.T) {
		s := NewCartStore()
		require.NoError(t, s.AddItem(1, 10, Line{ItemID: 1, Name: "a", UnitPrice: 10}))

		pending, err := s.RequestSwitch(1, 20)
		require.NoError(t, err)
		require.True(t, pending)

		s.CancelSwitch(1)
		cart := s.Get(1)
		assert.Equal(t, int64(10), cart.RestaurantID)
		require.Len(t, cart.Lines, 1)
		assert.Nil(t, cart.PendingSwitch)
	})

	t.Run("empty cart rebinds without confirmation", func(t *testing.T) {
		s := NewCartStore()
		pending, err := s.RequestSwitch(1, 20)
		require.NoError(t, err)
		assert.False(t, pending)
		assert.Equal(t, int64(20), s.Get(1).RestaurantID)
	})

	t.Run("confirm without a pending switch fails", func(t *testing.T) {
		s := NewCartStore()
		assert.ErrorIs(t, s.ConfirmSwitch(1), ErrNoPendingSwitch)
	})
}
