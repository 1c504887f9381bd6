//go:build unit

package commands_test

import (
	"context"
	"testing"

	"hotel-booking/internal/infra/memstore"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHotelCommands() (commands.HotelCommands, *memstore.HotelStore, *memstore.HotelByCityStore) {
	hotels := memstore.NewHotelStore()
	index := memstore.NewHotelByCityStore()
	return commands.NewHotelCommands(hotels, index), hotels, index
}

func TestAddHotel(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the hotel and its city index row", func(t *testing.T) {
		svc, hotels, index := newHotelCommands()
		h := builder.NewHotelBuilder().BuildDomain()

		added, err := svc.AddHotel(ctx, h)
		require.NoError(t, err)
		assert.Equal(t, h, added)

		found, err := hotels.FindByIDs(ctx, []uuid.UUID{h.ID})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, h, found[0])

		ids, err := index.HotelIDsInCity(ctx, h.Address.City)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{h.ID}, ids)
	})

	t.Run("field validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.HotelBuilder)
		}{
			{name: "empty id", mutate: func(b *builder.HotelBuilder) { b.ID = uuid.Nil }},
			{name: "empty name", mutate: func(b *builder.HotelBuilder) { b.Name = "" }},
			{name: "empty phone", mutate: func(b *builder.HotelBuilder) { b.Phone = "" }},
			{name: "empty city", mutate: func(b *builder.HotelBuilder) { b.City = "" }},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				svc, _, index := newHotelCommands()
				h := builder.NewHotelBuilder().With(tc.mutate).BuildDomain()

				_, err := svc.AddHotel(ctx, h)
				require.True(t, errs.Is(err, errs.ErrInvalidInput), "got %v", err)

				ids, err := index.HotelIDsInCity(ctx, h.Address.City)
				require.NoError(t, err)
				assert.Empty(t, ids)
			})
		}
	})

	t.Run("empty city message names the address city field", func(t *testing.T) {
		svc, _, _ := newHotelCommands()
		h := builder.NewHotelBuilder().With(func(b *builder.HotelBuilder) { b.City = "" }).BuildDomain()

		_, err := svc.AddHotel(ctx, h)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty address city")
	})

	t.Run("adding the same hotel twice is rejected", func(t *testing.T) {
		svc, _, index := newHotelCommands()
		h := builder.NewHotelBuilder().BuildDomain()

		_, err := svc.AddHotel(ctx, h)
		require.NoError(t, err)

		_, err = svc.AddHotel(ctx, h)
		assert.True(t, errs.Is(err, errs.ErrAlreadyExists), "got %v", err)

		ids, err := index.HotelIDsInCity(ctx, h.Address.City)
		require.NoError(t, err)
		assert.Len(t, ids, 1)
	})

	t.Run("two hotels in the same city share the index partition", func(t *testing.T) {
		svc, _, index := newHotelCommands()
		first := builder.NewHotelBuilder().BuildDomain()
		second := builder.NewHotelBuilder().With(func(b *builder.HotelBuilder) {
			b.Name = "Claridge's"
		}).BuildDomain()

		_, err := svc.AddHotel(ctx, first)
		require.NoError(t, err)
		_, err = svc.AddHotel(ctx, second)
		require.NoError(t, err)

		ids, err := index.HotelIDsInCity(ctx, "London")
		require.NoError(t, err)
		assert.ElementsMatch(t, []uuid.UUID{first.ID, second.ID}, ids)
	})
}
