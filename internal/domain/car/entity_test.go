//go:build unit

package car_test

import (
	"testing"

	"smartpark/internal/domain/car"
	"smartpark/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.CarBuilder)
	errIs  error
}

func TestCar(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewCarBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "RAB123C", actual.PlateNumber().Value())
		assert.Equal(t, "Jean Bosco", actual.DriverName().Value())
		assert.Equal(t, "0788123456", actual.PhoneNumber().Value())
	})

	t.Run("plate number validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "lowercase plate is normalized",
				mutate: func(b *builder.CarBuilder) { b.WithPlateNumber("rab123c") },
			},
			{
				name:   "plate with surrounding whitespace",
				mutate: func(b *builder.CarBuilder) { b.WithPlateNumber("  RAB123C  ") },
			},
			{
				name:   "series letter Z",
				mutate: func(b *builder.CarBuilder) { b.WithPlateNumber("RAZ999A") },
			},
			{
				name:   "wrong prefix",
				mutate: func(b *builder.CarBuilder) { b.WithPlateNumber("RB123C") },
				errIs:  car.ErrInvalidPlateNumber,
			},
			{
				name:   "never-issued series letter I",
				mutate: func(b *builder.CarBuilder) { b.WithPlateNumber("RAI123C") },
				errIs:  car.ErrInvalidPlateNumber,
			},
			{
				name:   "never-issued series letter O",
				mutate: func(b *builder.CarBuilder) { b.WithPlateNumber("RAO123C") },
				errIs:  car.ErrInvalidPlateNumber,
			},
			{
				name:   "too few digits",
				mutate: func(b *builder.CarBuilder) { b.WithPlateNumber("RAB12C") },
				errIs:  car.ErrInvalidPlateNumber,
			},
			{
				name:   "missing trailing letter",
				mutate: func(b *builder.CarBuilder) { b.WithPlateNumber("RAB123") },
				errIs:  car.ErrInvalidPlateNumber,
			},
			{
				name:   "empty plate",
				mutate: func(b *builder.CarBuilder) { b.WithPlateNumber("") },
				errIs:  car.ErrInvalidPlateNumber,
			},
		})
	})

	t.Run("driver name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "two letter name",
				mutate: func(b *builder.CarBuilder) { b.WithDriverName("Bo") },
			},
			{
				name:   "name with apostrophe and hyphen",
				mutate: func(b *builder.CarBuilder) { b.WithDriverName("Jean-Pierre O'Neil") },
			},
			{
				name:   "single letter name",
				mutate: func(b *builder.CarBuilder) { b.WithDriverName("J") },
				errIs:  car.ErrInvalidDriverName,
			},
			{
				name:   "name with digits",
				mutate: func(b *builder.CarBuilder) { b.WithDriverName("Jean2") },
				errIs:  car.ErrInvalidDriverName,
			},
			{
				name:   "empty name",
				mutate: func(b *builder.CarBuilder) { b.WithDriverName("") },
				errIs:  car.ErrInvalidDriverName,
			},
		})
	})

	t.Run("phone number validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "072 prefix",
				mutate: func(b *builder.CarBuilder) { b.WithPhoneNumber("0721234567") },
			},
			{
				name:   "073 prefix",
				mutate: func(b *builder.CarBuilder) { b.WithPhoneNumber("0731234567") },
			},
			{
				name:   "079 prefix",
				mutate: func(b *builder.CarBuilder) { b.WithPhoneNumber("0791234567") },
			},
			{
				name:   "unassigned 075 prefix",
				mutate: func(b *builder.CarBuilder) { b.WithPhoneNumber("0751234567") },
				errIs:  car.ErrInvalidPhoneNumber,
			},
			{
				name:   "too short",
				mutate: func(b *builder.CarBuilder) { b.WithPhoneNumber("078123456") },
				errIs:  car.ErrInvalidPhoneNumber,
			},
			{
				name:   "too long",
				mutate: func(b *builder.CarBuilder) { b.WithPhoneNumber("07881234567") },
				errIs:  car.ErrInvalidPhoneNumber,
			},
			{
				name:   "international format",
				mutate: func(b *builder.CarBuilder) { b.WithPhoneNumber("+250788123456") },
				errIs:  car.ErrInvalidPhoneNumber,
			},
		})
	})

	t.Run("update driver reports whether anything changed", func(t *testing.T) {
		c, err := builder.NewCarBuilder().BuildDomain()
		require.NoError(t, err)

		sameName, err := car.NewDriverName("Jean Bosco")
		require.NoError(t, err)
		samePhone, err := car.NewPhoneNumber("0788123456")
		require.NoError(t, err)
		assert.False(t, c.UpdateDriver(sameName, samePhone))

		newName, err := car.NewDriverName("Alice Uwase")
		require.NoError(t, err)
		assert.True(t, c.UpdateDriver(newName, samePhone))
		assert.Equal(t, "Alice Uwase", c.DriverName().Value())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewCarBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
