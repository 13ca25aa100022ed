package sizemap

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSizeClasses(t *testing.T) {
	assert := assert.New(t)

	for _, p := range profiles {
		want := DefaultTable(p)
		got, err := ParseSizeClasses(want.String(), len(want))
		assert.NoError(err)
		assert.Equal(want, got)
	}

	got, err := ParseSizeClasses(" 8, 1, 32 ;16,1,16;\n", 3)
	assert.NoError(err)
	assert.Equal(Table{{}, {8, 1, 32}, {16, 1, 16}}, got)

	for _, text := range []string{"", "   ", "\n\t"} {
		got, err := ParseSizeClasses(text, 3)
		assert.NoError(err)
		assert.Nil(got)
	}
}

func TestParseSizeClassesErrors(t *testing.T) {
	tests := []struct {
		text  string
		want  error
		class int
	}{
		{"8,1,32;16,1", ErrFieldCount, 2},
		{"8,1,32;16,1,32,4", ErrFieldCount, 2},
		{"8,1,32", ErrClassCount, 2},
		{"8,1,32;16,1,32;24,1,32", ErrClassCount, 3},
		{"8,1,32;;16,1,32", ErrFieldCount, 2},
		{";", ErrFieldCount, 1},
		{"8,1,32;16,x,32", ErrSyntax, 2},
		{"8,1,32;-16,1,32", ErrSyntax, 2},
		{"8,1,32;+16,1,32", ErrSyntax, 2},
		{"8,1,32;16,1,0x20", ErrSyntax, 2},
		{"8,,32;16,1,32", ErrEmptyField, 1},
		{"8,1,32;16,256,32", ErrOutOfRange, 2},
		{"8,1,32;16,1,300", ErrOutOfRange, 2},
		{"4294967296,1,32;16,1,32", ErrOutOfRange, 1},
	}

	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			got, err := ParseSizeClasses(tc.text, 3)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tc.want)

			var perr *ParseError
			if assert.True(t, errors.As(err, &perr)) {
				assert.Equal(t, tc.class, perr.Class)
			}
		})
	}

	_, err := ParseSizeClasses("8,1,32", 1)
	assert.ErrorIs(t, err, ErrClassCount)
}

func TestParseErrorOffset(t *testing.T) {
	_, err := ParseSizeClasses("8,1,32;16,1,3x", 3)

	var perr *ParseError
	assert.True(t, errors.As(err, &perr))
	assert.Equal(t, 12, perr.Offset)
	assert.True(t, strings.HasPrefix(err.Error(), "sizemap: parse class 2"))
}

func FuzzParseSizeClasses(f *testing.F) {
	cfg := Resolve(ProfileSmall)
	f.Add(DefaultTable(ProfileSmall).String())
	f.Add("8,1,32;16,1,32")
	f.Add(";;")

	f.Fuzz(func(t *testing.T, text string) {
		table, err := ParseSizeClasses(text, cfg.NumClasses)
		if err != nil {
			assert.Nil(t, table)
			return
		}
		if table == nil {
			assert.Empty(t, strings.TrimSpace(text))
			return
		}
		assert.Len(t, table, cfg.NumClasses)

		// anything that parses must survive a round trip.
		again, err := ParseSizeClasses(table.String(), cfg.NumClasses)
		assert.NoError(t, err)
		assert.Equal(t, table, again)
	})
}
