package sizemap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDefaultTables(t *testing.T) {
	for _, p := range profiles {
		cfg := Resolve(p)
		table := DefaultTable(p)
		assert.Len(t, table, cfg.NumClasses, p.String())
		assert.NoError(t, Validate(cfg, table), p.String())
		assert.True(t, Valid(cfg, table), p.String())
	}
	assert.Nil(t, DefaultTable(Profile(42)))
}

func TestValidateRejects(t *testing.T) {
	cfg := Resolve(ProfileDefault)

	last := cfg.NumClasses - 1
	c576 := indexOf(DefaultTable(ProfileDefault), 576)
	c1152 := indexOf(DefaultTable(ProfileDefault), 1152)
	c3200 := indexOf(DefaultTable(ProfileDefault), 3200)
	c8192 := indexOf(DefaultTable(ProfileDefault), 8192)

	tests := []struct {
		name   string
		modify func(Table) Table
		class  int
		want   error
	}{
		{"short", func(t Table) Table { return t[:len(t)-1] }, last, ErrTableLength},
		{"sentinel", func(t Table) Table { t[0].Pages = 1; return t }, 0, ErrSentinel},
		{"swapped", func(t Table) Table { t[5], t[6] = t[6], t[5]; return t }, 6, ErrNotIncreasing},
		{"duplicate", func(t Table) Table { t[6].Size = t[5].Size; return t }, 6, ErrNotIncreasing},
		{"zero size", func(t Table) Table { t[1].Size = 0; return t }, 1, ErrNotIncreasing},
		{"too big", func(t Table) Table { t[last].Size = 256<<10 + 128; return t }, last, ErrTooLarge},
		{"misaligned small", func(t Table) Table { t[3].Size = 27; return t }, 3, ErrMisaligned},
		{"misaligned multipage", func(t Table) Table { t[c576].Size = 552; return t }, c576, ErrMisaligned},
		{"misaligned large", func(t Table) Table { t[c1152].Size = 1088; return t }, c1152, ErrMisaligned},
		{"multi page", func(t Table) Table { t[2].Pages = 2; return t }, 2, ErrMultiPage},
		{"zero pages", func(t Table) Table { t[c8192].Pages = 0; return t }, c8192, ErrPages},
		{"small batch", func(t Table) Table { t[4].NumToMove = 1; return t }, 4, ErrBatch},
		{"big batch", func(t Table) Table { t[4].NumToMove = 129; return t }, 4, ErrBatch},
		{"waste", func(t Table) Table { t[c3200].Pages = 1; return t }, c3200, ErrFragmentation},
		{"span too small", func(t Table) Table { t[last].Pages = 1; return t }, last, ErrFragmentation},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			table := tc.modify(DefaultTable(ProfileDefault))
			err := Validate(cfg, table)
			assert.ErrorIs(t, err, tc.want)
			assert.False(t, Valid(cfg, table))

			var verr *ValidationError
			if assert.True(t, errors.As(err, &verr)) {
				assert.Equal(t, tc.class, verr.Class)
			}
		})
	}
}

func TestValidateLastClass(t *testing.T) {
	cfg := Resolve(ProfileSmall)
	table := DefaultTable(ProfileSmall)

	// drop 8192 and add a class in the middle: still increasing and aligned,
	// but nothing holds MaxSize.
	last := table[len(table)-2]
	table = append(table[:len(table)-1:len(table)-1], SizeClassInfo{})
	table[len(table)-1] = last
	table[len(table)-2] = SizeClassInfo{Size: 6656, Pages: 5, NumToMove: 9}

	err := Validate(cfg, table)
	assert.ErrorIs(t, err, ErrMaxSize)
}

func TestValidateDoesNotModify(t *testing.T) {
	cfg := Resolve(ProfileLarge)
	table := DefaultTable(ProfileLarge)
	table[10].Size = 3
	before := table.Clone()

	assert.Error(t, Validate(cfg, table))
	assert.Equal(t, before, table)
}

func indexOf(t Table, size uint32) int {
	for c, info := range t {
		if info.Size == size {
			return c
		}
	}
	panic("no such class")
}
