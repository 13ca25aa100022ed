package sizemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStat(t *testing.T) {
	assert := assert.New(t)

	for _, p := range profiles {
		m := newTestMap(t, p)
		cfg := m.Config()
		stat := m.Stat()

		assert.Len(stat.Classes, cfg.NumClasses-1)
		for _, cs := range stat.Classes {
			span := uint64(cs.Pages) * cfg.PageSize
			assert.Equal(span, cs.Objects*uint64(cs.Size)+cs.SpanWaste)
			// validated tables keep span waste at or below one eighth.
			assert.LessOrEqual(cs.SpanWasteRate(cfg.PageSize), 12.5)
			assert.Less(cs.MaxInternal, uint64(cs.Size))
		}
		assert.LessOrEqual(stat.SpanWasteRate(), 12.5)
		assert.Greater(stat.MaxInternalRate, 0.0)
	}
}

func TestStatSmallTable(t *testing.T) {
	assert := assert.New(t)
	cfg := Resolve(ProfileDefault)

	stat := Stat(cfg, Table{{}, {8, 1, 32}, {24, 1, 32}})
	assert.Len(stat.Classes, 2)
	assert.Equal(uint64(1024), stat.Classes[0].Objects)
	assert.Equal(uint64(7), stat.Classes[0].MaxInternal)
	assert.Equal(uint64(15), stat.Classes[1].MaxInternal)
	assert.Equal(uint64(8192%24), stat.Classes[1].SpanWaste)
	assert.InDelta(7.0/8*100, stat.MaxInternalRate, 1e-9)

	assert.Empty(Stat(cfg, nil).Classes)
	assert.Zero(Stat(cfg, nil).SpanWasteRate())
}
