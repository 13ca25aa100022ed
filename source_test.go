package sizemap

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tweakedTable returns a valid table that differs from the default.
func tweakedTable(p Profile) Table {
	t := DefaultTable(p)
	t[1].NumToMove = 64
	t[len(t)-1].NumToMove = 4
	return t
}

func TestOverrideAccepted(t *testing.T) {
	assert := assert.New(t)
	want := tweakedTable(ProfileDefault)

	sources := map[string]TableSource{
		"text": TextSource(want.String()),
		"json": func() TableSource {
			b, err := sonic.Marshal(want)
			require.NoError(t, err)
			return JSONSource(b)
		}(),
		"snapshot": func() TableSource {
			b, err := Snapshot(want)
			require.NoError(t, err)
			return SnapshotSource(b)
		}(),
		"func": TableSourceFunc(func(Config) (Table, error) { return want.Clone(), nil }),
	}

	for name, src := range sources {
		m, err := New(WithProfile(ProfileDefault), WithSource(src))
		require.NoError(t, err, name)
		assert.True(m.Overridden(), name)
		assert.Equal(want, m.Table(), name)
		assert.Equal(uint32(64), m.NumObjectsToMove(1), name)
	}
}

func TestOverrideRejected(t *testing.T) {
	assert := assert.New(t)

	bad := DefaultTable(ProfileDefault)
	bad[10], bad[11] = bad[11], bad[10]

	sources := map[string]TableSource{
		"non-increasing": TextSource(bad.String()),
		"truncated":      TextSource(DefaultTable(ProfileDefault)[:40].String()),
		"garbage":        TextSource("8,1,32;what"),
		"other profile":  TextSource(DefaultTable(ProfileLarge).String()),
		"bad json":       JSONSource(`[{"size":8}`),
		"short json":     JSONSource(`[{"size":0,"pages":0,"num_to_move":0}]`),
		"bad snapshot":   SnapshotSource("not s2"),
		"error": TableSourceFunc(func(Config) (Table, error) {
			return nil, errors.New("boom")
		}),
	}

	reference := newTestMap(t, ProfileDefault)
	for name, src := range sources {
		var logs bytes.Buffer
		m, err := New(
			WithProfile(ProfileDefault),
			WithSource(src),
			WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
		)
		require.NoError(t, err, name)

		assert.False(m.Overridden(), name)
		assert.Equal(DefaultTable(ProfileDefault), m.Table(), name)
		assert.Equal(reference.classArray, m.classArray, name)
		assert.Contains(logs.String(), "override rejected", name)
	}
}

func TestOverrideEmpty(t *testing.T) {
	assert := assert.New(t)

	for _, src := range []TableSource{TextSource(""), JSONSource(nil), SnapshotSource(nil), EnvSource("SIZEMAP_TEST_UNSET")} {
		m, err := New(WithProfile(ProfileSmall), WithSource(src))
		assert.NoError(err)
		assert.False(m.Overridden())
		assert.Equal(DefaultTable(ProfileSmall), m.Table())
	}
}

func TestEnvSource(t *testing.T) {
	assert := assert.New(t)
	want := tweakedTable(ProfileSmall)

	t.Setenv(EnvName, want.String())
	m, err := New(WithProfile(ProfileSmall))
	assert.NoError(err)
	assert.True(m.Overridden())
	assert.Equal(want, m.Table())

	t.Setenv("SIZEMAP_OTHER", want.String())
	m, err = New(WithProfile(ProfileSmall), WithEnv("SIZEMAP_OTHER"))
	assert.NoError(err)
	assert.True(m.Overridden())

	t.Setenv(EnvName, "8,1,32")
	m, err = New(WithProfile(ProfileSmall))
	assert.NoError(err)
	assert.False(m.Overridden())
	assert.Equal(DefaultTable(ProfileSmall), m.Table())
}

func TestSnapshot(t *testing.T) {
	assert := assert.New(t)
	cfg := Resolve(Profile256K)
	want := DefaultTable(Profile256K)

	b, err := Snapshot(want)
	assert.NoError(err)

	got, err := SnapshotSource(b).Table(cfg)
	assert.NoError(err)
	assert.Equal(want, got)
	assert.Equal(want.Checksum(), got.Checksum())
}

func TestTableChecksum(t *testing.T) {
	assert := assert.New(t)

	a := DefaultTable(ProfileDefault)
	assert.Equal(a.Checksum(), a.Clone().Checksum())
	assert.NotEqual(a.Checksum(), tweakedTable(ProfileDefault).Checksum())
	assert.NotEqual(a.Checksum(), DefaultTable(ProfileLarge).Checksum())
}

func TestAlternateTables(t *testing.T) {
	assert := assert.New(t)

	// one alternate list per model, chosen at Init.
	alternates := TableSourceFunc(func(cfg Config) (Table, error) {
		switch cfg.Profile {
		case ProfileDefault, ProfileSmall:
			return tweakedTable(cfg.Profile), nil
		}
		return nil, nil
	})

	for _, p := range profiles {
		m, err := New(WithProfile(p), WithSource(alternates))
		require.NoError(t, err)

		switch p {
		case ProfileDefault, ProfileSmall:
			assert.True(m.Overridden(), p.String())
			assert.Equal(tweakedTable(p), m.Table(), p.String())
		default:
			assert.False(m.Overridden(), p.String())
			assert.Equal(DefaultTable(p), m.Table(), p.String())
		}
	}
}
