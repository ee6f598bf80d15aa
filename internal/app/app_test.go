package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petuhovskiy/chancekit/approx"
	"github.com/petuhovskiy/chancekit/internal/conf"
	"github.com/petuhovskiy/chancekit/internal/repos"
)

func testConfig() *conf.App {
	return &conf.App{
		Node:    "test",
		Seed:    7,
		Workers: 2,
		Digits:  3,
	}
}

func TestNewApp_WithoutDB(t *testing.T) {
	a, err := NewApp(testConfig())
	require.NoError(t, err)

	assert.Nil(t, a.DB)
	assert.Nil(t, a.Repo)
	assert.IsType(t, &repos.NopRunSaver{}, a.Saver)
	assert.Equal(t, 3, a.Comparer.Digits())
}

func TestNewApp_InvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Digits = 20
	_, err := NewApp(cfg)
	assert.ErrorIs(t, err, approx.ErrInvalidDigits)

	cfg = testConfig()
	cfg.Workers = 0
	_, err = NewApp(cfg)
	assert.Error(t, err)
}

func TestNextSeed(t *testing.T) {
	a, err := NewApp(testConfig())
	require.NoError(t, err)
	b, err := NewApp(testConfig())
	require.NoError(t, err)

	s1, err := a.NextSeed()
	require.NoError(t, err)
	s2, err := a.NextSeed()
	require.NoError(t, err)
	assert.NotEqual(t, s1, s2)

	// Same base seed and node replay the same seeds.
	r1, err := b.NextSeed()
	require.NoError(t, err)
	assert.Equal(t, s1, r1)
}
