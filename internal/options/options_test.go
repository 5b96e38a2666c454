package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	values []int
}

func TestApplyInOrder(t *testing.T) {
	cfg := &testConfig{}

	err := Apply(cfg,
		NoError(func(c *testConfig) { c.values = append(c.values, 1) }),
		NoError(func(c *testConfig) { c.values = append(c.values, 2) }),
		NoError(func(c *testConfig) { c.values = append(c.values, 3) }),
	)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, cfg.values)
}

func TestApplyStopsAtError(t *testing.T) {
	cfg := &testConfig{}
	boom := errors.New("boom")

	err := Apply(cfg,
		NoError(func(c *testConfig) { c.values = append(c.values, 1) }),
		New(func(*testConfig) error { return boom }),
		NoError(func(c *testConfig) { c.values = append(c.values, 2) }),
	)
	require.ErrorIs(t, err, boom)
	require.Equal(t, []int{1}, cfg.values)
}

func TestApplyNoOptions(t *testing.T) {
	require.NoError(t, Apply(&testConfig{}))
}
