package util_test

import (
	"lintang/campusnav/pkg/util"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundFloat(t *testing.T) {
	assert.Equal(t, 158.85, util.RoundFloat(158.85423099904, 2))
	assert.Equal(t, 7.0, util.RoundFloat(6.99999, 2))
}

func TestReverseG(t *testing.T) {
	assert.Equal(t, []string{"E", "G", "H", "B", "S"}, util.ReverseG([]string{"S", "B", "H", "G", "E"}))
	assert.Equal(t, []int{}, util.ReverseG([]int{}))
	assert.Equal(t, []int{1}, util.ReverseG([]int{1}))
}

func TestGetEnv(t *testing.T) {
	t.Setenv("CAMPUSNAV_TEST_ADDR", ":6000")
	t.Setenv("CAMPUSNAV_TEST_K", "5")
	t.Setenv("CAMPUSNAV_TEST_BAD", "five")

	assert.Equal(t, ":6000", util.GetEnv("CAMPUSNAV_TEST_ADDR", ":5000"))
	assert.Equal(t, ":5000", util.GetEnv("CAMPUSNAV_TEST_UNSET", ":5000"))
	assert.Equal(t, 5, util.GetEnvInt("CAMPUSNAV_TEST_K", 3))
	assert.Equal(t, 3, util.GetEnvInt("CAMPUSNAV_TEST_BAD", 3))
	assert.Equal(t, 3, util.GetEnvInt("CAMPUSNAV_TEST_UNSET", 3))
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("CAMPUSNAV_TEST_DB=fromfile\n"), 0o644))
	t.Setenv("CAMPUSNAV_TEST_DB", "")
	os.Unsetenv("CAMPUSNAV_TEST_DB")

	util.LoadEnv(envFile)
	assert.Equal(t, "fromfile", util.GetEnv("CAMPUSNAV_TEST_DB", "campusnavDB"))

	util.LoadEnv(filepath.Join(dir, "missing.env"))
}
