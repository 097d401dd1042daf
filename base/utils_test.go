package base_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MobRulesGames/gridmadness/base"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string
	Count int
}

func TestJsonRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deeply", "nested", "payload.json")

	want := payload{Name: "blarg", Count: 42}
	require.NoError(t, base.SaveJson(path, want))

	var got payload
	require.NoError(t, base.LoadJson(path, &got))
	assert.Equal(t, want, got)
}

func TestLoadJsonMissingFile(t *testing.T) {
	var got payload
	err := base.LoadJson(filepath.Join(t.TempDir(), "absent.json"), &got)
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestDatadir(t *testing.T) {
	base.ResetDatadirForTest("")
	base.SetDatadir("some/dir")
	assert.Equal(t, "some/dir", base.GetDataDir())

	// Setting the same value again is fine, changing it is not.
	assert.NotPanics(t, func() { base.SetDatadir("some/dir") })
	assert.Panics(t, func() { base.SetDatadir("other/dir") })

	base.ResetDatadirForTest("")
}
