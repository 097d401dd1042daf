package base

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MobRulesGames/gridmadness/logging"
)

var datadir string

func SetDatadir(_datadir string) {
	if datadir == _datadir {
		return
	}

	if datadir != "" {
		panic(fmt.Errorf("double-setting datadir! was %q, new %q", datadir, _datadir))
	}

	datadir = _datadir
}

func GetDataDir() string {
	return datadir
}

// Tests need to point datadir at their own testdata; production code must
// never reset it.
func ResetDatadirForTest(_datadir string) {
	datadir = _datadir
}

// Opens the file named by path, reads it all, decodes it as json into target,
// then closes the file. Returns the first error found while doing this or nil.
func LoadJson(path string, target interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return err
	}
	err = json.Unmarshal(data, target)
	return err
}

func SaveJson(path string, source interface{}) error {
	data, err := json.Marshal(source)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Write(data)
	if err != nil {
		logging.Error("SaveJson write failed", "path", path, "err", err)
	}
	return err
}
