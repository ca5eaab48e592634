package env

import (
	"os"
	"path/filepath"
)

const (
	envVar = "ATLAS_HOME"

	// StructureFile is the document atlas reads when no --structure flag
	// or ATLAS_STRUCTURE override is given.
	StructureFile = "structure.json"
)

func InitializeEnvironment() (err error) {
	var home string
	if home, err = AtlasHome(); err != nil {
		return
	}

	if !Exists(home) {
		err = os.Mkdir(home, 0777)
	}

	return
}

func AtlasHome() (path string, err error) {
	if path = os.Getenv(envVar); path != "" {
		return filepath.Abs(path)
	}

	var home string
	if home, err = os.UserHomeDir(); err != nil {
		return
	}

	return filepath.Join(home, ".atlas"), nil
}

func StructurePath() string {
	home, err := AtlasHome()
	if err != nil {
		return StructureFile
	}

	return filepath.Join(home, StructureFile)
}

func Exists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}
