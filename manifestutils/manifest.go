package manifestutils

import (
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const (
	packageConst = "package"
	versionConst = "version"
)

var (
	UnableToFindVersionInTomlError = func(filename string) error {
		return errors.Errorf("unable to find package version in %s", filename)
	}
)

// GetPackageVersion extracts the version declared in the [package] table of a
// Cargo-style TOML manifest:
//
//	[package]
//	name = "envmgr"
//	version = "1.2.3"
func GetPackageVersion(fs afero.Fs, filename string) (string, error) {
	content, err := afero.ReadFile(fs, filename)
	if err != nil {
		return "", errors.Wrapf(err, "failed reading manifest %s", filename)
	}
	config, err := toml.LoadBytes(content)
	if err != nil {
		return "", errors.Wrapf(err, "failed parsing manifest %s", filename)
	}

	rawTree := config.Get(packageConst)
	packageTree, ok := rawTree.(*toml.Tree)
	if !ok {
		return "", UnableToFindVersionInTomlError(filename)
	}
	version, ok := packageTree.Get(versionConst).(string)
	if !ok || version == "" {
		return "", UnableToFindVersionInTomlError(filename)
	}
	return version, nil
}
