package parse

import (
	"fmt"

	"github.com/dzjyyds666/tq/parse/toml"
	"github.com/dzjyyds666/tq/pkg"
)

// TomlFile reads the file at path and parses its content as TOML. When
// def is non-nil the parse result is merged into it. File access lives
// here, outside the core parser, which only ever sees in-memory text.
func TomlFile(path string, def *toml.Table) (*toml.Table, error) {
	exist, err := pkg.CheckFileExist(path)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, fmt.Errorf("toml: file %s not exist", path)
	}
	content, err := pkg.ReadFileContent(path)
	if err != nil {
		return nil, err
	}
	return toml.ParseString(content, def)
}
