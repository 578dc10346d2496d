package options

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/v2"
)

// FileType identifies the format of an options file.
type FileType string

const (
	FileTypeYAML FileType = "yaml"
	FileTypeTOML FileType = "toml"
	FileTypeJSON FileType = "json"
)

func (t FileType) String() string {
	return string(t)
}

func (t FileType) Parser() koanf.Parser {
	switch t {
	case FileTypeJSON:
		return json.Parser()
	case FileTypeTOML:
		return toml.Parser()
	case FileTypeYAML:
		return yaml.Parser()
	default:
		panic(fmt.Errorf("invalid options file type: %s", t))
	}
}

func inferFiletype(path string, defaultFileType ...FileType) FileType {
	ext := filepath.Ext(path)
	switch strings.ToLower(ext) {
	case ".toml":
		return FileTypeTOML
	case ".json":
		return FileTypeJSON
	case ".yaml", ".yml":
		return FileTypeYAML
	}

	if len(defaultFileType) > 0 {
		return defaultFileType[0]
	}

	return FileTypeJSON
}
