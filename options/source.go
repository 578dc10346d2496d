package options

import (
	"sort"

	"github.com/go-viper/mapstructure/v2"
	"github.com/goliatone/go-errors"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/mitchellh/copystructure"
	"github.com/spf13/pflag"
)

// Source feeds doclet settings into the option matrix from somewhere
// other than the raw command line: a config file, a flag set, or a
// plain map. Sources load in priority order into one merged view; the
// merged settings become matrix rows appended after the explicit ones.
type Source interface {
	Type() SourceType
	Priority() int
	Load(k *koanf.Koanf) error
}

type SourceType string

const (
	SourceTypeMap    SourceType = "map"
	SourceTypeStruct SourceType = "struct"
	SourceTypeFile   SourceType = "file"
	SourceTypeFlags  SourceType = "pflag"
)

var (
	PriorityMap    = 0
	PriorityStruct = 10
	PriorityFile   = 20
	PriorityFlags  = 40
)

type loader struct {
	order      int
	sourceType SourceType
	load       func(k *koanf.Koanf) error
}

func (l *loader) Type() SourceType {
	return l.sourceType
}

func (l *loader) Priority() int {
	return l.order
}

func (l *loader) Load(k *koanf.Koanf) error {
	return l.load(k)
}

// settings mirrors the doclet options as they appear in config files,
// flag sets, and maps. Keys match the option names without the dash.
type settings struct {
	Directory  string   `koanf:"d"`
	Encoding   string   `koanf:"docencoding"`
	Multiple   bool     `koanf:"multiple"`
	Subfolders bool     `koanf:"subfolders"`
	Filename   string   `koanf:"filename"`
	Extends    string   `koanf:"extends"`
	Implements string   `koanf:"implements"`
	Annotated  string   `koanf:"annotated"`
	Tags       []string `koanf:"tag"`
	Taglets    string   `koanf:"taglet"`
}

// FileSource loads settings from a JSON, YAML, or TOML file; the
// format is inferred from the extension.
func FileSource(path string, orders ...int) Source {
	filetype := inferFiletype(path)
	return &loader{
		sourceType: SourceTypeFile,
		order:      getOrder(PriorityFile, orders...),
		load: func(k *koanf.Koanf) error {
			if err := k.Load(file.Provider(path), filetype.Parser()); err != nil {
				return errors.Wrap(err, errors.CategoryOperation, "failed to load options file").
					WithTextCode("OPTIONS_FILE_LOAD_FAILED").
					WithMetadata(map[string]any{
						"filepath":  path,
						"file_type": string(filetype),
					})
			}
			return nil
		},
	}
}

// FlagSource loads settings from a pflag flag set whose flag names
// match the option names without the dash.
func FlagSource(fs *pflag.FlagSet, orders ...int) Source {
	return &loader{
		sourceType: SourceTypeFlags,
		order:      getOrder(PriorityFlags, orders...),
		load: func(k *koanf.Koanf) error {
			if err := k.Load(posflag.Provider(fs, ".", k), nil); err != nil {
				return errors.Wrap(err, errors.CategoryOperation, "failed to load options from flags").
					WithTextCode("OPTIONS_FLAGS_LOAD_FAILED")
			}
			return nil
		},
	}
}

// MapSource loads settings from a plain map keyed by option name
// without the dash.
func MapSource(values map[string]any, orders ...int) Source {
	return &loader{
		sourceType: SourceTypeMap,
		order:      getOrder(PriorityMap, orders...),
		load: func(k *koanf.Koanf) error {
			if err := k.Load(confmap.Provider(values, "."), nil); err != nil {
				return errors.Wrap(err, errors.CategoryOperation, "failed to load options map").
					WithTextCode("OPTIONS_MAP_LOAD_FAILED").
					WithMetadata(map[string]any{
						"values_count": len(values),
					})
			}
			return nil
		},
	}
}

// StructSource loads settings from a struct carrying koanf tags, for
// callers that embed doclet settings in their own config types.
func StructSource(v any, orders ...int) Source {
	return &loader{
		sourceType: SourceTypeStruct,
		order:      getOrder(PriorityStruct, orders...),
		load: func(k *koanf.Koanf) error {
			if err := k.Load(structs.Provider(v, "koanf"), nil); err != nil {
				return errors.Wrap(err, errors.CategoryOperation, "failed to load options struct").
					WithTextCode("OPTIONS_STRUCT_LOAD_FAILED")
			}
			return nil
		},
	}
}

func getOrder(priority int, orders ...int) int {
	if len(orders) > 0 {
		return orders[0]
	}
	return priority
}

// Expand merges the sources into the matrix and returns the result.
// The input matrix is deep-copied, never mutated. Explicit rows win:
// a source setting is only appended when the matrix does not already
// name that option, except "-tag" entries which always accumulate.
func Expand(matrix Matrix, sources ...Source) (Matrix, error) {
	k := koanf.New(".")

	sorted := append([]Source{}, sources...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() < sorted[j].Priority()
	})

	for i, src := range sorted {
		if err := src.Load(k); err != nil {
			return nil, errors.Wrap(err, errors.CategoryOperation, "failed to load options source").
				WithTextCode("OPTIONS_SOURCE_LOAD_FAILED").
				WithMetadata(map[string]any{
					"source_type":   string(src.Type()),
					"source_index":  i,
					"total_sources": len(sorted),
				})
		}
	}

	var s settings
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "koanf",
		WeaklyTypedInput: true,
		Result:           &s,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryOperation, "failed to create options decoder").
			WithTextCode("OPTIONS_DECODER_FAILED")
	}
	if err := dec.Decode(k.Raw()); err != nil {
		return nil, errors.Wrap(err, errors.CategoryValidation, "failed to decode options source data").
			WithTextCode("OPTIONS_DECODE_FAILED")
	}

	out, err := cloneMatrix(matrix)
	if err != nil {
		return nil, err
	}

	appendRow := func(row ...string) {
		if out.Has(row[0]) {
			return
		}
		out = append(out, row)
	}

	if s.Directory != "" {
		appendRow("-d", s.Directory)
	}
	if s.Encoding != "" {
		appendRow("-docencoding", s.Encoding)
	}
	if s.Multiple {
		appendRow("-multiple")
	}
	if s.Subfolders {
		appendRow("-subfolders")
	}
	if s.Filename != "" {
		appendRow("-filename", s.Filename)
	}
	if s.Extends != "" {
		appendRow("-extends", s.Extends)
	}
	if s.Implements != "" {
		appendRow("-implements", s.Implements)
	}
	if s.Annotated != "" {
		appendRow("-annotated", s.Annotated)
	}
	for _, tag := range s.Tags {
		out = append(out, []string{"-tag", tag})
	}
	if s.Taglets != "" {
		appendRow("-taglet", s.Taglets)
	}

	return out, nil
}

func cloneMatrix(matrix Matrix) (Matrix, error) {
	if len(matrix) == 0 {
		return Matrix{}, nil
	}
	cloned, err := copystructure.Copy([][]string(matrix))
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryOperation, "failed to copy option matrix").
			WithTextCode("OPTIONS_MATRIX_COPY_FAILED")
	}
	return Matrix(cloned.([][]string)), nil
}
