package options

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-errors"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/RampantLions/wo-xmldoclet/logger"
	"github.com/RampantLions/wo-xmldoclet/taglet"
)

// Builder assembles a validated Options value from an option matrix.
// Fatal misconfiguration (missing or malformed required options) makes
// Build return an error and no Options; anything else is reported
// through the diagnostics sink and processing continues with that
// option simply not applied.
type Builder struct {
	reporter   Reporter
	registrars taglet.Registrars
	sources    []Source
	log        logger.Logger
}

func NewBuilder() *Builder {
	return &Builder{
		log: logger.NewDefaultLogger("options"),
	}
}

// WithReporter sets the diagnostics sink. Without one, diagnostics go
// to the builder's logger.
func (b *Builder) WithReporter(r Reporter) *Builder {
	b.reporter = r
	return b
}

// WithRegistrars sets the lookup table used to resolve "-taglet"
// names.
func (b *Builder) WithRegistrars(rs taglet.Registrars) *Builder {
	b.registrars = rs
	return b
}

// WithSource appends auxiliary matrix sources (config files, flag
// sets) merged into the matrix before validation. Explicit matrix
// rows win over source rows.
func (b *Builder) WithSource(sources ...Source) *Builder {
	for _, src := range sources {
		if src != nil {
			b.sources = append(b.sources, src)
		}
	}
	return b
}

func (b *Builder) WithLogger(l logger.Logger) *Builder {
	if l != nil {
		b.log = l
	}
	return b
}

// Build is a convenience wrapper for a one-off build with no sources
// or registrars.
func Build(matrix Matrix, reporter Reporter) (*Options, error) {
	return NewBuilder().WithReporter(reporter).Build(matrix)
}

// Build validates the matrix and assembles the configuration.
func (b *Builder) Build(matrix Matrix) (*Options, error) {
	reporter := b.reporter
	if reporter == nil {
		reporter = NewLogReporter(b.log)
	}

	if len(b.sources) > 0 {
		expanded, err := Expand(matrix, b.sources...)
		if err != nil {
			return nil, err
		}
		matrix = expanded
	}

	o := newOptions()

	// Flags
	o.multiple = matrix.Has("-multiple")
	o.subfolders = matrix.Has("-subfolders")

	// Output directory
	if matrix.Has("-d") {
		directory, ok := matrix.Get("-d")
		if !ok {
			reporter.Error("Missing value for <directory>, usage:")
			reporter.Error("-d <directory> Destination directory for output files")
			return nil, errors.New("missing value for -d option", errors.CategoryValidation).
				WithTextCode("OUTPUT_DIR_VALUE_MISSING")
		}
		o.directory = directory
		reporter.Notice("Output directory: " + directory)
	} else {
		reporter.Error("Output directory not specified; use -d <directory>")
		return nil, errors.New("output directory not specified", errors.CategoryValidation).
			WithTextCode("OUTPUT_DIR_MISSING")
	}

	// Output encoding
	if matrix.Has("-docencoding") {
		name, ok := matrix.Get("-docencoding")
		if !ok {
			reporter.Error("Missing value for <name>, usage:")
			reporter.Error("-docencoding <name> \t Output encoding name")
			return nil, errors.New("missing value for -docencoding option", errors.CategoryValidation).
				WithTextCode("DOC_ENCODING_VALUE_MISSING")
		}
		enc, err := ianaindex.IANA.Encoding(name)
		if err != nil {
			reporter.Error("Unsupported output encoding: " + name)
			return nil, errors.Wrap(err, errors.CategoryValidation, "unsupported output encoding").
				WithTextCode("DOC_ENCODING_UNSUPPORTED").
				WithMetadata(map[string]any{
					"encoding": name,
				})
		}
		// a nil encoding with no error means no transformation is
		// needed for the charset (UTF-8 and friends)
		o.encoding = enc
		o.encodingName = name
		if enc != nil {
			if canonical, err := ianaindex.IANA.Name(enc); err == nil {
				o.encodingName = canonical
			}
		}
		reporter.Notice("Output encoding: " + o.encodingName)
	}

	// Single-file output name
	if matrix.Has("-filename") {
		name, ok := matrix.Get("-filename")
		if ok && !o.multiple {
			o.filename = name
			reporter.Notice("Using file name: " + name)
		} else {
			reporter.Warning("'-filename' option ignored")
		}
	}

	// Extends
	if matrix.Has("-extends") {
		superclass, ok := matrix.Get("-extends")
		if ok {
			o.criteria.Extends = superclass
			reporter.Notice("Filtering classes extending: " + superclass)
		} else {
			reporter.Warning("'-extends' option ignored - superclass not specified")
		}
	}

	// Annotated
	if matrix.Has("-annotated") {
		annotation, ok := matrix.Get("-annotated")
		if ok {
			o.criteria.Annotated = annotation
			reporter.Notice("Filtering classes annotated: " + annotation)
		} else {
			reporter.Warning("'-annotated' option ignored - annotation not specified")
		}
	}

	// Implements
	if matrix.Has("-implements") {
		iface, ok := matrix.Get("-implements")
		if ok {
			o.criteria.Implements = iface
			reporter.Notice("Filtering classes implementing: " + iface)
		} else {
			reporter.Warning("'-implements' option ignored - interface not specified")
		}
	}

	// Custom tags. The parsed scope and title never reach the
	// registry: the entry carries the name alone, marked enabled.
	for _, def := range matrix.GetAll("-tag") {
		parsed := taglet.ParseTag(def)
		o.taglets.Register(parsed.Name(), taglet.NewCustomTag(parsed.Name(), true))
		reporter.Notice("Using Tag " + parsed.Name())
	}

	// Taglet registrars. Each name resolves and registers in
	// isolation; one bad name does not stop the others.
	if matrix.Has("-taglet") {
		names, ok := matrix.Get("-taglet")
		if ok {
			for _, name := range strings.Split(names, ":") {
				if err := b.registerTaglets(name, o.taglets); err != nil {
					reporter.Error("'-taglet' option reported error - :" + err.Error())
					continue
				}
				reporter.Notice("Using Taglet " + name)
			}
		} else {
			reporter.Warning("'-taglet' option ignored - classes not specified")
		}
	}

	b.log.Debug("configuration resolved: %s", o.DescribeJSON())

	return o, nil
}

// registerTaglets resolves one registrar name and lets it contribute
// handlers. A panicking registrar is downgraded to an ordinary error.
func (b *Builder) registerTaglets(name string, r *taglet.Registry) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = errors.New("taglet registrar panicked", errors.CategoryOperation).
				WithTextCode("TAGLET_REGISTRAR_PANIC").
				WithMetadata(map[string]any{
					"registrar": name,
					"panic":     fmt.Sprintf("%v", rec),
				})
		}
	}()

	reg, err := b.registrars.Resolve(name)
	if err != nil {
		return err
	}
	return reg.RegisterTaglets(r)
}
