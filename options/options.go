package options

import (
	"golang.org/x/text/encoding"

	"github.com/RampantLions/wo-xmldoclet/filter"
	"github.com/RampantLions/wo-xmldoclet/model"
	"github.com/RampantLions/wo-xmldoclet/taglet"
)

var (
	// DefaultEncodingName is the output encoding used when
	// "-docencoding" is not given.
	DefaultEncodingName = "UTF-8"
	// DefaultFilename is the single-file output name used when
	// "-filename" is not given.
	DefaultFilename = "xmldoclet.xml"
)

// Options is the validated configuration of the doclet. It is built
// once by a Builder and read-only afterwards, so concurrent filtering
// of many classes needs no synchronization.
type Options struct {
	multiple     bool
	subfolders   bool
	directory    string
	encodingName string
	encoding     encoding.Encoding
	filename     string
	criteria     filter.Criteria
	taglets      *taglet.Registry
}

func newOptions() *Options {
	return &Options{
		encodingName: DefaultEncodingName,
		filename:     DefaultFilename,
		taglets:      taglet.NewDefault(),
	}
}

// MultipleFiles reports whether output goes to one file per unit
// rather than a single file.
func (o *Options) MultipleFiles() bool {
	return o.multiple
}

// UseSubfolders reports whether multi-file output is organized into
// package subfolders. Only meaningful when MultipleFiles is true.
func (o *Options) UseSubfolders() bool {
	return o.subfolders
}

// Directory returns the output directory. Never empty on an Options
// value produced by a successful build.
func (o *Options) Directory() string {
	return o.directory
}

// Filename returns the name of the single output file. Only honored
// when MultipleFiles is false.
func (o *Options) Filename() string {
	return o.filename
}

// EncodingName returns the name of the output encoding.
func (o *Options) EncodingName() string {
	return o.encodingName
}

// Encoding returns the resolved output encoding. A nil encoding means
// the output needs no transformation (UTF-8).
func (o *Options) Encoding() encoding.Encoding {
	return o.encoding
}

// Taglets returns the registry of tag handlers for this run.
func (o *Options) Taglets() *taglet.Registry {
	return o.taglets
}

// TagletForName returns the handler registered under the given key.
// Inline tags are keyed by "@" + name.
func (o *Options) TagletForName(name string) (taglet.Taglet, bool) {
	return o.taglets.Lookup(name)
}

// Criteria returns the class inclusion criteria.
func (o *Options) Criteria() filter.Criteria {
	return o.criteria
}

// HasFilter reports whether at least one inclusion dimension is
// configured.
func (o *Options) HasFilter() bool {
	return o.criteria.Active()
}

// Filter reports whether the given class matches every configured
// inclusion dimension.
func (o *Options) Filter(doc model.Class) bool {
	return o.criteria.Include(doc)
}
