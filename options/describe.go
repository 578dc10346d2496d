package options

import (
	"github.com/tidwall/sjson"
)

// DescribeJSON renders the resolved configuration as a JSON document.
// Used for debug logging and inspection; the output is stable because
// taglet keys come back sorted.
func (o *Options) DescribeJSON() string {
	out := "{}"
	out, _ = sjson.Set(out, "directory", o.directory)
	out, _ = sjson.Set(out, "encoding", o.encodingName)
	out, _ = sjson.Set(out, "multiple", o.multiple)
	out, _ = sjson.Set(out, "subfolders", o.subfolders)
	if !o.multiple {
		out, _ = sjson.Set(out, "filename", o.filename)
	}
	if o.criteria.Extends != "" {
		out, _ = sjson.Set(out, "filter.extends", o.criteria.Extends)
	}
	if o.criteria.Implements != "" {
		out, _ = sjson.Set(out, "filter.implements", o.criteria.Implements)
	}
	if o.criteria.Annotated != "" {
		out, _ = sjson.Set(out, "filter.annotated", o.criteria.Annotated)
	}
	out, _ = sjson.Set(out, "taglets", o.taglets.Names())
	return out
}
