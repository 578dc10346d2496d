package options

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/RampantLions/wo-xmldoclet/taglet"
)

type recordingReporter struct {
	errs     []string
	warnings []string
	notices  []string
}

func (r *recordingReporter) Error(msg string) {
	r.errs = append(r.errs, msg)
}

func (r *recordingReporter) Warning(msg string) {
	r.warnings = append(r.warnings, msg)
}

func (r *recordingReporter) Notice(msg string) {
	r.notices = append(r.notices, msg)
}

func TestBuildMissingDirectoryFails(t *testing.T) {
	reporter := &recordingReporter{}

	o, err := Build(Matrix{{"-multiple"}}, reporter)
	if err == nil {
		t.Fatal("expected build to fail without -d")
	}
	if o != nil {
		t.Fatal("expected no options on failure")
	}
	if len(reporter.errs) != 1 {
		t.Errorf("expected exactly one error diagnostic, got %v", reporter.errs)
	}
}

func TestBuildDirectoryValueMissingFails(t *testing.T) {
	reporter := &recordingReporter{}

	o, err := Build(Matrix{{"-d"}}, reporter)
	if err == nil {
		t.Fatal("expected build to fail on a bare -d entry")
	}
	if o != nil {
		t.Fatal("expected no options on failure")
	}
	if len(reporter.errs) == 0 {
		t.Error("expected usage diagnostics on the error channel")
	}
}

func TestBuildDefaults(t *testing.T) {
	reporter := &recordingReporter{}

	o, err := Build(Matrix{{"-d", "build/docs"}}, reporter)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if o.Directory() != "build/docs" {
		t.Errorf("expected directory 'build/docs', got %q", o.Directory())
	}
	if o.MultipleFiles() {
		t.Error("expected single-file output by default")
	}
	if o.UseSubfolders() {
		t.Error("expected subfolders off by default")
	}
	if o.Filename() != DefaultFilename {
		t.Errorf("expected default filename, got %q", o.Filename())
	}
	if o.EncodingName() != DefaultEncodingName {
		t.Errorf("expected default encoding, got %q", o.EncodingName())
	}
	if o.HasFilter() {
		t.Error("expected no filter by default")
	}
	if len(reporter.notices) == 0 {
		t.Error("expected a notice confirming the output directory")
	}
}

func TestBuildFlags(t *testing.T) {
	o, err := Build(Matrix{
		{"-d", "out"},
		{"-multiple"},
		{"-subfolders"},
	}, &recordingReporter{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if !o.MultipleFiles() {
		t.Error("expected multiple-file output")
	}
	if !o.UseSubfolders() {
		t.Error("expected subfolders on")
	}
}

func TestBuildEncoding(t *testing.T) {
	reporter := &recordingReporter{}

	o, err := Build(Matrix{
		{"-d", "out"},
		{"-docencoding", "UTF-8"},
	}, reporter)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if o.EncodingName() != "UTF-8" {
		t.Errorf("expected encoding 'UTF-8', got %q", o.EncodingName())
	}
}

func TestBuildEncodingValueMissingFails(t *testing.T) {
	_, err := Build(Matrix{
		{"-d", "out"},
		{"-docencoding"},
	}, &recordingReporter{})
	if err == nil {
		t.Fatal("expected build to fail on a bare -docencoding entry")
	}
}

func TestBuildEncodingUnsupportedFails(t *testing.T) {
	reporter := &recordingReporter{}

	_, err := Build(Matrix{
		{"-d", "out"},
		{"-docencoding", "no-such-charset"},
	}, reporter)
	if err == nil {
		t.Fatal("expected build to fail on an unknown charset")
	}
	if len(reporter.errs) == 0 {
		t.Error("expected an error diagnostic for the unknown charset")
	}
}

func TestBuildFilename(t *testing.T) {
	o, err := Build(Matrix{
		{"-d", "out"},
		{"-filename", "api.xml"},
	}, &recordingReporter{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if o.Filename() != "api.xml" {
		t.Errorf("expected filename 'api.xml', got %q", o.Filename())
	}
}

func TestBuildFilenameIgnoredWithMultiple(t *testing.T) {
	reporter := &recordingReporter{}

	o, err := Build(Matrix{
		{"-d", "out"},
		{"-multiple"},
		{"-filename", "api.xml"},
	}, reporter)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if o.Filename() != DefaultFilename {
		t.Errorf("expected filename to stay at default, got %q", o.Filename())
	}
	if len(reporter.warnings) != 1 {
		t.Errorf("expected one warning, got %v", reporter.warnings)
	}
}

func TestBuildFilters(t *testing.T) {
	o, err := Build(Matrix{
		{"-d", "out"},
		{"-extends", "com.example.Base"},
		{"-implements", "java.io.Serializable"},
		{"-annotated", "java.lang.Deprecated"},
	}, &recordingReporter{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	c := o.Criteria()
	if c.Extends != "com.example.Base" {
		t.Errorf("unexpected extends criteria: %q", c.Extends)
	}
	if c.Implements != "java.io.Serializable" {
		t.Errorf("unexpected implements criteria: %q", c.Implements)
	}
	if c.Annotated != "java.lang.Deprecated" {
		t.Errorf("unexpected annotated criteria: %q", c.Annotated)
	}
	if !o.HasFilter() {
		t.Error("expected HasFilter to be true")
	}
}

func TestBuildFilterValueMissingWarns(t *testing.T) {
	reporter := &recordingReporter{}

	o, err := Build(Matrix{
		{"-d", "out"},
		{"-extends"},
	}, reporter)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if o.HasFilter() {
		t.Error("expected no filter from a bare -extends entry")
	}
	if len(reporter.warnings) != 1 {
		t.Errorf("expected one warning, got %v", reporter.warnings)
	}
}

func TestBuildCustomTags(t *testing.T) {
	reporter := &recordingReporter{}

	o, err := Build(Matrix{
		{"-d", "out"},
		{"-tag", "todo"},
		{"-tag", "example:type:Examples"},
	}, reporter)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	for _, name := range []string{"todo", "example"} {
		tag, ok := o.TagletForName(name)
		if !ok {
			t.Fatalf("expected tag %q to be registered", name)
		}
		custom, ok := tag.(*taglet.CustomTag)
		if !ok {
			t.Fatalf("expected a custom tag for %q, got %T", name, tag)
		}
		if !custom.Enabled() {
			t.Errorf("expected tag %q to be enabled", name)
		}
		// the registry entry carries the name alone
		if custom.Scope() != "" || custom.Title() != "" {
			t.Errorf("expected tag %q to carry no scope or title", name)
		}
	}

	if len(reporter.notices) < 3 {
		t.Errorf("expected one notice per tag plus the directory, got %v", reporter.notices)
	}
}

func TestBuildCustomTagOverwritesBuiltin(t *testing.T) {
	o, err := Build(Matrix{
		{"-d", "out"},
		{"-tag", "see:type:See Also"},
	}, &recordingReporter{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	tag, ok := o.TagletForName("see")
	if !ok {
		t.Fatal("expected 'see' to remain registered")
	}
	if _, ok := tag.(*taglet.CustomTag); !ok {
		t.Errorf("expected the custom tag to replace the builtin, got %T", tag)
	}
}

func TestBuildRepeatedTagLastWins(t *testing.T) {
	o, err := Build(Matrix{
		{"-d", "out"},
		{"-tag", "todo:type:First"},
		{"-tag", "todo:method:Second"},
	}, &recordingReporter{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	before := o.Taglets().Len()
	tag, ok := o.TagletForName("todo")
	if !ok {
		t.Fatal("expected 'todo' to be registered")
	}
	if tag.Name() != "todo" {
		t.Errorf("unexpected tag name %q", tag.Name())
	}
	// the second definition replaced the first, it did not accumulate
	if got := taglet.NewDefault().Len() + 1; before != got {
		t.Errorf("expected %d registry entries, got %d", got, before)
	}
}

func TestBuildTagletRegistrars(t *testing.T) {
	reporter := &recordingReporter{}

	registrars := taglet.Registrars{
		"good.Handler": taglet.RegistrarFunc(func(r *taglet.Registry) error {
			r.Register("good", taglet.NewCustomTag("good", true))
			return nil
		}),
	}

	o, err := NewBuilder().
		WithReporter(reporter).
		WithRegistrars(registrars).
		Build(Matrix{
			{"-d", "out"},
			{"-taglet", "bad.Class:good.Handler"},
		})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if _, ok := o.TagletForName("good"); !ok {
		t.Error("expected the good registrar to contribute its handler")
	}
	if len(reporter.errs) != 1 {
		t.Errorf("expected one error for the bad registrar, got %v", reporter.errs)
	}
}

func TestBuildTagletRegistrarPanicIsIsolated(t *testing.T) {
	reporter := &recordingReporter{}

	registrars := taglet.Registrars{
		"panics.Handler": taglet.RegistrarFunc(func(r *taglet.Registry) error {
			panic("boom")
		}),
		"good.Handler": taglet.RegistrarFunc(func(r *taglet.Registry) error {
			r.Register("good", taglet.NewCustomTag("good", true))
			return nil
		}),
	}

	o, err := NewBuilder().
		WithReporter(reporter).
		WithRegistrars(registrars).
		Build(Matrix{
			{"-d", "out"},
			{"-taglet", "panics.Handler:good.Handler"},
		})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if _, ok := o.TagletForName("good"); !ok {
		t.Error("expected registration to continue past the panicking registrar")
	}
	if len(reporter.errs) != 1 {
		t.Errorf("expected one error for the panicking registrar, got %v", reporter.errs)
	}
}

func TestBuildTagletValueMissingWarns(t *testing.T) {
	reporter := &recordingReporter{}

	_, err := Build(Matrix{
		{"-d", "out"},
		{"-taglet"},
	}, reporter)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(reporter.warnings) != 1 {
		t.Errorf("expected one warning, got %v", reporter.warnings)
	}
}

func TestDescribeJSON(t *testing.T) {
	o, err := Build(Matrix{
		{"-d", "out"},
		{"-extends", "com.example.Base"},
		{"-tag", "todo"},
	}, &recordingReporter{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(o.DescribeJSON()), &doc); err != nil {
		t.Fatalf("DescribeJSON produced invalid JSON: %v", err)
	}

	if doc["directory"] != "out" {
		t.Errorf("unexpected directory in summary: %v", doc["directory"])
	}
	if doc["filename"] != DefaultFilename {
		t.Errorf("unexpected filename in summary: %v", doc["filename"])
	}
	if !strings.Contains(o.DescribeJSON(), "com.example.Base") {
		t.Error("expected the extends criteria in the summary")
	}
}
