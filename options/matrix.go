// Package options turns the raw command-line option matrix of the
// doclet into a validated configuration: output mode and destination,
// encoding, class inclusion criteria, and the taglet registry.
package options

// Matrix is the parsed command-line representation handed over by the
// host tool: a sequence of rows whose first element is the option name
// and whose remaining elements are its values. The same name may
// appear in several rows (e.g. repeated "-tag").
type Matrix [][]string

var emptyRow = []string{}

// Length returns the total number of command-line tokens the given
// option occupies, including the option name itself. Unrecognized
// options report 0, which the host tool treats as "not ours".
// Matching is case-sensitive.
func Length(option string) int {
	switch option {
	// understood by the host tool
	case "-d":
		return 2
	case "-docencoding":
		return 2

	// specific to this doclet
	case "-multiple":
		return 1
	case "-filename":
		return 2
	case "-implements":
		return 2
	case "-extends":
		return 2
	case "-annotated":
		return 2
	case "-tag":
		return 2
	case "-taglet":
		return 2
	case "-subfolders":
		return 1
	}
	return 0
}

// Has reports whether any row names the given option.
func (m Matrix) Has(name string) bool {
	for _, row := range m {
		if len(row) > 0 && row[0] == name {
			return true
		}
	}
	return false
}

// Get returns the value of the first row naming the option. The second
// result is false when no row matches or the matching row carries no
// value; later duplicate rows are ignored.
func (m Matrix) Get(name string) (string, bool) {
	row := m.find(name)
	if len(row) > 1 {
		return row[1], true
	}
	return "", false
}

// GetAll returns the value of every row naming the option, in matrix
// order. Rows without a value are skipped. Meant for repeatable
// options such as "-tag".
func (m Matrix) GetAll(name string) []string {
	var values []string
	for _, row := range m {
		if len(row) > 0 && row[0] == name {
			if len(row) > 1 {
				values = append(values, row[1])
			}
		}
	}
	return values
}

// find returns the first row naming the option, or an empty row.
func (m Matrix) find(name string) []string {
	for _, row := range m {
		if len(row) > 0 && row[0] == name {
			return row
		}
	}
	return emptyRow
}
