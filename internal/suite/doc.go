// Package suite runs selection cases from YAML or CUE files.
//
// # Suite Format
//
//	name: mixed_signedness
//	description: "Signed and unsigned arguments in one call"
//	cases:
//	  - name: min_picks_negative
//	    op: min
//	    args: [-2, 0u, 7u]
//	    want: -2
//	    kind: uint          # optional, exact kind of the result
//	    ref: false          # optional, whether the result must be a reference
//	  - name: max_writes_through
//	    op: max
//	    args: ["&3", "&12", "&4"]
//	    want: 12
//	    mutate: 1           # optional, Add(1) on the result...
//	    after: [3, 13, 4]   # ...then the expected argument values
//
// Arguments and expectations are literals as read by package literal.
// References must be quoted in YAML since a bare '&' starts an anchor.
//
// The same document can be written in CUE; the file extension picks the
// decoder.
//
// # Golden Files
//
// RunWithGolden compares the JSON rendering of a Result against
// testdata/golden/<name>.golden. Regenerate with:
//
//	go test ./internal/suite -update
package suite
