package proptest

import "pgregory.net/rapid"

var (
	subdirGen     = rapid.StringMatching(`[a-z]{6,10}`)
	shortQueryGen = rapid.StringMatching(`[a-z]{1,5}`)
	trailingSeps  = rapid.SampledFrom([]string{"", "/", "//", "///"})
)

func validNameGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[a-zA-Z][a-zA-Z0-9_-]{0,30}`)
}

func malformedYAMLGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just("{{{{"),
		rapid.Just("}}}}"),
		rapid.Just(":::"),
		rapid.Just("[\n["),
		rapid.Just("key: [unclosed"),
		rapid.Just("key: {unclosed"),
		rapid.Just("- item\n  bad indent"),
		rapid.Just("version: \"unmatched quote"),
		rapid.Just("projects:\n  - id: missing\n  name: value"),
		rapid.StringMatching(`[^a-zA-Z0-9\s]{10,50}`),
	)
}
