package identity

import "github.com/depindex/resolver/frameworks"

// NormalizeFrameworkTag parses a raw target-framework token (as it appears
// on the wire, in either TFM short-folder form or the dotted V3 registration
// form) into its canonical short folder name, e.g. ".NETStandard,Version=v2.0"
// and "netstandard2.0" both normalize to "netstandard2.0". An empty token
// normalizes to AnyFramework. A token the frameworks package cannot parse
// (an unrecognized or malformed TFM) is kept in the lowercased form that
// NormalizeFrameworkName returns rather than rejected,
// since decoding a dependency group must not hard-fail on an unusual
// upstream framework string.
func NormalizeFrameworkTag(raw string) FrameworkTag {
	if raw == "" {
		return AnyFramework
	}
	// Registration catalog entries sometimes carry the dotted V3 form
	// (".NETStandard,Version=v2.0"); fold that to short-folder form first,
	// then run it through the full parser so ParseFramework only ever sees
	// TFM short names.
	shortForm := frameworks.NormalizeFrameworkName(raw)
	fw, err := frameworks.ParseFramework(shortForm)
	if err != nil {
		return shortForm
	}
	return fw.GetShortFolderName(frameworks.DefaultFrameworkNameProvider())
}
