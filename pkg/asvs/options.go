// Package asvs defines the supported ASVS catalog versions, their published
// sources, and the error taxonomy shared by the generation pipeline.
package asvs

// Version selects which published ASVS catalog to generate a workbook for.
type Version int

const (
	// Version4 is ASVS 4.0.3.
	Version4 Version = 4
	// Version5 is ASVS 5.0.0.
	Version5 Version = 5
	// DefaultVersion is used when no version flag is given.
	DefaultVersion = Version5
)

// Source describes where a catalog version is published and the default
// workbook file name for it.
type Source struct {
	// CSVURL is the published CSV location for the catalog.
	CSVURL string
	// DefaultOutput is the workbook path used when no output flag is given.
	DefaultOutput string
}

var sources = map[Version]Source{
	Version4: {
		CSVURL:        "https://raw.githubusercontent.com/OWASP/ASVS/v4.0.3/4.0/docs_en/OWASP%20Application%20Security%20Verification%20Standard%204.0.3-en.csv",
		DefaultOutput: "OWASP-ASVS-4.0.3.xlsx",
	},
	Version5: {
		CSVURL:        "https://raw.githubusercontent.com/OWASP/ASVS/v5.0.0/5.0/docs_en/OWASP_Application_Security_Verification_Standard_5.0.0_en.csv",
		DefaultOutput: "OWASP-ASVS-5.0.0.xlsx",
	},
}

// Supported reports whether v is a supported catalog version.
func (v Version) Supported() bool {
	_, ok := sources[v]
	return ok
}

// SourceFor returns the published source for a catalog version.
// It returns a ConfigError for versions outside the supported set.
func SourceFor(v Version) (Source, error) {
	src, ok := sources[v]
	if !ok {
		return Source{}, NewConfigError(int(v))
	}
	return src, nil
}
