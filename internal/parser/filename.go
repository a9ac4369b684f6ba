package parser

import (
	"regexp"
	"strconv"

	"ResearchDigest/internal/logger"
)

var (
	versionRe = regexp.MustCompile(`v(\d+)`)
	dateRe    = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
)

// FileMeta is the version and date embedded in a report file name.
type FileMeta struct {
	Version    int
	HasVersion bool
	Date       string
}

// Valid reports whether both version and date were found.
func (m FileMeta) Valid() bool {
	return m.HasVersion && m.Date != ""
}

// ParseFileName extracts the first v<digits> run and the first YYYY-MM-DD substring.
// A run too large for an int counts as no version.
func ParseFileName(name string) FileMeta {
	var meta FileMeta
	if m := versionRe.FindStringSubmatch(name); m != nil {
		v, err := strconv.Atoi(m[1])
		if err != nil {
			logger.Log.WithField("file", name).WithError(err).Debug("version number out of range, file skipped")
		} else {
			meta.Version = v
			meta.HasVersion = true
		}
	}
	meta.Date = dateRe.FindString(name)
	return meta
}
