// Package version decodes the two-byte format-version header and answers the
// "at least (major, minor)?" queries every record codec branches on.
package version

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/m8kit/m8file/m8/util"
)

// Size is the on-disk size of the version header.
const Size = 2

// Known on-disk revisions run from V1 to V6.
const (
	minMajor = 1
	maxMajor = 6
)

type Version struct {
	Major uint8 `json:"major"`
	Minor uint8 `json:"minor"`
}

// Read decodes the header at the cursor and rejects revisions outside the
// supported window.
func Read(r *util.Reader) (Version, error) {
	v := Version{
		Major: r.Read(),
		Minor: r.Read(),
	}
	if err := r.Err(); err != nil {
		return Version{}, errors.Wrap(err, "version header")
	}
	if v.Major < minMajor || maxMajor < v.Major {
		return Version{}, errors.Wrapf(util.ErrUnsupportedVersion, "%s", v)
	}
	return v, nil
}

func (v Version) Write(w *util.Writer) {
	w.Write(v.Major)
	w.Write(v.Minor)
}

// AtLeast reports whether v is lexicographically >= (major, minor). Encoders
// and decoders branch on the same calls so both sides pick the same layout.
func (v Version) AtLeast(major, minor uint8) bool {
	return v.Major > major || (v.Major == major && v.Minor >= minor)
}

func (v Version) String() string {
	return fmt.Sprintf("V%d.%d", v.Major, v.Minor)
}
