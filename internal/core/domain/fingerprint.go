package domain

// Fingerprint is a cheap change-detecting summary of a file. Size and
// modification time are always set; Sum carries an xxhash64 of the file
// contents when content fingerprinting is enabled and is zero otherwise.
// Any difference, including a shrinking file, counts as a change.
type Fingerprint struct {
	Size    int64
	ModTime int64
	Sum     uint64
}

// Equal reports whether two fingerprints are identical.
func (f Fingerprint) Equal(other Fingerprint) bool {
	return f == other
}

// Snapshot maps source-file paths to the fingerprints that were used to
// build the currently cached table.
type Snapshot map[string]Fingerprint

// Equal reports whether two snapshots cover the same files with the same
// fingerprints.
func (s Snapshot) Equal(other Snapshot) bool {
	if len(s) != len(other) {
		return false
	}
	for path, print := range s {
		if got, ok := other[path]; !ok || !got.Equal(print) {
			return false
		}
	}
	return true
}
