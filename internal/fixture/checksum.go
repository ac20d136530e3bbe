package fixture

import (
	"crypto/sha256"
	"io"
)

// Checksum computes the SHA-256 checksum of data.
func Checksum(data []byte) [ChecksumSize]byte {
	return sha256.Sum256(data)
}

// ChecksumReader computes the SHA-256 checksum of everything read from
// r, without buffering it in memory.
func ChecksumReader(r io.Reader) ([ChecksumSize]byte, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return [ChecksumSize]byte{}, err
	}
	var sum [ChecksumSize]byte
	copy(sum[:], h.Sum(nil))
	return sum, nil
}

// VerifyChecksum compares a computed checksum against the stored one
// and returns ErrChecksumMismatch when they differ.
func VerifyChecksum(computed, stored [ChecksumSize]byte) error {
	if computed != stored {
		return ErrChecksumMismatch
	}
	return nil
}
