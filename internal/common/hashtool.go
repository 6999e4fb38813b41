package common

import "crypto/sha256"

// HashDelimited computes SHA-256 over the UTF-8 encoding of
//
//	"|" + tokens[0] + "|" + tokens[1] + "|" + ... + "|"
//
// The delimiters keep ("ab", "c") and ("a", "bc") apart.
func HashDelimited(tokens []string) [sha256.Size]byte {
	h := sha256.New()
	delim := []byte{'|'}
	h.Write(delim)
	for _, t := range tokens {
		h.Write([]byte(t))
		h.Write(delim)
	}
	var digest [sha256.Size]byte
	copy(digest[:], h.Sum(nil))
	return digest
}
