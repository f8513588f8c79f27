// Package accountnumber generates, masks, and validates account numbers.
//
// Account numbers follow the format PREFIXxxxxxxxxxx, where PREFIX is a
// system-defined prefix (e.g. "SIX") supplied by the calling application's
// configuration, and xxxxxxxxxx is a 10-character uppercase alphanumeric
// string drawn from a cryptographically secure source.
// Example: SIX9G7L2B5Q1W.
package accountnumber

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const (
	suffixLength   = 10
	charPool       = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	unmaskedLength = 4
)

var charPoolSize = big.NewInt(int64(len(charPool)))

// Generate returns a new account number composed of prefix followed by
// exactly 10 characters chosen uniformly at random from A-Z0-9. An empty
// prefix is legal and yields a bare suffix. Panics only if the system
// entropy source fails, which is not recoverable.
func Generate(prefix string) string {
	var sb strings.Builder
	sb.Grow(len(prefix) + suffixLength)
	sb.WriteString(prefix)
	for i := 0; i < suffixLength; i++ {
		n, err := rand.Int(rand.Reader, charPoolSize)
		if err != nil {
			panic(err)
		}
		sb.WriteByte(charPool[n.Int64()])
	}
	return sb.String()
}

// Mask replaces all but the last 4 characters of accountNumber with '*',
// for safe display and logging. Inputs shorter than 6 characters are
// returned unchanged. Example: SIX9G7L2B5Q1W -> *********Q1W.
func Mask(accountNumber string) string {
	if len(accountNumber) < 6 {
		return accountNumber
	}
	maskLength := len(accountNumber) - unmaskedLength
	return strings.Repeat("*", maskLength) + accountNumber[maskLength:]
}

// IsValid reports whether accountNumber matches the generated format for
// the expected prefix: exact prefix match, total length len(prefix)+10,
// and a suffix containing only A-Z0-9.
func IsValid(accountNumber, prefix string) bool {
	if len(accountNumber) != len(prefix)+suffixLength {
		return false
	}
	if !strings.HasPrefix(accountNumber, prefix) {
		return false
	}
	for i := len(prefix); i < len(accountNumber); i++ {
		c := accountNumber[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
