package airtable

import (
	"crypto/rand"
	"math/big"
)

const (
	recordIDPrefix   = "rec"
	recordIDLength   = 14
	recordIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
)

// NewRecordID returns an application-facing handle such as
// "recQwErTyUiOpAsDfG": a fixed prefix and 14 random letters.
func NewRecordID() string {
	buf := make([]byte, 0, len(recordIDPrefix)+recordIDLength)
	buf = append(buf, recordIDPrefix...)

	limit := big.NewInt(int64(len(recordIDAlphabet)))
	for range recordIDLength {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			panic("crypto/rand unavailable: " + err.Error())
		}
		buf = append(buf, recordIDAlphabet[n.Int64()])
	}

	return string(buf)
}
