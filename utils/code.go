package utils

import (
	"bytes"
	"crypto/rand"
	"math/big"
)

// inviteCodeChars excludes visually ambiguous characters (0/O, 1/I/L),
// 31 symbols, so a 20-character code carries about 99 bits
const inviteCodeChars = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// GenerateInviteCode returns a new random invitation code of the given length.
// It fails closed: on any error from the random source no code is returned.
func GenerateInviteCode(length int) (string, error) {
	charsLength := int64(len(inviteCodeChars))
	var builder bytes.Buffer
	for i := 0; i < length; i++ {
		choiceIndex, err := rand.Int(rand.Reader, big.NewInt(charsLength))
		if err != nil {
			return "", err
		}
		err = builder.WriteByte(inviteCodeChars[choiceIndex.Int64()])
		if err != nil {
			return "", err
		}
	}
	return builder.String(), nil
}
