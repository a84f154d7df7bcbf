package game

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// Ambiguous characters (0/O, 1/I) are left out so codes survive being read
// aloud at a party.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const codeLength = 6

// NormalizeCode uppercases a room code for comparison and storage. Codes
// are case-insensitive everywhere.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func newRoomCode() (string, error) {
	b := make([]byte, codeLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate room code: %w", err)
	}
	code := make([]byte, codeLength)
	for i := range code {
		code[i] = codeAlphabet[int(b[i])%len(codeAlphabet)]
	}
	return string(code), nil
}
