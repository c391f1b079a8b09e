package directory

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
)

var errInvalidGBK = errors.New("payload is not valid GBK")

// decodeGBK converts the payload to UTF-8. The GBK decoder substitutes U+FFFD for
// invalid sequences and GBK has no mapping for that rune, so any occurrence is a failure.
func decodeGBK(payload []byte) (string, error) {
	out, err := simplifiedchinese.GBK.NewDecoder().Bytes(payload)
	if err != nil {
		return "", fmt.Errorf("failed to decode GBK: %w", err)
	}

	if bytes.ContainsRune(out, utf8.RuneError) {
		return "", errInvalidGBK
	}

	return string(out), nil
}
