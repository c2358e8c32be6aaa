// Package domain holds the typed identifiers shared across the registry.
//
// IDs are distinct types so an account can never be passed where an item id
// is expected; construct via the Parse helpers at trust boundaries.
package domain

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"

	dErrors "curio/pkg/domain-errors"
)

// DataSize is the fixed size of an item's canonical payload in bytes.
const DataSize = 32

// ItemID identifies a registry item: the keccak256 hash of its canonical
// 32-byte data payload.
type ItemID [32]byte

// ItemData is the canonical listing content: an ASCII title right-padded
// with zero bytes to DataSize.
type ItemData [DataSize]byte

// Address references an account on the token ledger. The zero value means
// "no account" (an item with a zero owner does not exist).
type Address string

// NewItemData builds canonical item data from a raw title.
//
// Errors: CodeInvalidInput when the title is empty or longer than DataSize.
func NewItemData(title string) (ItemData, error) {
	var d ItemData
	if title == "" {
		return d, dErrors.New(dErrors.CodeInvalidInput, "item data cannot be empty")
	}
	if len(title) > DataSize {
		return d, dErrors.Newf(dErrors.CodeInvalidInput, "item data exceeds %d bytes", DataSize)
	}
	copy(d[:], title)
	return d, nil
}

// ID computes the item id for this payload.
func (d ItemData) ID() ItemID {
	h := sha3.NewLegacyKeccak256()
	h.Write(d[:])
	var id ItemID
	h.Sum(id[:0])
	return id
}

// Title returns the payload with the zero padding stripped.
func (d ItemData) Title() string {
	return strings.TrimRight(string(d[:]), "\x00")
}

// String returns the id as lowercase hex.
func (id ItemID) String() string {
	return hex.EncodeToString(id[:])
}

// ParseItemID parses a 64-character hex item id.
//
// Errors: CodeInvalidInput on empty input, bad length, or non-hex characters.
func ParseItemID(s string) (ItemID, error) {
	var id ItemID
	if s == "" {
		return id, dErrors.New(dErrors.CodeInvalidInput, "item id cannot be empty")
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return id, dErrors.Wrap(err, dErrors.CodeInvalidInput, "item id is not hex")
	}
	if len(b) != len(id) {
		return id, dErrors.Newf(dErrors.CodeInvalidInput, "item id must be %d bytes", len(id))
	}
	copy(id[:], b)
	return id, nil
}

// IsZero reports whether the address is unset.
func (a Address) IsZero() bool {
	return a == ""
}

func (a Address) String() string {
	return string(a)
}
