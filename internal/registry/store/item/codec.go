package item

import (
	"encoding/hex"
	"fmt"

	"curio/pkg/domain"
)

func encodeData(d domain.ItemData) string {
	return hex.EncodeToString(d[:])
}

func decodeData(s string) (domain.ItemData, error) {
	var d domain.ItemData
	b, err := hex.DecodeString(s)
	if err != nil {
		return d, fmt.Errorf("decode item data: %w", err)
	}
	if len(b) != len(d) {
		return d, fmt.Errorf("item data must be %d bytes, got %d", len(d), len(b))
	}
	copy(d[:], b)
	return d, nil
}
