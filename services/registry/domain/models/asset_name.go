package models

import "fmt"

// AssetName is a value object representing a valid asset class name.
// Encapsulates validation rules: 1 <= len(name) <= 255.
type AssetName string

const (
	minAssetNameLength = 1
	maxAssetNameLength = 255
)

// NewAssetName constructs a valid AssetName or returns an error if constraints are violated.
func NewAssetName(s string) (AssetName, error) {
	if len(s) < minAssetNameLength {
		return "", fmt.Errorf("asset name must be at least %d character", minAssetNameLength)
	}
	if len(s) > maxAssetNameLength {
		return "", fmt.Errorf("asset name must not exceed %d characters", maxAssetNameLength)
	}
	return AssetName(s), nil
}

// String returns the underlying string value.
func (n AssetName) String() string {
	return string(n)
}
