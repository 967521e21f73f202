// Package services contains stateless domain services for the registry
// bounded context. Domain services enforce business rules that operate
// purely on domain types and have zero external dependencies beyond stdlib
// and the domain layer.
package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ghuser/assetforge/services/registry/domain/ledger"
	"github.com/ghuser/assetforge/services/registry/domain/models"
)

const maxUnitLength = 32

// ValidateName enforces business rules for AssetName beyond the structural
// constraints enforced by the AssetName constructor (length 1–255).
//
// Business rules:
//   - No leading or trailing whitespace
//   - No control characters (Unicode category Cc)
//   - No consecutive spaces
//   - Must not be only whitespace characters
func ValidateName(name models.AssetName) error {
	s := name.String()

	if s != strings.TrimSpace(s) {
		return fmt.Errorf("asset name must not have leading or trailing whitespace")
	}

	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("asset name must not be only whitespace")
	}

	for _, r := range s {
		if unicode.IsControl(r) {
			return fmt.Errorf("asset name must not contain control characters")
		}
	}

	if strings.Contains(s, "  ") {
		return fmt.Errorf("asset name must not contain consecutive spaces")
	}

	return nil
}

// ValidateIssue performs cross-field validation on issue parameters before
// they reach the ledger. The validity deadline itself is checked by the
// ledger against its own clock.
func ValidateIssue(p ledger.IssueParams) error {
	if _, err := models.NewAssetName(p.Name.String()); err != nil {
		return err
	}
	if err := ValidateName(p.Name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}
	if p.Unit == "" {
		return fmt.Errorf("unit must be set")
	}
	if len(p.Unit) > maxUnitLength {
		return fmt.Errorf("unit must not exceed %d characters", maxUnitLength)
	}
	return nil
}
