package services

import (
	"strings"

	"github.com/dmitrijs2005/beerkeeper/internal/common"
)

// MsgEmptyName is reported when a name has no visible characters.
const MsgEmptyName = "name cannot be empty"

// ValidateName accepts any name with at least one character besides
// leading and trailing whitespace. It does not modify the name.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return common.NewValidationError("name", MsgEmptyName)
	}
	return nil
}
