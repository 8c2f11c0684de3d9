package assets

import (
	"fmt"
	"regexp"
)

// assetName admits plain file stems only: no separators, dots or spaces.
var assetName = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateAssetName rejects names that could leave the asset directory.
func ValidateAssetName(name string) error {
	if !assetName.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
