package assets

import (
	"fmt"
	"regexp"
)

// assetName allows letters, digits, dash and underscore, starting with a
// letter or digit. Dots and separators are rejected so a name can never
// change extension or leave its directory.
var assetName = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,63}$`)

// ValidateAssetName checks that an asset name is safe for use as a filename.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if !assetName.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
