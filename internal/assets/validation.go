package assets

import "fmt"

// ValidateAssetName accepts names made of ASCII letters, digits, '-' and
// '_'. Anything else, separators and dots included, could step outside the
// asset directory or change the extension, and yields ErrInvalidAssetName.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return fmt.Errorf("%w: %q contains %q", ErrInvalidAssetName, name, r)
		}
	}
	return nil
}
