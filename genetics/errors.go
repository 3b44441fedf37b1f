package genetics

import "errors"

// ErrUnknownRarity reports a rarity override that names no configured
// tier. Overrides are rejected rather than silently rerolled so a
// caller typo cannot masquerade as a random draw.
var ErrUnknownRarity = errors.New("genetics: unknown rarity override")
