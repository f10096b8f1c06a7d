package keyset

const (
	// DefaultCutoff splits the key space: keys below it pass through the
	// classifier untouched, keys at or above it are rescaled.
	DefaultCutoff = 0x10000

	// DefaultDivisor is the rescale factor applied to high keys.
	DefaultDivisor = 4

	// DefaultPage is the exclusive distance window used by the Locator.
	DefaultPage = 1024
)
