package gitrs

import _ "embed"

// Version holds the library version, embedded from the VERSION file at the
// module root so releases only touch one place.
//
//go:embed VERSION
var Version string
