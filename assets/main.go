package assets

import _ "embed"

// Countries is the default country reference table
//
//go:embed countries.yml
var Countries []byte
