package grammar

import "github.com/ghettovoice/imurl/internal/util"

// Special schemes of the WHATWG URL standard with their default ports.
// Zero means the scheme has no default port.
var specialSchemes = map[string]uint16{
	"ftp":   21,
	"file":  0,
	"http":  80,
	"https": 443,
	"ws":    80,
	"wss":   443,
}

// IsSpecial reports whether scheme is one of ftp, file, http, https, ws or wss.
func IsSpecial(scheme string) bool {
	_, ok := specialSchemes[util.LCase(scheme)]
	return ok
}

// DefaultPort returns the well-known port of scheme.
func DefaultPort(scheme string) (uint16, bool) {
	p, ok := specialSchemes[util.LCase(scheme)]
	return p, ok && p != 0
}

// RequiresHost reports whether URLs of scheme must have a non-empty host.
func RequiresHost(scheme string) bool {
	scheme = util.LCase(scheme)
	return IsSpecial(scheme) && scheme != "file"
}
