package app

import (
	"github.com/fieldlinehq/fieldline/internal/appcontext"
)

// Interface is an alias to the shared appcontext.Interface.
// Commands accept narrow local interfaces; this alias exists for callers
// that need the full application surface.
type Interface = appcontext.Interface

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)
