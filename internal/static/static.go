package static

import _ "embed"

// IndexHTML contains the embedded landing page.
//
//go:embed index.html
var IndexHTML string

// MaintenanceHTML contains the embedded maintenance notice page,
// served while the kill switch is on.
//
//go:embed maintenance.html
var MaintenanceHTML string
