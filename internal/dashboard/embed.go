package dashboard

import "embed"

//go:embed templates
var templatesFS embed.FS

//go:embed assets
var assetsFS embed.FS
