// Package static embeds the site stylesheet and the shell script so the
// server binary carries its own assets.
package static

import "embed"

//go:embed css/*.css js/*.js
var FS embed.FS
