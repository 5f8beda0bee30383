// Package web carries the embedded single-page frontend bundle. The same
// page is served at / and /admin; the client mounts the matching view.
package web

import "embed"

//go:embed index.html style.css app.js
var Assets embed.FS
