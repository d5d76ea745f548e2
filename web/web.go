// Package web serves the embedded landing page and checkout script.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var static embed.FS

func Handler() http.Handler {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic("static assets missing from binary")
	}

	return http.FileServerFS(sub)
}
