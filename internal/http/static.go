package http

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFiles embed.FS

// staticFS возвращает файловую систему встроенного веб-портала.
func staticFS() http.FileSystem {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// Не должно случаться: каталог static вшит в бинарь
		return http.FS(staticFiles)
	}
	return http.FS(sub)
}
