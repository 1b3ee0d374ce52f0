package rest

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed static templates
var assets embed.FS

var pageTemplate = template.Must(template.ParseFS(assets, "templates/dashboard.html"))

// RegisterFrontend serves the embedded stylesheet under /static.
func RegisterFrontend(e *echo.Echo) {
	staticFS, err := fs.Sub(assets, "static")
	if err != nil {
		return
	}
	fileServer := http.StripPrefix("/static/", http.FileServer(http.FS(staticFS)))
	e.GET("/static/*", echo.WrapHandler(fileServer))
}
