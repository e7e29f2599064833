package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/prathameshnadhe/parikrama-web/internal/model/entity"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is the data every template receives: the shared chrome plus the
// screen's own payload in Data.
type Page struct {
	Title string
	User  *entity.User
	Flash *Flash
	Data  interface{}
}

// Renderer plugs html/template into echo's Renderer interface.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		"tourImage": TourImage,
		"userImage": UserImage,
		"add":       func(a, b int) int { return a + b },
		"sub":       func(a, b int) int { return a - b },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
