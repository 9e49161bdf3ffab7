package presenter

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.html
var tmplFS embed.FS

// Renderer HTML 模板
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer 載入內嵌模板
func NewRenderer() *Renderer {
	return &Renderer{
		tmpl: template.Must(template.ParseFS(tmplFS, "templates/*.html")),
	}
}

// Page 渲染完整頁面
func (r *Renderer) Page(w io.Writer, data PageData) error {
	return r.tmpl.ExecuteTemplate(w, "page", data)
}

// Detail 渲染詳情片段
func (r *Renderer) Detail(w io.Writer, detail *Detail) error {
	return r.tmpl.ExecuteTemplate(w, "detail", detail)
}
