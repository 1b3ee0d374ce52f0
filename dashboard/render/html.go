package render

import (
	"bytes"
	"html/template"
	"io"
)

var funcs = template.FuncMap{
	// styles are built by this package from constants and formatted numbers
	"css": func(s string) template.CSS { return template.CSS(s) },
}

var tableTemplate = template.Must(template.New("table").Funcs(funcs).Parse(`
{{- define "node" -}}
{{- if eq .Kind "text" -}}{{.Text}}
{{- else if eq .Kind "bold" -}}<b class="{{.Class}}">{{.Text}}</b>
{{- else if eq .Kind "italic" -}}<i class="{{.Class}}">{{.Text}}</i>
{{- else if eq .Kind "bar" -}}<div class="cbi-progressbar" title="{{.Title}}"><div style="{{css .Style}}"></div></div>
{{- else if eq .Kind "spinner" -}}<div class="spinning left" style="display: inline;">{{.Label}}</div>
{{- else if eq .Kind "button" -}}<form method="post" action="{{.Path}}" style="display: inline;"><button type="submit" class="{{.Class}}">{{.Label}}</button></form>
{{- end -}}
{{- end -}}
<table class="{{.Class}}">
{{- range .Rows}}<tr class="{{.Class}}">
{{- range .Cells -}}
{{- if .Header -}}
<th class="{{.Class}}"{{with .Style}} style="{{css .}}"{{end}}{{with .Width}} width="{{.}}"{{end}}{{if gt .Colspan 0}} colspan="{{.Colspan}}"{{end}}>{{range .Content}}{{template "node" .}}{{end}}</th>
{{- else -}}
<td class="{{.Class}}"{{with .Style}} style="{{css .}}"{{end}}{{with .Width}} width="{{.}}"{{end}}{{if gt .Colspan 0}} colspan="{{.Colspan}}"{{end}}>{{range .Content}}{{template "node" .}}{{end}}</td>
{{- end -}}
{{- end -}}
</tr>{{end -}}
</table>`))

// WriteHTML writes the table as markup.
func WriteHTML(w io.Writer, t *Table) error {
	return tableTemplate.Execute(w, t)
}

// HTML returns the table markup for embedding in a page.
func HTML(t *Table) (template.HTML, error) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, t); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
