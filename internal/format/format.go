package format

import (
	"bytes"
	"text/template"
)

// Tprintf renders a template string with named parameters (e.g. {{.appName}}).
func Tprintf(tmpl string, data map[string]interface{}) string {
	t := template.Must(template.New("tprintf").Parse(tmpl))
	buf := &bytes.Buffer{}
	if err := t.Execute(buf, data); err != nil {
		return tmpl
	}
	return buf.String()
}
