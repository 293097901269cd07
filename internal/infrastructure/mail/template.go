package mail

import (
	"bytes"
	"embed"
	"html/template"
)

//go:embed templates/access_email.html
var templatesFS embed.FS

var accessEmailTmpl = template.Must(template.ParseFS(templatesFS, "templates/access_email.html"))

const (
	accessEmailSubject = "🍓 Obrigado pela sua compra! Acesse seu E-book Exclusivo"
	brandName          = "ErdbeerGourmet"
	defaultProductName = "Morango Gourmet Profissional"
	defaultGreeting    = "Cliente"
)

type accessEmailData struct {
	Brand     string
	Name      string
	Product   string
	AccessURL string
}

func renderAccessEmail(d accessEmailData) (string, error) {
	if d.Name == "" {
		d.Name = defaultGreeting
	}
	if d.Product == "" {
		d.Product = defaultProductName
	}
	if d.Brand == "" {
		d.Brand = brandName
	}
	var buf bytes.Buffer
	if err := accessEmailTmpl.Execute(&buf, d); err != nil {
		return "", err
	}
	return buf.String(), nil
}
