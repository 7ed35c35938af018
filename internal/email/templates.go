package email

import (
	"bytes"
	"html/template"
)

type TemplateSet struct {
	welcome *template.Template
	reset   *template.Template
}

func NewTemplateSet() (*TemplateSet, error) {
	welcome, err := template.New("welcome").Parse(welcomeTemplate)
	if err != nil {
		return nil, err
	}

	reset, err := template.New("reset").Parse(resetTemplate)
	if err != nil {
		return nil, err
	}

	return &TemplateSet{welcome: welcome, reset: reset}, nil
}

func (t *TemplateSet) RenderWelcome(name string) (string, error) {
	var buf bytes.Buffer
	if err := t.welcome.Execute(&buf, struct{ Name string }{Name: name}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (t *TemplateSet) RenderReset(name, url string) (string, error) {
	var buf bytes.Buffer
	data := struct {
		Name string
		URL  string
	}{Name: name, URL: url}

	if err := t.reset.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const (
	welcomeTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Welcome To Opos Parking</title>
</head>
<body>
    <h1>Welcome, {{.Name}}!</h1>
    <p>Thanks for joining Opos Parking, the marketplace for parking locations.</p>
    <p>List a spot, or find one near you, whenever you need it.</p>
</body>
</html>`

	resetTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Password Reset</title>
</head>
<body>
    <h2>Hi {{.Name}},</h2>
    <p>You requested a password reset for your Opos Parking account.</p>
    <p>Submit your new password and confirmation using the link below. The link is valid for 10 minutes.</p>
    <a href="{{.URL}}" style="background-color: #dc3545; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px;">Reset password</a>
    <p>If you did not make this request, please ignore this email.</p>
</body>
</html>`
)
