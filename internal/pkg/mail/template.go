package mail

import (
	"bytes"
	"errors"

	"github.com/gofiber/template/html/v2"
)

var engine *html.Engine

// SetupTemplates loads the mail templates once at startup. dir points at the
// views/mails directory.
func SetupTemplates(dir string) error {
	e := html.New(dir, ".html")
	if err := e.Load(); err != nil {
		return err
	}
	engine = e
	return nil
}

// RenderMail renders a named mail template with the given bindings.
func RenderMail(name string, bind interface{}) (string, error) {
	if engine == nil {
		return "", errors.New("mail templates not loaded")
	}
	var buf bytes.Buffer
	if err := engine.Render(&buf, name, bind); err != nil {
		return "", err
	}
	return buf.String(), nil
}
