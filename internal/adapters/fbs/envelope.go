package fbs

import (
	"bytes"
	"embed"
	"encoding/xml"
	"fmt"
	"text/template"
)

//go:embed templates/sip2_message.xml
var templates embed.FS

type envelopeData struct {
	Username string
	Password string
	Message  string
}

// EnvelopeRenderer wraps a SIP2 line in the XML document FBS expects.
type EnvelopeRenderer struct {
	tmpl *template.Template
}

func NewEnvelopeRenderer() (*EnvelopeRenderer, error) {
	tmpl, err := template.New("sip2_message.xml").
		Funcs(template.FuncMap{"xml": escapeXML}).
		ParseFS(templates, "templates/sip2_message.xml")
	if err != nil {
		return nil, fmt.Errorf("parse sip2 envelope template: %w", err)
	}
	return &EnvelopeRenderer{tmpl: tmpl}, nil
}

func (r *EnvelopeRenderer) Render(username, password, message string) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, envelopeData{Username: username, Password: password, Message: message}); err != nil {
		return nil, fmt.Errorf("render sip2 envelope: %w", err)
	}
	return buf.Bytes(), nil
}

func escapeXML(value string) (string, error) {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(value)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type replyEnvelope struct {
	Response string `xml:"response"`
}

// decodeReply extracts the SIP2 line from an FBS reply body. Bodies that are
// not an XML envelope are returned as is.
func decodeReply(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '<' {
		var reply replyEnvelope
		if err := xml.Unmarshal(trimmed, &reply); err == nil && reply.Response != "" {
			return reply.Response
		}
	}
	return string(trimmed)
}
