// Package twiml renders the minimal TwiML messaging payload the webhook
// replies with.
package twiml

import (
	"encoding/xml"
	"fmt"
)

type response struct {
	XMLName xml.Name `xml:"Response"`
	Message message  `xml:"Message"`
}

type message struct {
	Body string `xml:"Body"`
}

// Reply wraps a message body in a TwiML response document. The body is
// XML-escaped by the encoder, so reply text can contain any characters.
func Reply(body string) ([]byte, error) {
	doc, err := xml.Marshal(response{Message: message{Body: body}})
	if err != nil {
		return nil, fmt.Errorf("marshal twiml: %w", err)
	}
	return append([]byte(xml.Header), doc...), nil
}
