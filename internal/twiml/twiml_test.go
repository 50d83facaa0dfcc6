package twiml

import (
	"encoding/xml"
	"strings"
	"testing"
)

func TestReply(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "plain text",
			body: "שלום",
			want: "<Response><Message><Body>שלום</Body></Message></Response>",
		},
		{
			name: "newlines preserved",
			body: "שורה 1\nשורה 2",
			want: "<Response><Message><Body>שורה 1&#xA;שורה 2</Body></Message></Response>",
		},
		{
			name: "special characters escaped",
			body: "a < b & c",
			want: "<Response><Message><Body>a &lt; b &amp; c</Body></Message></Response>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Reply(tt.body)
			if err != nil {
				t.Fatalf("Reply() error = %v", err)
			}
			if !strings.HasPrefix(string(got), xml.Header) {
				t.Errorf("Reply() missing XML header prefix: %q", got)
			}
			doc := strings.TrimPrefix(string(got), xml.Header)
			if doc != tt.want {
				t.Errorf("Reply() = %q, want %q", doc, tt.want)
			}
		})
	}
}

func TestReply_RoundTrip(t *testing.T) {
	body := "✅ הוצאה נרשמה:\nשם: 'קפה'"
	out, err := Reply(body)
	if err != nil {
		t.Fatalf("Reply() error = %v", err)
	}

	var parsed struct {
		Message struct {
			Body string `xml:"Body"`
		} `xml:"Message"`
	}
	if err := xml.Unmarshal(out, &parsed); err != nil {
		t.Fatalf("unmarshal reply: %v", err)
	}
	if parsed.Message.Body != body {
		t.Errorf("round trip body = %q, want %q", parsed.Message.Body, body)
	}
}
