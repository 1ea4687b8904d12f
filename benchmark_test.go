package ytmwiki

import (
	"strings"
	"testing"
)

func benchmarkMessage() Message {
	var raw, rendered strings.Builder
	for i := 0; i < 50; i++ {
		raw.WriteString("see YTM-14 and ask @userlogin about !atTach123.png! then http://foo/YTM-14. ")
		rendered.WriteString(`see <a href="/issue/YTM-14" title="Fake issue summary">YTM-14</a> and ask `)
		rendered.WriteString(`<a href="/user/userlogin" title="userlogin">Mr. User Userson</a> about `)
		rendered.WriteString(`<img src="/attach.png"> then http://foo/YTM-14. `)
	}
	return Message{
		Text:        raw.String(),
		Rendered:    rendered.String(),
		Attachments: []Attachment{{Name: "atTach123.png", URL: "http://foo.bar/attach.png"}},
	}
}

func BenchmarkDecorate(b *testing.B) {
	msg := benchmarkMessage()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Decorate(msg)
	}
}

func BenchmarkParseInline(b *testing.B) {
	out := Decorate(benchmarkMessage())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ParseInline(out)
	}
}
