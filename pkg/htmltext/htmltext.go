package htmltext

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ExtractText streams through an HTML document and collects its visible
// text, skipping script and style blocks.
func ExtractText(r io.Reader) (string, error) {
	tokenizer := html.NewTokenizer(r)
	var inScriptOrStyle bool
	var builder strings.Builder

	for {
		tokenType := tokenizer.Next()
		if tokenType == html.ErrorToken {
			if tokenizer.Err() == io.EOF {
				break
			}
			return "", tokenizer.Err()
		}

		switch tokenType {
		case html.StartTagToken:
			t := tokenizer.Token()
			tagName := strings.ToLower(t.Data)
			if tagName == "script" || tagName == "style" {
				inScriptOrStyle = true
			}
		case html.EndTagToken:
			t := tokenizer.Token()
			tagName := strings.ToLower(t.Data)
			if tagName == "script" || tagName == "style" {
				inScriptOrStyle = false
			}
		case html.TextToken:
			if inScriptOrStyle {
				continue
			}
			text := strings.TrimSpace(string(tokenizer.Text()))
			if text != "" {
				builder.WriteString(text + " ")
			}
		}
	}

	return strings.TrimSpace(builder.String()), nil
}
