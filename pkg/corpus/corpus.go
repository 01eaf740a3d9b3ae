package corpus

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/text/encoding/charmap"
)

var (
	ErrEmptyDocument = errors.New("corpus: empty document")
	ErrBadEncoding   = errors.New("corpus: cannot decode document")
)

// Encoding names the decoding a document was read with.
type Encoding string

const (
	UTF8   Encoding = "utf-8"
	Latin1 Encoding = "latin-1"
)

// Document is a loaded piece of text that searches run against.
type Document struct {
	Name     string
	Text     string
	Encoding Encoding
}

// Runes returns the document as code points, for searches that report
// character offsets rather than byte offsets.
func (d *Document) Runes() []rune {
	return []rune(d.Text)
}

func (d *Document) String() string {
	return fmt.Sprintf("%s (%s, %d bytes)", d.Name, d.Encoding, len(d.Text))
}

// Decode returns b as a string. Valid UTF-8 is used as is, anything else is
// read as ISO-8859-1, which maps every byte to a character and so never fails.
func Decode(b []byte) (string, Encoding, error) {
	if utf8.Valid(b) {
		return string(b), UTF8, nil
	}
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrBadEncoding, err)
	}
	return string(s), Latin1, nil
}

// ExtractText returns the visible text of an HTML document. Script, style
// and noscript elements are skipped and runs of whitespace collapse to one
// space.
func ExtractText(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("corpus: parsing html: %w", err)
	}
	var sb strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "head":
				return
			}
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(doc)
	return strings.Join(strings.Fields(sb.String()), " "), nil
}

func isHTML(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// Parse builds a document from raw bytes. HTML is recognised by the
// extension of name.
func Parse(name string, b []byte) (*Document, error) {
	text, enc, err := Decode(b)
	if err != nil {
		return nil, fmt.Errorf("corpus: %s: %w", name, err)
	}
	if isHTML(name) {
		text, err = ExtractText(strings.NewReader(text))
		if err != nil {
			return nil, fmt.Errorf("corpus: %s: %w", name, err)
		}
	}
	if len(text) == 0 {
		return nil, fmt.Errorf("corpus: %s: %w", name, ErrEmptyDocument)
	}
	return &Document{
		Name:     filepath.Base(name),
		Text:     text,
		Encoding: enc,
	}, nil
}

// Load reads and parses the file at path.
func Load(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: %w", err)
	}
	return Parse(path, b)
}
