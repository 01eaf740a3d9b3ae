package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scottcagno/searchbench/pkg/util"
)

func TestDecode_UTF8(t *testing.T) {
	s, enc, err := Decode([]byte("структури даних"))
	util.AssertNoError(t, err)
	util.AssertExpected(t, UTF8, enc)
	util.AssertExpected(t, "структури даних", s)
}

func TestDecode_Latin1Fallback(t *testing.T) {
	// "café" in ISO-8859-1, 0xE9 on its own is not valid UTF-8
	s, enc, err := Decode([]byte{'c', 'a', 'f', 0xE9})
	util.AssertNoError(t, err)
	util.AssertExpected(t, Latin1, enc)
	util.AssertExpected(t, "café", s)
}

func TestExtractText(t *testing.T) {
	page := `<!DOCTYPE html>
<html>
<head><title>ignored</title><style>p { color: red; }</style></head>
<body>
  <h1>Пошук   підрядка</h1>
  <script>var алгоритм = 1;</script>
  <p>Кожен <b>алгоритм</b> має
     свою складність.</p>
</body>
</html>`
	text, err := ExtractText(strings.NewReader(page))
	util.AssertNoError(t, err)
	util.AssertExpected(t, "Пошук підрядка Кожен алгоритм має свою складність.", text)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	txt := filepath.Join(dir, "article1.txt")
	util.AssertNoError(t, os.WriteFile(txt, []byte("алгоритм пошуку"), 0644))
	doc, err := Load(txt)
	if util.AssertNoError(t, err) {
		util.AssertExpected(t, "article1.txt", doc.Name)
		util.AssertExpected(t, "алгоритм пошуку", doc.Text)
		util.AssertExpected(t, UTF8, doc.Encoding)
		util.AssertLen(t, 15, doc.Runes())
	}

	page := filepath.Join(dir, "article2.HTML")
	util.AssertNoError(t, os.WriteFile(page, []byte("<p>bases de <i>donn\xe9es</i></p>"), 0644))
	doc, err = Load(page)
	if util.AssertNoError(t, err) {
		util.AssertExpected(t, "bases de données", doc.Text)
		util.AssertExpected(t, Latin1, doc.Encoding)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.txt"))
	util.AssertErrorIs(t, err, os.ErrNotExist)

	empty := filepath.Join(dir, "empty.txt")
	util.AssertNoError(t, os.WriteFile(empty, nil, 0644))
	_, err = Load(empty)
	util.AssertErrorIs(t, err, ErrEmptyDocument)

	blank := filepath.Join(dir, "blank.html")
	util.AssertNoError(t, os.WriteFile(blank, []byte("<html><script>x()</script></html>"), 0644))
	_, err = Load(blank)
	util.AssertErrorIs(t, err, ErrEmptyDocument)
}
