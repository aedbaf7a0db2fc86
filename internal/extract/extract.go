// Turn a resume file into plain text
// Dispatch on file extension, fall back to raw UTF-8

package extract

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Text extracts the textual content of the document at path. Extraction is
// best-effort: any failure is logged and yields an empty string, so callers
// must tolerate an empty document.
func Text(path string) string {
	log.Printf("Extracting text from: %s", path)

	var text string
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		text, err = pdfText(path)
	case ".docx", ".doc":
		text, err = docxText(path)
	default:
		text, err = plainText(path)
	}

	if err != nil {
		log.Printf("⚠️ Failed to extract text from %s: %v", path, err)
		return ""
	}

	log.Println("Text extraction successful.")
	return text
}

func pdfText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var sb strings.Builder
	for pageIndex := 1; pageIndex <= r.NumPage(); pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			//skip unreadable pages, keep the rest
			continue
		}

		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// docxText concatenates the document's paragraphs with single newlines.
// A .docx is a zip archive whose main part is word/document.xml; text runs
// live in w:t elements, paragraph boundaries are w:p elements.
func docxText(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", err
	}
	defer zr.Close()

	var doc io.ReadCloser
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc, err = f.Open()
			if err != nil {
				return "", err
			}
			break
		}
	}
	if doc == nil {
		return "", errors.New("no word/document.xml in archive")
	}
	defer doc.Close()

	dec := xml.NewDecoder(doc)
	var paragraphs []string
	var current strings.Builder
	inRun := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			if el.Name.Local == "t" {
				inRun = true
			}
		case xml.EndElement:
			if el.Name.Local == "t" {
				inRun = false
			}
			if el.Name.Local == "p" {
				paragraphs = append(paragraphs, current.String())
				current.Reset()
			}
		case xml.CharData:
			if inRun {
				current.Write(el)
			}
		}
	}

	if current.Len() > 0 {
		paragraphs = append(paragraphs, current.String())
	}

	return strings.Join(paragraphs, "\n"), nil
}

// plainText reads the file as UTF-8 and drops invalid bytes instead of
// failing on them.
func plainText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(data), ""), nil
}
