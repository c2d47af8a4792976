package scraper

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// FileSink writes the rendered JSON and HTML outputs to disk. Writes go to a
// temporary file in the destination directory and are renamed into place, so
// a failed run never truncates a previous output.
type FileSink struct {
	logger *zap.Logger
}

// NewFileSink returns a sink logging through logger.
func NewFileSink(logger *zap.Logger) *FileSink {
	return &FileSink{logger: logger}
}

// WriteJSON serializes the offers as a UTF-8 JSON array. Output is
// deterministic: the same offer sequence produces byte-identical files.
func (s *FileSink) WriteJSON(path string, offers []Offer) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(offers); err != nil {
		return fmt.Errorf("marshal offers: %w", err)
	}
	if err := s.writeAtomic(path, buf.Bytes()); err != nil {
		return err
	}
	s.logger.Info("wrote JSON output", zap.String("path", path), zap.Int("offers", len(offers)))
	return nil
}

// WriteHTML renders the static browsing page for the same offer sequence.
func (s *FileSink) WriteHTML(path string, offers []Offer) error {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, offers); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	if err := s.writeAtomic(path, buf.Bytes()); err != nil {
		return err
	}
	s.logger.Info("wrote HTML output", zap.String("path", path), zap.Int("offers", len(offers)))
	return nil
}

func (s *FileSink) writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

var pageTemplate = template.Must(template.New("listing").Parse(`<!DOCTYPE html>
<html lang="fr">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>Offres de thèse ADUM</title>
</head>
<body>
  <h1>Offres de thèse ADUM</h1>
  <table border="1" cellpadding="6" cellspacing="0">
    <thead><tr><th>Dernière mise à jour</th><th>Sujet</th><th>Laboratoire</th><th>Direction</th></tr></thead>
    <tbody>
{{- range . }}
      <tr><td>{{ .LastUpdate }}</td><td>{{ if .URL }}<a href="{{ .URL }}">{{ .Title }}</a>{{ else }}{{ .Title }}{{ end }}</td><td>{{ .Lab }}</td><td>{{ .Director }}</td></tr>
{{- end }}
    </tbody>
  </table>
</body>
</html>
`))
