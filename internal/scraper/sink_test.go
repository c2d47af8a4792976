package scraper

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWriteJSONRoundTrip(t *testing.T) {
	t.Parallel()

	offers := []Offer{
		{
			Title:      "Thèse sur l'optimisation",
			Lab:        "LAAS",
			Director:   "Mme Martin",
			LastUpdate: "05/03/2024",
			URL:        "https://adum.fr/as/ed/proposition.pl?id=7&lang=fr",
		},
		{Title: "Autre sujet", LastUpdate: "N/A"},
	}

	path := filepath.Join(t.TempDir(), "offres.json")
	sink := NewFileSink(zap.NewNop())
	require.NoError(t, sink.WriteJSON(path, offers))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got []Offer
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, offers[0].Title, got[0].Title)
	require.Equal(t, offers[0].Lab, got[0].Lab)
	require.Equal(t, offers[0].Director, got[0].Director)
	require.Equal(t, offers[0].LastUpdate, got[0].LastUpdate)
	require.Equal(t, offers[0].URL, got[0].URL, "URL must survive unescaped")
	require.Equal(t, offers[1].Title, got[1].Title)

	require.Contains(t, string(data), "?id=7&lang=fr", "URL must be written literally")
	require.NotContains(t, string(data), `\u0026`, "output must stay readable UTF-8")
}

func TestWriteJSONDeterministic(t *testing.T) {
	t.Parallel()

	offers := []Offer{
		{Title: "A", Lab: "LIG", Director: "X", LastUpdate: "10/01/2024"},
		{Title: "B", Lab: "LIG", Director: "Y", LastUpdate: "05/03/2024"},
	}

	dir := t.TempDir()
	sink := NewFileSink(zap.NewNop())

	first := filepath.Join(dir, "a.json")
	second := filepath.Join(dir, "b.json")
	require.NoError(t, sink.WriteJSON(first, offers))
	require.NoError(t, sink.WriteJSON(second, offers))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	require.Equal(t, a, b, "identical input must produce byte-identical JSON")
}

func TestWriteHTML(t *testing.T) {
	t.Parallel()

	offers := []Offer{
		{
			Title:      `Sujet <script>alert("x")</script>`,
			Lab:        "LIG",
			Director:   "M. Dupont",
			LastUpdate: "12/03/2024",
			URL:        "https://adum.fr/as/ed/proposition.pl?id=42",
		},
	}

	path := filepath.Join(t.TempDir(), "index.html")
	sink := NewFileSink(zap.NewNop())
	require.NoError(t, sink.WriteHTML(path, offers))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(data)

	require.Contains(t, html, `lang="fr"`)
	require.Contains(t, html, "12/03/2024")
	require.Contains(t, html, `href="https://adum.fr/as/ed/proposition.pl?id=42"`)
	require.NotContains(t, html, "<script>", "titles must be escaped")
}

func TestWriteJSONLeavesNoPartialFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	missing := filepath.Join(dir, "does-not-exist", "offres.json")
	sink := NewFileSink(zap.NewNop())

	err := sink.WriteJSON(missing, []Offer{{Title: "A"}})
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Dir(missing))
	require.True(t, os.IsNotExist(statErr), "failed write must not create the destination")

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	require.Empty(t, entries, "no temp file may be left behind")
}
