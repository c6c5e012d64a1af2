package persist

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Saver writes pipeline artifacts into a single directory. The directory
// must already exist; the saver never creates it.
type Saver struct {
	Dir string
}

// PathFor returns the full path a filename would be written to.
func (s *Saver) PathFor(filename string) string {
	if s != nil && s.Dir != "" {
		return filepath.Join(s.Dir, filename)
	}
	return filename
}

// Save writes content to the named file, creating or truncating it. Writes
// are best-effort: any I/O error is logged and swallowed so one failed write
// never blocks the remaining documents or aborts the pipeline.
func (s *Saver) Save(filename, content string) {
	path := filename
	if s != nil && s.Dir != "" {
		path = filepath.Join(s.Dir, filename)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		log.Error().Err(err).Str("file", path).Msg("failed to save document")
		return
	}
	log.Info().Str("file", path).Msg("saved document")
}

// DocumentName returns the markdown filename for the i-th improved document.
// Positions are 1-based in processing-success order.
func DocumentName(i int) string {
	return fmt.Sprintf("improved_doc_%d.md", i)
}

// PDFName returns the PDF sidecar filename for the i-th improved document.
func PDFName(i int) string {
	return fmt.Sprintf("improved_doc_%d.pdf", i)
}
