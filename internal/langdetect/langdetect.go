package langdetect

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

// candidates covers the languages documentation in the wild is commonly
// written in. A narrow set keeps detection accuracy and memory reasonable.
var candidates = []lingua.Language{
	lingua.English,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Portuguese,
	lingua.Italian,
	lingua.Dutch,
	lingua.Finnish,
	lingua.Swedish,
	lingua.Russian,
	lingua.Japanese,
	lingua.Chinese,
}

// Detector identifies the language of document content so the analyzer can
// ask the model to respond in kind. The underlying lingua detector is built
// lazily on first use since loading its models is not free.
type Detector struct {
	once  sync.Once
	inner lingua.LanguageDetector
}

// Detect returns the detected language name (e.g. "English") and whether
// detection was confident enough to report anything.
func (d *Detector) Detect(text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	d.once.Do(func() {
		d.inner = lingua.NewLanguageDetectorBuilder().
			FromLanguages(candidates...).
			Build()
	})
	lang, ok := d.inner.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return lang.String(), true
}
