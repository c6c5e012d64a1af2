package langdetect

import "testing"

func TestDetect_English(t *testing.T) {
	d := &Detector{}
	lang, ok := d.Detect("This guide explains how to install and configure the service on a fresh machine.")
	if !ok {
		t.Fatalf("expected a detection result")
	}
	if lang != "English" {
		t.Fatalf("expected English, got %q", lang)
	}
}

func TestDetect_EmptyInput(t *testing.T) {
	d := &Detector{}
	if _, ok := d.Detect("   \n"); ok {
		t.Fatalf("expected no detection for blank input")
	}
}
