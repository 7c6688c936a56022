package cache

import (
	"strings"
	"testing"
)

func TestKey(t *testing.T) {
	base := Key("document text", []string{"GDPR", "HIPAA"}, "Technology", false)

	if !strings.HasPrefix(base, reportKeyPrefix) {
		t.Errorf("expected key prefix %q, got %q", reportKeyPrefix, base)
	}
	if base != Key("document text", []string{"GDPR", "HIPAA"}, "Technology", false) {
		t.Error("expected identical requests to share a key")
	}

	variants := []string{
		Key("other text", []string{"GDPR", "HIPAA"}, "Technology", false),
		Key("document text", []string{"GDPR"}, "Technology", false),
		Key("document text", []string{"GDPR", "HIPAA"}, "Retail", false),
		Key("document text", []string{"GDPR", "HIPAA"}, "Technology", true),
	}
	for i, v := range variants {
		if v == base {
			t.Errorf("variant %d: expected a different key", i)
		}
	}
}
