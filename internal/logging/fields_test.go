package logging

import (
	"log/slog"
	"testing"
	"time"
)

func TestWithCommonAppendsServiceAndVersion(t *testing.T) {
	attrs := WithCommon(nil, "efootball-data-service", "v1")
	if len(attrs) != 2 {
		t.Fatalf("expected 2 attrs, got %d", len(attrs))
	}
	if attrs[0].Key != FieldService || attrs[0].Value.String() != "efootball-data-service" {
		t.Fatalf("expected service attr, got %+v", attrs[0])
	}
	if attrs[1].Key != FieldVersion || attrs[1].Value.String() != "v1" {
		t.Fatalf("expected version attr, got %+v", attrs[1])
	}
}

func TestWithCommonSkipsEmpty(t *testing.T) {
	attrs := WithCommon([]slog.Attr{slog.String(FieldProvider, "pesdb")}, "", "")
	if len(attrs) != 1 || attrs[0].Key != FieldProvider {
		t.Fatalf("expected original attrs preserved, got %+v", attrs)
	}
}

func TestDurationAttrUsesMilliseconds(t *testing.T) {
	attr := Duration(1500 * time.Millisecond)
	if attr.Key != FieldDurationMS || attr.Value.Int64() != 1500 {
		t.Fatalf("unexpected duration attr %+v", attr)
	}
}

func TestFieldKeysAreDistinct(t *testing.T) {
	keys := []string{
		FieldService, FieldVersion, FieldProvider, FieldOperation, FieldRequestID,
		FieldPath, FieldMethod, FieldStatusCode, FieldQuery, FieldPlayerID,
		FieldCount, FieldDurationMS, FieldError, FieldClientIP,
	}
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k == "" || seen[k] {
			t.Fatalf("duplicate or empty field key %q", k)
		}
		seen[k] = true
	}
}
