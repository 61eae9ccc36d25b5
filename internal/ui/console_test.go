// Where: internal/ui/console_test.go
// What: Tests for console output helpers.
// Why: Keep status line formatting stable.
package ui

import (
	"bytes"
	"testing"
)

func TestConsoleFormatsLines(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)
	c.Header("📚", "Documentation root:")
	c.Item("Root", "/work/repo")
	c.Success("done")
	c.Info("next")
	c.Warn("careful")
	c.Error("failed")

	want := "📚 Documentation root:\n" +
		"   Root:              /work/repo\n" +
		"✅ done\n" +
		"➜ next\n" +
		"⚠️  careful\n" +
		"❌ failed\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", buf.String(), want)
	}
}
