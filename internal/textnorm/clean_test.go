package textnorm

import "testing"

func TestCleanStripsMarkupAndEntities(t *testing.T) {
	t.Parallel()

	got := Clean("Hello &lt;b&gt;World&lt;/b&gt;")
	if got != "Hello World" {
		t.Fatalf("unexpected result: %q", got)
	}
}

func TestCleanSeparatesTextAcrossTags(t *testing.T) {
	t.Parallel()

	got := Clean("<p>Flood risk</p><p>is rising</p>")
	if got != "Flood risk is rising" {
		t.Fatalf("unexpected result: %q", got)
	}
}

func TestCleanRemovesURLs(t *testing.T) {
	t.Parallel()

	got := Clean("read the report https://example.com/report.pdf today")
	if got != "read the report today" {
		t.Fatalf("unexpected result: %q", got)
	}
}

func TestCleanDropsNonPrintableAndCollapsesWhitespace(t *testing.T) {
	t.Parallel()

	got := Clean("  losses \x00 mounted   fast  ")
	if got != "losses mounted fast" {
		t.Fatalf("unexpected result: %q", got)
	}
}

func TestCleanEmptyInput(t *testing.T) {
	t.Parallel()

	if got := Clean(""); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestCleanIdempotentOnPlainText(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"A flood in Germany caused insured losses.",
		"Reinsurance premiums rose 12% in Q1.",
		"climate change & the insurance market",
	}
	for _, input := range inputs {
		once := Clean(input)
		twice := Clean(once)
		if once != twice {
			t.Fatalf("clean not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestCleanValueNonString(t *testing.T) {
	t.Parallel()

	for _, v := range []any{nil, 42, 3.14, true, []any{"a"}, map[string]any{"k": "v"}} {
		if got := CleanValue(v); got != "" {
			t.Fatalf("expected empty string for %T, got %q", v, got)
		}
	}

	if got := CleanValue("  some   text "); got != "some text" {
		t.Fatalf("unexpected result for string value: %q", got)
	}
}
