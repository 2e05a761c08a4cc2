package sanitize

import (
	"strings"
	"testing"
)

func TestContentStripsScriptBlocks(t *testing.T) {
	input := `<p>hello</p><script type="text/javascript">alert(1)</script><p>bye</p>`
	got := Content(input)
	if strings.Contains(got, "<script") || strings.Contains(got, "alert(1)") {
		t.Fatalf("script block survived: %q", got)
	}
	if !strings.Contains(got, "<p>hello</p>") || !strings.Contains(got, "<p>bye</p>") {
		t.Fatalf("surrounding markup damaged: %q", got)
	}
}

func TestContentStripsScriptCaseInsensitive(t *testing.T) {
	got := Content(`<SCRIPT>alert(1)</SCRIPT>`)
	if strings.Contains(strings.ToLower(got), "script") {
		t.Fatalf("upper-case script block survived: %q", got)
	}
}

func TestContentNeutralizesJavascriptScheme(t *testing.T) {
	got := Content(`<a href="javascript:alert(1)">x</a>`)
	if strings.Contains(strings.ToLower(got), "javascript:") {
		t.Fatalf("javascript: scheme survived: %q", got)
	}
}

func TestContentStripsEventHandlers(t *testing.T) {
	got := Content(`<img src="x.png" onclick="steal()" onmouseover =hover>`)
	lower := strings.ToLower(got)
	if strings.Contains(lower, "onclick") || strings.Contains(lower, "onmouseover") {
		t.Fatalf("event handler attribute survived: %q", got)
	}
	if !strings.Contains(got, `src="x.png"`) {
		t.Fatalf("benign attribute damaged: %q", got)
	}
}

func TestContentIdempotent(t *testing.T) {
	inputs := []string{
		`<p>plain</p>`,
		`<script>alert(1)</script>`,
		`<a href="javascript:alert(1)">x</a>`,
		`<div onclick="x">y</div>`,
		`<ul><li>Monday - Friday: 10am - 6pm</li></ul>`,
	}
	for _, input := range inputs {
		once := Content(input)
		twice := Content(once)
		if once != twice {
			t.Errorf("not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestContentLeavesCleanMarkupAlone(t *testing.T) {
	input := `<p>Curated, pop-up thrift store for punks and queers</p>`
	if got := Content(input); got != input {
		t.Fatalf("clean markup altered: %q", got)
	}
}
