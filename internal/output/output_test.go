package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrinter(t *testing.T) {
	var out, errOut bytes.Buffer
	p := New(&out, &errOut)

	p.Success("saved")
	p.Info("loading")
	p.Step("dog.breed")
	p.Error("broken")
	p.Verbose("hidden")

	for _, want := range []string{"✔ saved", "• loading", "   dog.breed"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("stdout should contain %q, got %q", want, out.String())
		}
	}
	if !strings.Contains(errOut.String(), "✘ broken") {
		t.Errorf("stderr should contain the error, got %q", errOut.String())
	}
	if strings.Contains(errOut.String(), "hidden") {
		t.Error("verbose lines should be suppressed by default")
	}

	p.SetVerbose(true)
	p.Verbose("shown")
	if !strings.Contains(errOut.String(), "… shown") {
		t.Errorf("verbose line missing, got %q", errOut.String())
	}
}
