package linear_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/hdrgen/internal/adapters/linear"
)

func TestRenderer_StageLifecycle(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := linear.NewRenderer(&stdout, &stderr)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r.OnTaskStart("span1", "", "loading configs", start)
	r.OnTaskComplete("span1", start.Add(120*time.Millisecond), nil)

	assert.Equal(t, "status: loading configs...\nstatus: done loading configs (120ms)\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRenderer_NestedStagesAreIndented(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := linear.NewRenderer(&stdout, &stderr)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r.OnTaskStart("root", "", "translating", start)
	r.OnTaskStart("child", "root", "parsing x86_64-apple-macosx10.7.0", start)
	r.OnTaskComplete("child", start.Add(time.Second), nil)
	r.OnTaskComplete("root", start.Add(2*time.Second), nil)

	assert.Equal(t, "status: translating...\n"+
		"  status: parsing x86_64-apple-macosx10.7.0...\n"+
		"  status: done parsing x86_64-apple-macosx10.7.0 (1s)\n"+
		"status: done translating (2s)\n", stdout.String())
}

func TestRenderer_FailureGoesToStderr(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var stdout, stderr bytes.Buffer
	r := linear.NewRenderer(&stdout, &stderr)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r.OnTaskStart("span1", "", "formatting", start)
	r.OnTaskComplete("span1", start.Add(5*time.Millisecond), errors.New("bad source"))

	assert.Equal(t, "status: formatting...\n", stdout.String())
	assert.Equal(t, "✗ formatting failed after 5ms: bad source\n", stderr.String())
}

func TestRenderer_UnknownSpanIsIgnored(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := linear.NewRenderer(&stdout, &stderr)

	r.OnTaskComplete("missing", time.Now(), nil)

	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}
