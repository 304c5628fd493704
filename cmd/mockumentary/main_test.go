//nolint:testpackage // commands are unexported
package main

import (
	"bytes"
	"testing"

	. "github.com/onsi/gomega"
)

const clockFixture = "../../fixture/testdata/clock.yaml"

func run(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer

	root, _ := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--no-color"}, args...))

	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	out, _, err := run("version")

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(out).To(Equal("mockumentary dev\n"))
}

func TestInspect(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	out, _, err := run("inspect", clockFixture)

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(out).To(ContainSubstring("Clock\n"))
	g.Expect(out).To(MatchRegexp(`Now\s+generator\s+\[1 2 3\]`))
	g.Expect(out).To(MatchRegexp(`Ready\s+generator\s+\[true\]`))
	g.Expect(out).To(MatchRegexp(`zone\s+literal\s+UTC`))
	g.Expect(out).To(ContainSubstring("Store\n"))
}

func TestPlay_DefaultCallsShowWrapAround(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	out, _, err := run("play", clockFixture, "Clock", "Now")

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(out).To(MatchRegexp(`1\s+Now\(\)\s+1\n`))
	g.Expect(out).To(MatchRegexp(`2\s+Now\(\)\s+2\n`))
	g.Expect(out).To(MatchRegexp(`3\s+Now\(\)\s+3\n`))
	g.Expect(out).To(MatchRegexp(`4\s+Now\(\)\s+1\n`))
	g.Expect(out).NotTo(ContainSubstring("5 "))
}

func TestPlay_CallsAndArgs(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	out, _, err := run("play", clockFixture, "Clock", "Ready", "--calls", "3", "--arg", "a", "--arg", "b")

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(out).To(MatchRegexp(`3\s+Ready\(a, b\)\s+true\n`))
}

func TestPlay_Property(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	out, _, err := run("play", clockFixture, "Clock", "zone")

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(out).To(MatchRegexp(`zone\s+literal\s+UTC\n`))
}

func TestPlay_Errors(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		args []string
		want string
	}{
		{"unknown mock", []string{"play", clockFixture, "Calendar", "Now"}, "unknown mock"},
		{"unknown attribute", []string{"play", clockFixture, "Clock", "Then"}, "no such attribute"},
		{"missing file", []string{"play", "missing.yaml", "Clock", "Now"}, "reading fixture"},
		{"bad log level", []string{"--log-level", "loud", "version"}, "invalid log level"},
		{"wrong arg count", []string{"play", clockFixture}, "accepts 3 arg(s)"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			_, _, err := run(tc.args...)
			g.Expect(err).To(MatchError(ContainSubstring(tc.want)))
		})
	}
}

func TestPlay_CallsFromEnvironment(t *testing.T) {
	t.Setenv("MOCKUMENTARY_CALLS", "2")
	t.Setenv("MOCKUMENTARY_LOG_LEVEL", "debug")
	g := NewWithT(t)

	out, logs, err := run("play", clockFixture, "Clock", "Now")

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(out).To(MatchRegexp(`2\s+Now\(\)\s+2\n`))
	g.Expect(out).NotTo(MatchRegexp(`3\s+Now`))
	g.Expect(logs).To(ContainSubstring("mock built"))
	g.Expect(logs).To(ContainSubstring("attribute=Now"))
}

func TestExecute_ReportsFailures(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var stdout, stderr bytes.Buffer

	code := execute([]string{"--no-color", "play", clockFixture, "Calendar", "Now"}, &stdout, &stderr)

	g.Expect(code).To(Equal(1))
	g.Expect(stdout.String()).To(BeEmpty())
	g.Expect(stderr.String()).To(HavePrefix("unknown mock"))
	g.Expect(stderr.String()).NotTo(ContainSubstring("\x1b["))
}

func TestExecute_NoColorFromEnvironment(t *testing.T) {
	t.Setenv("MOCKUMENTARY_NO_COLOR", "true")
	g := NewWithT(t)

	var stdout, stderr bytes.Buffer

	code := execute([]string{"play", "missing.yaml", "Clock", "Now"}, &stdout, &stderr)

	g.Expect(code).To(Equal(1))
	g.Expect(stderr.String()).To(HavePrefix("reading fixture"))
	g.Expect(stderr.String()).NotTo(ContainSubstring("\x1b["))
}

func TestExecute_Success(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var stdout, stderr bytes.Buffer

	g.Expect(execute([]string{"version"}, &stdout, &stderr)).To(Equal(0))
	g.Expect(stdout.String()).To(Equal("mockumentary dev\n"))
	g.Expect(stderr.String()).To(BeEmpty())
}
