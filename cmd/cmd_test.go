package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag to its default, since cobra keeps parsed
// values on the package-level commands between executions.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

type cli struct {
	db string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	t.Setenv("GRADEX_LLM_PROVIDER", "none")
	t.Setenv("GRADEX_DB", "")
	return &cli{db: filepath.Join(t.TempDir(), "gradex.db")}
}

func (c *cli) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append(args, "--db", c.db, "--log-level", "none"))
	err := Execute()
	return out.String(), err
}

func (c *cli) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := c.run(t, "", args...)
	require.NoError(t, err, out)
	return out
}

func TestClassify(t *testing.T) {
	c := newCLI(t)
	out := c.mustRun(t, "classify", "72", "39", "101")
	assert.Contains(t, out, "72        A")
	assert.Contains(t, out, "yes")
	assert.Contains(t, out, "clamped")

	_, err := c.run(t, "", "classify", "abc")
	assert.Error(t, err)
}

func TestGPAStateless(t *testing.T) {
	c := newCLI(t)
	out := c.mustRun(t, "gpa", "MTH101:3:65", "PHY101:2:48")
	assert.Contains(t, out, "GPA:  3.20")
	assert.Contains(t, out, "CGPA: 3.20")
	assert.Contains(t, out, "Semester totals: 5 units, 16.00 grade points")

	out = c.mustRun(t, "gpa", "MTH101:3:65", "--prior-cgpa", "3", "--prior-units", "10")
	assert.Contains(t, out, "Prior grade points: 3.00 CGPA x 10 units = 30.00")
}

func TestParseCourseArg(t *testing.T) {
	c, err := parseCourseArg("mth101:3:65.5")
	require.NoError(t, err)
	assert.Equal(t, "MTH101", c.Code)
	assert.Equal(t, 3, c.Units)
	assert.Equal(t, 65.5, c.Score)

	for _, bad := range []string{"MTH101", "MTH101:x:50", "MTH101:3:x", ":3:50", "MTH101:-1:50"} {
		_, err := parseCourseArg(bad)
		assert.Error(t, err, bad)
	}
}

func TestCourseLifecycle(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun(t, "course", "add", "--code", "mth 101", "--title", "General Mathematics", "--score", "68")
	assert.Contains(t, out, "Added MTH 101 (100L 1st semester): B")

	c.mustRun(t, "course", "add", "--code", "PHY101", "--title", "Physics", "--units", "2", "--score", "35")

	out = c.mustRun(t, "course", "list")
	assert.Contains(t, out, "MTH 101")
	assert.Contains(t, out, "PHY101")

	_, err := c.run(t, "", "course", "add", "--code", "MTH 101", "--title", "Again", "--score", "50")
	assert.Error(t, err, "duplicate code in the same term")

	_, err = c.run(t, "", "course", "add", "--code", "GST101", "--title", "English")
	assert.ErrorContains(t, err, "--score is required")

	id := shortIDOf(t, c.mustRun(t, "course", "list"), "PHY101")
	out = c.mustRun(t, "course", "edit", id, "--score", "55")
	assert.Contains(t, out, "Updated PHY101")
	assert.Contains(t, out, ": C")

	out = c.mustRun(t, "gpa")
	assert.Contains(t, out, "100L 1st semester")
	assert.Contains(t, out, "GPA:  3.60")

	out = c.mustRun(t, "course", "rm", id)
	assert.Contains(t, out, "Removed PHY101")

	out, err = c.run(t, "n\n", "course", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing removed")

	out = c.mustRun(t, "course", "reset", "--yes")
	assert.Contains(t, out, "Removed 1 course")
	assert.Contains(t, c.mustRun(t, "course", "list"), "No courses recorded")
}

func shortIDOf(t *testing.T, listing, code string) string {
	t.Helper()
	for _, line := range strings.Split(listing, "\n") {
		if strings.Contains(line, code) {
			return strings.Fields(line)[0]
		}
	}
	t.Fatalf("%s not in listing:\n%s", code, listing)
	return ""
}

func TestProfile(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun(t, "profile", "set", "--name", "Ada", "--level", "200l", "--prior-cgpa", "4", "--prior-units", "30")
	assert.Contains(t, out, "Saved profile: Ada, 200L 1st semester")

	out = c.mustRun(t, "profile", "show")
	assert.Contains(t, out, "Ada")
	assert.Contains(t, out, "CGPA 4.00 over 30 units")

	_, err := c.run(t, "", "profile", "set", "--semester", "3rd")
	assert.Error(t, err)
}

func TestExportImport(t *testing.T) {
	c := newCLI(t)
	c.mustRun(t, "course", "add", "--code", "MTH101", "--title", "Maths", "--score", "72")
	c.mustRun(t, "course", "add", "--code", "CHM101", "--title", "Chemistry", "--score", "44", "--semester", "2nd")

	file := filepath.Join(t.TempDir(), "record.xlsx")
	out := c.mustRun(t, "export", file)
	assert.Contains(t, out, "Wrote 2 courses")

	other := newCLI(t)
	out = other.mustRun(t, "course", "import", file)
	assert.Contains(t, out, "Imported 2 courses")
	assert.Contains(t, other.mustRun(t, "course", "list"), "CHM101")
}

func TestChatOneShot(t *testing.T) {
	c := newCLI(t)
	out := c.mustRun(t, "chat", "thank", "you")
	assert.NotEmpty(t, strings.TrimSpace(out))
}

func TestChatREPL(t *testing.T) {
	c := newCLI(t)
	out, err := c.run(t, "what is my cgpa\nexit\n", "chat")
	require.NoError(t, err)
	assert.Contains(t, out, "you> ")
	assert.Contains(t, out, "CGPA")
}

func TestVersion(t *testing.T) {
	c := newCLI(t)
	assert.Equal(t, "gradex (devel)\n", c.mustRun(t, "version"))
}
