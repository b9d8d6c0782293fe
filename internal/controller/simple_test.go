package controller

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/atomer-tools/anaconf/internal/model"
)

func newBufferedCmd() (*cobra.Command, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	return cmd, buf
}

func TestSimpleUI_ReportFinished(t *testing.T) {
	cmd, buf := newBufferedCmd()
	ui := NewSimpleUI(cmd)

	ui.ReportFinished(m.ReportResult{
		Report:    "atomer/report.json",
		Config:    "out/report_conf",
		Functions: []string{"bar", "foo"},
	})

	assert.Contains(t, buf.String(), "atomer/report.json")
	assert.Contains(t, buf.String(), "out/report_conf")
	assert.Contains(t, buf.String(), "2 function(s)")
}

func TestSimpleUI_ReportFinished_ParseFailure(t *testing.T) {
	cmd, buf := newBufferedCmd()
	ui := NewSimpleUI(cmd)

	ui.ReportFinished(m.ReportResult{
		Report:      "atomer/broken.json",
		Config:      "out/broken_conf",
		ParseFailed: true,
	})

	assert.Contains(t, buf.String(), "parse failed, empty filter")
}

func TestSimpleUI_Summary(t *testing.T) {
	cmd, buf := newBufferedCmd()
	ui := NewSimpleUI(cmd)

	err := ui.Summary("out", []m.ReportResult{
		{Config: "out/a_conf", Functions: []string{"x"}},
		{Config: "out/b_conf", Functions: []string{"y", "z"}},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "out/a_conf")
	assert.Contains(t, out, "out/b_conf")
	assert.Contains(t, out, "New config files created in out")
}

func TestSimpleUI_DisplayReportCounts_MarksParseFailures(t *testing.T) {
	cmd, buf := newBufferedCmd()
	ui := NewSimpleUI(cmd)

	err := ui.DisplayReportCounts([]m.ReportResult{
		{Report: "a.json", Functions: []string{"f"}},
		{Report: "b.json", ParseFailed: true},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "a.json")
	assert.Contains(t, out, "b.json")
	assert.Contains(t, out, "-")
}

func TestSimpleUI_DisplayFunctions(t *testing.T) {
	cmd, buf := newBufferedCmd()
	ui := NewSimpleUI(cmd)

	require.NoError(t, ui.DisplayFunctions([]string{"alpha", "zeta"}))
	assert.Equal(t, "alpha\nzeta\n", buf.String())
}
