package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeAsk runs the interactive command against scripted input.
func executeAsk(t *testing.T, input string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask", "--config-dir", t.TempDir()})
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestAskCommand_SingleResultPrintedDirectly(t *testing.T) {
	setupCommandTest(t, cliCorpus()...)

	out, err := executeAsk(t, "safar\n")

	require.NoError(t, err)
	assert.Contains(t, out, "Before a journey - Travel")
	assert.Contains(t, out, "dua for travel safety")
	assert.NotContains(t, out, "Did you mean:")
}

func TestAskCommand_MultipleResultsThenSelection(t *testing.T) {
	setupCommandTest(t, cliCorpus()...)

	out, err := executeAsk(t, "morning\n2\n")

	require.NoError(t, err)
	assert.Contains(t, out, "Did you mean:")
	assert.Contains(t, out, "[1] Upon waking - Morning")
	assert.Contains(t, out, "[2] Leaving the house - Morning")
	assert.Contains(t, out, "In the name of Allah I place my trust")
}

func TestAskCommand_OutOfRangeSelectionKeepsOptionsOpen(t *testing.T) {
	setupCommandTest(t, cliCorpus()...)

	out, err := executeAsk(t, "morning\n9\n1\n")

	require.NoError(t, err)
	assert.Contains(t, out, "Please reply with a number between 1 and 2.")
	// The retry with a valid number still resolves.
	assert.Contains(t, out, "Praise be to Allah who gave us life")
}

func TestAskCommand_NonNumericReplyStartsNewQuery(t *testing.T) {
	setupCommandTest(t, cliCorpus()...)

	out, err := executeAsk(t, "morning\nsafar\n")

	require.NoError(t, err)
	assert.Contains(t, out, "Did you mean:")
	// "safar" is treated as a fresh query, not a selection attempt.
	assert.Contains(t, out, "dua for travel safety")
}

func TestAskCommand_NoResults(t *testing.T) {
	setupCommandTest(t, cliCorpus()...)

	out, err := executeAsk(t, "zzghtqx\n")

	require.NoError(t, err)
	assert.Contains(t, out, "No results found. Try different words.")
}

func TestAskCommand_QuitImmediately(t *testing.T) {
	setupCommandTest(t, cliCorpus()...)

	out, err := executeAsk(t, "q\n")

	require.NoError(t, err)
	assert.Contains(t, out, "What are you looking for?")
}

func TestAskCommand_EmptyInputQuits(t *testing.T) {
	setupCommandTest(t, cliCorpus()...)

	_, err := executeAsk(t, "\n")

	require.NoError(t, err)
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, isNumeric("2"))
	assert.True(t, isNumeric("42"))
	assert.False(t, isNumeric(""))
	assert.False(t, isNumeric("2a"))
	assert.False(t, isNumeric("safar"))
	assert.False(t, isNumeric("-1"))
}
