package cli

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primalhq/primal/internal/store"
)

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitCommandError, GetExitCode(WrapExitError(ExitCommandError, "bad path", nil)))
	assert.Equal(t, ExitFailure, GetExitCode(WrapExitError(ExitFailure, "failed", nil)))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))

	// Wrapped ExitErrors still carry their code.
	wrapped := WrapExitError(ExitCommandError, "outer", errors.New("inner"))
	assert.Equal(t, ExitCommandError, GetExitCode(wrapped))
}

func TestExitError_Message(t *testing.T) {
	e := WrapExitError(ExitFailure, "login failed", store.NewAuthError())
	assert.Contains(t, e.Error(), "login failed")
	assert.Contains(t, e.Error(), "AUTH")
	assert.ErrorAs(t, e, new(*store.Error))
}

func TestFormatter_SuccessJSON(t *testing.T) {
	var b strings.Builder
	f := &OutputFormatter{Format: "json", Writer: &b}

	require.NoError(t, f.Success(map[string]int{"count": 3}))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(b.String()), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Nil(t, resp.Error)
}

func TestFormatter_SuccessTextModes(t *testing.T) {
	var b strings.Builder
	f := &OutputFormatter{Format: "text", Writer: &b}
	require.NoError(t, f.SuccessText("added category Office", map[string]string{"name": "Office"}))
	assert.Equal(t, "added category Office\n", b.String())

	b.Reset()
	f.Format = "json"
	require.NoError(t, f.SuccessText("added category Office", map[string]string{"name": "Office"}))
	assert.NotContains(t, b.String(), "added category Office")
	assert.Contains(t, b.String(), `"Office"`)
}

func TestFormatter_FailMapsStoreCodes(t *testing.T) {
	var b strings.Builder
	f := &OutputFormatter{Format: "json", Writer: &b}

	err := f.Fail(store.NewDuplicateError("Home"))

	assert.Equal(t, ExitFailure, GetExitCode(err))
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(b.String()), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "DUPLICATE", resp.Error.Code)
}

func TestFormatter_FailTextMode(t *testing.T) {
	var b strings.Builder
	f := &OutputFormatter{Format: "text", Writer: &b}

	err := f.Fail(store.NewNotFoundError("product", "x"))

	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, b.String(), "error:")
	assert.Contains(t, b.String(), "not found")
}
