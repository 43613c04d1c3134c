package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"studyflow/internal/domain"
	"studyflow/internal/testutil"
)

func TestNewResetCommand_Force(t *testing.T) {
	store := testutil.NewMockStore()
	store.Data.Sessions = []domain.Session{
		domain.NewSession("task_1", "cat_1", time.UnixMilli(1000)),
	}
	container := newTestContainer(store, time.Now())

	cmd := newResetCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--force"})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Data reset.")
	assert.Empty(t, store.Data.Sessions)
}

func TestNewResetCommand_ConfirmYes(t *testing.T) {
	store := testutil.NewMockStore()
	store.Data.Sessions = []domain.Session{
		domain.NewSession("task_1", "cat_1", time.UnixMilli(1000)),
	}
	container := newTestContainer(store, time.Now())

	cmd := newResetCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetIn(strings.NewReader("yes\n"))

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Data reset.")
	assert.Empty(t, store.Data.Sessions)
}

func TestNewResetCommand_Aborted(t *testing.T) {
	store := testutil.NewMockStore()
	store.Data.Sessions = []domain.Session{
		domain.NewSession("task_1", "cat_1", time.UnixMilli(1000)),
	}
	container := newTestContainer(store, time.Now())

	cmd := newResetCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetIn(strings.NewReader("no\n"))

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Aborted.")
	assert.Len(t, store.Data.Sessions, 1)
}
