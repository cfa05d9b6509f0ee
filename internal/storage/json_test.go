package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nat/internal/config"
	"nat/internal/domain"
)

func newTestStorage(t *testing.T) *JSONStorage {
	t.Helper()
	cfg := config.New()
	cfg.OutputJSONDir = t.TempDir()
	return NewJSONStorage(cfg)
}

func TestJSONStorage_SaveLoad(t *testing.T) {
	st := newTestStorage(t)

	verdicts := []domain.Verdict{
		{Spec: domain.Spec{Test: domain.Test{Identifier: "pkg.Foo"}, CaseName: "test_pkg_foo"}, Kind: domain.VerdictPass},
		{Spec: domain.Spec{Test: domain.Test{Identifier: "pkg.Bar"}, CaseName: "test_pkg_bar"},
			Kind: domain.VerdictMismatch, Expected: "a", Actual: "b"},
	}
	require.NoError(t, st.Save(verdicts, 2*time.Second, "test_outs/run"))

	loaded, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Meta.TotalTests)
	assert.Equal(t, 1, loaded.Meta.FailedTests)
	require.Len(t, loaded.Details, 1)
	assert.Equal(t, "pkg.Bar", loaded.Details[0].Identifier)
	assert.Equal(t, "a", loaded.Details[0].Expected)
}

func TestJSONStorage_SaveOutput(t *testing.T) {
	st := newTestStorage(t)

	output := &domain.RunOutput{
		Meta:    domain.RunMeta{TotalTests: 1, FailedTests: 1},
		Details: []domain.Failure{{Identifier: "pkg.Foo", Resolved: true}},
	}
	require.NoError(t, st.SaveOutput(output))

	loaded, err := st.Load()
	require.NoError(t, err)
	assert.True(t, loaded.Details[0].Resolved)
}

func TestJSONStorage_LoadMissing(t *testing.T) {
	st := newTestStorage(t)
	_, err := st.Load()
	assert.Error(t, err)
}
