package cas_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ucb/internal/adapters/cas"
	"go.trai.ch/ucb/internal/core/domain"
)

func TestStore_PutAndGet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".ucb", "stamps")
	store := cas.NewStore()

	stamp := domain.Stamp{
		Name:        domain.PrepareStampName,
		OS:          domain.OSLinux,
		Revision:    "131.0.6778.85",
		Fingerprint: "0123456789abcdef",
		Steps: []domain.StepResult{
			{Step: "prune", Status: domain.StepTolerated, Detail: "exit status 1"},
		},
		Timestamp: time.Date(2024, 11, 20, 8, 0, 0, 0, time.UTC),
	}

	require.NoError(t, store.Put(dir, stamp))

	got, err := store.Get(dir, domain.PrepareStampName)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, stamp, *got)

	info, err := os.Stat(cas.Path(dir, domain.PrepareStampName))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(domain.FilePerm), info.Mode().Perm())
}

func TestStore_GetMissing(t *testing.T) {
	got, err := cas.NewStore().Get(t.TempDir(), domain.PrepareStampName)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Overwrite(t *testing.T) {
	dir := t.TempDir()
	store := cas.NewStore()

	require.NoError(t, store.Put(dir, domain.Stamp{Name: "download", Digest: "old"}))
	require.NoError(t, store.Put(dir, domain.Stamp{Name: "download", Digest: "new"}))

	got, err := store.Get(dir, "download")
	require.NoError(t, err)
	assert.Equal(t, "new", got.Digest)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestStore_Delete(t *testing.T) {
	dir := t.TempDir()
	store := cas.NewStore()

	require.NoError(t, store.Put(dir, domain.Stamp{Name: domain.PrepareStampName}))
	require.NoError(t, store.Delete(dir, domain.PrepareStampName))

	got, err := store.Get(dir, domain.PrepareStampName)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, store.Delete(dir, domain.PrepareStampName))
}

func TestStore_Corrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(cas.Path(dir, "prepare"), []byte("{not json"), 0o600))

	_, err := cas.NewStore().Get(dir, "prepare")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreUnmarshalFailed)
}

func TestStore_CreateFailed(t *testing.T) {
	parent := t.TempDir()
	blocker := filepath.Join(parent, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	err := cas.NewStore().Put(filepath.Join(blocker, "stamps"), domain.Stamp{Name: "prepare"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreCreateFailed)
}
