package pgerr_test

import (
	"errors"
	"testing"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/adapters/out/postgres/pgerr"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Nil(t *testing.T) {
	require.NoError(t, pgerr.Classify("add request", nil))
}

func TestClassify_TransientCodes(t *testing.T) {
	for _, code := range []string{"40001", "40P01", "55P03"} {
		err := pgerr.Classify("add request", &pgconn.PgError{Code: code})
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrTransientStore, "code %s", code)
	}
}

func TestClassify_PermanentErrorUnchanged(t *testing.T) {
	permanent := &pgconn.PgError{Code: "23505"} // unique violation
	err := pgerr.Classify("add request", permanent)
	require.Error(t, err)
	assert.NotErrorIs(t, err, errs.ErrTransientStore)
	assert.ErrorIs(t, err, permanent)
}

func TestClassify_PlainErrorUnchanged(t *testing.T) {
	plain := errors.New("connection refused")
	assert.Equal(t, plain, pgerr.Classify("add request", plain))
}
