package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestGRPCCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"not found", NewNotFound("product", "prd_1"), codes.NotFound},
		{"invalid", NewInvalidArgument("qty must be > 0"), codes.InvalidArgument},
		{"conflict", NewConflict("product has sales"), codes.FailedPrecondition},
		{"store", NewStoreFailure(errors.New("disk full")), codes.Internal},
		{"plain", errors.New("boom"), codes.Internal},
		{"wrapped", fmt.Errorf("receive: %w", NewNotFound("product", "x")), codes.NotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GRPCCode(tc.err))
		})
	}
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil))

	nf := NewNotFound("sale", "sal_1")
	assert.Same(t, nf, Wrap(nf))

	cause := errors.New("database is locked")
	wrapped := Wrap(cause)
	assert.True(t, IsStoreFailure(wrapped))
	assert.ErrorIs(t, wrapped, cause)
}

func TestWithDetail(t *testing.T) {
	err := NewInvalidArgument("bad line").WithDetail("line", 2)
	assert.Equal(t, 2, err.Details["line"])
	assert.Equal(t, "bad line (INVALID_ARGUMENT)", err.Error())

	cause := errors.New("FOREIGN KEY constraint failed")
	conflict := NewConflict("product has sales").WithCause(cause)
	assert.Equal(t, "product has sales (CONFLICT): FOREIGN KEY constraint failed", conflict.Error())
	assert.ErrorIs(t, conflict, cause)
}

func TestGRPCStatus(t *testing.T) {
	st, ok := status.FromError(GRPCStatus(NewStoreFailure(errors.New("disk I/O error"))))
	assert.True(t, ok)
	assert.Equal(t, codes.Internal, st.Code())
	assert.Equal(t, "storage failure", st.Message())

	st, _ = status.FromError(GRPCStatus(NewNotFound("product", "prd_1")))
	assert.Equal(t, codes.NotFound, st.Code())
	assert.Equal(t, "product not found", st.Message())

	assert.Equal(t, "internal error", Message(errors.New("raw")))
}
