package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/fekuna/omnipos-ledger-service/pkg/logger"
)

var info = &grpc.UnaryServerInfo{FullMethod: "/ledger.v1.ProductService/GetProduct"}

func observed() (logger.ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logger.FromZap(zap.New(core)), logs
}

func TestRecoveryInterceptor_Panic(t *testing.T) {
	log, logs := observed()
	itc := RecoveryInterceptor(log)

	resp, err := itc(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
		panic("boom")
	})

	assert.Nil(t, resp)
	assert.Equal(t, codes.Internal, status.Code(err))
	assert.NotContains(t, err.Error(), "boom")
	require.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	assert.Equal(t, info.FullMethod, entry.ContextMap()["method"])
}

func TestRecoveryInterceptor_PassThrough(t *testing.T) {
	log, logs := observed()
	itc := RecoveryInterceptor(log)

	resp, err := itc(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
	assert.Zero(t, logs.Len())
}

func TestLoggingInterceptor_Levels(t *testing.T) {
	cases := []struct {
		name  string
		err   error
		level zapcore.Level
		msg   string
	}{
		{"ok", nil, zapcore.InfoLevel, "rpc completed"},
		{"not found", status.Error(codes.NotFound, "product not found"), zapcore.WarnLevel, "rpc rejected"},
		{"precondition", status.Error(codes.FailedPrecondition, "in use"), zapcore.WarnLevel, "rpc rejected"},
		{"internal", status.Error(codes.Internal, "storage failure"), zapcore.ErrorLevel, "rpc failed"},
		{"plain error", errors.New("raw"), zapcore.ErrorLevel, "rpc failed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			log, logs := observed()
			itc := LoggingInterceptor(log)

			_, err := itc(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
				return nil, tc.err
			})

			assert.Equal(t, tc.err, err)
			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tc.level, entry.Level)
			assert.Equal(t, tc.msg, entry.Message)
			assert.Equal(t, status.Code(tc.err).String(), entry.ContextMap()["code"])
		})
	}
}
