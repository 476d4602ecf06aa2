package grpc

import (
	"context"
	"errors"
	"testing"
	"time"

	gogrpc "google.golang.org/grpc"
)

func TestDialWithHealthWrapsConnectFailure(t *testing.T) {
	dialErr := errors.New("connection refused")
	dialer := DialerFunc(func(ctx context.Context, addr string, opts ...gogrpc.DialOption) (*gogrpc.ClientConn, error) {
		return nil, dialErr
	})

	_, err := DialWithHealth(context.Background(), dialer, "localhost:1", 100*time.Millisecond, nil)
	if err == nil {
		t.Fatal("expected dial error")
	}

	var stageErr *DialError
	if !errors.As(err, &stageErr) {
		t.Fatalf("expected *DialError, got %T", err)
	}
	if stageErr.Stage != DialStageConnect {
		t.Fatalf("stage = %q, want %q", stageErr.Stage, DialStageConnect)
	}
	if !errors.Is(err, dialErr) {
		t.Fatal("expected wrapped dial error")
	}
}

func TestWaitForHealthRequiresConnection(t *testing.T) {
	if err := WaitForHealth(context.Background(), nil, "", nil); err == nil {
		t.Fatal("expected error for nil connection")
	}
}

func TestDialErrorMessage(t *testing.T) {
	err := &DialError{Stage: DialStageHealth, Err: errors.New("not serving")}
	if got := err.Error(); got != "gRPC health error: not serving" {
		t.Fatalf("error = %q", got)
	}
}
