package bridge

import (
	"context"
	"errors"
	"testing"

	pb "github.com/verisafe/shield/go-monitor/gen/sim"
	"google.golang.org/grpc"
)

// #region mock
type mockSimulatorService struct {
	pb.SimulatorClient

	specResp *pb.SpecResponse
	specErr  error

	resetResp *pb.ResetResponse
	resetErr  error

	stepResp *pb.StepResponse
	stepErr  error

	reduceResp *pb.ReduceResponse
	reduceErr  error
}

func (m *mockSimulatorService) Spec(_ context.Context, _ *pb.SpecRequest, _ ...grpc.CallOption) (*pb.SpecResponse, error) {
	return m.specResp, m.specErr
}

func (m *mockSimulatorService) Reset(_ context.Context, _ *pb.ResetRequest, _ ...grpc.CallOption) (*pb.ResetResponse, error) {
	return m.resetResp, m.resetErr
}

func (m *mockSimulatorService) Step(_ context.Context, _ *pb.StepRequest, _ ...grpc.CallOption) (*pb.StepResponse, error) {
	return m.stepResp, m.stepErr
}

func (m *mockSimulatorService) Reduce(_ context.Context, _ *pb.ReduceRequest, _ ...grpc.CallOption) (*pb.ReduceResponse, error) {
	return m.reduceResp, m.reduceErr
}

// #endregion mock

// #region constructor-tests
func TestNewClientWithService(t *testing.T) {
	c := NewClientWithService(&mockSimulatorService{})
	if c == nil {
		t.Fatal("expected non-nil client")
	}
	if c.client == nil {
		t.Fatal("expected non-nil internal client")
	}
	if err := c.Close(); err != nil {
		t.Fatalf("close without connection: %v", err)
	}
}

// #endregion constructor-tests

// #region spec-tests
func TestSpec_Success(t *testing.T) {
	mock := &mockSimulatorService{
		specResp: &pb.SpecResponse{
			ObsLow:    []float64{-3.14, -5},
			ObsHigh:   []float64{3.14, 5},
			ActionDim: 4,
		},
	}
	c := &Client{client: mock}

	spec, err := c.Spec(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(spec.ObsLow) != 2 || spec.ObsLow[0] != -3.14 {
		t.Errorf("unexpected obs low: %v", spec.ObsLow)
	}
	if spec.ActionDim != 4 {
		t.Errorf("expected action dim 4, got %d", spec.ActionDim)
	}
}

func TestSpec_MismatchedBounds(t *testing.T) {
	mock := &mockSimulatorService{
		specResp: &pb.SpecResponse{
			ObsLow:  []float64{-1, -1},
			ObsHigh: []float64{1},
		},
	}
	c := &Client{client: mock}

	if _, err := c.Spec(context.Background()); err == nil {
		t.Fatal("expected error for mismatched bounds")
	}
}

func TestSpec_Error(t *testing.T) {
	mock := &mockSimulatorService{specErr: errors.New("rpc failed")}
	c := &Client{client: mock}

	_, err := c.Spec(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, mock.specErr) {
		t.Errorf("expected wrapped rpc error, got: %v", err)
	}
}

// #endregion spec-tests

// #region reset-tests
func TestReset_Success(t *testing.T) {
	mock := &mockSimulatorService{
		resetResp: &pb.ResetResponse{State: []float64{0.1, 0.2, 0.3}},
	}
	c := &Client{client: mock}

	state, err := c.Reset(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(state) != 3 || state[2] != 0.3 {
		t.Errorf("unexpected state: %v", state)
	}
}

func TestReset_Error(t *testing.T) {
	mock := &mockSimulatorService{resetErr: errors.New("reset failed")}
	c := &Client{client: mock}

	if _, err := c.Reset(context.Background(), 0); err == nil {
		t.Fatal("expected error")
	}
}

// #endregion reset-tests

// #region step-tests
func TestStep_Success(t *testing.T) {
	mock := &mockSimulatorService{
		stepResp: &pb.StepResponse{
			State:      []float64{0.5, -0.5},
			Reward:     1.25,
			Terminated: true,
		},
	}
	c := &Client{client: mock}

	result, err := c.Step(context.Background(), []float64{0, 0, 0, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Reward != 1.25 {
		t.Errorf("expected reward 1.25, got %g", result.Reward)
	}
	if !result.Terminated {
		t.Error("expected terminated")
	}
	if result.Truncated {
		t.Error("expected not truncated")
	}
}

func TestStep_Error(t *testing.T) {
	mock := &mockSimulatorService{stepErr: errors.New("step failed")}
	c := &Client{client: mock}

	_, err := c.Step(context.Background(), nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, mock.stepErr) {
		t.Errorf("expected wrapped step error, got: %v", err)
	}
}

// #endregion step-tests

// #region reduce-tests
func TestReduce_Success(t *testing.T) {
	mock := &mockSimulatorService{
		reduceResp: &pb.ReduceResponse{State: []float64{0.9, -0.1}},
	}
	c := &Client{client: mock}

	reduced, err := c.Reduce(context.Background(), []float64{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reduced) != 2 || reduced[0] != 0.9 {
		t.Errorf("unexpected reduced state: %v", reduced)
	}
}

func TestReduce_Error(t *testing.T) {
	mock := &mockSimulatorService{reduceErr: errors.New("reduce failed")}
	c := &Client{client: mock}

	if _, err := c.Reduce(context.Background(), nil); err == nil {
		t.Fatal("expected error")
	}
}

// #endregion reduce-tests
