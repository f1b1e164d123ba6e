package bridge

import (
	"context"
	"fmt"

	pb "github.com/verisafe/shield/go-monitor/gen/sim"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// #region types
// Spec describes the raw observation space reported by the simulator.
type Spec struct {
	ObsLow    []float64
	ObsHigh   []float64
	ActionDim int
}

// StepResult holds the response from a Step RPC call.
type StepResult struct {
	State      []float64
	Reward     float64
	Terminated bool
	Truncated  bool
}

// #endregion types

// #region client-struct
// Client wraps the gRPC connection to the Python simulator service.
type Client struct {
	conn   *grpc.ClientConn
	client pb.SimulatorClient
}

// #endregion client-struct

// #region constructor
// NewClient connects to the Python simulator gRPC server.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewSimulatorClient(conn),
	}, nil
}

// NewClientWithService creates a Client with an injected service implementation.
// Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.SimulatorClient) *Client {
	return &Client{client: svc}
}

// #endregion constructor

// #region close
// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion close

// #region spec
// Spec fetches the simulator's observation bounds and action dimensionality.
func (c *Client) Spec(ctx context.Context) (Spec, error) {
	resp, err := c.client.Spec(ctx, &pb.SpecRequest{})
	if err != nil {
		return Spec{}, fmt.Errorf("spec rpc: %w", err)
	}
	if len(resp.ObsLow) != len(resp.ObsHigh) {
		return Spec{}, fmt.Errorf("spec rpc: obs_low dim %d, obs_high dim %d", len(resp.ObsLow), len(resp.ObsHigh))
	}
	return Spec{
		ObsLow:    resp.ObsLow,
		ObsHigh:   resp.ObsHigh,
		ActionDim: int(resp.ActionDim),
	}, nil
}

// #endregion spec

// #region reset
// Reset starts a new episode with an explicit seed and returns the raw state.
func (c *Client) Reset(ctx context.Context, seed int64) ([]float64, error) {
	resp, err := c.client.Reset(ctx, &pb.ResetRequest{Seed: seed})
	if err != nil {
		return nil, fmt.Errorf("reset rpc: %w", err)
	}
	return resp.State, nil
}

// #endregion reset

// #region step
// Step advances the simulation by one action.
func (c *Client) Step(ctx context.Context, action []float64) (StepResult, error) {
	resp, err := c.client.Step(ctx, &pb.StepRequest{Action: action})
	if err != nil {
		return StepResult{}, fmt.Errorf("step rpc: %w", err)
	}
	return StepResult{
		State:      resp.State,
		Reward:     resp.Reward,
		Terminated: resp.Terminated,
		Truncated:  resp.Truncated,
	}, nil
}

// #endregion step

// #region reduce
// Reduce maps a raw state through the learned encoder on the Python side.
func (c *Client) Reduce(ctx context.Context, state []float64) ([]float64, error) {
	resp, err := c.client.Reduce(ctx, &pb.ReduceRequest{State: state})
	if err != nil {
		return nil, fmt.Errorf("reduce rpc: %w", err)
	}
	return resp.State, nil
}

// #endregion reduce
