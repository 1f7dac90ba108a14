package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mediaforge/mediaforge/pkg/models"
	transformv1 "github.com/mediaforge/mediaforge/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// TransformAdapter executes deterministic media transforms by calling the
// transform service over gRPC. Transforms are synchronous from the
// orchestrator's point of view: the service uploads results to the object
// store and returns the hosted URLs.
type TransformAdapter struct {
	conn   *grpc.ClientConn
	client transformv1.TransformServiceClient
}

// NewTransformAdapter connects to the transform service.
// grpc.NewClient dials lazily; the connection is established on first call.
func NewTransformAdapter(addr string) (*TransformAdapter, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("connect to transform service at %s: %w", addr, err)
	}
	return &TransformAdapter{
		conn:   conn,
		client: transformv1.NewTransformServiceClient(conn),
	}, nil
}

// NewTransformAdapterFromClient wraps an existing client (useful for testing).
func NewTransformAdapterFromClient(client transformv1.TransformServiceClient) *TransformAdapter {
	return &TransformAdapter{client: client}
}

// Close releases the gRPC connection.
func (a *TransformAdapter) Close() error {
	if a.conn == nil {
		return nil
	}
	return a.conn.Close()
}

// Provider returns the credential slug. Transforms are first-party and need
// no tenant credential.
func (a *TransformAdapter) Provider() string { return "transform" }

// Capabilities: transforms always complete within the launch call.
func (a *TransformAdapter) Capabilities() Capabilities {
	return Capabilities{
		SupportsWebhook: false,
		SupportsPolling: false,
		Default:         WaitPolling,
	}
}

// Launch runs the transform and returns its outputs synchronously.
func (a *TransformAdapter) Launch(ctx context.Context, input LaunchInput) (LaunchResult, error) {
	paramsJSON, err := json.Marshal(input.Params)
	if err != nil {
		return LaunchResult{}, fmt.Errorf("marshal transform params: %w", err)
	}

	resp, err := a.client.Transform(ctx, &transformv1.TransformRequest{
		Operation:  input.Operation,
		ParamsJson: string(paramsJSON),
		JobId:      input.JobRecordID,
	})
	if err != nil {
		return LaunchResult{}, fmt.Errorf("transform %s: %w", input.Operation, err)
	}
	if resp.Error != "" {
		return FailedResult(resp.Error), nil
	}

	outputs := make([]models.MediaOutput, 0, len(resp.Outputs))
	for _, o := range resp.Outputs {
		outputs = append(outputs, models.MediaOutput{
			Type:     o.Type,
			URL:      o.Url,
			MimeType: o.MimeType,
		})
	}
	return SyncResult(outputs), nil
}

// ParseStatus is unreachable for a synchronous adapter.
func (a *TransformAdapter) ParseStatus([]byte) (StatusResult, error) {
	return StatusResult{}, errors.New("transform jobs do not produce async status payloads")
}

// PollStatus is unreachable for a synchronous adapter.
func (a *TransformAdapter) PollStatus(context.Context, string, string) (StatusResult, error) {
	return StatusResult{}, errors.New("transform jobs are not pollable")
}
