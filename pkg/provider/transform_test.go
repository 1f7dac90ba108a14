package provider

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	transformv1 "github.com/mediaforge/mediaforge/proto"
)

type fakeTransformClient struct {
	lastReq *transformv1.TransformRequest
	resp    *transformv1.TransformResponse
	err     error
}

func (c *fakeTransformClient) Transform(ctx context.Context, in *transformv1.TransformRequest, opts ...grpc.CallOption) (*transformv1.TransformResponse, error) {
	c.lastReq = in
	return c.resp, c.err
}

func TestTransformAdapter_Launch(t *testing.T) {
	client := &fakeTransformClient{
		resp: &transformv1.TransformResponse{
			Outputs: []*transformv1.TransformOutput{
				{Type: "video", Url: "https://cdn.example.com/merged.mp4", MimeType: "video/mp4"},
			},
		},
	}
	adapter := NewTransformAdapterFromClient(client)

	result, err := adapter.Launch(context.Background(), LaunchInput{
		JobRecordID: "job-1",
		Operation:   "merge",
		Params:      map[string]interface{}{"videos": []interface{}{"https://a.mp4", "https://b.mp4"}},
	})
	require.NoError(t, err)
	require.Equal(t, LaunchSync, result.Kind)
	require.Len(t, result.Outputs, 1)
	assert.Equal(t, "video", result.Outputs[0].Type)
	assert.Equal(t, "https://cdn.example.com/merged.mp4", result.Outputs[0].URL)
	assert.Equal(t, "video/mp4", result.Outputs[0].MimeType)

	require.NotNil(t, client.lastReq)
	assert.Equal(t, "merge", client.lastReq.Operation)
	assert.Equal(t, "job-1", client.lastReq.JobId)
	var params map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(client.lastReq.ParamsJson), &params))
	assert.Contains(t, params, "videos")
}

func TestTransformAdapter_LaunchServiceFailure(t *testing.T) {
	client := &fakeTransformClient{
		resp: &transformv1.TransformResponse{Error: "input video has no audio track"},
	}
	adapter := NewTransformAdapterFromClient(client)

	result, err := adapter.Launch(context.Background(), LaunchInput{Operation: "lipSync"})
	require.NoError(t, err)
	assert.Equal(t, LaunchFailed, result.Kind)
	assert.Equal(t, "input video has no audio track", result.Error)
}

func TestTransformAdapter_LaunchTransportError(t *testing.T) {
	client := &fakeTransformClient{err: errors.New("connection refused")}
	adapter := NewTransformAdapterFromClient(client)

	_, err := adapter.Launch(context.Background(), LaunchInput{Operation: "merge"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transform merge")
}

func TestTransformAdapter_Capabilities(t *testing.T) {
	adapter := NewTransformAdapterFromClient(&fakeTransformClient{})

	caps := adapter.Capabilities()
	assert.False(t, caps.SupportsWebhook)
	assert.False(t, caps.SupportsPolling)
	assert.False(t, caps.RequiresAPIKey)
	assert.Equal(t, "transform", adapter.Provider())

	_, err := adapter.ParseStatus([]byte("{}"))
	assert.Error(t, err)
	_, err = adapter.PollStatus(context.Background(), "", "")
	assert.Error(t, err)
}
