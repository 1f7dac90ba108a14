// Package models contains domain types shared across services and handlers.
package models

// ExecutionPlan is the submitter-provided DAG of jobs.
type ExecutionPlan struct {
	Jobs            []JobSpec `json:"jobs"`
	BaseExecutionID string    `json:"baseExecutionId,omitempty"`
}

// JobSpec is one job within an execution plan. The ID is plan-local and
// unique within the plan; dependency references use it.
type JobSpec struct {
	ID        string                 `json:"id"`
	Operation string                 `json:"operation"`
	Params    map[string]interface{} `json:"params"`
	DependsOn []string               `json:"dependsOn,omitempty"`
}

// ExecutionOptions carries per-request settings that are not part of the DAG.
type ExecutionOptions struct {
	// ProviderAPIKeys overrides stored tenant credentials, keyed by provider slug.
	ProviderAPIKeys map[string]string `json:"providerApiKeys,omitempty"`
	Webhook         *WebhookConfig    `json:"webhook,omitempty"`
}

// WebhookConfig describes the submitter's completion webhook.
type WebhookConfig struct {
	URL    string `json:"url"`
	Secret string `json:"secret,omitempty"`
}

// Operation kinds accepted at plan admission.
const (
	OpGenerateImage         = "generateImage"
	OpGenerateVideo         = "generateVideo"
	OpGenerateAudio         = "generateAudio"
	OpMerge                 = "merge"
	OpReframe               = "reframe"
	OpLipSync               = "lipSync"
	OpAddSubtitles          = "addSubtitles"
	OpRemoveBackground      = "removeBackground"
	OpRemoveImageBackground = "removeImageBackground"
	OpReplaceGreenScreen    = "replaceGreenScreen"
	OpLayer                 = "layer"
)

// KnownOperations is the registered operation set; plans referencing anything
// else are rejected at admission.
var KnownOperations = map[string]bool{
	OpGenerateImage:         true,
	OpGenerateVideo:         true,
	OpGenerateAudio:         true,
	OpMerge:                 true,
	OpReframe:               true,
	OpLipSync:               true,
	OpAddSubtitles:          true,
	OpRemoveBackground:      true,
	OpRemoveImageBackground: true,
	OpReplaceGreenScreen:    true,
	OpLayer:                 true,
}
