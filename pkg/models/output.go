package models

// MediaOutput is one terminal output of a job.
type MediaOutput struct {
	Type     string `json:"type"` // video | image | audio
	URL      string `json:"url"`
	MimeType string `json:"mimeType,omitempty"`
}

// OutputsToJSON converts outputs to the generic shape stored in ent JSON columns.
func OutputsToJSON(outputs []MediaOutput) []map[string]interface{} {
	if outputs == nil {
		return nil
	}
	result := make([]map[string]interface{}, 0, len(outputs))
	for _, o := range outputs {
		m := map[string]interface{}{
			"type": o.Type,
			"url":  o.URL,
		}
		if o.MimeType != "" {
			m["mimeType"] = o.MimeType
		}
		result = append(result, m)
	}
	return result
}

// OutputsFromJSON converts the stored JSON shape back into typed outputs.
// Unknown keys are ignored; missing keys yield zero values.
func OutputsFromJSON(raw []map[string]interface{}) []MediaOutput {
	if raw == nil {
		return nil
	}
	outputs := make([]MediaOutput, 0, len(raw))
	for _, m := range raw {
		var o MediaOutput
		if v, ok := m["type"].(string); ok {
			o.Type = v
		}
		if v, ok := m["url"].(string); ok {
			o.URL = v
		}
		if v, ok := m["mimeType"].(string); ok {
			o.MimeType = v
		}
		outputs = append(outputs, o)
	}
	return outputs
}
