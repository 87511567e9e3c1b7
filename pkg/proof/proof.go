package proof

import "fmt"

// Credentials is the payload sent to the control plane to obtain a
// bearer token. It is used once per Authenticate call and never stored.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ErrMissingEngineURL is returned when no engine URL is available,
// neither as an explicit argument nor from configuration.
var ErrMissingEngineURL = fmt.Errorf("engine URL is not configured")

// ErrMissingToken is returned when an operation that requires an
// authenticated caller is invoked with an empty token.
var ErrMissingToken = fmt.Errorf("token is required")

// JobStatusInfo is the response of the job status endpoint. The
// upstream API is not versioned, so the shape is kept as an open map
// with typed accessors for the documented fields only.
type JobStatusInfo map[string]any

// CanJobStart reports whether the control plane would accept a new job
// for this caller. Absent or non-boolean values read as false.
func (s JobStatusInfo) CanJobStart() bool {
	v, _ := s["canJobStart"].(bool)
	return v
}

// JobStatus returns the server-reported job status, or "" if absent.
func (s JobStatusInfo) JobStatus() string {
	v, _ := s["jobStatus"].(string)
	return v
}

// CromwellURL returns the URL of the caller's workflow engine, or ""
// when no engine is running (the server sends null).
func (s JobStatusInfo) CromwellURL() string {
	v, _ := s["cromwellUrl"].(string)
	return v
}

// JobStartResult is the response of the job start endpoint.
type JobStartResult map[string]any

// JobID returns the identifier of the started job. The server has
// sent both string and numeric ids, so both are tolerated.
func (r JobStartResult) JobID() string {
	switch v := r["job_id"].(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	default:
		return ""
	}
}

// Info returns the server-side detail attached to a started job.
func (r JobStartResult) Info() map[string]any {
	v, _ := r["info"].(map[string]any)
	return v
}

// EngineVersion is the response of the workflow engine's version
// endpoint. On an error response it holds the error body instead; see
// the GetEngineVersion contract.
type EngineVersion map[string]any

// Cromwell returns the engine version string, or "" if absent.
func (v EngineVersion) Cromwell() string {
	s, _ := v["cromwell"].(string)
	return s
}
