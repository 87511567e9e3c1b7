package proofcli

import (
	"context"

	"github.com/getwilds/proof-lib-go/pkg/proof"
)

// Client defines the interface for communication with the PROOF
// control plane and the workflow engine behind it.
//
// Every operation is a single request/response round trip. The caller
// owns the bearer token and passes it on each call; the client never
// stores it. Control-plane operations return an absent result (nil
// value, nil error) on any non-200 response; only transport failures
// produce an error.
type Client interface {
	Authenticate(ctx context.Context, username, password string) (string, error)
	GetJobStatus(ctx context.Context, token string) (proof.JobStatusInfo, error)
	StartJob(ctx context.Context, token string, piName *string) (proof.JobStartResult, error)
	CancelJob(ctx context.Context, token string) (map[string]any, error)
	GetEngineVersion(ctx context.Context, engineURL, token string) (proof.EngineVersion, error)
}
