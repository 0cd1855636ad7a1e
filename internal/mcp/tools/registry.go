package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/civicsignal/repalign/internal/domain"
	"github.com/civicsignal/repalign/internal/session"
)

// Engine is the subset of the session surface the tools call into
type Engine interface {
	LookupReps(ctx context.Context, address string) (session.SlateResult, error)
	Issues() []domain.Issue
	ShowIssueDetail(ctx context.Context, issueID string) (session.IssueDetail, error)
	LoadRepAlignment(ctx context.Context, legislatorName, issueID string) (domain.AlignmentResult, error)
	LoadTopSupporters(ctx context.Context, issueID string, limit int) ([]domain.RankedSupporter, error)
}

// Option configures which tools are registered
type Option func(*registry)

type registry struct {
	server *sdkmcp.Server
}

// Register applies the provided tool options
func Register(server *sdkmcp.Server, opts ...Option) {
	reg := &registry{server: server}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(reg)
	}
}
