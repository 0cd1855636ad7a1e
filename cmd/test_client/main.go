package main

import (
	"context"
	"fmt"
	"log"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// Hardcoded test data - each test is independent of server state,
	// except top_supporters which needs a prior rep_lookup.
	testAddress = "1 City Hall Square, Boston, MA 02201"
	testIssueID = "healthcare"
)

func main() {
	ctx := context.Background()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "repalign-test-client",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: "http://localhost:8080/mcp/stream",
	}, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	log.Printf("Connected to server (session ID: %s)\n", session.ID())

	testListIssues(ctx, session)
	testRepLookup(ctx, session)
	testTopSupporters(ctx, session)
	testIssueDetail(ctx, session)

	fmt.Println("\nAll tests completed")
}

func testListIssues(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: list_issues")

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "list_issues",
		Arguments: map[string]any{},
	})
	if err != nil {
		log.Printf("list_issues failed: %v", err)
		return
	}

	printResult(result)
	fmt.Println("list_issues passed")
}

func testRepLookup(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: rep_lookup")

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "rep_lookup",
		Arguments: map[string]any{
			"address": testAddress,
		},
	})
	if err != nil {
		log.Printf("rep_lookup failed: %v", err)
		return
	}

	printResult(result)
	fmt.Println("rep_lookup passed")
}

func testTopSupporters(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: top_supporters")

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "top_supporters",
		Arguments: map[string]any{
			"issue_id": testIssueID,
			"limit":    5,
		},
	})
	if err != nil {
		// Expected to fail if rep_lookup did not run first
		log.Printf("top_supporters: %v (expected without a prior lookup)", err)
		return
	}

	printResult(result)
	fmt.Println("top_supporters passed")
}

func testIssueDetail(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: issue_detail")

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "issue_detail",
		Arguments: map[string]any{
			"issue_id": testIssueID,
		},
	})
	if err != nil {
		log.Printf("issue_detail failed: %v", err)
		return
	}

	printResult(result)
	fmt.Println("issue_detail passed")
}

func printResult(res *mcp.CallToolResult) {
	for _, c := range res.Content {
		if txt, ok := c.(*mcp.TextContent); ok {
			fmt.Println(txt.Text)
		}
	}
}
