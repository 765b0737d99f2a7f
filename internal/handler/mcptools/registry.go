// Package mcptools defines the MCP tool set once and exposes it to both
// the stdio server (mcp-go) and the JSON-RPC HTTP endpoint.
package mcptools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"domain-mcp/internal/metrics"
	"domain-mcp/internal/usecase"
)

// Server identity reported on initialize
const (
	ServerName      = "domain-mcp"
	ServerVersion   = "1.0.0"
	ProtocolVersion = "2024-11-05"
	Instructions    = "Domain MCP Server - Tools for domain name analysis and availability checking. " +
		"Available tools: whois_lookup, dns_lookup, check_domain_availability, ssl_certificate_info, " +
		"search_expired_domains, domain_age_check, bulk_domain_check, get_dns_records, " +
		"list_portfolio, check_portfolio"
)

// ErrUnknownTool is returned by Call for a name that was never registered
var ErrUnknownTool = errors.New("unknown tool")

// HandlerFunc runs one tool. The returned value is rendered as indented JSON.
type HandlerFunc func(ctx context.Context, args map[string]interface{}) (interface{}, error)

// Tool is one registered tool
type Tool struct {
	Name        string
	Description string
	InputSchema map[string]interface{}
	handler     HandlerFunc
}

// Result is the rendered outcome of a tool call. Tool failures are
// reported through IsError rather than as protocol errors.
type Result struct {
	Text    string
	IsError bool
}

// Registry holds the tool set in registration order
type Registry struct {
	tools   []Tool
	index   map[string]int
	metrics *metrics.Metrics
}

// NewRegistry builds the full tool set over the use cases
func NewRegistry(domainUsecase usecase.DomainUsecase, portfolioUsecase usecase.PortfolioUsecase, m *metrics.Metrics) *Registry {
	r := &Registry{
		index:   make(map[string]int),
		metrics: m,
	}
	registerDomainTools(r, domainUsecase)
	registerPortfolioTools(r, portfolioUsecase)
	return r
}

func (r *Registry) add(name, description string, schema map[string]interface{}, h HandlerFunc) {
	r.index[name] = len(r.tools)
	r.tools = append(r.tools, Tool{
		Name:        name,
		Description: description,
		InputSchema: schema,
		handler:     h,
	})
}

// Tools returns the registered tools in registration order
func (r *Registry) Tools() []Tool {
	out := make([]Tool, len(r.tools))
	copy(out, r.tools)
	return out
}

// ToolsList returns the tools/list payload
func (r *Registry) ToolsList() map[string]interface{} {
	tools := make([]map[string]interface{}, 0, len(r.tools))
	for _, t := range r.tools {
		tools = append(tools, map[string]interface{}{
			"name":        t.Name,
			"description": t.Description,
			"inputSchema": t.InputSchema,
		})
	}
	return map[string]interface{}{"tools": tools}
}

// Call runs the named tool
func (r *Registry) Call(ctx context.Context, name string, args map[string]interface{}) (Result, error) {
	i, ok := r.index[name]
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	if args == nil {
		args = map[string]interface{}{}
	}

	start := time.Now()
	value, err := r.tools[i].handler(ctx, args)
	r.metrics.ObserveToolCall(name, start, err)
	if err != nil {
		log.Printf("[MCPTools] %s ERROR: %v", name, err)
		return Result{Text: fmt.Sprintf("Error: %v", err), IsError: true}, nil
	}

	text, err := toJSON(value)
	if err != nil {
		return Result{Text: fmt.Sprintf("Error: %v", err), IsError: true}, nil
	}
	return Result{Text: text}, nil
}

// Register adds every tool to an mcp-go server
func (r *Registry) Register(s *server.MCPServer) {
	for _, t := range r.tools {
		name := t.Name
		s.AddTool(mcp.NewTool(name, t.Description, t.InputSchema), func(arguments map[string]interface{}) (*mcp.CallToolResult, error) {
			result, err := r.Call(context.Background(), name, arguments)
			if err != nil {
				return nil, err
			}
			return &mcp.CallToolResult{
				IsError: result.IsError,
				Content: []interface{}{mcp.NewTextContent(result.Text)},
			}, nil
		})
	}
}

// NewMCPServer creates a stdio-ready server with every tool registered
func (r *Registry) NewMCPServer() *server.MCPServer {
	s := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithLogging(),
		server.WithToolCapabilities(true),
	)
	r.Register(s)
	return s
}

func toJSON(v interface{}) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return string(b), nil
}
