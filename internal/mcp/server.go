// Package mcp exposes the classifier and corpus inspection over the Model
// Context Protocol, so an agent can query item facts without shelling out
// to the CLI.
package mcp

import (
	"context"
	"fmt"

	"armory/internal/classify"
	"armory/internal/corpus"
	"armory/internal/logging"
	"armory/internal/qagen"
	"armory/internal/vocab"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP SDK server around a fixed classification policy.
// Tools are stateless; every call re-reads its inputs.
type Server struct {
	MCPServer *sdkmcp.Server

	policy *vocab.Policy
	cls    *classify.Classifier
}

// NewServer creates an MCP server bound to one policy.
func NewServer(policy *vocab.Policy) *Server {
	s := &Server{
		policy: policy,
		cls:    classify.New(policy),
	}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "armory", Version: "dev"},
		nil,
	)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "classify_item",
		Description: "Classify one item name: category, subtype, quality tier, model, armor level, and whether a fuzzy rule decided it.",
	}, s.handleClassifyItem)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "compare_quality",
		Description: "Compare two quality tiers and return the better one with the full tier order.",
	}, s.handleCompareQuality)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "corpus_stats",
		Description: "Load a QA corpus file and report record totals, per-task-type counts, and answer polarity.",
	}, s.handleCorpusStats)
}

// --- Tool input/output types ---

type classifyItemInput struct {
	Name string `json:"name" jsonschema:"raw item name to classify"`
}

type classifyItemOutput struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	Subtype   string `json:"subtype,omitempty"`
	Quality   string `json:"quality,omitempty"`
	Model     string `json:"model,omitempty"`
	Level     int    `json:"level,omitempty"`
	Rule      string `json:"rule"`
	Heuristic bool   `json:"heuristic,omitempty"`
}

type compareQualityInput struct {
	A string `json:"a" jsonschema:"first quality tier"`
	B string `json:"b" jsonschema:"second quality tier"`
}

type compareQualityOutput struct {
	Better string `json:"better,omitempty"`
	Equal  bool   `json:"equal,omitempty"`
	Order  string `json:"order"`
}

type corpusStatsInput struct {
	Path string `json:"path" jsonschema:"path to a QA corpus JSON file"`
}

type corpusStatsOutput struct {
	Total       int            `json:"total"`
	TaskTypes   map[string]int `json:"task_types,omitempty"`
	Affirmative int            `json:"affirmative"`
	Negative    int            `json:"negative"`
	Other       int            `json:"other"`
}

// --- Tool handlers ---

func (s *Server) handleClassifyItem(ctx context.Context, _ *sdkmcp.CallToolRequest, input classifyItemInput) (*sdkmcp.CallToolResult, classifyItemOutput, error) {
	if input.Name == "" {
		return nil, classifyItemOutput{}, fmt.Errorf("name is required")
	}
	c := s.cls.Classify(input.Name)
	return nil, classifyItemOutput{
		Name:      c.Name,
		Category:  string(c.Category),
		Subtype:   c.Subtype,
		Quality:   c.Quality,
		Model:     c.Model,
		Level:     c.Level,
		Rule:      c.Rule,
		Heuristic: c.Heuristic,
	}, nil
}

func (s *Server) handleCompareQuality(ctx context.Context, _ *sdkmcp.CallToolRequest, input compareQualityInput) (*sdkmcp.CallToolResult, compareQualityOutput, error) {
	v := s.policy.Vocab
	for _, tier := range []string{input.A, input.B} {
		if v.QualityRank(tier) < 0 {
			return nil, compareQualityOutput{}, fmt.Errorf("unknown quality tier %q", tier)
		}
	}

	out := compareQualityOutput{Order: v.QualityChain()}
	switch v.CompareQuality(input.A, input.B) {
	case 0:
		out.Equal = true
	case 1:
		out.Better = input.A
	default:
		out.Better = input.B
	}
	return nil, out, nil
}

func (s *Server) handleCorpusStats(ctx context.Context, _ *sdkmcp.CallToolRequest, input corpusStatsInput) (*sdkmcp.CallToolResult, corpusStatsOutput, error) {
	logger := logging.New("mcp")
	records, err := corpus.Load(input.Path)
	if err != nil {
		return nil, corpusStatsOutput{}, fmt.Errorf("corpus_stats: %w", err)
	}
	logger.Info("corpus loaded", "path", input.Path, "records", len(records))

	pol := qagen.Polarity(records)
	return nil, corpusStatsOutput{
		Total:       pol.Total,
		TaskTypes:   corpus.TaskTypeCounts(records),
		Affirmative: pol.Affirmative,
		Negative:    pol.Negative,
		Other:       pol.Other,
	}, nil
}
