// Package planner orchestrates LLM-assisted day planning. It builds a
// prompt from the day's existing blocks, asks the model for a JSON
// proposal, validates it against scheduling constraints, and retries with
// error feedback when the proposal is invalid.
package planner

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Alienware2000/intentionality/internal/block"
	"github.com/Alienware2000/intentionality/internal/config"
	"github.com/Alienware2000/intentionality/internal/llm"
)

// ErrMaxRetriesExceeded is returned when every retry attempt fails validation.
var ErrMaxRetriesExceeded = errors.New("maximum retries exceeded, validation still failing")

const systemPrompt = `You are a day-planning assistant. Today is %s, %s. The current time is %s.

The user plans their day as time blocks. Each block has:
- title: short description
- kind: one of "class" (fixed commitment), "habit" (recurring routine), "task" (one-off work)
- date: YYYY-MM-DD
- start, end: HH:MM in 24-hour time, end after start

The user's preferred scheduling window is %s to %s.

%s
User request: %s

Respond ONLY with valid JSON in exactly this shape:
{
  "blocks": [
    {"title": "...", "kind": "task", "date": "%s", "start": "09:00", "end": "10:30"}
  ],
  "warnings": [],
  "suggestions": []
}

Rules:
- Do not overlap the existing blocks listed above.
- Do not overlap proposed blocks with each other.
- Keep blocks inside the preferred window unless the user asks otherwise.
- "today" means %s. Do not schedule anything before the current time %s.`

// Proposal is the parsed JSON response from the model.
type Proposal struct {
	Blocks      []ProposedBlock `json:"blocks"`
	Warnings    []string        `json:"warnings"`
	Suggestions []string        `json:"suggestions"`
}

// ProposedBlock is a single block proposed by the model.
type ProposedBlock struct {
	Title string `json:"title"`
	Kind  string `json:"kind"`
	Date  string `json:"date"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// Request contains the input for a planning run.
type Request struct {
	Input string    // natural language description of what to plan
	Date  time.Time // the day being planned
}

// Result contains the outcome of a planning run.
type Result struct {
	Blocks      []ProposedBlock
	Warnings    []string
	Suggestions []string

	// Populated when retries are exhausted.
	ValidationErrors []ValidationError
}

// HasValidationErrors reports whether the proposal could not be fully validated.
func (r *Result) HasValidationErrors() bool {
	return len(r.ValidationErrors) > 0
}

// Planner plans blocks from natural language input.
type Planner struct {
	client llm.Client
	repo   block.Repository
	cfg    *config.Config
}

// New creates a Planner with the given dependencies.
func New(client llm.Client, cfg *config.Config, repo block.Repository) *Planner {
	return &Planner{client: client, repo: repo, cfg: cfg}
}

// Plan runs the full planning loop: fetch existing blocks, prompt the
// model, validate, and retry up to maxRetries times with error feedback.
func (p *Planner) Plan(ctx context.Context, req Request, maxRetries int) (*Result, error) {
	existing, err := p.repo.ListBlocksByDate(ctx, req.Date)
	if err != nil {
		return nil, fmt.Errorf("fetching existing blocks: %w", err)
	}

	messages := p.buildMessages(req, existing)
	validator := NewValidator(time.Now(), existing)

	var lastResult ValidationResult
	var lastProposal Proposal
	for attempt := 0; attempt <= maxRetries; attempt++ {
		var proposal Proposal
		if err := p.client.ChatJSON(ctx, messages, &proposal); err != nil {
			return nil, fmt.Errorf("planning request: %w", err)
		}

		result := validator.Validate(proposal.Blocks)
		if result.Valid {
			return &Result{
				Blocks:      proposal.Blocks,
				Warnings:    proposal.Warnings,
				Suggestions: proposal.Suggestions,
			}, nil
		}

		lastResult = result
		lastProposal = proposal
		messages = append(messages,
			llm.Message{Role: "assistant", Content: formatProposal(proposal)},
			llm.Message{Role: "user", Content: result.FormatErrors()},
		)
	}

	return &Result{
		Blocks:           lastProposal.Blocks,
		Warnings:         lastProposal.Warnings,
		Suggestions:      lastProposal.Suggestions,
		ValidationErrors: lastResult.Errors,
	}, ErrMaxRetriesExceeded
}

// Apply persists the proposed blocks.
func (p *Planner) Apply(ctx context.Context, proposed []ProposedBlock) ([]*block.Block, error) {
	blocks := make([]*block.Block, 0, len(proposed))
	for _, pb := range proposed {
		b, err := block.New(pb.Title, pb.Kind, pb.Date, pb.Start, pb.End)
		if err != nil {
			return nil, fmt.Errorf("block %q: %w", pb.Title, err)
		}
		blocks = append(blocks, b)
	}
	if err := p.repo.CreateBlocks(ctx, blocks); err != nil {
		return nil, fmt.Errorf("saving blocks: %w", err)
	}
	return blocks, nil
}

func (p *Planner) buildMessages(req Request, existing []*block.Block) []llm.Message {
	date := req.Date.Format("2006-01-02")
	day := req.Date.Format("Monday")
	now := time.Now().Format("15:04")
	winStart := fmt.Sprintf("%02d:00", p.cfg.Schedule.DefaultStartHour)
	winEnd := fmt.Sprintf("%02d:00", p.cfg.Schedule.DefaultEndHour)

	prompt := fmt.Sprintf(systemPrompt,
		day, date, now,
		winStart, winEnd,
		formatExisting(existing),
		req.Input,
		date,
		date, now,
	)

	return []llm.Message{{Role: "system", Content: prompt}}
}

func formatExisting(blocks []*block.Block) string {
	if len(blocks) == 0 {
		return "Existing blocks: none.\n"
	}

	sorted := append([]*block.Block(nil), blocks...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	var sb strings.Builder
	sb.WriteString("Existing blocks (do not overlap these):\n")
	for _, b := range sorted {
		sb.WriteString(fmt.Sprintf("- %s-%s %s [%s]\n", b.Start, b.End, b.Title, b.Kind))
	}
	return sb.String()
}

func formatProposal(p Proposal) string {
	var sb strings.Builder
	sb.WriteString(`{"blocks":[`)
	for i, b := range p.Blocks {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(fmt.Sprintf(`{"title":%q,"kind":%q,"date":%q,"start":%q,"end":%q}`,
			b.Title, b.Kind, b.Date, b.Start, b.End))
	}
	sb.WriteString(`]}`)
	return sb.String()
}
