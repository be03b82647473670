// Package report implements the research report pipeline: a language model
// plans search questions, a searcher answers them one batch at a time, and
// the model synthesizes the findings into a markdown report.
//
// The pipeline is an explicit finite-state machine. Planning runs once,
// Researching loops while questions remain unanswered, and Synthesizing
// produces the final report. Callers can drive it step by step with Step or
// run it to completion with Run.
package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/haeun-lee/go-beautify/llm"
)

// State identifies the pipeline's current stage.
type State int

const (
	StatePlanning State = iota
	StateResearching
	StateSynthesizing
	StateDone
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StatePlanning:
		return "planning"
	case StateResearching:
		return "researching"
	case StateSynthesizing:
		return "synthesizing"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Pipeline errors.
var (
	ErrNoModel      = errors.New("no language model configured")
	ErrNoSearcher   = errors.New("no searcher configured")
	ErrEmptyInsight = errors.New("insight text cannot be empty")
	ErrNoQuestions  = errors.New("planner produced no questions")
	ErrBadPlan      = errors.New("planner response is not a valid question plan")
	ErrDone         = errors.New("pipeline already finished")
)

// Question is one planned research question.
type Question struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Question string `json:"question"`
	Priority int    `json:"priority"`
}

// Note is the research result for one question.
type Note struct {
	QuestionID string   `json:"question_id"`
	Category   string   `json:"category"`
	Question   string   `json:"question"`
	Priority   int      `json:"priority"`
	Summary    string   `json:"summary"`
	Sources    []string `json:"sources,omitempty"`
}

// Report is the pipeline's final output.
type Report struct {
	Markdown  string
	Questions []Question
	Notes     []Note
}

// Searcher answers a research question with source material. Implementations
// typically wrap a web search API.
type Searcher interface {
	Search(ctx context.Context, query string) (string, error)
}

// Tuning defaults.
const (
	defaultBatchSize = 3
	// Summaries shorter than this trigger one refined retry.
	minSummaryLength = 200
)

// Pipeline drives the plan, research, synthesize state machine. Not safe for
// concurrent use.
type Pipeline struct {
	model    llm.Model
	searcher Searcher

	batchSize int

	state     State
	meta      map[string]string
	insight   string
	questions []Question
	notes     []Note
	markdown  string
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithBatchSize sets how many questions one research step answers.
func WithBatchSize(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.batchSize = n
		}
	}
}

// New creates a Pipeline for one report. meta carries descriptive key/value
// pairs about the subject; insight is the source analysis to deepen.
func New(model llm.Model, searcher Searcher, meta map[string]string, insight string, opts ...Option) (*Pipeline, error) {
	if model == nil {
		return nil, ErrNoModel
	}
	if searcher == nil {
		return nil, ErrNoSearcher
	}
	if strings.TrimSpace(insight) == "" {
		return nil, ErrEmptyInsight
	}

	p := &Pipeline{
		model:     model,
		searcher:  searcher,
		batchSize: defaultBatchSize,
		state:     StatePlanning,
		meta:      meta,
		insight:   insight,
	}
	for _, o := range opts {
		o(p)
	}
	return p, nil
}

// State returns the current stage.
func (p *Pipeline) State() State {
	return p.state
}

// Questions returns the planned questions.
func (p *Pipeline) Questions() []Question {
	return p.questions
}

// Notes returns the research notes collected so far.
func (p *Pipeline) Notes() []Note {
	return p.notes
}

// Step executes one state transition. Researching transitions to itself
// while unanswered questions remain, then to Synthesizing.
func (p *Pipeline) Step(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch p.state {
	case StatePlanning:
		if err := p.plan(ctx); err != nil {
			return err
		}
		p.state = StateResearching
		return nil

	case StateResearching:
		if len(p.pending()) == 0 {
			p.state = StateSynthesizing
			return nil
		}
		if err := p.research(ctx); err != nil {
			return err
		}
		if len(p.pending()) == 0 {
			p.state = StateSynthesizing
		}
		return nil

	case StateSynthesizing:
		if err := p.synthesize(ctx); err != nil {
			return err
		}
		p.state = StateDone
		return nil

	default:
		return ErrDone
	}
}

// Run drives the pipeline to completion and returns the report.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	for p.state != StateDone {
		if err := p.Step(ctx); err != nil {
			return nil, err
		}
	}
	return &Report{
		Markdown:  p.markdown,
		Questions: p.questions,
		Notes:     p.notes,
	}, nil
}

// pending returns the questions without a research note.
func (p *Pipeline) pending() []Question {
	answered := make(map[string]bool, len(p.notes))
	for _, n := range p.notes {
		answered[n.QuestionID] = true
	}

	var pending []Question
	for _, q := range p.questions {
		if !answered[q.ID] {
			pending = append(pending, q)
		}
	}
	return pending
}

// plan asks the model for a question plan and parses it.
func (p *Pipeline) plan(ctx context.Context) error {
	raw, err := p.model.Generate(ctx, plannerSystemPrompt, plannerUserPrompt(p.meta, p.insight))
	if err != nil {
		return fmt.Errorf("planning questions: %w", err)
	}

	questions, err := parseQuestionPlan(raw)
	if err != nil {
		return err
	}
	if len(questions) == 0 {
		return ErrNoQuestions
	}

	p.questions = questions
	return nil
}

// research answers up to batchSize pending questions. A summary below the
// length threshold gets one refined retry; the longer answer wins.
func (p *Pipeline) research(ctx context.Context) error {
	pending := p.pending()
	if len(pending) > p.batchSize {
		pending = pending[:p.batchSize]
	}

	for _, q := range pending {
		summary, err := p.answer(ctx, q.Question)
		if err != nil {
			return fmt.Errorf("researching %q: %w", q.ID, err)
		}

		if len(summary) < minSummaryLength {
			refined := q.Question + " (focus on concrete, recent examples)"
			if retry, err := p.answer(ctx, refined); err == nil && len(retry) > len(summary) {
				summary = retry
			}
		}

		p.notes = append(p.notes, Note{
			QuestionID: q.ID,
			Category:   q.Category,
			Question:   q.Question,
			Priority:   q.Priority,
			Summary:    summary,
		})
	}
	return nil
}

// answer searches for the question and has the model summarize the results.
func (p *Pipeline) answer(ctx context.Context, question string) (string, error) {
	results, err := p.searcher.Search(ctx, question)
	if err != nil {
		return "", err
	}

	summary, err := p.model.Generate(ctx, researcherSystemPrompt, researcherUserPrompt(question, results))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(summary), nil
}

// synthesize combines the insight and research notes into the final
// markdown report.
func (p *Pipeline) synthesize(ctx context.Context) error {
	if len(p.questions) == 0 {
		return ErrNoQuestions
	}

	markdown, err := p.model.Generate(ctx, strategistSystemPrompt, strategistUserPrompt(p.meta, p.insight, p.notes))
	if err != nil {
		return fmt.Errorf("synthesizing report: %w", err)
	}

	p.markdown = strings.TrimSpace(markdown)
	return nil
}

// parseQuestionPlan decodes the planner's JSON response, tolerating a code
// fence around the payload and either a bare array or a {"questions": []}
// wrapper. Missing IDs are filled in positionally.
func parseQuestionPlan(raw string) ([]Question, error) {
	payload := strings.TrimSpace(raw)
	if strings.HasPrefix(payload, "```") {
		payload = strings.TrimPrefix(payload, "```json")
		payload = strings.TrimPrefix(payload, "```")
		payload = strings.TrimSuffix(strings.TrimSpace(payload), "```")
		payload = strings.TrimSpace(payload)
	}

	var questions []Question
	if err := json.Unmarshal([]byte(payload), &questions); err != nil {
		var wrapper struct {
			Questions []Question `json:"questions"`
		}
		if err := json.Unmarshal([]byte(payload), &wrapper); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadPlan, err)
		}
		questions = wrapper.Questions
	}

	for i := range questions {
		if questions[i].ID == "" {
			questions[i].ID = fmt.Sprintf("q%d", i+1)
		}
		if questions[i].Priority == 0 {
			questions[i].Priority = 1
		}
	}
	return questions, nil
}
