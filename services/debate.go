package services

import (
	"context"
	"fmt"
	"strings"

	"arguecoach/models"
)

const summaryMaxWords = 25

// DebateBot generates debates and counter-arguments; the model behind it is a
// black box.
type DebateBot interface {
	RunDebate(ctx context.Context, topic string) (models.DebateResponse, error)
	CounterArgument(ctx context.Context, req models.CounterRequest) (models.CounterResponse, error)
}

// DebateService generates full bot-vs-bot debates and live counter-arguments
// with the Gemini API.
type DebateService struct {
	Model string

	// generate defaults to the shared Gemini client; tests substitute it.
	generate func(ctx context.Context, modelName, prompt string) (string, error)
}

func NewDebateService(model string) *DebateService {
	return &DebateService{Model: model, generate: generateModelText}
}

func (d *DebateService) generateText(ctx context.Context, prompt string) (string, error) {
	gen := d.generate
	if gen == nil {
		gen = generateModelText
	}
	return gen(ctx, d.Model, prompt)
}

// RunDebate simulates a full debate on the motion: openings, cross rebuttals,
// then closings that each see the side's own opening and the opponent's
// rebuttal.
func (d *DebateService) RunDebate(ctx context.Context, topic string) (models.DebateResponse, error) {
	propOpening, err := d.generateArgument(ctx, topic, models.SideProposition, models.RoundOpening, "")
	if err != nil {
		return models.DebateResponse{}, err
	}
	oppOpening, err := d.generateArgument(ctx, topic, models.SideOpposition, models.RoundOpening, "")
	if err != nil {
		return models.DebateResponse{}, err
	}

	propRebuttal, err := d.generateArgument(ctx, topic, models.SideProposition, models.RoundRebuttal, oppOpening)
	if err != nil {
		return models.DebateResponse{}, err
	}
	oppRebuttal, err := d.generateArgument(ctx, topic, models.SideOpposition, models.RoundRebuttal, propOpening)
	if err != nil {
		return models.DebateResponse{}, err
	}

	propHistory := fmt.Sprintf("Your Opening: %s\nOpponent's Rebuttal: %s", propOpening, oppRebuttal)
	oppHistory := fmt.Sprintf("Your Opening: %s\nOpponent's Rebuttal: %s", oppOpening, propRebuttal)

	propClosing, err := d.generateArgument(ctx, topic, models.SideProposition, models.RoundClosing, propHistory)
	if err != nil {
		return models.DebateResponse{}, err
	}
	oppClosing, err := d.generateArgument(ctx, topic, models.SideOpposition, models.RoundClosing, oppHistory)
	if err != nil {
		return models.DebateResponse{}, err
	}

	return models.DebateResponse{
		Topic: topic,
		Proposition: models.DebateSide{
			Opening:  models.StageArgument{Summary: summarize(propOpening, summaryMaxWords), Full: propOpening},
			Rebuttal: models.StageArgument{Summary: summarize(propRebuttal, summaryMaxWords), Full: propRebuttal},
			Closing:  models.StageArgument{Summary: summarize(propClosing, summaryMaxWords), Full: propClosing},
		},
		Opposition: models.DebateSide{
			Opening:  models.StageArgument{Summary: summarize(oppOpening, summaryMaxWords), Full: oppOpening},
			Rebuttal: models.StageArgument{Summary: summarize(oppRebuttal, summaryMaxWords), Full: oppRebuttal},
			Closing:  models.StageArgument{Summary: summarize(oppClosing, summaryMaxWords), Full: oppClosing},
		},
	}, nil
}

func (d *DebateService) generateArgument(ctx context.Context, topic, side, round, history string) (string, error) {
	text, err := d.generateText(ctx, debatePrompt(topic, side, round, history))
	if err != nil {
		return "", fmt.Errorf("failed to generate %s %s: %w", side, round, err)
	}
	return text, nil
}

func debatePrompt(topic, side, round, history string) string {
	switch round {
	case models.RoundOpening:
		return fmt.Sprintf(
			`You are a world-class debater participating in a formal debate.
Motion: %s
Your Stance: %s

Write a compelling, concise opening statement (max 150 words).
Present 2-3 clear, distinct arguments. Be persuasive and articulate.`,
			topic, side,
		)
	case models.RoundRebuttal:
		return fmt.Sprintf(
			`You are a world-class debater.
Motion: %s
Your Stance: %s

OPPONENT'S ARGUMENTS:
%s

Write a sharp rebuttal (max 150 words) countering the opponent's points.
Address their specific arguments and provide counter-evidence.`,
			topic, side, history,
		)
	default:
		return fmt.Sprintf(
			`You are a world-class debater giving your closing argument.
Motion: %s
Your Stance: %s

DEBATE SO FAR:
%s

Write a powerful closing statement (max 150 words).
Summarize your strongest points and make a final appeal.`,
			topic, side, history,
		)
	}
}

// CounterArgument generates the opposition's counter to the user's argument
// for the given round, aware of the prior exchanges.
func (d *DebateService) CounterArgument(ctx context.Context, req models.CounterRequest) (models.CounterResponse, error) {
	text, err := d.generateText(ctx, counterPrompt(req))
	if err != nil {
		return models.CounterResponse{}, fmt.Errorf("failed to generate counter-argument: %w", err)
	}

	return models.CounterResponse{
		CounterArgument: text,
		Points:          splitPoints(text),
	}, nil
}

func counterPrompt(req models.CounterRequest) string {
	var history strings.Builder
	if len(req.ArgumentHistory) > 0 {
		history.WriteString("\n\nPREVIOUS EXCHANGES:\n")
		for _, exchange := range req.ArgumentHistory {
			if exchange.Type == "user" {
				fmt.Fprintf(&history, "USER'S ARGUMENT: %s\n", exchange.Text)
			} else {
				fmt.Fprintf(&history, "AI COUNTER: %s\n", exchange.Text)
			}
		}
	}

	switch req.Round {
	case models.RoundOpening:
		return fmt.Sprintf(
			`You are an expert AI debater analyzing and countering arguments.
Motion: %s
Your Role: Opposition (countering the user's position)

USER'S OPENING ARGUMENT:
%s%s

Generate a compelling counter-argument (max 200 words) that:
1. Acknowledges the user's point briefly
2. Presents clear counter-evidence or reasoning
3. Explains why the opposing view is stronger

Be analytical, respectful, and persuasive. Write in a formal debate style.`,
			req.Topic, req.UserArgument, history.String(),
		)
	case models.RoundRebuttal:
		return fmt.Sprintf(
			`You are an expert AI debater in a rebuttal round.
Motion: %s
Your Role: Opposition (countering the user's position)

USER'S REBUTTAL ARGUMENT:
%s%s

Generate a sharp rebuttal (max 200 words) that:
1. Directly addresses the user's specific points
2. Identifies weaknesses in their reasoning
3. Reinforces your counter-position with evidence

Be analytical and point out logical gaps. Maintain a respectful but firm debate tone.`,
			req.Topic, req.UserArgument, history.String(),
		)
	default:
		return fmt.Sprintf(
			`You are an expert AI debater giving a closing counter-argument.
Motion: %s
Your Role: Opposition (summarizing why the user's position is weaker)

USER'S CLOSING ARGUMENT:
%s%s

Generate a powerful closing counter-argument (max 200 words) that:
1. Summarizes the key weaknesses in the user's overall position
2. Highlights the strongest points from your counter-arguments
3. Makes a compelling final case for the opposing view

Be persuasive and conclusive.`,
			req.Topic, req.UserArgument, history.String(),
		)
	}
}

// summarize returns the first sentence, truncated to maxWords words.
func summarize(content string, maxWords int) string {
	first := strings.TrimSpace(strings.Split(content, ".")[0])
	words := strings.Fields(first)
	if len(words) > maxWords {
		return strings.Join(words[:maxWords], " ") + "..."
	}
	return first + "."
}

// splitPoints breaks the counter-argument into display points, one per
// paragraph. Point ids keep the paragraph's position so blank paragraphs leave
// gaps rather than renumbering.
func splitPoints(text string) []models.CounterPoint {
	var points []models.CounterPoint
	for i, para := range strings.Split(strings.TrimSpace(text), "\n\n") {
		if trimmed := strings.TrimSpace(para); trimmed != "" {
			points = append(points, models.CounterPoint{ID: i + 1, Text: trimmed})
		}
	}
	if len(points) == 0 {
		points = []models.CounterPoint{{ID: 1, Text: strings.TrimSpace(text)}}
	}
	return points
}
