package models

// Debate rounds for the bot debater.
const (
	RoundOpening  = "opening"
	RoundRebuttal = "rebuttal"
	RoundClosing  = "closing"
)

// Debate sides.
const (
	SideProposition = "Proposition"
	SideOpposition  = "Opposition"
)

// DebateRequest starts a full bot-vs-bot debate on a motion.
type DebateRequest struct {
	Topic string `json:"topic" binding:"required"`
}

// StageArgument is one generated statement with its one-line summary.
type StageArgument struct {
	Summary string `json:"summary"`
	Full    string `json:"full"`
}

// DebateSide holds one side's statements across all three rounds.
type DebateSide struct {
	Opening  StageArgument `json:"opening"`
	Rebuttal StageArgument `json:"rebuttal"`
	Closing  StageArgument `json:"closing"`
}

// DebateResponse is the full simulated debate.
type DebateResponse struct {
	Topic       string     `json:"topic"`
	Proposition DebateSide `json:"proposition"`
	Opposition  DebateSide `json:"opposition"`
}

// CounterExchange is one prior turn in a live debate, either the user's
// argument or the bot's counter.
type CounterExchange struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// CounterRequest asks the bot to counter the user's argument for one round.
type CounterRequest struct {
	Topic           string            `json:"topic" binding:"required"`
	UserArgument    string            `json:"user_argument" binding:"required"`
	Round           string            `json:"round" binding:"required"`
	ArgumentHistory []CounterExchange `json:"argument_history"`
}

// CounterPoint is one paragraph of the counter-argument for structured display.
type CounterPoint struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

// CounterResponse is the bot's counter-argument with its point breakdown.
type CounterResponse struct {
	CounterArgument string         `json:"counter_argument"`
	Points          []CounterPoint `json:"points"`
}
