package model

// JudgeVerdict names the winner of a judged pair of captions.
type JudgeVerdict string

const (
	VerdictUser JudgeVerdict = "user"
	VerdictAI   JudgeVerdict = "ai"
	VerdictTie  JudgeVerdict = "tie"
)

// JudgeResult is the oracle's ruling on one round.
type JudgeResult struct {
	Winner     JudgeVerdict `json:"winner"`
	UserScore  int          `json:"userScore"`
	AIScore    int          `json:"aiScore"`
	Commentary string       `json:"commentary"`
	Funniest   string       `json:"funniestCaption"`
}
