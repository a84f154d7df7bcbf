package model

// SoloRound is one round of the single-player game: an image plus the hand
// of candidate captions dealt to the human.
type SoloRound struct {
	Image MemeImage     `json:"image"`
	Hand  []CaptionCard `json:"hand"`
}

// SoloOutcome is the judged result of a solo round.
type SoloOutcome struct {
	PlayerCard CaptionCard `json:"playerCard"`
	AICard     CaptionCard `json:"aiCard"`
	Result     JudgeResult `json:"result"`
}
