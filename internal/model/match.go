package model

import "time"

// Standing is one player's final placement in a finished game.
type Standing struct {
	PlayerID string `json:"playerId" bson:"playerId"`
	Name     string `json:"name" bson:"name"`
	Score    int    `json:"score" bson:"score"`
	Rank     int    `json:"rank" bson:"rank"`
}

// MatchResult is the durable record of a finished room, archived once the
// room reaches LEADERBOARD.
type MatchResult struct {
	RoomCode   string     `json:"roomCode" bson:"roomCode"`
	ThemeID    string     `json:"themeId" bson:"themeId"`
	Rounds     int        `json:"rounds" bson:"rounds"`
	Standings  []Standing `json:"standings" bson:"standings"`
	FinishedAt time.Time  `json:"finishedAt" bson:"finishedAt"`
}
