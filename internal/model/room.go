package model

import "time"

type RoomStatus string

const (
	RoomStatusLobby       RoomStatus = "LOBBY"
	RoomStatusPlaying     RoomStatus = "PLAYING"
	RoomStatusVoting      RoomStatus = "VOTING"
	RoomStatusLeaderboard RoomStatus = "LEADERBOARD"
)

// Room is the unit of a multiplayer session, keyed by its code.
type Room struct {
	Code          string        `json:"code" bson:"code"`
	HostID        string        `json:"hostId" bson:"hostId"`
	ThemeID       string        `json:"themeId" bson:"themeId"`
	Status        RoomStatus    `json:"status" bson:"status"`
	Players       []Player      `json:"players" bson:"players"`
	CurrentRound  int           `json:"currentRound" bson:"currentRound"`
	MaxRounds     int           `json:"maxRounds" bson:"maxRounds"`
	CurrentImage  *MemeImage    `json:"currentImage" bson:"currentImage"`
	RoundCaptions []CaptionCard `json:"roundCaptions" bson:"roundCaptions"`

	// Version increases on every mutation. Clients must never apply a
	// snapshot with a lower version over one they already hold.
	Version   int64     `json:"version" bson:"version"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// Player is a seat in a room. Identity fields are copied at join time;
// a later identity change does not reach back into the room.
type Player struct {
	ID          string       `json:"id" bson:"id"`
	Name        string       `json:"name" bson:"name"`
	Avatar      string       `json:"avatar" bson:"avatar"`
	Score       int          `json:"score" bson:"score"`
	IsHost      bool         `json:"isHost" bson:"isHost"`
	CurrentCard *CaptionCard `json:"currentCard" bson:"currentCard"`
	JoinedAt    time.Time    `json:"joinedAt" bson:"joinedAt"`
}

// CaptionCard is a single submitted caption. OwnerID is empty for
// AI-authored cards in solo play.
type CaptionCard struct {
	ID      string `json:"id" bson:"id"`
	Text    string `json:"text" bson:"text"`
	OwnerID string `json:"ownerId,omitempty" bson:"ownerId,omitempty"`
	IsAI    bool   `json:"isAi,omitempty" bson:"isAi,omitempty"`
}

// FindPlayer returns the seat for the given identity, or nil.
func (r *Room) FindPlayer(playerID string) *Player {
	for i := range r.Players {
		if r.Players[i].ID == playerID {
			return &r.Players[i]
		}
	}
	return nil
}

// FindCaption returns the round caption with the given card id, or nil.
func (r *Room) FindCaption(cardID string) *CaptionCard {
	for i := range r.RoundCaptions {
		if r.RoundCaptions[i].ID == cardID {
			return &r.RoundCaptions[i]
		}
	}
	return nil
}

// AllSubmitted reports whether every seated player holds a card this round.
func (r *Room) AllSubmitted() bool {
	if len(r.Players) == 0 {
		return false
	}
	for i := range r.Players {
		if r.Players[i].CurrentCard == nil {
			return false
		}
	}
	return true
}

// Clone returns a deep copy so callers never alias a stored room.
func (r *Room) Clone() *Room {
	cp := *r
	cp.Players = make([]Player, len(r.Players))
	for i, p := range r.Players {
		if p.CurrentCard != nil {
			card := *p.CurrentCard
			p.CurrentCard = &card
		}
		cp.Players[i] = p
	}
	cp.RoundCaptions = append([]CaptionCard(nil), r.RoundCaptions...)
	if r.CurrentImage != nil {
		img := *r.CurrentImage
		cp.CurrentImage = &img
	}
	return &cp
}
