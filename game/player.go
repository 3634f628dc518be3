package game

import (
	"fmt"
	"strings"
)

// Player identifies one of the four seats. The zero value marks an empty cell.
type Player int

const (
	NoPlayer Player = iota
	Red             // player1, starts at (0,0)
	Blue            // player2, starts at (Width-1,0)
	Green           // player3, starts at (Width-1,Height-1)
	Yellow          // player4, starts at (0,Height-1)
)

const NumPlayers = 4

// Players lists the four seats in turn order.
var Players = [NumPlayers]Player{Red, Blue, Green, Yellow}

var playerNames = map[Player]string{
	NoPlayer: "none",
	Red:      "red",
	Blue:     "blue",
	Green:    "green",
	Yellow:   "yellow",
}

func (p Player) Valid() bool {
	return p >= Red && p <= Yellow
}

func (p Player) String() string {
	if name, ok := playerNames[p]; ok {
		return name
	}
	return fmt.Sprintf("player(%d)", int(p))
}

// Next returns the seat that plays after p.
func (p Player) Next() Player {
	return Players[int(p)%NumPlayers]
}

func (p Player) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("cannot marshal %s", p)
	}
	return []byte(p.String()), nil
}

func (p *Player) UnmarshalText(text []byte) error {
	parsed, err := ParsePlayer(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePlayer accepts a color name, "player1".."player4" or "1".."4".
func ParsePlayer(s string) (Player, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, p := range Players {
		if s == playerNames[p] || s == fmt.Sprintf("player%d", int(p)) || s == fmt.Sprintf("%d", int(p)) {
			return p, nil
		}
	}
	return NoPlayer, fmt.Errorf("unknown player %q", s)
}
