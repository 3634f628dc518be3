// meta/meta.go
package meta

// MaxTurns caps a local game. A full game needs at most 84 placements plus
// passes, so this is only hit by broken agents.
const MaxTurns = 400

// DefaultAddr is where the host listens unless configured otherwise.
const DefaultAddr = ":8787"

// DefaultGames is the number of self-play games per experiment.
const DefaultGames = 4
