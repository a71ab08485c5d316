package game

import "errors"

var ErrGameOver = errors.New("game is over - no moves allowed")

// Agent decides moves for one player. PickIndex is called once per turn
// and must return an index the active player may legally start from;
// an illegal index panics in the sequencer, so agents validate or retry.
type Agent interface {
	PickIndex(game View) int
}

// View is the read-only face of a Game handed to agents. Every accessor
// returns copies.
type View interface {
	Direction() Direction
	Mode() Mode
	TurnCount() int
	Turn() Turn
	// Current is the player about to move
	Current() Player
	Opponent() Player
	Player(t Turn) Player
	// Position is the current board seen from the active player
	Position() Position
}

// GameResult is produced once, when a move wins or loses the game.
type GameResult struct {
	Winner    Player
	Loser     Player
	TurnCount int
}

// Game sequences turns between two players and delegates every move to
// ApplyMove.
type Game struct {
	direction Direction
	mode      Mode
	turnCount int
	player1   Player
	player2   Player
	result    *GameResult
}

// NewGame starts a game at turn 1 with player1 to move. Players keep the
// boards they are given; NewPlayer seeds a standard board.
func NewGame(direction Direction, mode Mode, player1, player2 Player) *Game {
	return &Game{
		direction: direction,
		mode:      mode,
		turnCount: 1,
		player1:   player1,
		player2:   player2,
	}
}

func (g *Game) Direction() Direction { return g.direction }
func (g *Game) Mode() Mode           { return g.mode }
func (g *Game) TurnCount() int       { return g.turnCount }

// Turn derives the active seat from the parity of the turn count.
func (g *Game) Turn() Turn {
	if g.turnCount%2 == 1 {
		return Player1
	}
	return Player2
}

func (g *Game) Player(t Turn) Player {
	if t == Player1 {
		return g.player1
	}
	return g.player2
}

func (g *Game) Current() Player  { return g.Player(g.Turn()) }
func (g *Game) Opponent() Player { return g.Player(g.Turn().Other()) }

func (g *Game) Position() Position {
	return Position{
		Direction: g.direction,
		Mode:      g.mode,
		Mover:     g.Current().Board,
		Opponent:  g.Opponent().Board,
	}
}

// View wraps the game so agents cannot reach its mutating methods.
func (g *Game) View() View {
	return view{g: g}
}

type view struct {
	g *Game
}

func (v view) Direction() Direction { return v.g.Direction() }
func (v view) Mode() Mode           { return v.g.Mode() }
func (v view) TurnCount() int       { return v.g.TurnCount() }
func (v view) Turn() Turn           { return v.g.Turn() }
func (v view) Current() Player      { return v.g.Current() }
func (v view) Opponent() Player     { return v.g.Opponent() }
func (v view) Player(t Turn) Player { return v.g.Player(t) }
func (v view) Position() Position   { return v.g.Position() }

// Over reports whether a result has been reached
func (g *Game) Over() bool {
	return g.result != nil
}

// Result returns the final result once the game is over
func (g *Game) Result() (GameResult, bool) {
	if g.result == nil {
		return GameResult{}, false
	}
	return *g.result, true
}

// Play runs turns until a move wins or loses the game.
func (g *Game) Play(agent1, agent2 Agent) GameResult {
	for g.result == nil {
		agent := agent1
		if g.Turn() == Player2 {
			agent = agent2
		}
		g.settle(g.MakeMove(agent))
	}
	return *g.result
}

// MakeMove asks agent for an index and applies it for the active player.
// The turn does not advance; Play and Advance take care of that. Calling
// MakeMove on a finished game panics with ErrGameOver before agent is asked.
func (g *Game) MakeMove(agent Agent) MoveResult {
	if g.result != nil {
		panic(ErrGameOver)
	}
	return g.apply(agent.PickIndex(g.View()))
}

// Advance applies an index chosen elsewhere for the active player, then
// either ends the game or passes the turn.
func (g *Game) Advance(index int) (MoveResult, error) {
	if g.result != nil {
		return MoveResult{}, ErrGameOver
	}
	result := g.apply(index)
	g.settle(result)
	return result, nil
}

// movers selects the live boards by turn parity. The two pointers never
// alias.
func (g *Game) movers() (player, opponent *Player) {
	if g.Turn() == Player1 {
		return &g.player1, &g.player2
	}
	return &g.player2, &g.player1
}

func (g *Game) apply(index int) MoveResult {
	player, opponent := g.movers()
	if !player.Board.IsValidIndex(index) {
		panic(illegalIndex(index, &player.Board))
	}
	return ApplyMove(g.direction, g.mode, index, &player.Board, &opponent.Board)
}

func (g *Game) settle(result MoveResult) {
	turn := g.Turn()
	switch {
	case (result.Outcome == Won && turn == Player1) || (result.Outcome == Lost && turn == Player2):
		g.result = &GameResult{Winner: g.player1, Loser: g.player2, TurnCount: g.turnCount}
	case (result.Outcome == Lost && turn == Player1) || (result.Outcome == Won && turn == Player2):
		g.result = &GameResult{Winner: g.player2, Loser: g.player1, TurnCount: g.turnCount}
	default:
		g.turnCount++
	}
}
