package green

// TagPair is `[ TagName TagValue ]`, represented as the ordered list of
// elements actually seen — which, for malformed input, may omit the name,
// the value, either bracket, or repeat one of them. A TagPair's element
// list is never empty: a tag pair is only created once at least one
// element has been seen.
type TagPair struct {
	Elements []WithTrivia
}

func (t *TagPair) Length() int {
	n := 0
	for _, e := range t.Elements {
		n += e.Length()
	}
	return n
}

func (t *TagPair) IsTerminal() bool { return false }
func (t *TagPair) ChildCount() int  { return len(t.Elements) }
func (t *TagPair) Child(i int) Node { return t.Elements[i] }

// Game is a tag section, a ply list, and an optional game-result (with its
// own leading trivia) — nil if the game ended without a termination marker.
type Game struct {
	Tags   []*TagPair
	Plies  *PlyList
	Result *WithTrivia
}

func (g *Game) Length() int {
	n := 0
	for _, t := range g.Tags {
		n += t.Length()
	}
	n += g.Plies.Length()
	if g.Result != nil {
		n += g.Result.Length()
	}
	return n
}

func (g *Game) IsTerminal() bool { return false }

func (g *Game) ChildCount() int {
	n := len(g.Tags) + 1
	if g.Result != nil {
		n++
	}
	return n
}

func (g *Game) Child(i int) Node {
	if i < len(g.Tags) {
		return g.Tags[i]
	}
	i -= len(g.Tags)
	if i == 0 {
		return g.Plies
	}
	if i == 1 && g.Result != nil {
		return *g.Result
	}
	panic("green: Game child index out of range")
}

// GameList is the root node: an ordered sequence of games plus trailing
// trivia belonging to no game.
type GameList struct {
	Games    []*Game
	Trailing Trivia
}

func (gl *GameList) Length() int {
	n := 0
	for _, g := range gl.Games {
		n += g.Length()
	}
	return n + gl.Trailing.Length()
}

func (gl *GameList) IsTerminal() bool { return false }

func (gl *GameList) ChildCount() int {
	return len(gl.Games) + gl.Trailing.ChildCount()
}

func (gl *GameList) Child(i int) Node {
	if i < len(gl.Games) {
		return gl.Games[i]
	}
	return gl.Trailing.Child(i - len(gl.Games))
}
