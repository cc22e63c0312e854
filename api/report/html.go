/* html.go
 * Contains the HTML report of scored entries. Each entry is a block of rows with one column group per round, the
 * matchups of a round stacked down its column group
 */

package report

import (
	"fmt"
	"html/template"
	"io"

	"playoff-bracket/api/bracket"
	"playoff-bracket/api/logic"
)

const (
	favorableBackground   = "#b3ffb3"
	unfavorableBackground = "#ffb3b3"
	favorableFont         = "#006600"
	unfavorableFont       = "#cc0000"
)

var rounds = []bracket.RoundKind{bracket.WildCard, bracket.Divisional, bracket.Conference, bracket.Final}

// Page is everything the report shows
type Page struct {
	Title   string
	Layout  bracket.Layout
	Entries []*bracket.Bracket
	// FinalTotal is the real Super Bowl total used to order tied entries, or -1 when it is not known
	FinalTotal int
}

type teamCell struct {
	Name       string
	Background string
	Emphasize  bool
	Font       string
}

type gameCells struct {
	A, B   teamCell
	Points int
}

type row struct {
	First      bool
	Owner      string
	Score      int
	Tiebreaker int
	Games      []*gameCells // nil where the round has no matchup on this row
}

var page = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <title>{{.Title}}</title>
    <style>
    html { font-family: sans-serif; }
    table { border-collapse: collapse; border: 2px solid rgb(200,200,200); letter-spacing: 1px; font-size: 0.8rem; }
    td, th { border: 1px solid rgb(190,190,190); padding: 4px 16px; }
    td { text-align: center; }
    </style>
  </head>
  <body>
  <table border=1>
    <tr>
    <th>Name</th><th>Final Points</th><th>Tie Brk</th>{{range .Rounds}}<th colspan="2">{{.}}</th><th>Pts</th>{{end}}
    </tr>
{{- range .Rows}}
    <tr>
    {{if .First}}<th>{{.Owner}}</th><th>{{.Score}}</th><td>{{.Tiebreaker}}</td>{{else}}<td></td><td></td><td></td>{{end}}
    {{- range .Games}}{{if .}}{{template "team" .A}}{{template "team" .B}}<td>{{.Points}}</td>{{else}}<td></td><td></td><td></td>{{end}}{{end}}
    </tr>
{{- end}}
  </table>
  </body>
</html>
{{define "team"}}{{if .Background}}<td bgcolor="{{.Background}}">{{else}}<td>{{end}}{{if .Emphasize}}<b><u>{{if .Font}}<font color="{{.Font}}">{{.Name}}</font>{{else}}{{.Name}}{{end}}</u></b>{{else}}{{.Name}}{{end}}</td>{{end}}`))

// HTML writes the report of scored entries, ordered by the standings
// Preconditions: Receives the writer and the Page. Every entry must hold the slots of the layout
// Postconditions: Writes a complete HTML document, or returns an error if a slot is missing or the write fails
func HTML(w io.Writer, p Page) error {
	var headers []string
	var columns [][]string
	for _, kind := range rounds {
		slots := p.Layout.SlotsOfKind(kind)
		if len(slots) == 0 {
			continue
		}
		headers = append(headers, header(kind))
		columns = append(columns, slots)
	}

	depth := 0
	for _, slots := range columns {
		if len(slots) > depth {
			depth = len(slots)
		}
	}

	var rows []row
	for _, entry := range logic.SortBrackets(p.Entries, p.FinalTotal) {
		views := make([][]logic.MatchupView, len(columns))
		for c, slots := range columns {
			projected, err := logic.ProjectBracket(entry, slots)
			if err != nil {
				return fmt.Errorf("entry %s: %w", entry.Owner(), err)
			}
			views[c] = projected
		}

		for line := 0; line < depth; line++ {
			r := row{
				First:      line == 0,
				Owner:      entry.Owner(),
				Score:      entry.TotalScore(),
				Tiebreaker: entry.Tiebreaker(),
				Games:      make([]*gameCells, len(columns)),
			}
			for c := range columns {
				if line < len(views[c]) {
					r.Games[c] = cells(views[c][line])
				}
			}
			rows = append(rows, r)
		}
	}

	title := p.Title
	if title == "" {
		title = "NFL Playoff Bracket"
	}
	return page.Execute(w, struct {
		Title  string
		Rounds []string
		Rows   []row
	}{title, headers, rows})
}

func header(kind bracket.RoundKind) string {
	if kind == bracket.Final {
		return kind.String()
	}
	return kind.String() + " Matchups"
}

func cells(v logic.MatchupView) *gameCells {
	background := colour(v.Background, favorableBackground, unfavorableBackground)
	font := colour(v.WinnerMark, favorableFont, unfavorableFont)
	return &gameCells{
		A:      teamCell{Name: teamName(v.TeamA), Background: background, Emphasize: v.EmphasizeA, Font: font},
		B:      teamCell{Name: teamName(v.TeamB), Background: background, Emphasize: v.EmphasizeB, Font: font},
		Points: v.Points,
	}
}

func colour(state logic.CellState, favorable, unfavorable string) string {
	switch state {
	case logic.Favorable:
		return favorable
	case logic.Unfavorable:
		return unfavorable
	}
	return ""
}

func teamName(name string) string {
	if name == "" {
		return bracket.Team{}.String()
	}
	return name
}
