// internal/game/share.go
//
// Share text for a finished session:
//
//	Bossdle 004 3/6
//	⬛🟩⬛⬛🟩
//	🟨🟩🟩⬛🟩
//	🟩🟩🟩🟩🟩
//
// A lost session shows X instead of the attempt count.

package game

import (
	"fmt"
	"strings"
)

// Label is the human day label. Day 0 is puzzle 001.
func Label(day int) string {
	return fmt.Sprintf("Bossdle: %03d", day+1)
}

// Result is the shareable summary of a finished session.
type Result struct {
	Day      int      `json:"day"`
	Status   Status   `json:"status"`
	Attempts int      `json:"attempts"`
	Grid     []string `json:"grid"`
	Text     string   `json:"text"`
}

func newResult(day int, status Status, rows []Row) Result {
	grid := make([]string, len(rows))
	for i, r := range rows {
		grid[i] = emojiRow(r.Marks())
	}
	score := "X"
	if status == StatusWon {
		score = fmt.Sprint(len(rows))
	}
	header := fmt.Sprintf("Bossdle %03d %s/%d", day+1, score, MaxAttempts)
	return Result{
		Day:      day,
		Status:   status,
		Attempts: len(rows),
		Grid:     grid,
		Text:     header + "\n" + strings.Join(grid, "\n"),
	}
}

func emojiRow(marks []Mark) string {
	var b strings.Builder
	for _, m := range marks {
		switch m {
		case MarkExact:
			b.WriteString("🟩")
		case MarkPartial:
			b.WriteString("🟨")
		default:
			b.WriteString("⬛")
		}
	}
	return b.String()
}
