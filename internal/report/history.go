package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/verte-zerg/textstat/internal/model"
)

const historyTimeLayout = "2006-01-02 15:04"

// RenderHistory prints saved runs as an aligned table.
func RenderHistory(w io.Writer, runs []model.RunRecord) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No saved runs found.")
		return err
	}
	headers := []string{"ID", "When", "Chars", "Words", "Lines", "Unique", "Longest", "Source"}
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			strconv.FormatInt(r.ID, 10),
			r.CreatedAt.In(time.Local).Format(historyTimeLayout),
			strconv.Itoa(r.Chars),
			strconv.Itoa(r.Words),
			strconv.Itoa(r.Lines),
			strconv.Itoa(r.UniqueWords),
			r.LongestWord,
			r.Source,
		})
	}
	rightAlign := map[int]bool{0: true, 2: true, 3: true, 4: true, 5: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
