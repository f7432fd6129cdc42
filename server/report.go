package server

import (
	"fmt"
	"strings"

	"github.com/tsawler/pagina/engine"
)

// buildReport renders an upload response as a plain-text summary an author
// can read without tooling.
func buildReport(resp UploadResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "引擎版本: %s\n\n", engine.Version)

	for _, fr := range resp.Files {
		fmt.Fprintf(&b, "== %s ==\n", fr.Filename)
		if fr.Error != "" {
			fmt.Fprintf(&b, "失败: %s\n\n", fr.Error)
			continue
		}
		if fr.Result == nil {
			b.WriteString("无结果\n\n")
			continue
		}

		for _, d := range fr.Directives {
			fmt.Fprintf(&b, "指令: P%d%s\n", d.PageNo, d.Label)
		}
		for _, p := range fr.Result.Pages {
			fmt.Fprintf(&b, "%s  %s  [%s]  %d字\n", p.PageTag, p.Title, p.Type, p.CharCount)
			for _, bullet := range p.Bullets {
				fmt.Fprintf(&b, "  - %s\n", bullet)
			}
			for _, q := range p.Quotes {
				fmt.Fprintf(&b, "  > %s\n", q)
			}
		}
		st := fr.Result.Stats
		fmt.Fprintf(&b, "共%d页, 平均%.2f字/页 (上限%d)\n\n",
			st.TotalPages, st.AvgChars, st.MaxCharsPerPage)
	}

	return b.String()
}
