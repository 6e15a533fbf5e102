package report

import (
	"sort"
	"strconv"

	"github.com/searchscope/web/internal/backend"
)

// RankRow is one query+engine cell of the keyword rank table.
type RankRow struct {
	Query       string
	Engine      string
	Ranked      bool
	RankDisplay string
	ResultCount int
}

// RankTable is the keyword rank view model. Rows are sorted by query
// then engine so repeated runs render in a stable order.
type RankTable struct {
	Rows       []RankRow
	Queries    int
	RankedRows int
}

// BuildRankTable flattens the per-query per-engine rank map into table
// rows. An absent rank shows the backend status text when there is one,
// otherwise the unranked label.
func BuildRankTable(res backend.SearchRankResult, t func(string) string) RankTable {
	queries := make([]string, 0, len(res.Results))
	for q := range res.Results {
		queries = append(queries, q)
	}
	sort.Strings(queries)

	table := RankTable{Queries: len(queries)}
	for _, q := range queries {
		engines := make([]string, 0, len(res.Results[q]))
		for e := range res.Results[q] {
			engines = append(engines, e)
		}
		sort.Strings(engines)

		for _, e := range engines {
			er := res.Results[q][e]
			row := RankRow{Query: q, Engine: e, ResultCount: er.ResultCount.Int()}
			switch {
			case er.Rank != nil:
				row.Ranked = true
				row.RankDisplay = "#" + strconv.Itoa(*er.Rank)
				table.RankedRows++
			case er.Status != "":
				row.RankDisplay = er.Status
			default:
				row.RankDisplay = t("keyword.unranked")
			}
			table.Rows = append(table.Rows, row)
		}
	}
	return table
}
