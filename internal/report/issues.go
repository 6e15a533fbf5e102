package report

// Priority buckets for the issue board.
const (
	PriorityP0 = "P0"
	PriorityP1 = "P1"
	PriorityP2 = "P2"
)

// IssuePriority maps a status kind to its board priority: fail is P0,
// warn is P1 and everything else flagged lands in P2.
func IssuePriority(kind StatusKind) string {
	switch kind {
	case KindFail:
		return PriorityP0
	case KindWarn:
		return PriorityP1
	default:
		return PriorityP2
	}
}

// IssueBoard is the three-column board of non-pass checks.
type IssueBoard struct {
	P0 []CheckRow
	P1 []CheckRow
	P2 []CheckRow
}

// GroupIssues buckets the non-pass rows by priority. Passing checks
// never appear on the board.
func GroupIssues(rows []CheckRow) IssueBoard {
	var board IssueBoard
	for _, r := range rows {
		if r.Kind == KindPass {
			continue
		}
		switch IssuePriority(r.Kind) {
		case PriorityP0:
			board.P0 = append(board.P0, r)
		case PriorityP1:
			board.P1 = append(board.P1, r)
		default:
			board.P2 = append(board.P2, r)
		}
	}
	return board
}

// TopIssues returns up to max non-pass rows in check order, for the
// "immediate fixes" list.
func TopIssues(rows []CheckRow, max int) []CheckRow {
	var out []CheckRow
	for _, r := range rows {
		if r.Kind == KindPass {
			continue
		}
		out = append(out, r)
		if len(out) == max {
			break
		}
	}
	return out
}
