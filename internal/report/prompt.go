package report

import (
	"strings"

	"github.com/searchscope/web/internal/backend"
)

// Mention tiers as reported by the prompt tracker, weakest to strongest.
const (
	TierNotMentioned       = "not_mentioned"
	TierMentioned          = "mentioned"
	TierMentionedAndLinked = "mentioned_and_linked"
	TierCoreMention        = "core_mention"
)

// MentionRow is one LLM source's evaluation for one prompt.
type MentionRow struct {
	Source    string
	Tier      string
	TierLabel string
	TierClass string
	Score     int
	Reason    string
	ShareURL  string
}

// MentionGroup holds all source evaluations for one prompt.
type MentionGroup struct {
	Query string
	Rows  []MentionRow
}

// MentionBoard is the prompt tracker view model.
type MentionBoard struct {
	Groups    []MentionGroup
	Queries   int
	Mentioned int
}

func normalizeTier(tier string) string {
	switch t := strings.ToLower(strings.TrimSpace(tier)); t {
	case TierMentioned, TierMentionedAndLinked, TierCoreMention:
		return t
	default:
		return TierNotMentioned
	}
}

// TierLabelKey maps a normalized tier to its translation key.
func TierLabelKey(tier string) string { return "prompt.tier." + tier }

// TierClass maps a normalized tier to its badge CSS class.
func TierClass(tier string) string { return "tier-" + strings.ReplaceAll(tier, "_", "-") }

// BuildMentionBoard maps the prompt tracker response into grouped rows.
// Mentioned counts every row above the not-mentioned tier.
func BuildMentionBoard(res backend.PromptTrackResult, t func(string) string) MentionBoard {
	board := MentionBoard{Queries: len(res.Results)}
	for _, qr := range res.Results {
		group := MentionGroup{Query: qr.Query}
		for _, m := range qr.LLMResults {
			tier := normalizeTier(m.Tier)
			if tier != TierNotMentioned {
				board.Mentioned++
			}
			group.Rows = append(group.Rows, MentionRow{
				Source:    m.Source,
				Tier:      tier,
				TierLabel: t(TierLabelKey(tier)),
				TierClass: TierClass(tier),
				Score:     m.Score.Int(),
				Reason:    m.Reason,
				ShareURL:  m.ResponseShareURL,
			})
		}
		board.Groups = append(board.Groups, group)
	}
	return board
}
