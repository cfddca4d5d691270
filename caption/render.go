package caption

import (
	"fmt"
	"strings"

	"github.com/randalmurphal/captionkit/counter"
)

// Render substitutes the template's tokens against the prior counter
// snapshot and returns the rendered string plus the updated snapshot.
//
// Substitution order is fixed, because conditionals depend on the episode
// number resolved by the counter stage:
//
//  1. Counter: the leftmost counter token is replaced with last+1, where an
//     absent main counter seeds from the template literal (literal-1 for
//     the plain form, so the first render reproduces the literal; the
//     literal itself for the parenthesized form, which marks the literal as
//     already published). The value is zero-padded to the literal's width —
//     padding never truncates — and re-wrapped in parens iff the literal
//     was. Further counter tokens stay literal.
//  2. Conditional: each conditional token becomes its text when its
//     condition equals this render's episode number, otherwise the empty
//     string. Without a counter token there is no episode number and
//     conditionals stay literal.
//  3. Cycle: each cycle token becomes items[cycle mod len(items)]; the
//     cycle index advances by one per render regardless of how many cycle
//     tokens appear.
//
// Render is pure: it never touches a store. The caller commits the
// returned snapshot to the active scope.
func Render(template string, prior counter.Snapshot) (string, counter.Snapshot) {
	tokens := Scan(template)
	if len(tokens) == 0 {
		return template, prior
	}

	next := prior

	// Stage 1: resolve the episode number from the leftmost counter token.
	episode := 0
	hasEpisode := false
	counterAt := -1
	for i, tok := range tokens {
		if tok.Kind != KindCounter {
			continue
		}
		last, ok := prior.Main()
		if !ok {
			last = tok.Value - 1
			if tok.Parenthesized {
				last = tok.Value
			}
		}
		episode = last + 1
		hasEpisode = true
		counterAt = i
		next = next.WithMain(episode)
		break
	}

	// Stages 2 and 3 share one substitution pass over the scanned spans,
	// building output from spans plus literal gaps so no stage re-scans
	// text another stage produced.
	cycleIdx, _ := prior.Cycle()
	cycled := false

	var out strings.Builder
	pos := 0
	for i, tok := range tokens {
		out.WriteString(template[pos:tok.Start])
		pos = tok.End

		switch tok.Kind {
		case KindCounter:
			if i != counterAt {
				// Leftmost counter wins; the rest stay literal.
				out.WriteString(tok.Raw)
				break
			}
			if tok.Parenthesized {
				fmt.Fprintf(&out, "(%0*d)", tok.Width, episode)
			} else {
				fmt.Fprintf(&out, "%0*d", tok.Width, episode)
			}

		case KindConditional:
			if !hasEpisode {
				out.WriteString(tok.Raw)
				break
			}
			if tok.Condition == episode {
				out.WriteString(tok.Text)
			}

		case KindCycle:
			out.WriteString(tok.Items[cycleIdx%len(tok.Items)])
			cycled = true
		}
	}
	out.WriteString(template[pos:])

	if cycled {
		next = next.WithCycle(cycleIdx + 1)
	}

	return out.String(), next
}
