package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"pmoreport/internal"
	"pmoreport/internal/util"
)

// Formatter rewrites a narrative field for clarity. Implementations must be
// text-in/text-out only: all numbers in a record are computed upstream and a
// formatter never sees them.
type Formatter interface {
	Format(ctx context.Context, text, fieldContext string) (string, error)
}

const systemPrompt = `You are a PMO report assistant. Your role is to help format and clarify project status information.

CRITICAL RULES:
1. NEVER calculate or estimate any numbers - all metrics are provided
2. NEVER make up data - only reformat/clarify what's provided
3. Keep responses concise and professional
4. If text is unclear or placeholder (like "Owner to share"), return "[To be provided]"
5. Format text as clean bullet points when appropriate
6. Maximum 3-4 bullet points for activities
7. Keep each bullet point to one line`

func userPrompt(text, fieldContext string) string {
	switch fieldContext {
	case "activities":
		return fmt.Sprintf("Format the following project activities into clear bullet points (max 3-4 points).\nKeep each point concise and professional.\n\nText: %s\n\nFormatted output:", text)
	case "risks":
		return fmt.Sprintf("Clarify and format the following project risks into a brief, clear description.\nKeep it concise and professional.\n\nText: %s\n\nFormatted output:", text)
	case "issues":
		return fmt.Sprintf("Clarify and format the following project issues into a brief, clear description.\nKeep it concise and professional.\n\nText: %s\n\nFormatted output:", text)
	default:
		return fmt.Sprintf("Format the following text to be clear and professional.\nDo not add any information not present in the original.\n\nText: %s\n\nFormatted output:", text)
	}
}

// PolishRecords returns copies of the records with the narrative fields
// rewritten by the formatter. Numeric fields are never touched, and any
// formatter failure keeps the original text, so a missing or broken
// formatter can never invalidate an extraction result.
func PolishRecords(ctx context.Context, fmtr Formatter, records []internal.ProjectRecord) []internal.ProjectRecord {
	if fmtr == nil {
		return records
	}

	out := make([]internal.ProjectRecord, len(records))
	copy(out, records)
	for i := range out {
		out[i].CurrentActs = polishField(ctx, fmtr, out[i].CurrentActs, "activities")
		out[i].FutureActs = polishField(ctx, fmtr, out[i].FutureActs, "activities")
		out[i].Risks = polishField(ctx, fmtr, out[i].Risks, "risks")
		out[i].Issues = polishField(ctx, fmtr, out[i].Issues, "issues")
		out[i].Comments = polishField(ctx, fmtr, out[i].Comments, "general")
	}
	return out
}

func polishField(ctx context.Context, fmtr Formatter, text, fieldContext string) string {
	if text == "" || strings.HasPrefix(text, "[") || text == "TBD" {
		return text
	}
	if util.IsPlaceholder(text) {
		return internal.Placeholder
	}
	formatted, err := fmtr.Format(ctx, text, fieldContext)
	if err != nil {
		slog.Warn("text polish failed, keeping original", "context", fieldContext, "error", err)
		return text
	}
	formatted = strings.TrimSpace(formatted)
	if formatted == "" {
		return text
	}
	return formatted
}
