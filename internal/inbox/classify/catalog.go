package classify

import (
	"regexp"

	"jobtrail-backend/internal/inbox/domain"
)

// CategoryPatterns binds one event category to its pattern family. The
// classifier walks categories in slice order, so the position of a family in
// the catalog is its priority.
type CategoryPatterns struct {
	Event    domain.EventType
	Patterns []*regexp.Regexp
}

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(e))
	}
	return out
}

// DefaultCatalog returns the built-in pattern families in their fixed
// priority order: OFFER -> REJECTION -> INTERVIEW_SCHEDULED -> OA_SENT ->
// APPLICATION_RECEIVED -> FEEDBACK. An email mentioning both "offer" and
// "unfortunately" resolves to OFFER because the offer family is checked
// first; the order is the classifier's only disambiguation mechanism.
func DefaultCatalog() []CategoryPatterns {
	return []CategoryPatterns{
		{
			Event: domain.EventOfferReceived,
			Patterns: compileAll(
				`pleased to (extend|offer|make)`,
				`offer letter`,
				`extend(ing)? (you )?an offer`,
				`job offer`,
				`\boffer\b`,
				`congratulations`,
			),
		},
		{
			Event: domain.EventRejection,
			Patterns: compileAll(
				`unfortunately`,
				`regret to inform`,
				`not (be )?(moving|to move) forward`,
				`(proceed|move forward|continue) with other candidates`,
				`not selected`,
				`(pursue|pursuing) other (candidates|applicants)`,
				`position has been filled`,
				`will not be progressing`,
			),
		},
		{
			Event: domain.EventInterviewScheduled,
			Patterns: compileAll(
				`interview (is |has been )?(scheduled|confirmed)`,
				`schedule (an? |your )?interview`,
				`interview (invitation|invite)`,
				`invite you to (an? )?interview`,
				`phone (screen|interview)`,
				`technical interview`,
				`on-?site interview`,
			),
		},
		{
			Event: domain.EventOnlineAssessment,
			Patterns: compileAll(
				`online assessment`,
				`coding (challenge|test|assessment)`,
				`take-?home (assignment|test|exercise)`,
				`hackerrank`,
				`codility`,
				`codesignal`,
				`technical assessment`,
			),
		},
		{
			Event: domain.EventApplicationReceived,
			Patterns: compileAll(
				`application (was |has been )?received`,
				`received your application`,
				`thank you for (applying|your application)`,
				`application (confirmation|submitted)`,
				`successfully (submitted|applied)`,
			),
		},
		{
			Event: domain.EventFeedback,
			Patterns: compileAll(
				`feedback`,
				`survey about your (interview|application)`,
				`how did we do`,
			),
		},
	}
}
