package reconcile

import (
	"regexp"
	"strings"
)

// suggestedUserPatterns capture an explicit lexical handoff such as
// "responsable juan_perez" or "a cargo de vera", taking up to four
// following tokens. When one fires its result overrides whatever the
// upstream model inferred for the suggested-user field.
var suggestedUserPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:responsable|encargado|sugerido)\b(?:\s*[:=-]\s*|\s+)([a-z0-9._-]+(?:\s+[a-z0-9._-]+){0,3})`),
	regexp.MustCompile(`\ba cargo(?:\s+de)?\b(?:\s*[:=-]\s*|\s+)([a-z0-9._-]+(?:\s+[a-z0-9._-]+){0,3})`),
}

// confirmTerms is the normalized confirmation vocabulary of the chat flow.
var confirmTerms = stringSet(
	"si",
	"crear",
	"crear ticket",
	"ok",
	"dale",
	"de acuerdo",
	"confirmar",
)

// descriptionControlTerms extends confirmTerms with edit-flow commands; a
// candidate description matching one of these is control chatter, not
// ticket content.
var descriptionControlTerms = stringSet(
	"si",
	"crear",
	"crear ticket",
	"ok",
	"dale",
	"de acuerdo",
	"confirmar",
	"editar",
	"cancelar",
	"cancelar carga",
)

// ExtractSuggestedUser scans normalized free text for a handoff trigger
// and returns the captured mention trimmed of trailing punctuation, or ""
// when no trigger fires.
func ExtractSuggestedUser(value string) string {
	txt := Normalize(value)
	if txt == "" {
		return ""
	}
	for _, pattern := range suggestedUserPatterns {
		if m := pattern.FindStringSubmatch(txt); m != nil {
			candidate := whitespaceRun.ReplaceAllString(m[1], " ")
			candidate = strings.Trim(candidate, " .,:;")
			if candidate != "" {
				return candidate
			}
		}
	}
	return ""
}

// IsConfirmTerm reports whether a raw message is a bare confirmation.
func IsConfirmTerm(value string) bool {
	_, ok := confirmTerms[Normalize(value)]
	return ok
}

// ShouldUpdateDescription decides whether a model-proposed description may
// replace or enrich the running one. It rejects empty candidates, control
// vocabulary, single short tokens, and candidates that merely echo a
// control-word message.
func ShouldUpdateDescription(current, candidate, rawMessage string) bool {
	normCandidate := Normalize(candidate)
	if normCandidate == "" {
		return false
	}
	if _, control := descriptionControlTerms[normCandidate]; control {
		return false
	}
	if len(strings.Fields(normCandidate)) <= 1 && len(normCandidate) <= 12 {
		return false
	}
	normMessage := Normalize(rawMessage)
	if _, control := descriptionControlTerms[normMessage]; control && normCandidate == normMessage {
		return false
	}
	return true
}

func stringSet(values ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[Normalize(v)] = struct{}{}
	}
	return set
}
