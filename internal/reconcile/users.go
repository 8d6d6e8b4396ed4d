package reconcile

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/gestar-ia/reconcile-service/internal/domain"
)

// UserOutcome tags the result of resolving a raw user mention.
type UserOutcome string

const (
	// UserOutcomeEmpty means no mention was present at all.
	UserOutcomeEmpty UserOutcome = "empty"
	// UserOutcomeResolved means exactly one user matched.
	UserOutcomeResolved UserOutcome = "resolved"
	// UserOutcomeAmbiguous means several users share the mentioned token.
	UserOutcomeAmbiguous UserOutcome = "ambiguous"
	// UserOutcomeNotFound means nothing matched.
	UserOutcomeNotFound UserOutcome = "not_found"
)

// UserResolution is the three-way (plus empty) outcome of disambiguating
// a human-written user mention. Warnings are end-user facing Spanish
// strings surfaced verbatim; resolution never fails.
type UserResolution struct {
	Outcome    UserOutcome
	User       *domain.User
	Candidates []string
	Warning    string
}

// ResolveUser disambiguates a raw mention against the index. Matching
// order, first hit wins: exact normalized username, email local-part,
// then a single username-token hit. An absent mention is not an error.
func ResolveUser(raw string, idx *Index) UserResolution {
	normValue := Normalize(raw)
	if normValue == "" {
		return UserResolution{Outcome: UserOutcomeEmpty}
	}

	if exact, ok := idx.UsersByUsername[normValue]; ok {
		return UserResolution{Outcome: UserOutcomeResolved, User: &exact}
	}

	local := strings.ReplaceAll(normValue, " ", "")
	if byEmail, ok := idx.UsersByEmailLocal[local]; ok {
		return UserResolution{Outcome: UserOutcomeResolved, User: &byEmail}
	}

	token := strings.SplitN(normValue, " ", 2)[0]
	hits := idx.UsersByToken[token]
	switch {
	case len(hits) == 1:
		user := hits[0]
		return UserResolution{Outcome: UserOutcomeResolved, User: &user}
	case len(hits) > 1:
		candidates := uniqueSortedUsernames(hits)
		return UserResolution{
			Outcome:    UserOutcomeAmbiguous,
			Candidates: candidates,
			Warning:    fmt.Sprintf("Usuario ambiguo '%s'. Opciones: %s.", raw, strings.Join(candidates, ", ")),
		}
	}

	return UserResolution{
		Outcome: UserOutcomeNotFound,
		Warning: fmt.Sprintf("No se encontró usuario para '%s'.", raw),
	}
}

// fullNameSeparators splits a username into name parts after dots are
// folded into underscores.
var fullNameSeparators = regexp.MustCompile(`[_\s-]+`)

// FormatFullName renders a human-readable name from a username following
// the local apellido_nombre convention: "firmapaz_alfredo" becomes
// "Alfredo Firmapaz".
func FormatFullName(username string) string {
	normUser := strings.ReplaceAll(Normalize(username), ".", "_")
	parts := make([]string, 0, 2)
	for _, p := range fullNameSeparators.Split(normUser, -1) {
		if p != "" {
			parts = append(parts, p)
		}
	}
	switch {
	case len(parts) == 0:
		return strings.TrimSpace(username)
	case len(parts) >= 2:
		return titleWord(parts[1]) + " " + titleWord(parts[0])
	default:
		return titleWord(parts[0])
	}
}

func titleWord(word string) string {
	if word == "" {
		return ""
	}
	return strings.ToUpper(word[:1]) + word[1:]
}

func uniqueSortedUsernames(users []domain.User) []string {
	seen := make(map[string]struct{}, len(users))
	names := make([]string, 0, len(users))
	for _, u := range users {
		if _, dup := seen[u.Username]; dup {
			continue
		}
		seen[u.Username] = struct{}{}
		names = append(names, u.Username)
	}
	sort.Strings(names)
	return names
}
