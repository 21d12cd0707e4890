package service

import (
	"Implicate/internal/model"
	"Implicate/internal/pkg/consts"
)

// ResolveDisplayName computes the name persisted on a post or reply. The real
// name is used only when the submission asked for it, the user's global
// preference allows it, and a name is actually set; every other combination
// yields the anonymous label. The result is stored as a snapshot and never
// re-resolved, so disabling show_real_name later does not rewrite what is
// already published.
func ResolveDisplayName(user *model.User, useRealName bool) string {
	if useRealName && user.ShowRealName && user.Name != nil && *user.Name != "" {
		return *user.Name
	}
	return consts.AnonymousName
}
