package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/primalhq/primal/internal/model"
)

// SetProfile replaces the profile singleton wholesale.
func (s *Store) SetProfile(p model.Profile) {
	s.state.Profile = p
}

// SetSettings replaces the settings singleton. The threshold arrives as a
// raw string and must parse to a non-negative integer; anything else is
// rejected rather than silently keeping the previous value.
func (s *Store) SetSettings(currency, thresholdRaw string) error {
	currency = strings.TrimSpace(currency)
	if currency == "" {
		return NewValidationError("currency", "currency symbol is required")
	}
	threshold, err := strconv.Atoi(strings.TrimSpace(thresholdRaw))
	if err != nil {
		return NewValidationError("lowStockThreshold", fmt.Sprintf("threshold %q is not an integer", thresholdRaw))
	}
	if threshold < 0 {
		return NewValidationError("lowStockThreshold", "threshold must not be negative")
	}
	s.state.Settings = model.Settings{Currency: currency, LowStockThreshold: threshold}
	return nil
}

// SetTheme switches the persisted theme preference.
func (s *Store) SetTheme(t model.Theme) error {
	if t != model.ThemeLight && t != model.ThemeDark {
		return NewValidationError("theme", fmt.Sprintf("unknown theme %q", t))
	}
	s.state.Theme = t
	return nil
}

// SetSidebarCollapsed records the sidebar preference.
func (s *Store) SetSidebarCollapsed(collapsed bool) {
	s.state.SidebarCollapsed = collapsed
}

// SetView moves the view cursor. Transient: the cursor always restores to
// the dashboard on load.
func (s *Store) SetView(v model.View) error {
	for _, known := range model.Views {
		if v == known {
			s.state.View = v
			return nil
		}
	}
	return NewValidationError("view", fmt.Sprintf("unknown view %q", v))
}
