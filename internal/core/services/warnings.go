package services

import (
	"fmt"

	"github.com/ns-engineering/contentbuild/internal/core/domain"
	"github.com/ns-engineering/contentbuild/internal/logger"
)

// Warnings collects the non-fatal findings of one domain.
// Every finding is logged as it is added.
type Warnings struct {
	domain domain.ContentDomain
	list   []domain.Warning
}

// NewWarnings creates an empty collector for a domain.
func NewWarnings(d domain.ContentDomain) *Warnings {
	return &Warnings{domain: d, list: []domain.Warning{}}
}

// Add records a warning about entityID, which may be empty.
func (w *Warnings) Add(entityID, format string, args ...any) {
	warning := domain.Warning{
		Domain:   w.domain,
		EntityID: entityID,
		Message:  fmt.Sprintf(format, args...),
	}
	w.list = append(w.list, warning)
	logger.Warn("%s", warning)
}

// List returns the collected warnings in order.
func (w *Warnings) List() []domain.Warning {
	return w.list
}

// Len returns the number of warnings.
func (w *Warnings) Len() int {
	return len(w.list)
}
