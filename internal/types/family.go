// Package types provides type definitions for structured data used throughout the ascent-tracker system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"
)

// SkillFamily identifies one of the four top-level skill groupings.
// Technical, Soft and Software Skills are hierarchical (category -> subskills);
// Certifications is a flat catalog of names.
type SkillFamily int

const (
	// TechnicalSkills is the hierarchical technical skills family.
	TechnicalSkills SkillFamily = iota
	// SoftSkills is the hierarchical soft skills family.
	SoftSkills
	// SoftwareSkills is the hierarchical software/tooling skills family.
	SoftwareSkills
	// Certifications is the flat certification catalog.
	Certifications
)

// String returns the display name of the family, matching the keys used in
// the persisted document.
func (f SkillFamily) String() string {
	switch f {
	case TechnicalSkills:
		return "Technical Skills"
	case SoftSkills:
		return "Soft Skills"
	case SoftwareSkills:
		return "Software Skills"
	case Certifications:
		return "Certifications"
	default:
		return fmt.Sprintf("SkillFamily(%d)", int(f))
	}
}

// Hierarchical reports whether the family is organized as category -> subskills.
func (f SkillFamily) Hierarchical() bool {
	return f == TechnicalSkills || f == SoftSkills || f == SoftwareSkills
}

// HierarchicalFamilies lists the three category/subskill families in display order.
func HierarchicalFamilies() []SkillFamily {
	return []SkillFamily{TechnicalSkills, SoftSkills, SoftwareSkills}
}

// ParseSkillFamily resolves a family from user or file input. Matching is
// case-insensitive and accepts the common short forms seen in import files
// ("tech", "soft", "software", "cert").
func ParseSkillFamily(s string) (SkillFamily, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.TrimSuffix(normalized, " skills")
	switch normalized {
	case "tech", "technical":
		return TechnicalSkills, nil
	case "soft":
		return SoftSkills, nil
	case "software":
		return SoftwareSkills, nil
	case "cert", "certs", "certification", "certifications":
		return Certifications, nil
	}
	return 0, fmt.Errorf("unknown skill family %q", s)
}
