package domain

import "github.com/google/uuid"

// BilingualField is one translatable attribute of an entity: the
// author-supplied primary text, its Nepali counterpart, and whether that
// counterpart was machine-generated.
//
// Invariants:
//   - Auto is true only if Secondary is non-empty and was written by the
//     translation pipeline, never by a human.
//   - The pipeline only fills Secondary while it is empty; a non-empty
//     Secondary is never overwritten regardless of Auto.
//   - Primary is owned by the author; the pipeline never touches it.
type BilingualField struct {
	Name      string
	Primary   string
	Secondary string
	Auto      bool
}

// NeedsTranslation reports whether the field is eligible for machine
// translation: authored text present, counterpart still empty. Pending
// state is inferred from emptiness; there is no separate status column.
func (f BilingualField) NeedsTranslation() bool {
	return f.Primary != "" && f.Secondary == ""
}

// Translatable is implemented by every entity carrying bilingual fields.
// The translation orchestrator works against this capability rather than
// against concrete entity types.
type Translatable interface {
	EntityKind() EntityKind
	EntityID() uuid.UUID
	BilingualFields() []BilingualField
}
