package domain

import "fmt"

// Bundle holds the structured record of a conversation. Exactly one slot
// is populated, selected by the conversation's mode.
type Bundle struct {
	Curriculum  *Curriculum  `json:"curriculum,omitempty" yaml:"curriculum,omitempty"`
	TikTokShop  *TikTokShop  `json:"tiktok_shop,omitempty" yaml:"tiktok_shop,omitempty"`
	GeneralChat *GeneralChat `json:"general_chat,omitempty" yaml:"general_chat,omitempty"`
}

// Record returns the populated record for mode, or nil.
func (b *Bundle) Record(mode Mode) any {
	if b == nil {
		return nil
	}
	switch mode {
	case ModeCurriculum:
		if b.Curriculum != nil {
			return b.Curriculum
		}
	case ModeEcom:
		if b.TikTokShop != nil {
			return b.TikTokShop
		}
	case ModeGeneral:
		if b.GeneralChat != nil {
			return b.GeneralChat
		}
	}
	return nil
}

// Validate rejects curriculum entries whose type is outside the known set.
func (b *Bundle) Validate() error {
	if b == nil || b.Curriculum == nil {
		return nil
	}
	for _, r := range b.Curriculum.Resources {
		if !r.Type.Valid() {
			return fmt.Errorf("resource %s: unknown type %q", r.ID, r.Type)
		}
	}
	for _, a := range b.Curriculum.Assessments {
		if !a.Type.Valid() {
			return fmt.Errorf("assessment %s: unknown type %q", a.ID, a.Type)
		}
	}
	return nil
}
