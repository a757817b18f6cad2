package domain

// ProficiencyLevel represents a CEFR proficiency level.
type ProficiencyLevel string

// CEFR proficiency levels, from beginner (A1) to mastery (C2).
const (
	ProficiencyA1 ProficiencyLevel = "A1"
	ProficiencyA2 ProficiencyLevel = "A2"
	ProficiencyB1 ProficiencyLevel = "B1"
	ProficiencyB2 ProficiencyLevel = "B2"
	ProficiencyC1 ProficiencyLevel = "C1"
	ProficiencyC2 ProficiencyLevel = "C2"
)

// IsValid reports whether the proficiency level is one of the known CEFR levels.
func (p ProficiencyLevel) IsValid() bool {
	switch p {
	case ProficiencyA1, ProficiencyA2, ProficiencyB1, ProficiencyB2, ProficiencyC1, ProficiencyC2:
		return true
	}
	return false
}

// PartOfSpeech represents the grammatical category of a vocabulary item.
type PartOfSpeech string

// Parts of speech recognized for vocabulary items.
const (
	PartOfSpeechNoun         PartOfSpeech = "NOUN"
	PartOfSpeechVerb         PartOfSpeech = "VERB"
	PartOfSpeechAdjective    PartOfSpeech = "ADJECTIVE"
	PartOfSpeechAdverb       PartOfSpeech = "ADVERB"
	PartOfSpeechPronoun      PartOfSpeech = "PRONOUN"
	PartOfSpeechPreposition  PartOfSpeech = "PREPOSITION"
	PartOfSpeechConjunction  PartOfSpeech = "CONJUNCTION"
	PartOfSpeechInterjection PartOfSpeech = "INTERJECTION"
	PartOfSpeechArticle      PartOfSpeech = "ARTICLE"
	PartOfSpeechOther        PartOfSpeech = "OTHER"
)

// IsValid reports whether the part of speech is one of the known categories.
func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechNoun, PartOfSpeechVerb, PartOfSpeechAdjective, PartOfSpeechAdverb,
		PartOfSpeechPronoun, PartOfSpeechPreposition, PartOfSpeechConjunction,
		PartOfSpeechInterjection, PartOfSpeechArticle, PartOfSpeechOther:
		return true
	}
	return false
}

// VocabularyItemStatus represents where a tracked word is in the learning process.
type VocabularyItemStatus string

// Learning statuses for vocabulary items.
const (
	VocabularyItemNew      VocabularyItemStatus = "NEW"
	VocabularyItemLearning VocabularyItemStatus = "LEARNING"
	VocabularyItemKnown    VocabularyItemStatus = "KNOWN"
	VocabularyItemMastered VocabularyItemStatus = "MASTERED"
)

// IsValid reports whether the status is one of the known learning statuses.
func (s VocabularyItemStatus) IsValid() bool {
	switch s {
	case VocabularyItemNew, VocabularyItemLearning, VocabularyItemKnown, VocabularyItemMastered:
		return true
	}
	return false
}
