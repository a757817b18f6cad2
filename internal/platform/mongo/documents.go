package mongo

import (
	"time"

	"github.com/lexiglow/lexiglow-api/internal/domain"
)

func timeNow() time.Time {
	return time.Now().UTC()
}

// Document types mirror the domain entities with MongoDB field conventions:
// camelCase names and the entity ID stored under _id. All renaming between
// the two shapes lives here so the stores never touch raw bson maps.

type languageDocument struct {
	ID         string    `bson:"_id"`
	Name       string    `bson:"name"`
	Code       string    `bson:"code"`
	NativeName string    `bson:"nativeName"`
	CreatedAt  time.Time `bson:"createdAt"`
}

func languageToDocument(lang *domain.Language) *languageDocument {
	return &languageDocument{
		ID:         lang.ID,
		Name:       lang.Name,
		Code:       lang.Code,
		NativeName: lang.NativeName,
		CreatedAt:  lang.CreatedAt,
	}
}

func (d *languageDocument) toDomain() *domain.Language {
	return &domain.Language{
		ID:         d.ID,
		Name:       d.Name,
		Code:       d.Code,
		NativeName: d.NativeName,
		CreatedAt:  d.CreatedAt,
	}
}

type userDocument struct {
	ID                string     `bson:"_id"`
	Email             string     `bson:"email"`
	Username          string     `bson:"username"`
	PasswordHash      string     `bson:"passwordHash"`
	FirstName         string     `bson:"firstName,omitempty"`
	LastName          string     `bson:"lastName,omitempty"`
	NativeLanguageID  string     `bson:"nativeLanguageId"`
	CurrentLanguageID string     `bson:"currentLanguageId"`
	CreatedAt         time.Time  `bson:"createdAt"`
	UpdatedAt         time.Time  `bson:"updatedAt"`
	LastActiveAt      *time.Time `bson:"lastActiveAt,omitempty"`
}

func userToDocument(user *domain.User) *userDocument {
	return &userDocument{
		ID:                user.ID,
		Email:             user.Email,
		Username:          user.Username,
		PasswordHash:      user.PasswordHash,
		FirstName:         user.FirstName,
		LastName:          user.LastName,
		NativeLanguageID:  user.NativeLanguageID,
		CurrentLanguageID: user.CurrentLanguageID,
		CreatedAt:         user.CreatedAt,
		UpdatedAt:         user.UpdatedAt,
		LastActiveAt:      user.LastActiveAt,
	}
}

func (d *userDocument) toDomain() *domain.User {
	return &domain.User{
		ID:                d.ID,
		Email:             d.Email,
		Username:          d.Username,
		PasswordHash:      d.PasswordHash,
		FirstName:         d.FirstName,
		LastName:          d.LastName,
		NativeLanguageID:  d.NativeLanguageID,
		CurrentLanguageID: d.CurrentLanguageID,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
		LastActiveAt:      d.LastActiveAt,
	}
}

// textDocument embeds its tag associations as an array of tag IDs instead of
// the junction table the relational backend uses.
type textDocument struct {
	ID               string    `bson:"_id"`
	Title            string    `bson:"title"`
	Content          string    `bson:"content"`
	LanguageID       string    `bson:"languageId"`
	UserID           string    `bson:"userId,omitempty"`
	ProficiencyLevel string    `bson:"proficiencyLevel"`
	WordCount        int       `bson:"wordCount"`
	IsPublic         bool      `bson:"isPublic"`
	Source           string    `bson:"source,omitempty"`
	TagIDs           []string  `bson:"tagIds,omitempty"`
	CreatedAt        time.Time `bson:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt"`
}

func textToDocument(text *domain.Text) *textDocument {
	return &textDocument{
		ID:               text.ID,
		Title:            text.Title,
		Content:          text.Content,
		LanguageID:       text.LanguageID,
		UserID:           text.UserID,
		ProficiencyLevel: string(text.ProficiencyLevel),
		WordCount:        text.WordCount,
		IsPublic:         text.IsPublic,
		Source:           text.Source,
		CreatedAt:        text.CreatedAt,
		UpdatedAt:        text.UpdatedAt,
	}
}

func (d *textDocument) toDomain() *domain.Text {
	return &domain.Text{
		ID:               d.ID,
		Title:            d.Title,
		Content:          d.Content,
		LanguageID:       d.LanguageID,
		UserID:           d.UserID,
		ProficiencyLevel: domain.ProficiencyLevel(d.ProficiencyLevel),
		WordCount:        d.WordCount,
		IsPublic:         d.IsPublic,
		Source:           d.Source,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

type textTagDocument struct {
	ID          string `bson:"_id"`
	Name        string `bson:"name"`
	Description string `bson:"description,omitempty"`
}

func textTagToDocument(tag *domain.TextTag) *textTagDocument {
	return &textTagDocument{
		ID:          tag.ID,
		Name:        tag.Name,
		Description: tag.Description,
	}
}

func (d *textTagDocument) toDomain() *domain.TextTag {
	return &domain.TextTag{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
	}
}
