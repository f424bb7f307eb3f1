package domain

import (
	"fmt"
	"strings"
	"time"
)

type DocumentStatus string

const (
	StatusDraft     DocumentStatus = "draft"
	StatusCompleted DocumentStatus = "completed"
)

func (s DocumentStatus) Valid() bool {
	return s == StatusDraft || s == StatusCompleted
}

type Document struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	Title     string         `json:"title"`
	Type      string         `json:"type"`
	Content   string         `json:"content"`
	Language  Language       `json:"language"`
	Status    DocumentStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// DocumentFilter acota el listado por usuario. Campos vacios no filtran.
type DocumentFilter struct {
	Type   string
	Status DocumentStatus
	Limit  int
	Offset int
}

// DocumentPatch es una actualizacion parcial: solo los campos no nil se aplican.
type DocumentPatch struct {
	Title   *string         `json:"title"`
	Content *string         `json:"content"`
	Status  *DocumentStatus `json:"status"`
	Type    *string         `json:"type"`
}

func (p DocumentPatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.Status == nil && p.Type == nil
}

// Apply mezcla el patch sobre el documento y actualiza UpdatedAt.
// Rechaza el patch vacio, estados desconocidos y la transicion completed -> draft.
func (d *Document) Apply(p DocumentPatch, now time.Time) error {
	if p.IsEmpty() {
		return fmt.Errorf("%w: no fields to update", ErrValidation)
	}
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", ErrValidation)
	}
	if p.Type != nil && strings.TrimSpace(*p.Type) == "" {
		return fmt.Errorf("%w: type cannot be empty", ErrValidation)
	}
	if p.Status != nil {
		if !p.Status.Valid() {
			return fmt.Errorf("%w: unknown status %q", ErrValidation, *p.Status)
		}
		if d.Status == StatusCompleted && *p.Status == StatusDraft {
			return ErrInvalidTransition
		}
	}

	if p.Title != nil {
		d.Title = strings.TrimSpace(*p.Title)
	}
	if p.Content != nil {
		d.Content = *p.Content
	}
	if p.Status != nil {
		d.Status = *p.Status
	}
	if p.Type != nil {
		d.Type = strings.TrimSpace(*p.Type)
	}
	d.UpdatedAt = now
	return nil
}

// Complete aplica la unica transicion legal draft -> completed.
// Devuelve false si el documento ya estaba completo.
func (d *Document) Complete(now time.Time) bool {
	if d.Status == StatusCompleted {
		return false
	}
	d.Status = StatusCompleted
	d.UpdatedAt = now
	return true
}

// DocumentType es una entrada del catalogo fijo de tipos.
type DocumentType struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

var documentTypes = []DocumentType{
	{ID: "rent_agreement", Name: "Rent Agreement", Category: "property"},
	{ID: "nda", Name: "Non-Disclosure Agreement", Category: "business"},
	{ID: "employment_contract", Name: "Employment Contract", Category: "employment"},
	{ID: "loan_agreement", Name: "Loan Agreement", Category: "finance"},
	{ID: "partnership_deed", Name: "Partnership Deed", Category: "business"},
	{ID: "sale_deed", Name: "Sale Deed", Category: "property"},
	{ID: "power_of_attorney", Name: "Power of Attorney", Category: "legal"},
	{ID: "affidavit", Name: "Affidavit", Category: "legal"},
	{ID: "will", Name: "Will/Testament", Category: "legal"},
	{ID: "divorce_petition", Name: "Divorce Petition", Category: "family"},
}

// DocumentTypes devuelve una copia del catalogo, siempre en el mismo orden.
func DocumentTypes() []DocumentType {
	out := make([]DocumentType, len(documentTypes))
	copy(out, documentTypes)
	return out
}
