package services

import (
	"github.com/Student4344/social-minds0/internal/crypto"
	"github.com/Student4344/social-minds0/internal/models"
)

// EncryptionService wraps the crypto service with record-specific methods.
type EncryptionService struct {
	crypto *crypto.Service
}

func NewEncryptionService(encryptionKey, blindIndexKey []byte) (*EncryptionService, error) {
	svc, err := crypto.NewService(encryptionKey, blindIndexKey)
	if err != nil {
		return nil, err
	}
	return &EncryptionService{crypto: svc}, nil
}

// EncryptUser encrypts the email and sets its blind index before storage.
func (s *EncryptionService) EncryptUser(user *models.User) error {
	encrypted, blindIndex, err := s.crypto.EncryptWithBlindIndex(user.Email)
	if err != nil {
		return err
	}
	user.Email = encrypted
	user.EmailBlindIndex = blindIndex
	return nil
}

func (s *EncryptionService) DecryptUser(user *models.User) error {
	email, err := s.crypto.Decrypt(user.Email)
	if err != nil {
		return err
	}
	user.Email = email
	return nil
}

// EmailBlindIndex derives the lookup digest for an email address.
func (s *EncryptionService) EmailBlindIndex(email string) string {
	return s.crypto.BlindIndex(email)
}

// EncryptJournal encrypts the title and content before storage.
func (s *EncryptionService) EncryptJournal(entry *models.JournalEntry) error {
	title, err := s.crypto.Encrypt(entry.Title)
	if err != nil {
		return err
	}
	content, err := s.crypto.Encrypt(entry.Content)
	if err != nil {
		return err
	}
	entry.Title = title
	entry.Content = content
	return nil
}

func (s *EncryptionService) DecryptJournal(entry *models.JournalEntry) error {
	title, err := s.crypto.Decrypt(entry.Title)
	if err != nil {
		return err
	}
	content, err := s.crypto.Decrypt(entry.Content)
	if err != nil {
		return err
	}
	entry.Title = title
	entry.Content = content
	return nil
}

// EncryptProfile encrypts the bio, the only free-text profile field.
func (s *EncryptionService) EncryptProfile(p *models.Profile) error {
	if p.Bio == nil || *p.Bio == "" {
		return nil
	}
	bio, err := s.crypto.Encrypt(*p.Bio)
	if err != nil {
		return err
	}
	p.Bio = &bio
	return nil
}

func (s *EncryptionService) DecryptProfile(p *models.Profile) error {
	if p.Bio == nil || *p.Bio == "" {
		return nil
	}
	bio, err := s.crypto.Decrypt(*p.Bio)
	if err != nil {
		return err
	}
	p.Bio = &bio
	return nil
}
