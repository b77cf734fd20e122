package handler

import (
	"github.com/msomdec/weblog/internal/domain"
)

// UserDTO is the JSON representation of a user. The password hash and
// remember token never leave the server.
type UserDTO struct {
	ID        string `json:"id"`
	Alias     string `json:"alias"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"isAdmin"`
	CreatedAt string `json:"createdAt"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Alias:     u.Alias,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}

// SessionDTO is the JSON representation of the authenticated session.
type SessionDTO struct {
	UserID    string `json:"userId"`
	Alias     string `json:"alias"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	IsAdmin   bool   `json:"isAdmin"`
}

func toSessionDTO(s *domain.Session) SessionDTO {
	return SessionDTO{
		UserID:    s.UserID,
		Alias:     s.Alias,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		IsAdmin:   s.IsAdmin,
	}
}

// PostDTO is the JSON representation of a post.
type PostDTO struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Content         string `json:"content"`
	AuthorID        string `json:"authorId"`
	AuthorFirstName string `json:"authorFirstname"`
	AuthorLastName  string `json:"authorLastname"`
	CreatedAt       string `json:"createdAt"`
	ImagePath       string `json:"imagePath,omitempty"`
}

func toPostDTO(p *domain.Post) PostDTO {
	return PostDTO{
		ID:              p.ID,
		Title:           p.Title,
		Content:         p.Content,
		AuthorID:        p.AuthorID,
		AuthorFirstName: p.AuthorFirstName,
		AuthorLastName:  p.AuthorLastName,
		CreatedAt:       p.CreatedAt,
		ImagePath:       p.ImagePath,
	}
}

func toPostDTOs(posts []domain.Post) []PostDTO {
	dtos := make([]PostDTO, len(posts))
	for i := range posts {
		dtos[i] = toPostDTO(&posts[i])
	}
	return dtos
}

// GalleryItemDTO is the JSON representation of a gallery item.
type GalleryItemDTO struct {
	Filename   string `json:"filename"`
	UploadedBy string `json:"uploadedBy"`
	UploadDate string `json:"uploadDate"`
}

func toGalleryItemDTO(i domain.GalleryItem) GalleryItemDTO {
	return GalleryItemDTO{
		Filename:   i.Filename,
		UploadedBy: i.UploadedBy,
		UploadDate: i.UploadDate,
	}
}

func toGalleryItemDTOs(items []domain.GalleryItem) []GalleryItemDTO {
	dtos := make([]GalleryItemDTO, len(items))
	for i, item := range items {
		dtos[i] = toGalleryItemDTO(item)
	}
	return dtos
}

// ContactMessageDTO is the JSON representation of a contact message.
type ContactMessageDTO struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Date    string `json:"date"`
}

func toContactMessageDTO(m domain.ContactMessage) ContactMessageDTO {
	return ContactMessageDTO{
		Name:    m.Name,
		Email:   m.Email,
		Message: m.Message,
		Date:    m.Date,
	}
}

func toContactMessageDTOs(msgs []domain.ContactMessage) []ContactMessageDTO {
	dtos := make([]ContactMessageDTO, len(msgs))
	for i, m := range msgs {
		dtos[i] = toContactMessageDTO(m)
	}
	return dtos
}
