package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a blog article. Content is HTML composed of marked text/image
// blocks (see the sections package).
type Post struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Slug           string             `bson:"slug" json:"slug"`
	Title          string             `bson:"title" json:"title"`
	CoverImg       string             `bson:"coverImg,omitempty" json:"coverImg"`
	Excerpt        string             `bson:"excerpt,omitempty" json:"excerpt"`
	Content        string             `bson:"content,omitempty" json:"content"`
	RelatedCountry string             `bson:"relatedCountry,omitempty" json:"relatedCountry"`
	Gallery        CommaList          `bson:"gallery,omitempty" json:"gallery"`
	CreatedAt      time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// Inquiry statuses.
const (
	InquiryNew       = "new"
	InquiryContacted = "contacted"
)

// Inquiry is a contact/booking request submitted from the public site.
type Inquiry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClientName  string             `bson:"clientName" json:"clientName"`
	ClientEmail string             `bson:"clientEmail" json:"clientEmail"`
	ClientPhone string             `bson:"clientPhone,omitempty" json:"clientPhone"`
	Message     string             `bson:"message,omitempty" json:"message"`
	TourTitle   string             `bson:"tourTitle,omitempty" json:"tourTitle"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// Review avatars selectable on the public form.
var ReviewAvatars = []string{"none", "man", "woman", "family"}

// Review is a customer testimonial; IsVisible gates public display.
type Review struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Destination string             `bson:"destination,omitempty" json:"destination"`
	Text        string             `bson:"text" json:"text"`
	Rating      int                `bson:"rating" json:"rating"`
	AvatarID    string             `bson:"avatarId" json:"avatarId"`
	IsVisible   bool               `bson:"isVisible" json:"isVisible"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// Subscriber is a newsletter signup.
type Subscriber struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// MediaFile records one uploaded asset and its public URLs.
type MediaFile struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FileID    string             `bson:"fileId" json:"fileId"`
	Name      string             `bson:"name" json:"name"`
	URL       string             `bson:"url" json:"url"`
	ThumbURL  string             `bson:"thumbUrl,omitempty" json:"thumbUrl"`
	MimeType  string             `bson:"mimeType,omitempty" json:"mimeType"`
	Size      int64              `bson:"size,omitempty" json:"size"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// FavoriteItem is the denormalized tour card a visitor pins; the list lives
// under one fixed per-client key, not inside any tour document.
type FavoriteItem struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Img     string `json:"img,omitempty"`
	Price   string `json:"price,omitempty"`
	Country string `json:"country,omitempty"`
	Date    string `json:"date,omitempty"`
}

// Index is the message shape published on the catalog events channel.
type Index struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityId   string `json:"entity_id"`
}
