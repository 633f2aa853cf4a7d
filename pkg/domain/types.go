package domain

import "time"

type CollaborationStatus string

const (
	CollabDraft     CollaborationStatus = "draft"
	CollabActive    CollaborationStatus = "active"
	CollabCompleted CollaborationStatus = "completed"
	CollabCancelled CollaborationStatus = "cancelled"
)

type ParticipantStatus string

const (
	ParticipantInvited  ParticipantStatus = "invited"
	ParticipantAccepted ParticipantStatus = "accepted"
	ParticipantDeclined ParticipantStatus = "declined"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

type LibraryItemType string

const (
	LibraryItemSong     LibraryItemType = "song"
	LibraryItemAlbum    LibraryItemType = "album"
	LibraryItemPlaylist LibraryItemType = "playlist"
)

// User is the stored account record. The password hash never leaves the
// process; profile responses carry resolved follower counts instead.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Bio          string `json:"bio"`
}

// Profile is the public view of a user with social counts resolved.
type Profile struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Followers int    `json:"followers"`
	Following int    `json:"following"`
	Bio       string `json:"bio"`
}

type Rating struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	UserID    string    `json:"userId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Comment struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type FAQ struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Notification struct {
	NotificationID string    `json:"notificationId"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"createdAt"`
}

type Genre struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Album struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	ArtistID    string `json:"artistId"`
	ArtistName  string `json:"artistName,omitempty"`
	ReleaseDate string `json:"releaseDate"`
	Genre       string `json:"genre"`
}

type Song struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ArtistID string `json:"artistId"`
	AlbumID  string `json:"albumId,omitempty"`
	Duration int    `json:"duration"`
	Genre    string `json:"genre"`
}

type Participant struct {
	ID       string            `json:"id"`
	ArtistID string            `json:"artistId"`
	Role     string            `json:"role"`
	Status   ParticipantStatus `json:"status"`
}

type Collaboration struct {
	ID           string              `json:"id"`
	Title        string              `json:"title"`
	Description  string              `json:"description,omitempty"`
	Status       CollaborationStatus `json:"status"`
	Type         string              `json:"type"`
	InitiatorID  string              `json:"initiatorId"`
	Participants []Participant       `json:"participants"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

// Playlist carries SongCount as a derived field: it always equals the length
// of the playlist's song list and is recomputed by the store on every
// add/remove.
type Playlist struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	UserID      string    `json:"userId"`
	IsPublic    bool      `json:"isPublic"`
	SongCount   int       `json:"songCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type PlaylistSong struct {
	ID         string    `json:"id"`
	SongID     string    `json:"songId"`
	Name       string    `json:"name"`
	ArtistName string    `json:"artistName"`
	Duration   int       `json:"duration"`
	Position   int       `json:"position"`
	AddedAt    time.Time `json:"addedAt"`
}

type LibraryItem struct {
	ID         string          `json:"id"`
	ItemID     string          `json:"itemId"`
	Type       LibraryItemType `json:"type"`
	Name       string          `json:"name"`
	ArtistName string          `json:"artistName,omitempty"`
	AlbumName  string          `json:"albumName,omitempty"`
	AddedAt    time.Time       `json:"addedAt"`
}

// QueueEntry is one slot in a user's playback queue.
type QueueEntry struct {
	SongID   string `json:"songId"`
	Position int    `json:"position"`
}

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	InStock     bool    `json:"inStock"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CartItem struct {
	ItemID   string  `json:"itemId"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Cart is keyed by user id (one cart per user). TotalAmount is derived:
// sum(price*quantity) over Items, recomputed by the store on every mutation.
type Cart struct {
	UserID      string     `json:"userId"`
	Items       []CartItem `json:"items"`
	TotalAmount float64    `json:"totalAmount"`
}

type Order struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	Items     []CartItem  `json:"items"`
	Total     float64     `json:"total"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

type Payment struct {
	ID            string        `json:"id"`
	Amount        float64       `json:"amount"`
	Currency      string        `json:"currency"`
	Status        PaymentStatus `json:"status"`
	PaymentMethod string        `json:"paymentMethod"`
	UserID        string        `json:"userId"`
	OrderID       string        `json:"orderId,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}
