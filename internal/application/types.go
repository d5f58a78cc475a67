package application

import (
	"sync/atomic"
	"time"

	"github.com/ayyan656/Real-estate-SaaS-CRM/internal/domain"
)

type Config struct {
	AppName     string
	TokenTTL    time.Duration
	MockLatency time.Duration
}

// generation is the request-token counter used to discard stale completions
// of the fire-and-forget external calls. A caller captures Next() before the
// slow part and applies the result only when IsCurrent still holds.
type generation struct {
	counter atomic.Uint64
}

func (g *generation) Next() uint64 {
	return g.counter.Add(1)
}

func (g *generation) IsCurrent(token uint64) bool {
	return g.counter.Load() == token
}

type AddLeadRequest struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	Budget     float64    `json:"budget"`
	Status     string     `json:"status"`
	Interest   string     `json:"interest"`
	AssignedTo string     `json:"assigned_to"`
	Avatar     string     `json:"avatar"`
	Notes      string     `json:"notes"`
	CreatedAt  *time.Time `json:"created_at"`
}

type AddPropertyRequest struct {
	Title       string  `json:"title"`
	Address     string  `json:"address"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Beds        float64 `json:"beds"`
	Baths       float64 `json:"baths"`
	Sqft        float64 `json:"sqft"`
	Type        string  `json:"type"`
	Status      string  `json:"status"`
	Description string  `json:"description"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expires_in"`
	User      IdentityItem `json:"user"`
}

type IdentityItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar,omitempty"`
	Role     string `json:"role,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Bio      string `json:"bio,omitempty"`
	Location string `json:"location,omitempty"`
}

func NewIdentityItem(identity domain.Identity) IdentityItem {
	return IdentityItem{
		ID:       identity.ID,
		Name:     identity.Name,
		Email:    identity.Email,
		Avatar:   identity.Avatar,
		Role:     identity.Role,
		Phone:    identity.Phone,
		Bio:      identity.Bio,
		Location: identity.Location,
	}
}

type LeadItem struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	Phone      string         `json:"phone"`
	Budget     float64        `json:"budget"`
	Status     string         `json:"status"`
	Interest   string         `json:"interest"`
	AssignedTo string         `json:"assigned_to,omitempty"`
	Avatar     string         `json:"avatar,omitempty"`
	Notes      string         `json:"notes,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	Activities []ActivityItem `json:"activities"`
}

type ActivityItem struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

func NewLeadItem(lead domain.Lead) LeadItem {
	activities := make([]ActivityItem, 0, len(lead.Activities))
	for _, a := range lead.Activities {
		activities = append(activities, ActivityItem{
			ID:          a.ID,
			Type:        string(a.Type),
			Description: a.Description,
			Date:        a.Date,
		})
	}
	return LeadItem{
		ID:         lead.ID,
		Name:       lead.Name,
		Email:      lead.Email,
		Phone:      lead.Phone,
		Budget:     lead.Budget,
		Status:     string(lead.Status),
		Interest:   lead.Interest,
		AssignedTo: lead.AssignedTo,
		Avatar:     lead.Avatar,
		Notes:      lead.Notes,
		CreatedAt:  lead.CreatedAt,
		Activities: activities,
	}
}

type PropertyItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Address     string  `json:"address"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Beds        float64 `json:"beds"`
	Baths       float64 `json:"baths"`
	Sqft        float64 `json:"sqft"`
	Type        string  `json:"type"`
	Status      string  `json:"status"`
	Description string  `json:"description,omitempty"`
}

func NewPropertyItem(p domain.Property) PropertyItem {
	return PropertyItem{
		ID:          p.ID,
		Title:       p.Title,
		Address:     p.Address,
		Price:       p.Price,
		Image:       p.Image,
		Beds:        p.Beds,
		Baths:       p.Baths,
		Sqft:        p.Sqft,
		Type:        string(p.Type),
		Status:      string(p.Status),
		Description: p.Description,
	}
}

type AgentItem struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}
