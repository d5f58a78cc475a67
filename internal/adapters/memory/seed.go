package memory

import (
	"time"

	"github.com/ayyan656/Real-estate-SaaS-CRM/internal/domain"
)

// SeedLeads returns the demo pipeline used when the service boots with
// seeding enabled. Timestamps are offsets from now so the board always
// looks freshly used.
func SeedLeads(now time.Time) []domain.Lead {
	return []domain.Lead{
		{
			ID:         "1",
			Name:       "Alice Johnson",
			Email:      "alice@example.com",
			Phone:      "(555) 123-4567",
			Budget:     450000,
			Status:     domain.StatusNew,
			Interest:   "2BR Condo in Downtown",
			Avatar:     "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&w=150&h=150&q=80",
			Notes:      "First time home buyer. Pre-approved for $450k. Interested in amenities like gym and pool. Available for viewings on weekends only.",
			AssignedTo: "Sarah Miller",
			CreatedAt:  now.Add(-2 * time.Hour),
			Activities: []domain.LeadActivity{
				{ID: "a2", Type: domain.ActivityAssignment, Description: "Assigned to Sarah Miller", Date: now.Add(-90 * time.Minute)},
				{ID: "a1", Type: domain.ActivityCreation, Description: "Lead captured from Landing Page", Date: now.Add(-2 * time.Hour)},
			},
		},
		{
			ID:        "2",
			Name:      "Bob Smith",
			Email:     "bob@example.com",
			Phone:     "(555) 987-6543",
			Budget:    600000,
			Status:    domain.StatusNew,
			Interest:  "Family House with backyard",
			Avatar:    "https://images.unsplash.com/photo-1599566150163-29194dcaad36?auto=format&fit=crop&w=150&h=150&q=80",
			Notes:     "Looking for a school district area. Needs a fenced yard for dogs. Prefer move-in ready but open to minor renovations.",
			CreatedAt: now.Add(-5 * time.Hour),
			Activities: []domain.LeadActivity{
				{ID: "b1", Type: domain.ActivityCreation, Description: "Lead added manually", Date: now.Add(-5 * time.Hour)},
			},
		},
		{
			ID:         "3",
			Name:       "Charlie Brown",
			Email:      "charlie@example.com",
			Phone:      "(555) 456-7890",
			Budget:     300000,
			Status:     domain.StatusContacted,
			Interest:   "Fixer upper investment",
			Avatar:     "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?auto=format&fit=crop&w=150&h=150&q=80",
			Notes:      "Cash buyer. Looking for ROI properties. Experienced investor.",
			AssignedTo: "Mike Ross",
			CreatedAt:  now.Add(-24 * time.Hour),
			Activities: []domain.LeadActivity{
				{ID: "c3", Type: domain.ActivityNote, Description: "Call logged: Interested in 123 Pine St", Date: now.Add(-19 * time.Hour)},
				{ID: "c2", Type: domain.ActivityStatusChange, Description: "Status changed to Contacted", Date: now.Add(-20 * time.Hour)},
				{ID: "c1", Type: domain.ActivityCreation, Description: "Lead registered", Date: now.Add(-24 * time.Hour)},
			},
		},
		{
			ID:         "4",
			Name:       "Diana Prince",
			Email:      "diana@example.com",
			Phone:      "(555) 222-3333",
			Budget:     1200000,
			Status:     domain.StatusViewing,
			Interest:   "Luxury Penthouse",
			Avatar:     "https://images.unsplash.com/photo-1580489944761-15a19d654956?auto=format&fit=crop&w=150&h=150&q=80",
			Notes:      "High net worth client. Requires 24/7 security building. Wants a view of the water.",
			AssignedTo: "Sarah Miller",
			CreatedAt:  now.Add(-48 * time.Hour),
			Activities: []domain.LeadActivity{
				{ID: "d2", Type: domain.ActivityStatusChange, Description: "Moved to Viewing stage", Date: now.Add(-24 * time.Hour)},
				{ID: "d1", Type: domain.ActivityCreation, Description: "Lead created", Date: now.Add(-48 * time.Hour)},
			},
		},
		{
			ID:         "5",
			Name:       "Evan Wright",
			Email:      "evan@example.com",
			Phone:      "(555) 777-8888",
			Budget:     500000,
			Status:     domain.StatusNegotiation,
			Interest:   "Suburban Home",
			Avatar:     "https://images.unsplash.com/photo-1527980965255-d3b416303d12?auto=format&fit=crop&w=150&h=150&q=80",
			Notes:      "Offer submitted on 123 Maple Dr. Negotiating closing costs.",
			AssignedTo: "Jessica Pearson",
			CreatedAt:  now.Add(-72 * time.Hour),
			Activities: []domain.LeadActivity{
				{ID: "e3", Type: domain.ActivityStatusChange, Description: "Offer drafted", Date: now.Add(-5 * time.Hour)},
				{ID: "e2", Type: domain.ActivityAssignment, Description: "Assigned to Jessica Pearson", Date: now.Add(-70 * time.Hour)},
				{ID: "e1", Type: domain.ActivityCreation, Description: "Lead created", Date: now.Add(-72 * time.Hour)},
			},
		},
	}
}

// SeedProperties returns the demo listing catalog.
func SeedProperties() []domain.Property {
	return []domain.Property{
		{
			ID:      "1",
			Title:   "Modern Downtown Loft",
			Address: "123 Main St, Downtown, Seattle",
			Price:   450000,
			Image:   "https://picsum.photos/400/300?random=1",
			Beds:    1,
			Baths:   1,
			Sqft:    850,
			Type:    domain.TypeApartment,
			Status:  domain.PropertyActive,
		},
		{
			ID:      "2",
			Title:   "Family Home with Garden",
			Address: "456 Oak Ave, Suburbia, Portland",
			Price:   850000,
			Image:   "https://picsum.photos/400/300?random=2",
			Beds:    4,
			Baths:   2.5,
			Sqft:    2400,
			Type:    domain.TypeHouse,
			Status:  domain.PropertyActive,
		},
		{
			ID:      "3",
			Title:   "Luxury Penthouse Suite",
			Address: "789 High Rise Blvd, Metropolis",
			Price:   1200000,
			Image:   "https://picsum.photos/400/300?random=3",
			Beds:    3,
			Baths:   3,
			Sqft:    1800,
			Type:    domain.TypeApartment,
			Status:  domain.PropertySold,
		},
		{
			ID:      "4",
			Title:   "Cozy Cottage",
			Address: "101 Pine Ln, Forest Edge",
			Price:   350000,
			Image:   "https://picsum.photos/400/300?random=4",
			Beds:    2,
			Baths:   1,
			Sqft:    950,
			Type:    domain.TypeHouse,
			Status:  domain.PropertyDraft,
		},
	}
}
